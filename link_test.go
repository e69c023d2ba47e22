package brochure_test

import (
	"testing"

	"github.com/fwojciec/brochure"
	"github.com/stretchr/testify/assert"
)

func TestResolveLinks(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative links against the base URL", func(t *testing.T) {
		t.Parallel()

		got := brochure.ResolveLinks("https://example.com/", []string{"/about", "careers"})

		assert.Equal(t, []string{"https://example.com/about", "https://example.com/careers"}, got)
	})

	t.Run("deduplicates preserving document order", func(t *testing.T) {
		t.Parallel()

		got := brochure.ResolveLinks("https://example.com/", []string{"/about", "/careers", "/about"})

		assert.Equal(t, []string{"https://example.com/about", "https://example.com/careers"}, got)
	})

	t.Run("strips fragments before deduplication", func(t *testing.T) {
		t.Parallel()

		got := brochure.ResolveLinks("https://example.com/", []string{"/about#team", "/about#jobs"})

		assert.Equal(t, []string{"https://example.com/about"}, got)
	})

	t.Run("drops non-HTTP schemes", func(t *testing.T) {
		t.Parallel()

		got := brochure.ResolveLinks("https://example.com/", []string{
			"mailto:hi@example.com",
			"javascript:void(0)",
			"tel:+1555",
			"data:text/plain;base64,aGk=",
			"/contact",
		})

		assert.Equal(t, []string{"https://example.com/contact"}, got)
	})

	t.Run("drops bare fragments and self references", func(t *testing.T) {
		t.Parallel()

		got := brochure.ResolveLinks("https://example.com/", []string{"/", "#top", "https://example.com/"})

		assert.Empty(t, got)
	})

	t.Run("keeps absolute links to other hosts", func(t *testing.T) {
		t.Parallel()

		got := brochure.ResolveLinks("https://example.com/", []string{"https://blog.example.com/post"})

		assert.Equal(t, []string{"https://blog.example.com/post"}, got)
	})

	t.Run("returns nil for unparseable base URL", func(t *testing.T) {
		t.Parallel()

		got := brochure.ResolveLinks("://bad", []string{"/about"})

		assert.Nil(t, got)
	})
}

func TestLinkSelection_Cap(t *testing.T) {
	t.Parallel()

	selection := brochure.LinkSelection{
		{Category: "about page", URL: "https://example.com/about"},
		{Category: "careers page", URL: "https://example.com/careers"},
		{Category: "products page", URL: "https://example.com/products"},
	}

	t.Run("truncates preserving order", func(t *testing.T) {
		t.Parallel()

		got := selection.Cap(2)

		assert.Len(t, got, 2)
		assert.Equal(t, "about page", got[0].Category)
		assert.Equal(t, "careers page", got[1].Category)
	})

	t.Run("leaves shorter selections unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, selection.Cap(10), 3)
	})

	t.Run("non-positive cap is a no-op", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, selection.Cap(0), 3)
	})
}

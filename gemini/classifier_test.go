package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/brochure"
	"github.com/fwojciec/brochure/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_Classify_ReturnsErrorWhenSeedURLEmpty(t *testing.T) {
	t.Parallel()

	classifier := gemini.NewClassifier(nil, "test-model")

	_, err := classifier.Classify(context.Background(), "", []string{"/about"})

	require.Error(t, err)
	assert.Equal(t, brochure.EINVALID, brochure.ErrorCode(err))
}

func TestClassifier_Classify_ReturnsEmptySelectionForNoUsableLinks(t *testing.T) {
	t.Parallel()

	classifier := gemini.NewClassifier(nil, "test-model") // nil client ok: no call is made

	selection, err := classifier.Classify(context.Background(), "https://example.com/", []string{"/", "#top", "mailto:x@y.z"})

	require.NoError(t, err)
	assert.Empty(t, selection)
}

func TestBuildClassifyConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildClassifyConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "brochure about the company")

	assert.Equal(t, "application/json", config.ResponseMIMEType)
	require.NotNil(t, config.ResponseSchema)
	require.Contains(t, config.ResponseSchema.Properties, "links")
	items := config.ResponseSchema.Properties["links"].Items
	require.NotNil(t, items)
	assert.Contains(t, items.Properties, "type")
	assert.Contains(t, items.Properties, "url")
}

func TestBuildClassifyPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildClassifyPrompt("https://example.com/", []string{
		"https://example.com/about",
		"https://example.com/careers",
	})

	assert.Contains(t, prompt, "https://example.com/")
	assert.Contains(t, prompt, "https://example.com/about")
	assert.Contains(t, prompt, "https://example.com/careers")
}

func TestParseSelection(t *testing.T) {
	t.Parallel()

	seedURL := "https://example.com/"
	resolved := []string{
		"https://example.com/about",
		"https://example.com/careers",
		"https://example.com/products",
	}

	t.Run("parses valid response preserving model order", func(t *testing.T) {
		t.Parallel()

		raw := `{"links": [
			{"type": "careers page", "url": "https://example.com/careers"},
			{"type": "about page", "url": "https://example.com/about"}
		]}`

		selection, err := gemini.ParseSelection(raw, seedURL, resolved, 10)

		require.NoError(t, err)
		require.Len(t, selection, 2)
		assert.Equal(t, "careers page", selection[0].Category)
		assert.Equal(t, "about page", selection[1].Category)
	})

	t.Run("returns ESCHEMA for non-JSON response", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ParseSelection("here are the links you asked for", seedURL, resolved, 10)

		require.Error(t, err)
		assert.Equal(t, brochure.ESCHEMA, brochure.ErrorCode(err))
	})

	t.Run("returns ESCHEMA when links key is missing", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ParseSelection(`{"pages": []}`, seedURL, resolved, 10)

		require.Error(t, err)
		assert.Equal(t, brochure.ESCHEMA, brochure.ErrorCode(err))
	})

	t.Run("drops hallucinated links silently", func(t *testing.T) {
		t.Parallel()

		raw := `{"links": [
			{"type": "about page", "url": "https://example.com/about"},
			{"type": "blog", "url": "https://other-company.com/blog"}
		]}`

		selection, err := gemini.ParseSelection(raw, seedURL, resolved, 10)

		require.NoError(t, err)
		require.Len(t, selection, 1)
		assert.Equal(t, "https://example.com/about", selection[0].URL)
	})

	t.Run("accepts unharvested links sharing the seed host", func(t *testing.T) {
		t.Parallel()

		raw := `{"links": [{"type": "team page", "url": "https://example.com/team"}]}`

		selection, err := gemini.ParseSelection(raw, seedURL, resolved, 10)

		require.NoError(t, err)
		require.Len(t, selection, 1)
		assert.Equal(t, "https://example.com/team", selection[0].URL)
	})

	t.Run("drops the seed URL and bare fragments", func(t *testing.T) {
		t.Parallel()

		raw := `{"links": [
			{"type": "landing page", "url": "https://example.com/"},
			{"type": "home", "url": "/"},
			{"type": "about page", "url": "https://example.com/about"}
		]}`

		selection, err := gemini.ParseSelection(raw, seedURL, resolved, 10)

		require.NoError(t, err)
		require.Len(t, selection, 1)
		assert.Equal(t, "about page", selection[0].Category)
	})

	t.Run("drops relative and malformed urls", func(t *testing.T) {
		t.Parallel()

		raw := `{"links": [
			{"type": "about page", "url": "/about"},
			{"type": "ftp", "url": "ftp://example.com/file"},
			{"type": "careers page", "url": "https://example.com/careers"}
		]}`

		selection, err := gemini.ParseSelection(raw, seedURL, resolved, 10)

		require.NoError(t, err)
		require.Len(t, selection, 1)
		assert.Equal(t, "careers page", selection[0].Category)
	})

	t.Run("caps the selection preserving order", func(t *testing.T) {
		t.Parallel()

		raw := `{"links": [
			{"type": "about page", "url": "https://example.com/about"},
			{"type": "careers page", "url": "https://example.com/careers"},
			{"type": "products page", "url": "https://example.com/products"}
		]}`

		selection, err := gemini.ParseSelection(raw, seedURL, resolved, 2)

		require.NoError(t, err)
		require.Len(t, selection, 2)
		assert.Equal(t, "about page", selection[0].Category)
		assert.Equal(t, "careers page", selection[1].Category)
	})

	t.Run("accepts empty links array", func(t *testing.T) {
		t.Parallel()

		selection, err := gemini.ParseSelection(`{"links": []}`, seedURL, resolved, 10)

		require.NoError(t, err)
		assert.Empty(t, selection)
	})
}

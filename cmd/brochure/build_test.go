package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/brochure"
	"github.com/fwojciec/brochure/mock"
)

func TestBuildCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints markdown and saves brochure", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		var saved *brochure.Brochure
		deps := &Dependencies{
			Ctx:    context.Background(),
			Stdout: &stdout,
			Stderr: &stderr,
			Builder: &mock.BrochureBuilder{
				BuildFn: func(_ context.Context, companyName, seedURL string) (*brochure.Brochure, error) {
					assert.Equal(t, "Acme", companyName)
					assert.Equal(t, "https://acme.test", seedURL)
					return &brochure.Brochure{
						CompanyName: companyName,
						SeedURL:     seedURL,
						Markdown:    "# Acme",
						Status:      brochure.BrochureOK,
					}, nil
				},
			},
			Brochures: &mock.BrochureService{
				CreateBrochureFn: func(_ context.Context, b *brochure.Brochure) error {
					b.ID = "generated-id"
					saved = b
					return nil
				},
			},
		}

		cmd := &BuildCmd{Name: "Acme", URL: "https://acme.test"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "# Acme")
		require.NotNil(t, saved)
		assert.Equal(t, "Acme", saved.CompanyName)
		assert.Contains(t, stderr.String(), "Saved brochure generated-id")
	})

	t.Run("no-save skips persistence", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := &Dependencies{
			Ctx:    context.Background(),
			Stdout: &stdout,
			Stderr: &stderr,
			Builder: &mock.BrochureBuilder{
				BuildFn: func(_ context.Context, companyName, seedURL string) (*brochure.Brochure, error) {
					return &brochure.Brochure{
						CompanyName: companyName,
						SeedURL:     seedURL,
						Markdown:    "# Acme",
						Status:      brochure.BrochureOK,
					}, nil
				},
			},
			Brochures: &mock.BrochureService{
				CreateBrochureFn: func(_ context.Context, _ *brochure.Brochure) error {
					t.Fatal("CreateBrochure must not be called with --no-save")
					return nil
				},
			},
		}

		cmd := &BuildCmd{Name: "Acme", URL: "https://acme.test", NoSave: true}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "# Acme")
	})

	t.Run("failed brochure is saved and reported as an error", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		var saved *brochure.Brochure
		deps := &Dependencies{
			Ctx:    context.Background(),
			Stdout: &stdout,
			Stderr: &stderr,
			Builder: &mock.BrochureBuilder{
				BuildFn: func(_ context.Context, companyName, seedURL string) (*brochure.Brochure, error) {
					return &brochure.Brochure{
						CompanyName: companyName,
						SeedURL:     seedURL,
						Markdown:    "## Error Generating Brochure\n\nFailed.",
						Status:      brochure.BrochureFailed,
						ErrorDetail: "model call timed out",
					}, nil
				},
			},
			Brochures: &mock.BrochureService{
				CreateBrochureFn: func(_ context.Context, b *brochure.Brochure) error {
					saved = b
					return nil
				},
			},
		}

		cmd := &BuildCmd{Name: "Acme", URL: "https://acme.test"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stdout.String(), "Error Generating Brochure")
		require.NotNil(t, saved)
		assert.Equal(t, brochure.BrochureFailed, saved.Status)
	})

	t.Run("returns builder error for invalid input", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := &Dependencies{
			Ctx:    context.Background(),
			Stdout: &stdout,
			Stderr: &stderr,
			Builder: &mock.BrochureBuilder{
				BuildFn: func(_ context.Context, _, _ string) (*brochure.Brochure, error) {
					return nil, brochure.Errorf(brochure.EINVALID, "invalid seed URL")
				},
			},
		}

		cmd := &BuildCmd{Name: "Acme", URL: "not-a-url"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "invalid seed URL")
	})
}

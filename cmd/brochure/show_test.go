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

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints stored markdown", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := &Dependencies{
			Ctx:    context.Background(),
			Stdout: &stdout,
			Stderr: &stderr,
			Brochures: &mock.BrochureService{
				FindBrochureByIDFn: func(_ context.Context, id string) (*brochure.Brochure, error) {
					assert.Equal(t, "id-1", id)
					return &brochure.Brochure{ID: id, Markdown: "# Acme"}, nil
				},
			},
		}

		cmd := &ShowCmd{ID: "id-1"}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "# Acme")
	})

	t.Run("missing brochure prints hint", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := &Dependencies{
			Ctx:    context.Background(),
			Stdout: &stdout,
			Stderr: &stderr,
			Brochures: &mock.BrochureService{
				FindBrochureByIDFn: func(_ context.Context, _ string) (*brochure.Brochure, error) {
					return nil, brochure.Errorf(brochure.ENOTFOUND, "brochure not found")
				},
			},
		}

		cmd := &ShowCmd{ID: "missing"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "brochure list")
	})
}

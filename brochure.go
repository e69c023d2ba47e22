// Package brochure builds short company brochures from a seed web page.
// It fetches the landing page, asks an LLM which of the page's links are
// worth reading (about, careers, products, and similar), fetches those
// pages with polite pacing, and asks the LLM to synthesize the aggregated
// content into a markdown brochure.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, gemini/, sqlite/).
package brochure

import (
	"context"
	"time"
)

// Brochure status values.
const (
	BrochureOK     = "ok"
	BrochureFailed = "failed"
)

// Brochure is the terminal artifact of a build: the synthesized markdown
// plus the outcome status. A failed build still carries markdown so the
// consumer always has something to display.
type Brochure struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"companyName"`
	SeedURL     string    `json:"seedUrl"`
	Markdown    string    `json:"markdown"`
	Status      string    `json:"status"`
	ErrorDetail string    `json:"errorDetail,omitempty"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the brochure contains invalid fields.
func (b *Brochure) Validate() error {
	if b.CompanyName == "" {
		return Errorf(EINVALID, "brochure company name required")
	}
	if b.SeedURL == "" {
		return Errorf(EINVALID, "brochure seed URL required")
	}
	if b.Status != BrochureOK && b.Status != BrochureFailed {
		return Errorf(EINVALID, "brochure status must be %q or %q", BrochureOK, BrochureFailed)
	}
	return nil
}

// BrochureBuilder runs the full pipeline for one seed URL.
type BrochureBuilder interface {
	// Build fetches the seed page, classifies and fetches its subsidiary
	// links, and synthesizes a brochure. For a well-formed seed URL it
	// always returns a Brochure; pipeline failures are reported in the
	// brochure status, not as errors.
	Build(ctx context.Context, companyName, seedURL string) (*Brochure, error)
}

// BrochureService represents a service for managing stored brochures.
type BrochureService interface {
	// CreateBrochure persists a brochure, assigning its ID and timestamps.
	CreateBrochure(ctx context.Context, b *Brochure) error

	// FindBrochureByID retrieves a brochure by ID.
	// Returns ENOTFOUND if the brochure does not exist.
	FindBrochureByID(ctx context.Context, id string) (*Brochure, error)

	// FindBrochures retrieves brochures matching the filter,
	// newest first.
	FindBrochures(ctx context.Context, filter BrochureFilter) ([]*Brochure, error)

	// DeleteBrochure permanently removes a brochure.
	// Returns ENOTFOUND if the brochure does not exist.
	DeleteBrochure(ctx context.Context, id string) error
}

// BrochureFilter represents a filter for FindBrochures.
type BrochureFilter struct {
	ID          *string `json:"id"`
	CompanyName *string `json:"companyName"`
	SeedURL     *string `json:"seedUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

package mock

import (
	"context"

	"github.com/fwojciec/brochure"
)

var _ brochure.BrochureBuilder = (*BrochureBuilder)(nil)

// BrochureBuilder is a mock implementation of brochure.BrochureBuilder.
type BrochureBuilder struct {
	BuildFn func(ctx context.Context, companyName, seedURL string) (*brochure.Brochure, error)
}

func (b *BrochureBuilder) Build(ctx context.Context, companyName, seedURL string) (*brochure.Brochure, error) {
	return b.BuildFn(ctx, companyName, seedURL)
}

var _ brochure.BrochureService = (*BrochureService)(nil)

// BrochureService is a mock implementation of brochure.BrochureService.
type BrochureService struct {
	CreateBrochureFn   func(ctx context.Context, b *brochure.Brochure) error
	FindBrochureByIDFn func(ctx context.Context, id string) (*brochure.Brochure, error)
	FindBrochuresFn    func(ctx context.Context, filter brochure.BrochureFilter) ([]*brochure.Brochure, error)
	DeleteBrochureFn   func(ctx context.Context, id string) error
}

func (s *BrochureService) CreateBrochure(ctx context.Context, b *brochure.Brochure) error {
	return s.CreateBrochureFn(ctx, b)
}

func (s *BrochureService) FindBrochureByID(ctx context.Context, id string) (*brochure.Brochure, error) {
	return s.FindBrochureByIDFn(ctx, id)
}

func (s *BrochureService) FindBrochures(ctx context.Context, filter brochure.BrochureFilter) ([]*brochure.Brochure, error) {
	return s.FindBrochuresFn(ctx, filter)
}

func (s *BrochureService) DeleteBrochure(ctx context.Context, id string) error {
	return s.DeleteBrochureFn(ctx, id)
}

package mock

import (
	"context"

	"github.com/fwojciec/brochure"
)

var _ brochure.Pacer = (*Pacer)(nil)

// Pacer is a mock implementation of brochure.Pacer.
type Pacer struct {
	PauseFn func(ctx context.Context) error
}

func (p *Pacer) Pause(ctx context.Context) error {
	if p.PauseFn == nil {
		return nil
	}
	return p.PauseFn(ctx)
}

var _ brochure.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of brochure.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}

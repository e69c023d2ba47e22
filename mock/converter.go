package mock

import "github.com/fwojciec/brochure"

var _ brochure.Converter = (*Converter)(nil)

// Converter is a mock implementation of brochure.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

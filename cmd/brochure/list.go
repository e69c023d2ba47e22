package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/brochure"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := brochure.BrochureFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	}
	if c.Company != "" {
		filter.CompanyName = &c.Company
	}

	brochures, err := deps.Brochures.FindBrochures(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", brochure.ErrorMessage(err))
		return err
	}

	if len(brochures) == 0 {
		fmt.Fprintln(deps.Stdout, "No brochures found. Use 'brochure build' to create one.")
		return nil
	}

	for _, b := range brochures {
		fmt.Fprintf(deps.Stdout, "%s  %-6s  %s  %s  %s\n",
			b.ID, b.Status, b.CreatedAt.Format(time.DateOnly), b.CompanyName, b.SeedURL)
	}

	return nil
}

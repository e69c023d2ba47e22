package main

import (
	"fmt"

	"github.com/fwojciec/brochure"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	b, err := deps.Brochures.FindBrochureByID(deps.Ctx, c.ID)
	if err != nil {
		if brochure.ErrorCode(err) == brochure.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: brochure %q not found. Use 'brochure list' to see stored brochures.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", brochure.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, b.Markdown)
	return nil
}

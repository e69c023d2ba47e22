package main

import (
	"fmt"

	"github.com/fwojciec/brochure"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return brochure.Errorf(brochure.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Brochures.DeleteBrochure(deps.Ctx, c.ID); err != nil {
		if brochure.ErrorCode(err) == brochure.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: brochure %q not found. Use 'brochure list' to see stored brochures.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", brochure.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted brochure %q\n", c.ID)
	return nil
}

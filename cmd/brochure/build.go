package main

import (
	"fmt"

	"github.com/fwojciec/brochure"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	b, err := deps.Builder.Build(deps.Ctx, c.Name, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", brochure.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, b.Markdown)

	// Failed builds are stored too: the history records what was
	// attempted, and the markdown explains what went wrong.
	if !c.NoSave {
		if err := deps.Brochures.CreateBrochure(deps.Ctx, b); err != nil {
			fmt.Fprintf(deps.Stderr, "error saving brochure: %s\n", brochure.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved brochure %s\n", b.ID)
	}

	if b.Status == brochure.BrochureFailed {
		return brochure.Errorf(brochure.EINTERNAL, "brochure generation failed: %s", b.ErrorDetail)
	}

	return nil
}

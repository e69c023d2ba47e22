package main

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/brochure"
)

// Run executes the summarize command. Pages are fetched and summarized
// concurrently; output is printed in input order once all pages finish.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	summaries := make([]string, len(c.URLs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)

	for i, url := range c.URLs {
		g.Go(func() error {
			page := deps.Aggregator.LoadPage(ctx, url)
			summary, err := deps.Summarizer.Summarize(ctx, page)
			if err != nil {
				return fmt.Errorf("summarize %s: %w", url, err)
			}
			summaries[i] = summary
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", brochure.ErrorMessage(err))
		return err
	}

	for i, url := range c.URLs {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintf(deps.Stdout, "## %s\n\n%s\n", url, summaries[i])
	}

	return nil
}

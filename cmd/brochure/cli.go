package main

import (
	"context"
	"io"

	"github.com/fwojciec/brochure"
	"github.com/fwojciec/brochure/crawl"
	"github.com/fwojciec/brochure/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Brochures  brochure.BrochureService
	Builder    brochure.BrochureBuilder
	Aggregator *crawl.Aggregator
	Summarizer brochure.Summarizer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log pipeline stages to stderr"`

	Build     BuildCmd     `cmd:"" help:"Build a company brochure from a seed URL"`
	Summarize SummarizeCmd `cmd:"" help:"Summarize one or more web pages"`
	List      ListCmd      `cmd:"" help:"List stored brochures"`
	Show      ShowCmd      `cmd:"" help:"Show a stored brochure"`
	Delete    DeleteCmd    `cmd:"" help:"Delete a stored brochure"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Name      string `arg:"" help:"Company name"`
	URL       string `arg:"" help:"Company landing page URL"`
	NoSave    bool   `help:"Print the brochure without storing it"`
	MaxTokens int    `default:"100000" help:"Corpus token budget"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URLs        []string `arg:"" help:"Page URLs to summarize"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	Extractor   string   `default:"goquery" enum:"goquery,readability,trafilatura" help:"Content extraction strategy"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Company string `help:"Filter by company name"`
	Limit   int    `default:"20" help:"Maximum number of brochures to show"`
	Offset  int    `help:"Number of brochures to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Brochure ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Brochure ID"`
	Force bool   `help:"Confirm deletion"`
}

package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/tkondo/wikitoc"
)

// Dependencies holds the services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Scraper wikitoc.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Get   GetCmd   `cmd:"" help:"Extract the table of contents of one Wikipedia article"`
	Serve ServeCmd `cmd:"" help:"Run the JSON API server"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	URL    string `arg:"" help:"Wikipedia article URL (https://<lang>.wikipedia.org/wiki/<article>)"`
	Simple bool   `short:"s" help:"Render the TOC as an indented tree instead of JSON"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address"`
}

package main

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	result := deps.Scraper.Scrape(deps.Ctx, c.URL)

	if !result.Success {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", result.Error.Category, result.Error.Message)
		return fmt.Errorf("scrape failed: %s", result.Error.Category)
	}

	if c.Simple {
		fmt.Fprintln(deps.Stdout, result.Title)
		if len(result.TOC) == 0 {
			fmt.Fprintln(deps.Stdout, "(no table of contents)")
			return nil
		}
		for _, entry := range result.TOC {
			indent := strings.Repeat("  ", entry.Level-1)
			fmt.Fprintf(deps.Stdout, "%s• %s\n", indent, entry.Title)
		}
		return nil
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}

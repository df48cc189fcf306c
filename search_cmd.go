package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Command to search the vendor database by vendor name.
type SearchCmd struct {
	Vendor string `arg:"" help:"Vendor name to search for"`
	Limit  int    `help:"Maximum number of results to print, 0 for all" default:"25"`
}

func (a *SearchCmd) Run() error {
	registry, err := setupRegistry()
	if err != nil {
		return err
	}

	matches := registry.SearchByVendor(a.Vendor)
	if len(matches) == 0 {
		fmt.Printf("No vendor found with name %s!\n", a.Vendor)
		return nil
	}
	total := len(matches)
	if a.Limit > 0 && total > a.Limit {
		matches = matches[:a.Limit]
	}

	// Setup table for matching vendors.
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Prefix", "Vendor", "Private", "Block Type"})

	// Add row for each match.
	for _, record := range matches {
		t.AppendRow([]interface{}{record.Prefix, record.Vendor, record.Private, record.BlockType})
	}

	// Render the table.
	t.Render()
	if len(matches) < total {
		fmt.Printf("Showing %d of %d matches.\n", len(matches), total)
	}
	return nil
}

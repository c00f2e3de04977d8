package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tagsurf/tagsurf-terminal/internal/cli"
	"github.com/tagsurf/tagsurf-terminal/pkg/filter"
)

// SearchResult represents the output structure for the search command
type SearchResult struct {
	Query string    `json:"query" yaml:"query"`
	Count int       `json:"count" yaml:"count"`
	Tags  []TagItem `json:"tags" yaml:"tags"`
}

var searchOutputFormat string

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search tags by name",
		Long: `Fetch the remote tag catalog and print the tags whose names
contain the query, case-insensitively. Catalog order is preserved; there
is no ranking.

Examples:
  # Find tags mentioning "drama"
  tagsurf search drama

  # Machine-readable output
  tagsurf search drama -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().StringVarP(&searchOutputFormat, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	tags, client, err := loadCatalog(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load tag catalog: %w", err)
	}

	matches := filter.Apply(tags, query)
	result := SearchResult{
		Query: query,
		Count: len(matches),
		Tags:  tagItems(matches, client.Origin()),
	}

	if searchOutputFormat != "text" {
		return cli.OutputResults(os.Stdout, searchOutputFormat, result)
	}

	if result.Count == 0 {
		fmt.Printf("No tags match %q.\n", query)
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("NAME", "PATH")
	for _, item := range result.Tags {
		table.Row(cli.TruncateString(item.Name, maxNameWidth), item.Path)
	}
	table.Flush()
	fmt.Printf("\n%d of %d tags match\n", result.Count, len(tags))

	return nil
}

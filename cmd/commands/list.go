package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tagsurf/tagsurf-terminal/internal/cli"
)

// ListResult represents the output structure for the list command
type ListResult struct {
	Count int       `json:"count" yaml:"count"`
	Tags  []TagItem `json:"tags" yaml:"tags"`
}

var listOutputFormat string

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all tags in the catalog",
		Long: `Fetch the remote tag catalog and list every tag with its
site path.

Examples:
  # List all tags
  tagsurf list

  # List tags as JSON
  tagsurf list -o json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().StringVarP(&listOutputFormat, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	tags, client, err := loadCatalog(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load tag catalog: %w", err)
	}

	result := ListResult{
		Count: len(tags),
		Tags:  tagItems(tags, client.Origin()),
	}

	if listOutputFormat != "text" {
		return cli.OutputResults(os.Stdout, listOutputFormat, result)
	}

	if result.Count == 0 {
		fmt.Println("No tags available.")
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("NAME", "PATH")
	for _, item := range result.Tags {
		table.Row(cli.TruncateString(item.Name, maxNameWidth), item.Path)
	}
	table.Flush()
	fmt.Printf("\n%d tags\n", result.Count)

	return nil
}

package commands

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/tagsurf/tagsurf-terminal/pkg/catalog"
)

var pathCopyToClipboard bool

// NewPathCommand creates the path command
func NewPathCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path <tag-name>",
		Short: "Resolve a tag name to its site path",
		Long: `Look up a tag by its display name (case-insensitive) and print
the path-only identifier derived from its URL. Tag URLs from a foreign
origin are printed unchanged.

Examples:
  # Resolve a tag to its path
  tagsurf path "Time Travel"

  # Resolve and copy the path to the clipboard
  tagsurf path "Time Travel" --copy`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"resolve"},
		RunE:    runPath,
	}

	cmd.Flags().BoolVar(&pathCopyToClipboard, "copy", false, "Copy the path to the system clipboard")

	return cmd
}

func runPath(cmd *cobra.Command, args []string) error {
	name := args[0]

	tags, client, err := loadCatalog(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load tag catalog: %w", err)
	}

	for _, tag := range tags {
		if !strings.EqualFold(tag.Name, name) {
			continue
		}

		path := catalog.PathFor(tag.URL, client.Origin())
		fmt.Println(path)

		if pathCopyToClipboard {
			if err := clipboard.WriteAll(path); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Println("Copied to clipboard.")
		}
		return nil
	}

	return fmt.Errorf("no tag named %q in the catalog", name)
}

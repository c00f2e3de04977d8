package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tagsurf/tagsurf-terminal/cmd/commands"
	"github.com/tagsurf/tagsurf-terminal/pkg/settings"
	"github.com/tagsurf/tagsurf-terminal/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "tagsurf",
	Short: "Terminal-based browser for the bestsimilar.com tag catalog",
	Long:  `Tagsurf is a terminal-based browser for the bestsimilar.com tag catalog. It fetches the remote tag list, lets you filter it as you type, and resolves a selected tag to its site path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := settings.Load()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		app, err := tui.NewApp(cfg)
		if err != nil {
			return err
		}
		defer app.CloseLog()

		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Tagsurf",
	Long:  `Display the current version of the Tagsurf CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Tagsurf version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewPathCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

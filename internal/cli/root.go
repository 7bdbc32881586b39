// Package cli provides the command-line interface for git-scaffold.
package cli

import (
	"fmt"

	"github.com/runoshun/git-scaffold/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupProject = "project"
	groupSetup   = "setup"
)

// NewRootCommand creates the root command for git-scaffold.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "scaffold",
		Short: "Collect project metadata for a new project",
		Long: `git-scaffold asks a fixed series of questions about a new project
(name, version, repository, author, license and more), offers defaults
derived from git and from earlier answers, and writes the confirmed
answers to a file for the template renderer.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				// Reported by the command that needs the config
				return nil
			}

			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupProject, Title: "Project Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	initCmd := newInitCommand(c)
	initCmd.GroupID = groupProject
	root.AddCommand(initCmd)

	fieldsCmd := newFieldsCommand(c)
	fieldsCmd.GroupID = groupProject
	root.AddCommand(fieldsCmd)

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup
	root.AddCommand(configCmd)

	return root
}

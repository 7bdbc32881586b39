package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/runoshun/git-scaffold/internal/app"
	"github.com/runoshun/git-scaffold/internal/usecase"
	"github.com/spf13/cobra"
)

// newFieldsCommand creates the fields command.
func newFieldsCommand(c *app.Container) *cobra.Command {
	var defaultsFile string

	cmd := &cobra.Command{
		Use:   "fields [dir]",
		Short: "List the questions init will ask",
		Long: `List the fields of the builtin catalog in the order they are asked.

Dynamic defaults are not resolved; overrides from the config file and
from --defaults are shown in place of the builtin default.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := c.Config.WorkDir
			if len(args) == 1 {
				abs, err := filepath.Abs(args[0])
				if err != nil {
					return fmt.Errorf("resolve project directory: %w", err)
				}
				dir = abs
			}

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			catalog, err := c.Catalog(cfg, dir)
			if err != nil {
				return err
			}
			overrides, err := c.Overrides(cfg, defaultsFile)
			if err != nil {
				return err
			}

			out, err := c.ListFieldsUseCase().Execute(cmd.Context(), usecase.ListFieldsInput{
				Catalog:   catalog,
				Overrides: overrides,
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tDEFAULT\tCHECKS\tMESSAGE")
			for _, f := range out.Fields {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Name, f.Default, checks(f), f.Message)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&defaultsFile, "defaults", "d", "", "Override file (TOML or YAML) mapping field names to defaults")

	return cmd
}

func checks(f usecase.FieldSummary) string {
	var parts []string
	if f.Validated {
		parts = append(parts, "validate")
	}
	if f.Sanitized {
		parts = append(parts, "sanitize")
	}
	if f.Overridden {
		parts = append(parts, "override")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}

package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/runoshun/git-scaffold/internal/app"
	"github.com/runoshun/git-scaffold/internal/infra/answerfile"
	"github.com/runoshun/git-scaffold/internal/prompt"
	"github.com/runoshun/git-scaffold/internal/usecase"
	"github.com/spf13/cobra"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Defaults   string
		Format     string
		Output     string
		LogFile    string
		PromptMode string
		MaxPasses  int
	}

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Ask for project metadata and write the answers",
		Long: `Ask for the metadata of a new project in dir (default: the current directory).

Each question shows a default in parentheses; press enter to accept it.
Defaults come from git (latest tag, origin remote, user name), from
earlier answers, or from operator overrides in [defaults] of the config
file and in the --defaults file. After the last question the answers are
shown for confirmation; answering anything without a "y" restarts with
your previous answers as defaults.

Prompts are written to stderr. Answers go to stdout unless --output is set.

Examples:
  # Ask interactively, print TOML answers
  scaffold init

  # Write YAML answers for a project in ./widget
  scaffold init widget --output widget/answers.yaml

  # Non-interactive run with fixed defaults
  yes "" | scaffold init --defaults defaults.toml --prompt-mode line`,
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
			if opts.PromptMode != "" {
				cfg.Prompt.Mode = opts.PromptMode
			}
			if cmd.Flags().Changed("max-passes") {
				cfg.Prompt.MaxPasses = opts.MaxPasses
			}

			format := opts.Format
			if format == "" {
				format = answerfile.FormatFromPath(opts.Output, cfg.Output.Format)
			}
			format, err = answerfile.ParseFormat(format)
			if err != nil {
				return err
			}

			c.OpenLog(cfg, opts.LogFile)
			defer func() { _ = c.Close() }()

			catalog, err := c.Catalog(cfg, dir)
			if err != nil {
				return err
			}
			overrides, err := c.Overrides(cfg, opts.Defaults)
			if err != nil {
				return err
			}
			prompter, err := prompt.New(cfg.Prompt, cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			// Setup signal handling so Ctrl+C aborts the session cleanly
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			out, err := c.CollectAnswersUseCase(prompter).Execute(ctx, usecase.CollectAnswersInput{
				Catalog:   catalog,
				Overrides: overrides,
				MaxPasses: cfg.Prompt.MaxPasses,
			})
			if err != nil {
				return err
			}

			if opts.Output == "" || opts.Output == "-" {
				return answerfile.Write(cmd.OutOrStdout(), out.Answers, format)
			}
			if err := answerfile.WriteFile(opts.Output, out.Answers, format); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d answers to %s\n", out.Answers.Len(), opts.Output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Defaults, "defaults", "d", "", "Override file (TOML or YAML) mapping field names to defaults")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Answer format: toml, yaml or json (default: from --output extension or config)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write answers to this file instead of stdout")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "Append diagnostic logs to this file")
	cmd.Flags().StringVar(&opts.PromptMode, "prompt-mode", "", "Prompt mode: auto, line or tui")
	cmd.Flags().IntVar(&opts.MaxPasses, "max-passes", 0, "Abort after this many unconfirmed passes (0 = unlimited)")

	return cmd
}

package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/paraflow/pkg/buildinfo"
	"github.com/matzehuels/paraflow/pkg/errors"
	"github.com/matzehuels/paraflow/pkg/observability"
)

// exitInterrupted is the shell convention for a process stopped by SIGINT.
const exitInterrupted = 130

// Execute runs the command line args and returns the process exit status.
// Errors are printed to stderr without their code prefix.
func (c *CLI) Execute(ctx context.Context, args []string, stderr io.Writer) int {
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, context.Canceled):
		return exitInterrupted
	}
	fmt.Fprintln(stderr, styleIconError.Render(iconError)+" "+errors.UserMessage(err))
	return errors.ExitCode(err)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The configuration is loaded and --verbose applied before any subcommand
// runs.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   appName,
		Short: "Paraflow turns a paragraph into a flowchart",
		Long: `Paraflow splits a paragraph of prose into sentences, classifies each one as a
terminal, process, decision or input/output step, and stacks them into a
vertical flowchart rendered as PNG, SVG, PDF, JSON or Graphviz DOT.`,
		Version:       buildinfo.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			if err := c.loadConfig(); err != nil {
				return err
			}
			if c.Logger.GetLevel() <= LogDebug {
				observability.NewLogHooks(c.Logger).Register()
			}
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/paraflow/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.stepsCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.describeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

package cli

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/paraflow/pkg/flow"
	pio "github.com/matzehuels/paraflow/pkg/io"
	"github.com/matzehuels/paraflow/pkg/pipeline"
)

// editCommand opens the live editor.
func (c *CLI) editCommand() *cobra.Command {
	var output string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit a paragraph and watch its flowchart update live",
		Long: `Edit a paragraph in the terminal. Every keystroke re-splits the text and
recomputes the layout; ctrl+s renders the flowchart and writes it as PNG.

Without a file the editor starts from a sample paragraph.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			text := flow.Sample
			if len(args) == 1 {
				var err error
				if text, err = pio.ReadText(args[0]); err != nil {
					return err
				}
			}
			if output == "" {
				output = c.Config.Render.Output
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			// The alternate screen owns the terminal while the editor runs.
			c.Logger.SetOutput(io.Discard)

			model := NewEditorModel(text, c.Config.Render.FontSize, c.pngSaver(ctx, runner, output))
			_, err = tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG file written on ctrl+s (default flowchart.png)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// pngSaver renders text as PNG through runner and writes it to path.
func (c *CLI) pngSaver(ctx context.Context, runner *pipeline.Runner, path string) saveFunc {
	return func(text string) (string, error) {
		opts := c.Config.PipelineOptions(text)
		opts.Formats = []string{pipeline.FormatPNG}
		opts.Logger = c.Logger
		res, err := runner.Execute(ctx, opts)
		if err != nil {
			return "", err
		}
		if err := pio.WriteFile(path, res.Artifacts[pipeline.FormatPNG]); err != nil {
			return "", err
		}
		return path, nil
	}
}

package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	pio "github.com/matzehuels/paraflow/pkg/io"
	"github.com/matzehuels/paraflow/pkg/pipeline"
)

// stepsCommand prints the classified steps of a paragraph.
func (c *CLI) stepsCommand() *cobra.Command {
	var text string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "steps [file]",
		Short: "Show how a paragraph is split and classified",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(text, args)
			if err != nil {
				return err
			}
			return runSteps(cmd.Context(), input, asJSON)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "paragraph to classify instead of a file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print steps as JSON")

	return cmd
}

func runSteps(ctx context.Context, text string, asJSON bool) error {
	steps := pipeline.Segment(ctx, text)
	if asJSON {
		return pio.WriteSteps(steps, os.Stdout)
	}
	printSteps(os.Stdout, steps)
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/paraflow/pkg/errors"
)

// describeCommand asks the configured LLM for a process paragraph.
func (c *CLI) describeCommand() *cobra.Command {
	var opts renderOpts
	var renderIt bool

	cmd := &cobra.Command{
		Use:   "describe <topic>",
		Short: "Generate a process paragraph for a topic with an LLM",
		Long: `Generate a process paragraph for a topic with an OpenAI-compatible model.

Requires an API key in the config file or OPENAI_API_KEY. Replies are cached,
so asking about the same topic twice does not call the model again.`,
		Example: `  paraflow describe "brewing coffee"
  paraflow describe "deploying a release" --render -o release.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			topic := strings.Join(args, " ")

			cc, err := c.newCache(ctx, opts.noCache)
			if err != nil {
				return err
			}
			defer cc.Close()

			describer, err := c.newDescriber(cc)
			if err != nil {
				return err
			}
			if describer == nil {
				return errors.New(errors.ErrCodeInvalidConfig, "no LLM configured: set OPENAI_API_KEY or [llm] api_key")
			}

			text, err := withSpinner(ctx, cmd.ErrOrStderr(), "Asking "+describer.Model(), func(ctx context.Context) (string, error) {
				return describer.Describe(ctx, topic, opts.refresh)
			})
			if err != nil {
				return err
			}

			fmt.Println(text)
			if !renderIt {
				printNextStep("Render it", fmt.Sprintf("%s describe %q --render", appName, topic))
				return nil
			}
			return c.runRender(ctx, text, opts)
		},
	}

	cmd.Flags().BoolVar(&renderIt, "render", false, "render the generated paragraph")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file when rendering")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s) when rendering")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ask the model again instead of using a cached reply")

	return cmd
}

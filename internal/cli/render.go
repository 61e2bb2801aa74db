package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/paraflow/pkg/errors"
	"github.com/matzehuels/paraflow/pkg/graph"
	pio "github.com/matzehuels/paraflow/pkg/io"
	"github.com/matzehuels/paraflow/pkg/pipeline"
	"github.com/matzehuels/paraflow/pkg/render"
)

// renderOpts holds the flags of the render command. Zero values fall back
// to the configuration.
type renderOpts struct {
	text       string
	output     string
	formats    string
	vizType    string
	fontSize   float64
	scale      float64
	background string
	noCache    bool
	refresh    bool
	dataURL    bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a paragraph as a flowchart",
		Long: `Render a paragraph as a flowchart.

The paragraph comes from --text, a file (markdown lists become one step per
item) or standard input when the file is "-".`,
		Example: `  paraflow render --text "Start. Read the file. Check if it is empty. End."
  paraflow render process.md -f png,svg -o out/process
  echo "Start. End." | paraflow render - --data-url`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.text == "" && len(args) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "no input: pass a file, \"-\" or --text")
			}
			text, err := readInput(opts.text, args)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), text, opts)
		},
	}

	cmd.Flags().StringVar(&opts.text, "text", "", "paragraph to render instead of a file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple); default flowchart.<format>")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): png, svg, pdf, json, dot (comma-separated)")
	cmd.Flags().StringVarP(&opts.vizType, "type", "t", "", "visualization type: flowchart, nodelink")
	cmd.Flags().Float64Var(&opts.fontSize, "font-size", 0, "label font size in points")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG scale factor")
	cmd.Flags().StringVar(&opts.background, "background", "", "background color for PNG and SVG (e.g. #ffffff)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute and overwrite cached results")
	cmd.Flags().BoolVar(&opts.dataURL, "data-url", false, "print a PNG data URL instead of writing files")

	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(pipeline.ValidFormats, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("type", cobra.FixedCompletions(graph.VizTypes, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// pipelineOptions layers flags over the configured defaults.
func (c *CLI) pipelineOptions(text string, opts renderOpts) pipeline.Options {
	po := c.Config.PipelineOptions(text)
	po.Formats = parseFormats(opts.formats, po.Formats)
	po.Refresh = opts.refresh
	po.Logger = c.Logger
	if opts.dataURL {
		po.Formats = []string{pipeline.FormatPNG}
	}
	if opts.vizType != "" {
		po.VizType = opts.vizType
	}
	if opts.fontSize != 0 {
		po.FontSize = opts.fontSize
	}
	if opts.scale != 0 {
		po.Scale = opts.scale
	}
	if opts.background != "" {
		po.Background = opts.background
	}
	return po
}

func (c *CLI) runRender(ctx context.Context, text string, opts renderOpts) error {
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	po := c.pipelineOptions(text, opts)
	t := startTimer(c.Logger)
	res, err := runner.Execute(ctx, po)
	if err != nil {
		return err
	}
	t.finish("Rendered", "steps", res.Stats.StepCount, "layout_hit", res.CacheInfo.LayoutHit, "render_hit", res.CacheInfo.RenderHit)

	if opts.dataURL {
		fmt.Println(render.DataURL(res.Artifacts[pipeline.FormatPNG]))
		return nil
	}

	output := opts.output
	if output == "" {
		output = c.Config.Render.Output
	}
	paths := outputPaths(output, po.Formats)

	printSuccess("Flowchart ready")
	printStats(res.Stats.StepCount, res.Stats.Width, res.Stats.Height, res.CacheInfo.LayoutHit && res.CacheInfo.RenderHit)
	for _, f := range po.Formats {
		if err := pio.WriteFile(paths[f], res.Artifacts[f]); err != nil {
			return err
		}
		printFile(paths[f])
	}
	return nil
}

// outputPaths maps each format to a file. A single format uses output as
// given unless its extension names another format; multiple formats share
// the base path of output.
func outputPaths(output string, formats []string) map[string]string {
	base := output
	if ext := strings.TrimPrefix(filepath.Ext(output), "."); isFormat(ext) {
		base = strings.TrimSuffix(output, "."+ext)
		if len(formats) == 1 && ext == formats[0] {
			return map[string]string{formats[0]: output}
		}
	} else if len(formats) == 1 && filepath.Ext(output) != "" {
		return map[string]string{formats[0]: output}
	}

	paths := make(map[string]string, len(formats))
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

func isFormat(s string) bool {
	_, ok := pipeline.ContentTypes[s]
	return ok
}

// Package cli implements the paraflow command-line interface.
//
// # Commands
//
//   - render: turn a paragraph into PNG, SVG, PDF, JSON or DOT output
//   - steps: print the classified steps of a paragraph
//   - edit: live terminal editor that re-lays out on every keystroke
//   - describe: ask an LLM for a process paragraph on a topic
//   - serve: run the HTTP API
//   - cache: inspect and clear the local cache
//
// # Configuration
//
// Defaults come from a TOML file (see internal/config), overridden by
// PARAFLOW_* environment variables and finally by flags.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs pipeline, cache and HTTP events through observability hooks.
package cli

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/paraflow/internal/config"
	"github.com/matzehuels/paraflow/pkg/cache"
	"github.com/matzehuels/paraflow/pkg/integrations/llm"
	pio "github.com/matzehuels/paraflow/pkg/io"
	"github.com/matzehuels/paraflow/pkg/pipeline"
)

const appName = "paraflow"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
}

// New creates a CLI with built-in configuration; the config file is read
// when a command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	setLevel(c.Logger, level)
}

// loadConfig reads the config file selected by --config.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

// =============================================================================
// Factories
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, c.Config.Keyer(), c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	opts, err := c.Config.CacheOptions()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.Open(ctx, opts)
}

// newDescriber returns nil when no API key is configured.
func (c *CLI) newDescriber(cc cache.Cache) (*llm.Client, error) {
	if !c.Config.LLMEnabled() {
		return nil, nil
	}
	completer, err := llm.NewOpenAI(c.Config.OpenAI())
	if err != nil {
		return nil, err
	}
	return llm.NewClient(completer, cc, c.Config.Keyer()), nil
}

// =============================================================================
// Input & Options Helpers
// =============================================================================

// readInput returns --text when set, otherwise the contents of the file
// argument. "-" reads standard input.
func readInput(text string, args []string) (string, error) {
	if text != "" || len(args) == 0 {
		return text, nil
	}
	return pio.ReadText(args[0])
}

// parseFormats parses a comma-separated format string into a slice.
// An empty string selects defaults.
func parseFormats(s string, defaults []string) []string {
	if s == "" {
		return append([]string(nil), defaults...)
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(strings.ToLower(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

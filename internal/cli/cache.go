package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/paraflow/pkg/cache"
	"github.com/matzehuels/paraflow/pkg/errors"
)

var cacheKinds = []string{cache.KindLayout, cache.KindArtifact, cache.KindHTTP}

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and clear the local file cache",
		Long: `Inspect and clear the local file cache.

Entries come in three kinds: layouts, rendered artifacts and HTTP (LLM)
responses. Redis and MongoDB caches expire on their own and are not managed
here.`,
	}
	cmd.AddCommand(c.cacheInfoCommand(), c.cacheClearCommand(), c.cachePruneCommand(), c.cachePathCommand())
	return cmd
}

// fileCache opens the configured file cache. Other backends are rejected.
func (c *CLI) fileCache() (*cache.FileCache, error) {
	dir, err := c.cacheDir()
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}

func (c *CLI) cacheDir() (string, error) {
	if b := c.Config.Cache.Backend; b != cache.BackendFile {
		return "", errors.New(errors.ErrCodeUnsupported, "the %s cache backend has no local directory", b)
	}
	opts, err := c.Config.CacheOptions()
	if err != nil {
		return "", err
	}
	return opts.Dir, nil
}

func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show entry counts and sizes per kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := c.fileCache()
			if err != nil {
				return err
			}
			usage, err := fc.Usage()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(usage) == 0 {
				fmt.Fprintln(w, StyleDim.Render("Cache is empty: "+fc.Dir()))
				return nil
			}
			fmt.Fprintln(w, usageTable(usage))
			fmt.Fprintln(w, StyleDim.Render(fc.Dir()))
			return nil
		},
	}
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	var kinds []string
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove cached entries",
		Example: `  paraflow cache clear
  paraflow cache clear --kind artifact`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range kinds {
				if !slices.Contains(cacheKinds, k) {
					return errors.New(errors.ErrCodeInvalidInput, "unknown cache kind %q", k)
				}
			}
			fc, err := c.fileCache()
			if err != nil {
				return err
			}
			n, err := fc.Clear(kinds...)
			if err != nil {
				return err
			}
			c.Logger.Info("Cleared cache", "entries", n, "dir", fc.Dir())
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&kinds, "kind", nil, "only clear these kinds (layout, artifact, http)")
	cmd.RegisterFlagCompletionFunc("kind", cobra.FixedCompletions(cacheKinds, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func (c *CLI) cachePruneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Remove expired entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := c.fileCache()
			if err != nil {
				return err
			}
			n, err := fc.Prune()
			if err != nil {
				return err
			}
			c.Logger.Info("Pruned cache", "entries", n)
			return nil
		},
	}
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.cacheDir()
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), dir+"\n")
			return err
		},
	}
}

func usageTable(usage map[string]cache.Usage) string {
	var rows [][]string
	for _, kind := range slices.Sorted(maps.Keys(usage)) {
		u := usage[kind]
		rows = append(rows, []string{kind, strconv.Itoa(u.Entries), strconv.Itoa(u.Expired), formatBytes(u.Bytes)})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Kind", "Entries", "Expired", "Size").
		Rows(rows...).
		String()
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return strconv.FormatInt(n, 10) + " B"
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotkit/pkg/cache"
	"github.com/matzehuels/dotkit/pkg/graph"
	"github.com/matzehuels/dotkit/pkg/observability"
	"github.com/matzehuels/dotkit/pkg/viz"
)

// defaultCacheTTL bounds how long rendered artifacts stay reusable.
const defaultCacheTTL = 24 * time.Hour

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path; derived from input when empty
	format   string // compound format token, e.g. "png", "svg:neato", "png:dot:gd"
	provider string // provider ID; empty tries the configured default first
	engine   string // layout engine override, beats the token's engine segment
	name     string // graph name in the generated description
	noCache  bool   // bypass the artifact cache
}

// renderCommand creates the render command for generating artifacts from
// graph files.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph file to an image or document",
		Long: `Render reads a graph in JSON form and produces an artifact through one of
the registered providers. The format is a compound token: a base format,
an optional layout engine, and an optional subformatter, separated by
colons. Examples: png, svg:neato, png:dot:gd.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "format token: base[:engine[:subformatter]]")
	cmd.Flags().StringVarP(&opts.provider, "provider", "p", "", "provider ID (graphviz, embedded)")
	cmd.Flags().StringVar(&opts.engine, "engine", "", "layout engine (dot, neato, circo, sfdp, fdp, twopi)")
	cmd.Flags().StringVar(&opts.name, "name", "", "graph name in the generated description")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

// runRender loads the graph, resolves a renderer, and writes the artifact,
// consulting the cache first.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	g, raw, err := loadGraph(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded graph: %d nodes, %d edges", len(g.Nodes()), len(g.Edges()))

	token := opts.format
	if token == "" {
		token = c.Config.Defaults.Format
	}
	engine := opts.engine
	if engine == "" {
		engine = c.Config.Defaults.Engine
	}

	r := newRegistry()
	impl, err := c.resolveImpl(r, opts.provider, viz.KindRenderer, token)
	if err != nil {
		return err
	}
	renderer, ok := impl.(viz.Renderer)
	if !ok {
		return fmt.Errorf("provider %q returned a non-renderer for %q", impl.Info().ProviderID, token)
	}
	handle := renderer.Info()
	logger.Debugf("Resolved %s/%s", handle.ProviderID, handle.FormatID)

	outputPath := opts.output
	if outputPath == "" {
		outputPath = derivePath(input, formatBase(handle.FormatID))
	}

	store, err := c.newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	data, cached, err := c.renderCached(ctx, store, cache.NewDefaultKeyer(), renderer, g, raw, engineOf(handle.FormatID), engine, opts.name)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %s", outputPath))
	printFile(outputPath)
	printStats(len(g.Nodes()), len(g.Edges()), cached)
	return nil
}

// renderCached renders through the cache. The key covers the raw graph
// bytes, provider, resolved format, and effective engine, so any change in
// inputs misses. Backend calls go through the retry helper; only errors a
// backend marks retryable (Redis connectivity) trigger another attempt,
// and a cache that stays down degrades to a fresh render.
func (c *CLI) renderCached(ctx context.Context, store cache.Cache, keyer cache.Keyer, r viz.Renderer, g *graph.Graph, raw []byte, tokenEngine, flagEngine, name string) ([]byte, bool, error) {
	handle := r.Info()
	engine := flagEngine
	if engine == "" {
		engine = tokenEngine
	}

	key := keyer.ArtifactKey(cache.Hash(raw), cache.ArtifactKeyOpts{
		Provider: handle.ProviderID,
		Format:   handle.FormatID,
		Engine:   engine,
	})

	var cached []byte
	var hit bool
	getErr := cache.RetryWithBackoff(ctx, func() error {
		var err error
		cached, hit, err = store.Get(ctx, key)
		return err
	})
	if getErr == nil && hit {
		c.Logger.Debug("Artifact cache hit")
		observability.Cache().OnCacheHit(ctx, "artifact")
		return cached, true, nil
	}
	if getErr != nil {
		c.Logger.Debugf("Artifact cache read failed: %v", getErr)
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	observability.Render().OnRenderStart(ctx, handle.ProviderID, handle.FormatID)
	start := time.Now()
	data, err := r.Render(ctx, g, viz.RenderOptions{Name: name, Layout: flagEngine})
	observability.Render().OnRenderComplete(ctx, handle.ProviderID, handle.FormatID, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	setErr := cache.RetryWithBackoff(ctx, func() error {
		return store.Set(ctx, key, data, defaultCacheTTL)
	})
	if setErr != nil {
		c.Logger.Debugf("Artifact cache store failed: %v", setErr)
	} else {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return data, false, nil
}

// loadGraph reads a JSON graph file and returns both the parsed graph and
// the raw bytes for cache keying.
func loadGraph(path string) (*graph.Graph, []byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := graph.Unmarshal(raw)
	if err != nil {
		return nil, nil, err
	}
	return g, raw, nil
}

// derivePath replaces the input file's extension with the format's base,
// e.g. graph.json + png -> graph.png.
func derivePath(input, base string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + base
}

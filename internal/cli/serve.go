package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dotkit/pkg/cache"
	"github.com/matzehuels/dotkit/pkg/viz"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string // listen address
	provider string // provider ID used for rendering
	engine   string // layout engine override
	noCache  bool   // bypass the artifact cache
}

// serveCommand creates the serve command for live graph previews.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve a live preview of a graph over HTTP",
		Long: `Serve renders the graph file to SVG on each request, so edits to the
file show up on reload. Rendered artifacts are cached keyed on the file
contents; configure redis_addr to share the cache across processes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, localhost:8456)")
	cmd.Flags().StringVarP(&opts.provider, "provider", "p", "", "provider ID used for rendering")
	cmd.Flags().StringVar(&opts.engine, "engine", "", "layout engine")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

// runServe starts the preview server and blocks until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, input string, opts *serveOpts) error {
	addr := opts.addr
	if addr == "" {
		addr = c.Config.Serve.Addr
	}

	store, err := c.serveCache(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := &previewServer{
		cli:   c,
		input: input,
		opts:  opts,
		store: store,
		keyer: cache.NewScopedKeyer(nil, previewKeyPrefix),
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	c.Logger.Infof("Serving %s", input)
	printInfo("Preview at %s", StyleLink.Render("http://"+addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// serveCache selects the cache backend for the server: Redis when
// configured, otherwise the regular file cache.
func (c *CLI) serveCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache || !c.Config.Cache.Enabled {
		return cache.NewNullCache(), nil
	}
	if addr := c.Config.Cache.RedisAddr; addr != "" {
		store, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: addr})
		if err != nil {
			c.Logger.Warnf("Redis unavailable, falling back to file cache: %v", err)
		} else {
			return store, nil
		}
	}
	return c.newCache(false)
}

// previewKeyPrefix scopes the server's cache entries apart from those
// written by interactive CLI runs sharing the same backend.
const previewKeyPrefix = "preview:"

// previewServer holds the handlers for the preview endpoints.
type previewServer struct {
	cli   *CLI
	input string
	opts  *serveOpts
	store cache.Cache
	keyer cache.Keyer
}

// routes builds the HTTP routes.
func (s *previewServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/graph.svg", s.handleSVG)
	r.Get("/healthz", s.handleHealthz)
	return r
}

// handleIndex serves a minimal page that reloads the SVG.
func (s *previewServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>dotkit: %s</title></head>
<body style="margin:2rem;font-family:sans-serif">
<h3>%s</h3>
<img src="/graph.svg" alt="graph">
</body>
</html>
`, s.input, s.input)
}

// handleSVG renders the graph file to SVG, using the cache when possible.
func (s *previewServer) handleSVG(w http.ResponseWriter, r *http.Request) {
	g, raw, err := loadGraph(s.input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	reg := newRegistry()
	impl, err := s.cli.resolveImpl(reg, s.opts.provider, viz.KindRenderer, "svg")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	renderer, ok := impl.(viz.Renderer)
	if !ok {
		http.Error(w, "no SVG renderer available", http.StatusInternalServerError)
		return
	}

	data, _, err := s.cli.renderCached(r.Context(), s.store, s.keyer, renderer, g, raw, "", s.opts.engine, "")
	if err != nil {
		s.cli.Logger.Errorf("Render failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(data)
}

// handleHealthz reports liveness.
func (s *previewServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

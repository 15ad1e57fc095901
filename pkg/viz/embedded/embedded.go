// Package embedded provides an in-process renderer provider backed by
// github.com/goccy/go-graphviz, which runs the Graphviz layout code as
// WebAssembly. It needs no external binary, at the cost of supporting only
// a small set of output formats. Viewer and serializer kinds are absent.
package embedded

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"os"

	gographviz "github.com/goccy/go-graphviz"

	"github.com/matzehuels/dotkit/pkg/dot"
	"github.com/matzehuels/dotkit/pkg/graph"
	"github.com/matzehuels/dotkit/pkg/viz"
	"github.com/matzehuels/dotkit/pkg/viz/graphviz"
)

// ProviderID is the registry identifier of this provider.
const ProviderID = "embedded"

const defaultFormat = "png"

// table lists the formats the wasm build can produce.
var table = map[string]viz.Format{
	"dot": {ID: "dot", ShortName: "DOT with layout", Description: "DOT source with layout coordinates"},
	"jpg": {ID: "jpg", ShortName: "JPEG image", Binary: true, Description: "JPEG raster"},
	"png": {ID: "png", ShortName: "PNG image", Binary: true, Description: "portable network graphics"},
	"svg": {ID: "svg", ShortName: "SVG image", Description: "scalable vector graphics"},
}

// outputFormats maps format IDs to the go-graphviz output constants.
var outputFormats = map[string]gographviz.Format{
	"dot": gographviz.XDOT,
	"jpg": gographviz.JPG,
	"png": gographviz.PNG,
	"svg": gographviz.SVG,
}

// Provider renders graphs in process. Stateless and safe for concurrent
// reuse; each Render call owns its own graphviz instance.
type Provider struct{}

// New creates the embedded provider.
func New() *Provider { return &Provider{} }

// ID returns "embedded".
func (p *Provider) ID() string { return ProviderID }

// SupportedFormats returns the renderer table; other kinds are absent.
func (p *Provider) SupportedFormats(kind viz.Kind) map[string]viz.Format {
	if kind != viz.KindRenderer {
		return nil
	}
	return maps.Clone(table)
}

// Implementation returns the default png renderer.
func (p *Provider) Implementation(kind viz.Kind) (viz.Implementation, bool) {
	if kind != viz.KindRenderer {
		return nil, false
	}
	return &renderer{
		handle: viz.Handle{ProviderID: ProviderID, FormatID: defaultFormat},
		spec:   viz.FormatSpec{Base: defaultFormat},
	}, true
}

// ImplementationFor resolves a compound token against the renderer table.
func (p *Provider) ImplementationFor(kind viz.Kind, token string) (viz.Implementation, bool, error) {
	spec, err := viz.ParseFormat(token)
	if err != nil {
		return nil, false, err
	}
	desc, ok := p.SupportedFormats(kind)[spec.Base]
	if !ok {
		return nil, false, nil
	}

	formatID := desc.ID
	if spec.Engine != "" {
		formatID = spec.String()
	}
	return &renderer{
		handle: viz.Handle{ProviderID: ProviderID, FormatID: formatID},
		spec:   spec,
	}, true, nil
}

type renderer struct {
	handle viz.Handle
	spec   viz.FormatSpec
}

func (r *renderer) Info() viz.Handle { return r.handle }

// Render lays the graph out in process and returns the artifact bytes.
func (r *renderer) Render(ctx context.Context, g graph.Source, opts viz.RenderOptions) ([]byte, error) {
	dotSrc := dot.Marshal(g, dot.Options{
		Name:       opts.Name,
		GraphAttrs: opts.GraphAttrs,
		NodeLabel:  opts.NodeLabel,
		EdgeLabel:  opts.EdgeLabel,
	})

	gv, err := gographviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	engine := opts.Layout
	if engine == "" {
		engine = r.spec.Engine
	}
	if engine == "" {
		engine = graphviz.PickEngine(g)
	}
	gv.SetLayout(gographviz.Layout(engine))

	parsed, err := gographviz.ParseBytes([]byte(dotSrc))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, outputFormats[r.spec.Base], &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderFile renders in memory and writes the artifact to path.
func (r *renderer) RenderFile(ctx context.Context, g graph.Source, path string, opts viz.RenderOptions) error {
	data, err := r.Render(ctx, g, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Interface guards.
var (
	_ viz.Provider = (*Provider)(nil)
	_ viz.Renderer = (*renderer)(nil)
)

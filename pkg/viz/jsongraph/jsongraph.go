// Package jsongraph provides a serializer provider for the JSON graph
// interchange format implemented by [github.com/matzehuels/dotkit/pkg/graph].
// Unlike the DOT serializer it supports both directions, so a graph can be
// exported, stored, and loaded back without loss.
package jsongraph

import (
	"maps"

	"github.com/matzehuels/dotkit/pkg/graph"
	"github.com/matzehuels/dotkit/pkg/viz"
)

// ProviderID is the registry identifier of this provider.
const ProviderID = "json"

var table = map[string]viz.Format{
	"json": {ID: "json", ShortName: "JSON graph", Description: "JSON node-link interchange format"},
}

// Provider serializes graphs to and from JSON.
type Provider struct{}

// New creates the JSON provider.
func New() *Provider { return &Provider{} }

// ID returns "json".
func (p *Provider) ID() string { return ProviderID }

// SupportedFormats returns the serializer table; other kinds are absent.
func (p *Provider) SupportedFormats(kind viz.Kind) map[string]viz.Format {
	if kind != viz.KindSerializer {
		return nil
	}
	return maps.Clone(table)
}

// Implementation returns the JSON serializer.
func (p *Provider) Implementation(kind viz.Kind) (viz.Implementation, bool) {
	if kind != viz.KindSerializer {
		return nil, false
	}
	return &serializer{handle: viz.Handle{ProviderID: ProviderID, FormatID: "json"}}, true
}

// ImplementationFor resolves a compound token. The engine and subformatter
// segments do not affect the JSON output, but an engine override still
// round-trips through the handle's format ID like in every other provider.
func (p *Provider) ImplementationFor(kind viz.Kind, token string) (viz.Implementation, bool, error) {
	spec, err := viz.ParseFormat(token)
	if err != nil {
		return nil, false, err
	}
	if _, ok := p.SupportedFormats(kind)[spec.Base]; !ok {
		return nil, false, nil
	}

	formatID := spec.Base
	if spec.Engine != "" {
		formatID = spec.String()
	}
	return &serializer{handle: viz.Handle{ProviderID: ProviderID, FormatID: formatID}}, true, nil
}

type serializer struct {
	handle viz.Handle
}

func (s *serializer) Info() viz.Handle { return s.handle }

// Encode marshals the graph to its JSON text. Render options do not apply
// to the interchange format and are ignored.
func (s *serializer) Encode(g graph.Source, _ viz.RenderOptions) (string, error) {
	data, err := graph.Marshal(graph.FromSource(g))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses JSON text back into a graph.
func (s *serializer) Decode(text string) (*graph.Graph, error) {
	return graph.Unmarshal([]byte(text))
}

func (s *serializer) CanEncode() bool { return true }

func (s *serializer) CanDecode() bool { return true }

// Interface guards.
var (
	_ viz.Provider   = (*Provider)(nil)
	_ viz.Serializer = (*serializer)(nil)
)

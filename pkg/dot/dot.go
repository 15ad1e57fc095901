// Package dot generates DOT-family graph descriptions.
//
// # Overview
//
// [Marshal] is a pure function from a [graph.Source] to DOT text. The same
// graph with the same options always produces byte-identical output: nodes
// are emitted in sorted ID order, attribute keys in sorted order, and edges
// in the source's stable edge order. Golden-file and round-trip tests depend
// on this determinism, so any change to the emitted syntax is a breaking
// change.
//
// # Syntax
//
// The generated text is accepted by any layout engine implementing the DOT
// graph description language:
//
//	digraph "deps" {
//	  graph ["rankdir"="LR"]
//	  "a" -> "b" ["label"="uses"]
//	  "a" ["color"="red"]
//	  "b"
//	}
//
// Within quoted strings only two characters are transformed: '"' becomes \"
// and newline becomes \n. Attribute pairs whose stringified value is empty
// are skipped, and an attribute list that would be empty is omitted entirely
// rather than emitted as [].
//
// # Labels
//
// Edge labels follow a fixed precedence: for weighted graphs the numeric
// weight wins; otherwise the caller-supplied (or default) edge-label
// function applies. The chosen label is merged into the element's attribute
// map under the key "label", overriding any existing value there. The
// default node and edge label functions look up the "label" attribute when
// the source exposes attributes.
package dot

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/dotkit/pkg/graph"
)

// DefaultName is the graph name used when Options.Name is empty.
const DefaultName = "graph"

// Options configures DOT generation. The zero value produces an unadorned
// description named "graph" with labels taken from "label" attributes.
type Options struct {
	// Name is the quoted graph name in the header. Defaults to DefaultName.
	Name string

	// GraphAttrs is an optional top-level attribute mapping emitted as a
	// `graph [...]` statement directly after the header.
	GraphAttrs graph.Metadata

	// NodeLabel overrides the node-label function. Returning false means the
	// node has no label.
	NodeLabel func(id string) (string, bool)

	// EdgeLabel overrides the edge-label function. Returning false means the
	// edge has no label. Ignored for weighted graphs, where the numeric
	// weight always wins.
	EdgeLabel func(from, to string) (string, bool)
}

// Marshal converts a graph to DOT text. It is deterministic and
// side-effect free; see the package documentation for the exact syntax.
func Marshal(g graph.Source, opts Options) string {
	name := opts.Name
	if name == "" {
		name = DefaultName
	}

	attrs, _ := g.(graph.Attributed)
	nodeLabel := opts.NodeLabel
	if nodeLabel == nil {
		nodeLabel = attrLabel(func(id string) graph.Metadata {
			if attrs == nil {
				return nil
			}
			return attrs.NodeAttrs(id)
		})
	}
	edgeLabel := opts.EdgeLabel
	if edgeLabel == nil {
		edgeLabel = func(from, to string) (string, bool) {
			if attrs == nil {
				return "", false
			}
			return lookupLabel(attrs.EdgeAttrs(from, to))
		}
	}

	var b strings.Builder
	if g.Directed() {
		fmt.Fprintf(&b, "digraph \"%s\" {\n", escape(name))
	} else {
		fmt.Fprintf(&b, "graph \"%s\" {\n", escape(name))
	}

	if list := attrList(opts.GraphAttrs); list != "" {
		fmt.Fprintf(&b, "  graph %s\n", list)
	}

	arrow := "->"
	if !g.Directed() {
		arrow = "--"
	}

	for _, e := range g.Edges() {
		var edgeAttrs graph.Metadata
		if attrs != nil {
			edgeAttrs = attrs.EdgeAttrs(e.From, e.To)
		}

		label, hasLabel := "", false
		if g.Weighted() {
			label, hasLabel = strconv.FormatFloat(e.Weight, 'f', -1, 64), true
		} else {
			label, hasLabel = edgeLabel(e.From, e.To)
		}

		fmt.Fprintf(&b, "  \"%s\" %s \"%s\"", escape(e.From), arrow, escape(e.To))
		// An attribute list is attached only when the edge is labeled or
		// carries more than one attribute of its own.
		if hasLabel || len(edgeAttrs) > 1 {
			if list := attrList(merged(edgeAttrs, label, hasLabel)); list != "" {
				b.WriteString(" " + list)
			}
		}
		b.WriteString("\n")
	}

	for _, id := range g.Nodes() {
		var nodeAttrs graph.Metadata
		if attrs != nil {
			nodeAttrs = attrs.NodeAttrs(id)
		}
		label, hasLabel := nodeLabel(id)

		fmt.Fprintf(&b, "  \"%s\"", escape(id))
		if hasLabel || len(nodeAttrs) > 0 {
			if list := attrList(merged(nodeAttrs, label, hasLabel)); list != "" {
				b.WriteString(" " + list)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("}\n")
	return b.String()
}

// escape transforms '"' to \" and newline to \n inside quoted strings.
// No other characters are touched.
func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// attrList renders an attribute mapping as `["key"="value", ...]` with keys
// in sorted order. Pairs whose stringified value is empty are skipped; an
// empty list yields "".
func attrList(m graph.Metadata) string {
	if len(m) == 0 {
		return ""
	}

	var pairs []string
	for _, k := range slices.Sorted(maps.Keys(m)) {
		v := stringify(m[k])
		if v == "" {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("\"%s\"=\"%s\"", escape(k), escape(v)))
	}
	if len(pairs) == 0 {
		return ""
	}
	return "[" + strings.Join(pairs, ", ") + "]"
}

// merged overlays a label onto an attribute mapping under the key "label",
// overriding any existing value there.
func merged(attrs graph.Metadata, label string, hasLabel bool) graph.Metadata {
	if !hasLabel {
		return attrs
	}
	out := make(graph.Metadata, len(attrs)+1)
	maps.Copy(out, attrs)
	out["label"] = label
	return out
}

// attrLabel builds a label function that looks up the "label" attribute.
func attrLabel(attrsOf func(id string) graph.Metadata) func(string) (string, bool) {
	return func(id string) (string, bool) {
		return lookupLabel(attrsOf(id))
	}
}

func lookupLabel(m graph.Metadata) (string, bool) {
	v, ok := m["label"]
	if !ok {
		return "", false
	}
	s := stringify(v)
	return s, s != ""
}

// stringify renders an attribute value. Strings pass through unchanged so
// numeric-looking values are not reformatted.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Package graphviz adapts the external Graphviz layout engines as a dotkit
// provider.
//
// # Overview
//
// The provider publishes three format tables: roughly 35 image and document
// formats for rendering, the windowing-canvas formats for viewing, and the
// dot-family text formats (including the revisioned xdot dialects) for
// serialization. Implementations encode the graph as DOT text, pick a
// layout engine, and drive the engine binary as
//
//	<engine> -T<format> [-o<output-file>] [<input-file>]
//
// streaming DOT through standard input and capturing standard output when
// no files are given.
//
// # Engine Selection
//
// When neither the format token's engine override nor the Layout render
// option chooses an engine, [PickEngine] selects one from the graph's
// shape: circo for strongly connected or connected graphs, neato for
// directed graphs that are not strongly connected, sfdp for large directed
// graphs, and dot otherwise.
//
// # Success Contract
//
// An invocation succeeds only when the engine exits zero AND writes nothing
// to its error stream. Graphviz legitimately prints warnings to stderr on
// some inputs, so this contract can produce false-negative failures; it is
// kept because silently accepting warning-producing renders has historically
// hidden malformed attribute bugs. Failures carry the full argument list,
// the captured stderr text, and the exit status.
package graphviz

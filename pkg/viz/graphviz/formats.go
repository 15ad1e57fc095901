package graphviz

import (
	"fmt"
	"maps"

	"github.com/matzehuels/dotkit/pkg/viz"
)

// Default format IDs per implementation kind. These are fixed design
// choices, not negotiated: one binary image format for rendering, one
// windowing format for viewing, one textual format for serialization.
const (
	defaultRenderFormat    = "png"
	defaultViewFormat      = "xlib"
	defaultSerializeFormat = "dot"
)

// rendererTable lists the image and document formats Graphviz can produce
// via -T. Binary marks formats whose output must be treated as raw bytes.
var rendererTable = makeTable([]viz.Format{
	{ID: "bmp", ShortName: "BMP image", Binary: true, Description: "Windows bitmap"},
	{ID: "canon", ShortName: "Canonical DOT", Description: "prettified DOT source, no layout"},
	{ID: "cmapx", ShortName: "Client-side image map", Description: "HTML image map"},
	{ID: "dot", ShortName: "DOT with layout", Description: "DOT source with layout coordinates"},
	{ID: "eps", ShortName: "EPS document", Binary: true, Description: "encapsulated PostScript"},
	{ID: "fig", ShortName: "FIG drawing", Description: "Xfig drawing format"},
	{ID: "gd", ShortName: "GD image", Binary: true, Description: "libgd raster"},
	{ID: "gd2", ShortName: "GD2 image", Binary: true, Description: "compressed libgd raster"},
	{ID: "gif", ShortName: "GIF image", Binary: true, Description: "graphics interchange format"},
	{ID: "ico", ShortName: "ICO image", Binary: true, Description: "Windows icon"},
	{ID: "imap", ShortName: "Server-side image map", Description: "server-side HTML image map"},
	{ID: "jpe", ShortName: "JPEG image", Binary: true, Description: "JPEG raster (jpe alias)"},
	{ID: "jpeg", ShortName: "JPEG image", Binary: true, Description: "JPEG raster"},
	{ID: "jpg", ShortName: "JPEG image", Binary: true, Description: "JPEG raster (jpg alias)"},
	{ID: "json", ShortName: "JSON output", Description: "layout in JSON, xdot detail"},
	{ID: "json0", ShortName: "JSON output", Description: "layout in JSON, no xdot detail"},
	{ID: "pdf", ShortName: "PDF document", Binary: true, Description: "portable document format"},
	{ID: "pic", ShortName: "PIC drawing", Description: "troff PIC drawing"},
	{ID: "plain", ShortName: "Plain text layout", Description: "line-based node/edge positions"},
	{ID: "plain-ext", ShortName: "Plain text layout", Description: "plain format with port names"},
	{ID: "png", ShortName: "PNG image", Binary: true, Description: "portable network graphics"},
	{ID: "pov", ShortName: "POV-Ray scene", Description: "persistence of vision raytracer"},
	{ID: "ps", ShortName: "PostScript document", Binary: true, Description: "PostScript"},
	{ID: "ps2", ShortName: "PostScript for PDF", Binary: true, Description: "PostScript with PDF notations"},
	{ID: "svg", ShortName: "SVG image", Description: "scalable vector graphics"},
	{ID: "svgz", ShortName: "Compressed SVG", Binary: true, Description: "gzip-compressed SVG"},
	{ID: "tif", ShortName: "TIFF image", Binary: true, Description: "tagged image format (tif alias)"},
	{ID: "tiff", ShortName: "TIFF image", Binary: true, Description: "tagged image format"},
	{ID: "tk", ShortName: "Tk canvas", Description: "Tcl/Tk canvas commands"},
	{ID: "vml", ShortName: "VML drawing", Description: "vector markup language"},
	{ID: "vmlz", ShortName: "Compressed VML", Binary: true, Description: "gzip-compressed VML"},
	{ID: "vrml", ShortName: "VRML scene", Description: "virtual reality modeling language"},
	{ID: "wbmp", ShortName: "WBMP image", Binary: true, Description: "wireless bitmap"},
	{ID: "webp", ShortName: "WebP image", Binary: true, Description: "WebP raster"},
	{ID: "xlib", ShortName: "X11 canvas", Binary: true, Description: "render into an X11 window"},
})

// viewerTable lists the windowing-canvas formats that make the engine open a
// display window of its own.
var viewerTable = makeTable([]viz.Format{
	{ID: "gtk", ShortName: "GTK window", Binary: true, Description: "interactive GTK canvas"},
	{ID: "x11", ShortName: "X11 window", Binary: true, Description: "interactive X11 window (x11 alias)"},
	{ID: "xlib", ShortName: "X11 window", Binary: true, Description: "interactive X11 window"},
})

// xdotRevisions is the parameterized family of revisioned xdot dialects.
var xdotRevisions = []string{"1.0", "1.2", "1.4", "1.5", "1.6", "1.7"}

// serializerTable lists the dot-family text formats, including one entry per
// revisioned xdot dialect.
var serializerTable = func() map[string]viz.Format {
	formats := []viz.Format{
		{ID: "canon", ShortName: "Canonical DOT", Description: "prettified DOT source"},
		{ID: "dot", ShortName: "DOT source", Description: "DOT graph description"},
		{ID: "gv", ShortName: "DOT source", Description: "DOT graph description (gv alias)"},
		{ID: "xdot", ShortName: "Extended DOT", Description: "DOT with drawing directives"},
	}
	for _, rev := range xdotRevisions {
		formats = append(formats, viz.Format{
			ID:          "xdot" + rev,
			ShortName:   "Extended DOT " + rev,
			Description: fmt.Sprintf("DOT with drawing directives, xdot dialect %s", rev),
		})
	}
	return makeTable(formats)
}()

// makeTable indexes descriptors by ID. Panics on duplicates, which would be
// a programming error in the static tables above.
func makeTable(formats []viz.Format) map[string]viz.Format {
	table := make(map[string]viz.Format, len(formats))
	for _, f := range formats {
		if _, dup := table[f.ID]; dup {
			panic("duplicate format ID " + f.ID)
		}
		table[f.ID] = f
	}
	return table
}

// tableFor returns the static table for a kind, nil for unknown kinds.
func tableFor(kind viz.Kind) map[string]viz.Format {
	switch kind {
	case viz.KindRenderer:
		return rendererTable
	case viz.KindViewer:
		return viewerTable
	case viz.KindSerializer:
		return serializerTable
	default:
		return nil
	}
}

// cloneTable returns a caller-owned copy so the static tables stay immutable.
func cloneTable(table map[string]viz.Format) map[string]viz.Format {
	if table == nil {
		return nil
	}
	return maps.Clone(table)
}

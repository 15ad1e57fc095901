package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotkit/pkg/viz"
)

// viewOpts holds the command-line flags for the view command.
type viewOpts struct {
	format   string // compound format token for rendering before display
	provider string // provider ID; empty tries the configured default first
	engine   string // layout engine override
	name     string // graph name in the generated description
	file     bool   // treat the argument as an already-rendered artifact
}

// viewCommand creates the view command for displaying graphs.
func (c *CLI) viewCommand() *cobra.Command {
	var opts viewOpts

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Render a graph and open the result",
		Long: `View renders a graph file and displays the result. Windowing formats
(xlib, gtk, x11) open a native window driven by the layout engine; data
formats are written to a temporary file and opened with the desktop
environment. With --file the argument is opened as an existing artifact.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "format token: base[:engine[:subformatter]]")
	cmd.Flags().StringVarP(&opts.provider, "provider", "p", "", "provider ID")
	cmd.Flags().StringVar(&opts.engine, "engine", "", "layout engine")
	cmd.Flags().StringVar(&opts.name, "name", "", "graph name in the generated description")
	cmd.Flags().BoolVar(&opts.file, "file", false, "open an existing artifact instead of a graph")

	return cmd
}

// runView resolves a viewer and displays either a rendered graph or an
// existing artifact.
func (c *CLI) runView(ctx context.Context, input string, opts *viewOpts) error {
	r := newRegistry()
	impl, err := c.resolveImpl(r, opts.provider, viz.KindViewer, opts.format)
	if err != nil {
		return err
	}
	viewer, ok := impl.(viz.Viewer)
	if !ok {
		return fmt.Errorf("provider %q returned a non-viewer for %q", impl.Info().ProviderID, opts.format)
	}

	if opts.file {
		if _, err := os.Stat(input); err != nil {
			return err
		}
		return viewer.ViewFile(ctx, input)
	}

	g, _, err := loadGraph(input)
	if err != nil {
		return err
	}
	c.Logger.Debugf("Viewing graph: %d nodes, %d edges", len(g.Nodes()), len(g.Edges()))

	spinner := newSpinnerWithContext(ctx, "Opening viewer...")
	spinner.Start()
	err = viewer.View(ctx, g, viz.RenderOptions{Name: opts.name, Layout: opts.engine})
	spinner.Stop()
	if err != nil {
		return err
	}
	printSuccess("Opened %s", input)
	return nil
}

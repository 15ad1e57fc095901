package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotkit/pkg/errors"
	"github.com/matzehuels/dotkit/pkg/graph"
	"github.com/matzehuels/dotkit/pkg/viz"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output   string // output file; stdout when empty
	format   string // serializer format token (dot, canon, json, ...)
	provider string // provider ID; empty tries the configured default first
	name     string // graph name in the generated description
	decode   bool   // parse serialized text back into a JSON graph file
}

// exportCommand creates the export command for converting graphs to and
// from textual descriptions.
func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Convert a graph to a textual description",
		Long: `Export encodes a graph file into a serializer format such as DOT or the
JSON interchange format. With --decode the direction is reversed: the
input is serialized text and the output is a JSON graph file. Not every
serializer supports decoding; DOT export is one-way.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "serializer format (dot, canon, json)")
	cmd.Flags().StringVarP(&opts.provider, "provider", "p", "", "provider ID")
	cmd.Flags().StringVar(&opts.name, "name", "", "graph name in the generated description")
	cmd.Flags().BoolVar(&opts.decode, "decode", false, "parse serialized text into a JSON graph")

	return cmd
}

// runExport resolves a serializer and converts in the requested direction.
func (c *CLI) runExport(ctx context.Context, input string, opts *exportOpts) error {
	r := newRegistry()
	impl, err := c.resolveImpl(r, opts.provider, viz.KindSerializer, opts.format)
	if err != nil {
		return err
	}
	s, ok := impl.(viz.Serializer)
	if !ok {
		return fmt.Errorf("provider %q returned a non-serializer for %q", impl.Info().ProviderID, opts.format)
	}

	if opts.decode {
		return c.runDecode(s, input, opts.output)
	}
	return c.runEncode(s, input, opts)
}

// runEncode converts a JSON graph file into serialized text.
func (c *CLI) runEncode(s viz.Serializer, input string, opts *exportOpts) error {
	if !s.CanEncode() {
		handle := s.Info()
		return errors.New(errors.ErrCodeUnsupportedOperation,
			"%s/%s does not support encoding", handle.ProviderID, handle.FormatID)
	}

	g, _, err := loadGraph(input)
	if err != nil {
		return err
	}

	text, err := s.Encode(g, viz.RenderOptions{Name: opts.name})
	if err != nil {
		return err
	}
	return writeText(text, opts.output)
}

// runDecode parses serialized text back into a JSON graph file.
func (c *CLI) runDecode(s viz.Serializer, input, output string) error {
	if !s.CanDecode() {
		handle := s.Info()
		return errors.New(errors.ErrCodeUnsupportedOperation,
			"%s/%s does not support decoding", handle.ProviderID, handle.FormatID)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	g, err := s.Decode(string(data))
	if err != nil {
		return err
	}

	out, err := graph.Marshal(g)
	if err != nil {
		return err
	}
	return writeText(string(out), output)
}

// writeText writes text to the output file, or stdout when empty.
func writeText(text, output string) error {
	if output == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(output, []byte(text), 0644); err != nil {
		return err
	}
	printFile(output)
	return nil
}

package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotkit/pkg/viz"
)

// formatsCommand creates the formats command for listing provider tables.
func (c *CLI) formatsCommand() *cobra.Command {
	var providerID, kindName string

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List providers and their supported formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := kindsFor(kindName)
			if err != nil {
				return err
			}
			return runFormats(newRegistry(), providerID, kinds)
		},
	}

	cmd.Flags().StringVarP(&providerID, "provider", "p", "", "limit to one provider ID")
	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "limit to one kind: renderer, viewer, serializer")

	return cmd
}

// allKinds is the display order for format tables.
var allKinds = []viz.Kind{viz.KindRenderer, viz.KindViewer, viz.KindSerializer}

// kindsFor parses the --kind flag into the kinds to display.
func kindsFor(name string) ([]viz.Kind, error) {
	if name == "" {
		return allKinds, nil
	}
	for _, k := range allKinds {
		if k.String() == name {
			return []viz.Kind{k}, nil
		}
	}
	return nil, fmt.Errorf("unknown kind: %s (must be 'renderer', 'viewer', or 'serializer')", name)
}

// runFormats prints the format tables of the selected providers.
func runFormats(r *viz.Registry, providerID string, kinds []viz.Kind) error {
	ids := r.Providers()
	if providerID != "" {
		if _, err := r.Resolve(providerID); err != nil {
			return err
		}
		ids = []string{providerID}
	}

	for _, id := range ids {
		p, err := r.Resolve(id)
		if err != nil {
			return err
		}
		printProviderFormats(p, kinds)
	}
	return nil
}

// printProviderFormats prints one provider's tables, one line per format.
func printProviderFormats(p viz.Provider, kinds []viz.Kind) {
	fmt.Println(StyleTitle.Render(p.ID()))

	for _, kind := range kinds {
		formats := p.SupportedFormats(kind)
		if formats == nil {
			continue
		}
		fmt.Println("  " + StyleHighlight.Render(kind.String()))

		ids := make([]string, 0, len(formats))
		for id := range formats {
			ids = append(ids, id)
		}
		slices.Sort(ids)

		for _, id := range ids {
			f := formats[id]
			mode := "text"
			if f.Binary {
				mode = "binary"
			}
			fmt.Printf("    %s  %s %s\n",
				StyleValue.Render(fmt.Sprintf("%-12s", f.ID)),
				StyleDim.Render(fmt.Sprintf("%-6s", mode)),
				f.ShortName)
		}
	}
	printNewline()
}

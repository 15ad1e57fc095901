package cli

import (
	"strings"

	"github.com/matzehuels/dotkit/pkg/errors"
	"github.com/matzehuels/dotkit/pkg/viz"
	"github.com/matzehuels/dotkit/pkg/viz/embedded"
	"github.com/matzehuels/dotkit/pkg/viz/graphviz"
	"github.com/matzehuels/dotkit/pkg/viz/jsongraph"
)

// newRegistry builds the provider registry used by all commands.
func newRegistry() *viz.Registry {
	r := viz.NewRegistry()
	r.Register(graphviz.New())
	r.Register(embedded.New())
	r.Register(jsongraph.New())
	return r
}

// resolveImpl finds an implementation for (kind, token). When providerID is
// set only that provider is consulted; otherwise the configured default
// provider is tried first and the remaining providers in registry order.
func (c *CLI) resolveImpl(r *viz.Registry, providerID string, kind viz.Kind, token string) (viz.Implementation, error) {
	if providerID != "" {
		impl, ok, err := r.Implementation(providerID, kind, token)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.New(errors.ErrCodeUnsupportedFormat,
				"provider %q has no %s for format %q", providerID, kind, displayToken(token))
		}
		return impl, nil
	}

	order := providerOrder(r, c.Config.Defaults.Provider)
	for _, id := range order {
		impl, ok, err := r.Implementation(id, kind, token)
		if err != nil {
			return nil, err
		}
		if ok {
			return impl, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnsupportedFormat,
		"no provider offers a %s for format %q (tried %s)", kind, displayToken(token), strings.Join(order, ", "))
}

// providerOrder returns all registered provider IDs with preferred first.
func providerOrder(r *viz.Registry, preferred string) []string {
	ids := r.Providers()
	if preferred == "" {
		return ids
	}
	order := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == preferred {
			order = append([]string{id}, order...)
		} else {
			order = append(order, id)
		}
	}
	return order
}

// displayToken formats a token for error messages; empty means the default.
func displayToken(token string) string {
	if token == "" {
		return "(default)"
	}
	return token
}

// engineOf extracts the engine segment from a format token, used for cache
// keys. Malformed tokens return empty; resolution reports them properly.
func engineOf(token string) string {
	if token == "" {
		return ""
	}
	spec, err := viz.ParseFormat(token)
	if err != nil {
		return ""
	}
	return spec.Engine
}

// formatBase extracts the base format from a token, falling back to the
// token itself.
func formatBase(token string) string {
	spec, err := viz.ParseFormat(token)
	if err != nil {
		return token
	}
	return spec.Base
}

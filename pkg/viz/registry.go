package viz

import (
	"slices"
	"sync"

	"github.com/matzehuels/dotkit/pkg/errors"
)

// Registry maps provider IDs to providers. It holds no other state.
// Lookups are safe under concurrent use; registration is expected to happen
// once at startup, before lookups begin.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds a provider under its ID. Registering the same ID twice
// replaces the earlier provider.
func (r *Registry) Register(p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.ID()] = p
}

// Resolve returns the provider registered under id, failing with
// UNKNOWN_PROVIDER when none is.
func (r *Registry) Resolve(id string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownProvider, "no provider registered under %q", id)
	}
	return p, nil
}

// Providers returns the registered provider IDs in sorted order.
func (r *Registry) Providers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.providers))
	for id := range r.providers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Implementation resolves a provider and requests an implementation for
// (kind, token) in one step. With an empty token the provider's fixed
// default for the kind is used.
func (r *Registry) Implementation(providerID string, kind Kind, token string) (Implementation, bool, error) {
	p, err := r.Resolve(providerID)
	if err != nil {
		return nil, false, err
	}
	if token == "" {
		impl, ok := p.Implementation(kind)
		return impl, ok, nil
	}
	return p.ImplementationFor(kind, token)
}

// Default is the process-wide registry. It is populated once by the CLI
// entry point (explicit Register calls, before any command runs) and treated
// as immutable afterwards. Library users who need isolation should create
// their own Registry instead.
var Default = NewRegistry()

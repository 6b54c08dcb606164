package providers

import (
	"fmt"
	"sync"
)

// Registry manages all available gateways
type Registry struct {
	gateways map[string]Gateway
	mu       sync.RWMutex
}

// NewRegistry creates a new gateway registry
func NewRegistry() *Registry {
	return &Registry{
		gateways: make(map[string]Gateway),
	}
}

// Register adds a gateway to the registry
func (r *Registry) Register(id string, gw Gateway) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gateways[id] = gw
}

// Get retrieves a gateway by ID, or an error when none is registered
// under that name.
func (r *Registry) Get(id string) (Gateway, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	gw, ok := r.gateways[id]
	if !ok {
		return nil, fmt.Errorf("unknown gateway %q", id)
	}
	return gw, nil
}

// List returns all registered gateway IDs
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.gateways))
	for id := range r.gateways {
		ids = append(ids, id)
	}
	return ids
}


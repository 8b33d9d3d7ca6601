package registry

import "sync"

// Registry is an ordered, append-only collection of tool definitions.
// Construct one per process (or per test) with New and pass it to every
// registration and query site; there is no implicit global instance.
type Registry struct {
	defs []Definition
	mu   sync.RWMutex
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register appends a definition to the registry. Duplicate names are not
// rejected: all duplicates are retained in registration order, and Get
// resolves to the most recently registered one. Callers wanting strict
// uniqueness must check Get before registering.
func (r *Registry) Register(def Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs = append(r.defs, def)
}

// All returns every registered definition in registration order.
func (r *Registry) All() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// ByCategory returns the definitions whose Category exactly equals cat,
// preserving registration order. No match yields an empty slice, not an error.
func (r *Registry) ByCategory(cat string) []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Definition
	for _, def := range r.defs {
		if def.Category == cat {
			out = append(out, def)
		}
	}
	return out
}

// Get returns the definition registered under name. With duplicate
// registrations the last one wins.
func (r *Registry) Get(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.defs) - 1; i >= 0; i-- {
		if r.defs[i].Name == name {
			return r.defs[i], true
		}
	}
	return Definition{}, false
}

// Names returns all registered tool names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.defs))
	for _, def := range r.defs {
		names = append(names, def.Name)
	}
	return names
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

package menu

import "fmt"

// Registry maps menu choices and aliases to Entry definitions while keeping
// the original display order.
type Registry struct {
	ordered []*Entry          // entries in display order
	entries map[string]*Entry // canonical choice → entry
	aliases map[string]string // alias → canonical choice
}

// NewRegistry creates a Registry populated with the given entries.
//
// Precondition: No two entries may share a canonical choice or alias.
// Postcondition: Returns a Registry or an error on choice/alias collisions.
func NewRegistry(entries []Entry) (*Registry, error) {
	r := &Registry{
		ordered: make([]*Entry, 0, len(entries)),
		entries: make(map[string]*Entry, len(entries)),
		aliases: make(map[string]string),
	}

	for i := range entries {
		e := &entries[i]
		if _, exists := r.entries[e.Choice]; exists {
			return nil, fmt.Errorf("duplicate menu choice: %q", e.Choice)
		}
		if _, exists := r.aliases[e.Choice]; exists {
			return nil, fmt.Errorf("menu choice %q conflicts with an existing alias", e.Choice)
		}
		r.entries[e.Choice] = e
		r.ordered = append(r.ordered, e)

		for _, alias := range e.Aliases {
			if _, exists := r.entries[alias]; exists {
				return nil, fmt.Errorf("alias %q conflicts with menu choice %q", alias, alias)
			}
			if existing, exists := r.aliases[alias]; exists {
				return nil, fmt.Errorf("duplicate alias %q: used by %q and %q", alias, existing, e.Choice)
			}
			r.aliases[alias] = e.Choice
		}
	}

	return r, nil
}

// DefaultRegistry creates a Registry with all built-in menu entries.
//
// Postcondition: Returns a Registry with all built-in entries registered.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinEntries())
	if err != nil {
		panic(fmt.Sprintf("building default registry: %v", err))
	}
	return r
}

// Resolve looks up an entry by choice token or alias.
//
// Postcondition: Returns (entry, true) if found, or (nil, false).
func (r *Registry) Resolve(input string) (*Entry, bool) {
	if e, ok := r.entries[input]; ok {
		return e, true
	}
	if canonical, ok := r.aliases[input]; ok {
		return r.entries[canonical], true
	}
	return nil, false
}

// Entries returns all registered entries in display order.
func (r *Registry) Entries() []*Entry {
	return r.ordered
}

package menu

import "strings"

// Registry is an ordered, name-keyed collection of menu items. Name
// comparison is either exact or case-folded; the choice is fixed when the
// registry is built and cannot change once items exist.
type Registry struct {
	caseSensitive bool
	order         []string
	items         map[string]*Item
}

// NewRegistry builds an empty registry with the given name comparison.
func NewRegistry(caseSensitive bool) *Registry {
	return &Registry{
		caseSensitive: caseSensitive,
		items:         make(map[string]*Item),
	}
}

// CaseSensitive reports the comparison the registry was built with.
func (r *Registry) CaseSensitive() bool {
	return r.caseSensitive
}

func (r *Registry) key(name string) string {
	if r.caseSensitive {
		return name
	}
	return strings.ToLower(name)
}

// Set inserts an item under its name, replacing any existing entry for the
// same key. Replacement keeps the original insertion position.
func (r *Registry) Set(item *Item) {
	key := r.key(item.name)
	if _, ok := r.items[key]; !ok {
		r.order = append(r.order, key)
	}
	r.items[key] = item
}

// Get returns the item stored under name.
func (r *Registry) Get(name string) (*Item, bool) {
	item, ok := r.items[r.key(name)]
	return item, ok
}

// Has reports whether an item is stored under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.items[r.key(name)]
	return ok
}

// Delete removes the entry for name and reports whether one existed.
func (r *Registry) Delete(name string) bool {
	key := r.key(name)
	if _, ok := r.items[key]; !ok {
		return false
	}
	delete(r.items, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Len reports the number of live entries.
func (r *Registry) Len() int {
	return len(r.items)
}

// Names returns the display names of all entries in insertion order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.order))
	for _, key := range r.order {
		names = append(names, r.items[key].name)
	}
	return names
}

// Items returns all entries in insertion order.
func (r *Registry) Items() []*Item {
	items := make([]*Item, 0, len(r.order))
	for _, key := range r.order {
		items = append(items, r.items[key])
	}
	return items
}

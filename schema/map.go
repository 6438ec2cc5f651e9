package schema

import (
	"fmt"

	"github.com/go-clux/clux"
	"github.com/go-clux/clux/internal/hashmap"
)

// Map binds absolute schema $id strings to their root schema node. It
// backs $ref resolution for references that are not local ("#...")
// pointers. The zero value is not usable; use NewMap.
type Map struct {
	h *hashmap.Map
}

// NewMap creates an empty registry.
func NewMap() *Map {
	return &Map{h: hashmap.New(8)}
}

// Register binds id to root. Registering the same id to the same root
// again is a no-op; binding it to a different root returns
// ErrIDConflict.
func (m *Map) Register(id string, root *clux.Node) error {
	if id == "" {
		return ErrIDEmpty
	}
	if existing, ok := m.h.Search(id).(*clux.Node); ok && existing != root {
		return fmt.Errorf("%w: %q", ErrIDConflict, id)
	}
	m.h.Upsert(id, root)
	return nil
}

// Lookup returns the root schema bound to id, or nil if absent.
func (m *Map) Lookup(id string) *clux.Node {
	v, _ := m.h.Search(id).(*clux.Node)
	return v
}

// Size returns the number of registered ids.
func (m *Map) Size() int {
	return m.h.Size()
}

// Package sketch builds Onshape sketch features: entity identifier
// allocation, the four supported primitives, their constraint sets,
// and assembly into the BTMSketch-151 payload shape.
package sketch

import "fmt"

// EntityID identifies a sketch entity within one feature's entity
// namespace. IDs are never reused within a feature.
type EntityID string

func (id EntityID) String() string { return string(id) }

// Sub derives the identifier of a sub-entity (a side, an endpoint).
func (id EntityID) Sub(role string) EntityID {
	return EntityID(string(id) + "." + role)
}

// Scope allocates entity identifiers for one feature build. Allocation
// is deterministic: the same sequence of Allocate calls always yields
// the same identifiers, which is what lets a later build reconstruct
// the IDs of entities created by an earlier one without querying the
// service. A Scope carries no shared state across features; concurrent
// builds of independent features need no locking.
type Scope struct {
	counter int
	byRole  map[string]EntityID
}

// NewScope returns an empty allocation scope.
func NewScope() *Scope {
	return &Scope{byRole: make(map[string]EntityID)}
}

// Allocate returns the next identifier for the given logical name,
// e.g. Allocate("rect") -> "rect.1". Allocation cannot fail.
func (s *Scope) Allocate(logicalName string) EntityID {
	s.counter++
	return EntityID(fmt.Sprintf("%s.%d", logicalName, s.counter))
}

// Bind records a caller-friendly logical name ("rectangle side: right")
// for an allocated identifier.
func (s *Scope) Bind(logicalName string, id EntityID) {
	s.byRole[logicalName] = id
}

// Lookup returns the identifier bound to a logical name.
func (s *Scope) Lookup(logicalName string) (EntityID, bool) {
	id, ok := s.byRole[logicalName]
	return id, ok
}

// RoleID reconstructs the identifier a Scope allocated for the nth
// primitive of a kind, without access to the original Scope. ordinal
// counts from 1 across all primitives in the feature, matching the
// scope counter. An empty role names the primitive itself.
func RoleID(kind string, ordinal int, role string) EntityID {
	id := EntityID(fmt.Sprintf("%s.%d", kind, ordinal))
	if role == "" {
		return id
	}
	return id.Sub(role)
}

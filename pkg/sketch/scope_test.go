package sketch

import "testing"

func TestScopeAllocateDeterministic(t *testing.T) {
	// Two scopes replaying the same request sequence must agree;
	// cross-feature references depend on it.
	a, b := NewScope(), NewScope()
	names := []string{"rect", "circle", "rect", "line"}
	for _, name := range names {
		idA, idB := a.Allocate(name), b.Allocate(name)
		if idA != idB {
			t.Errorf("Allocate(%q) diverged: %q vs %q", name, idA, idB)
		}
	}
}

func TestScopeAllocateSequence(t *testing.T) {
	s := NewScope()
	want := []EntityID{"rect.1", "circle.2", "rect.3"}
	for i, name := range []string{"rect", "circle", "rect"} {
		if id := s.Allocate(name); id != want[i] {
			t.Errorf("allocation %d = %q, want %q", i, id, want[i])
		}
	}
}

func TestEntityIDSub(t *testing.T) {
	id := EntityID("rect.1")
	if got := id.Sub("right"); got != "rect.1.right" {
		t.Errorf("Sub = %q, want %q", got, "rect.1.right")
	}
	if got := id.Sub("right").Sub("start"); got != "rect.1.right.start" {
		t.Errorf("nested Sub = %q, want %q", got, "rect.1.right.start")
	}
}

func TestRoleIDMatchesScope(t *testing.T) {
	s := NewScope()
	base := s.Allocate("rect")
	if got := RoleID("rect", 1, ""); got != base {
		t.Errorf("RoleID = %q, want %q", got, base)
	}
	if got := RoleID("rect", 1, "right"); got != base.Sub("right") {
		t.Errorf("RoleID with role = %q, want %q", got, base.Sub("right"))
	}
}

func TestScopeBindLookup(t *testing.T) {
	s := NewScope()
	id := s.Allocate("rect")
	s.Bind("rect.1:bottom", id.Sub("bottom"))

	got, ok := s.Lookup("rect.1:bottom")
	if !ok {
		t.Fatal("Lookup missed a bound name")
	}
	if got != "rect.1.bottom" {
		t.Errorf("Lookup = %q, want %q", got, "rect.1.bottom")
	}
	if _, ok := s.Lookup("nope"); ok {
		t.Error("Lookup found an unbound name")
	}
}

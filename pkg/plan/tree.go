// Package plan tracks the feature tree as payloads are submitted: the
// order features were created in, the service-assigned feature IDs,
// and which earlier features each one depends on. Later builds consult
// the tree to address geometry created by earlier ones, and validation
// catches dangling references before a payload reaches the service.
package plan

import "fmt"

// Kind classifies a feature for validation purposes.
type Kind int

const (
	KindSketch Kind = iota
	KindSolid
	KindAssembly
)

func (k Kind) String() string {
	switch k {
	case KindSketch:
		return "sketch"
	case KindSolid:
		return "solid"
	case KindAssembly:
		return "assembly"
	default:
		return "unknown"
	}
}

// Entry is one submitted feature.
type Entry struct {
	Name      string
	FeatureID string
	Kind      Kind
	// DependsOn lists the feature IDs of earlier features this one
	// references (source sketches, mate connectors, pattern seeds).
	DependsOn []string
}

// Tree is the ordered record of one part studio's features. It is
// append-only; the service owns reordering and deletion.
type Tree struct {
	entries   []Entry
	nameIndex map[string]int
	idIndex   map[string]int
}

// NewTree returns an empty feature tree.
func NewTree() *Tree {
	return &Tree{
		nameIndex: make(map[string]int),
		idIndex:   make(map[string]int),
	}
}

// Record appends a feature after successful submission.
func (t *Tree) Record(e Entry) {
	t.entries = append(t.entries, e)
	idx := len(t.entries) - 1
	if e.Name != "" {
		t.nameIndex[e.Name] = idx
	}
	if e.FeatureID != "" {
		t.idIndex[e.FeatureID] = idx
	}
}

// Lookup returns the entry with the given user-assigned name.
func (t *Tree) Lookup(name string) (Entry, bool) {
	idx, ok := t.nameIndex[name]
	if !ok {
		return Entry{}, false
	}
	return t.entries[idx], true
}

// FeatureID returns the service-assigned ID behind a feature name,
// the piece a later build needs to reference geometry from it.
func (t *Tree) FeatureID(name string) (string, bool) {
	e, ok := t.Lookup(name)
	if !ok {
		return "", false
	}
	return e.FeatureID, true
}

// Get returns the entry with the given feature ID.
func (t *Tree) Get(featureID string) (Entry, bool) {
	idx, ok := t.idIndex[featureID]
	if !ok {
		return Entry{}, false
	}
	return t.entries[idx], true
}

// Entries returns the features in submission order.
func (t *Tree) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of recorded features.
func (t *Tree) Len() int { return len(t.entries) }

// Finding is one validation problem.
type Finding struct {
	FeatureID string
	Message   string
}

func (f Finding) Error() string {
	if f.FeatureID == "" {
		return f.Message
	}
	return fmt.Sprintf("feature %s: %s", f.FeatureID, f.Message)
}

// Validate checks tree consistency: every dependency must name a
// feature recorded earlier in the tree, and names must be unique. An
// empty result means the tree is consistent. Read-only.
func Validate(t *Tree) []Finding {
	var findings []Finding

	// Index every ID up front so a forward reference is reported as
	// "later", not "unknown".
	seen := make(map[string]int, len(t.entries))
	for i, e := range t.entries {
		if e.FeatureID != "" {
			seen[e.FeatureID] = i
		}
	}
	names := make(map[string]string, len(t.entries))
	for i, e := range t.entries {
		if e.FeatureID == "" {
			findings = append(findings, Finding{
				Message: fmt.Sprintf("entry %d (%q) has no feature ID", i, e.Name),
			})
			continue
		}
		if prior, dup := names[e.Name]; dup && e.Name != "" {
			findings = append(findings, Finding{
				FeatureID: e.FeatureID,
				Message:   fmt.Sprintf("name %q already used by feature %s", e.Name, prior),
			})
		}
		names[e.Name] = e.FeatureID

		for _, dep := range e.DependsOn {
			at, ok := seen[dep]
			if !ok {
				findings = append(findings, Finding{
					FeatureID: e.FeatureID,
					Message:   fmt.Sprintf("depends on unknown feature %s", dep),
				})
				continue
			}
			if at >= i {
				findings = append(findings, Finding{
					FeatureID: e.FeatureID,
					Message:   fmt.Sprintf("depends on later feature %s", dep),
				})
			}
		}
	}
	return findings
}

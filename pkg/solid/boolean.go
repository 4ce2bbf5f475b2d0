package solid

import (
	"fmt"

	"github.com/chamferlabs/ftree/pkg/wire"
)

// BooleanType selects the body combination operation.
type BooleanType int

const (
	BooleanUnion BooleanType = iota
	BooleanSubtract
	BooleanIntersect
)

func (t BooleanType) String() string {
	switch t {
	case BooleanUnion:
		return "UNION"
	case BooleanSubtract:
		return "SUBTRACT"
	case BooleanIntersect:
		return "INTERSECT"
	default:
		return "unknown"
	}
}

// Boolean combines bodies. Tools are the bodies being combined into,
// subtracted from, or intersected with the Targets; targets are
// required for SUBTRACT and INTERSECT. Caller order is preserved
// exactly — for SUBTRACT the first target is the base the remaining
// tools are cut from.
type Boolean struct {
	Name    string
	Kind    BooleanType
	Tools   []wire.Query
	Targets []wire.Query
}

// Build assembles the boolean payload.
func (b Boolean) Build() (*wire.FeatureDefinitionCall, error) {
	if len(b.Tools) == 0 {
		return nil, fmt.Errorf("%w: boolean needs at least one tool body", ErrMissingReference)
	}
	if (b.Kind == BooleanSubtract || b.Kind == BooleanIntersect) && len(b.Targets) == 0 {
		return nil, fmt.Errorf("%w: %s needs at least one target body", ErrMissingReference, b.Kind)
	}

	params := []wire.Parameter{
		wire.Enum("booleanOperationType", "BooleanOperationType", b.Kind.String()),
		wire.QueryList("tools", b.Tools...),
	}
	if len(b.Targets) > 0 {
		params = append(params, wire.QueryList("targets", b.Targets...))
	}
	return wire.SolidFeature("boolean", b.Name, params), nil
}

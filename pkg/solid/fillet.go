package solid

import (
	"fmt"

	"github.com/chamferlabs/ftree/pkg/measure"
	"github.com/chamferlabs/ftree/pkg/wire"
)

// Fillet rounds a set of edges. Edges names the geometry: plain
// deterministic identifiers, encoded query tokens, or both.
type Fillet struct {
	Name   string
	Edges  []wire.Query
	Radius measure.Length

	// MinRadius overrides the degeneracy floor (meters). Zero keeps
	// DefaultMinDimension.
	MinRadius float64
}

// Build assembles the fillet payload.
func (f Fillet) Build() (*wire.FeatureDefinitionCall, error) {
	if len(f.Edges) == 0 {
		return nil, fmt.Errorf("%w: fillet needs at least one edge", ErrMissingReference)
	}
	radius, err := f.Radius.Normalize()
	if err != nil {
		return nil, err
	}
	if err := checkDimension(f.Radius, radius, f.MinRadius); err != nil {
		return nil, fmt.Errorf("fillet %q: radius %s: %w", f.Name, radius.Expression, err)
	}

	return wire.SolidFeature("fillet", f.Name, []wire.Parameter{
		wire.QueryList("entities", f.Edges...),
		wire.Quantity("radius", radius.Expression, radius.Value),
	}), nil
}

// ChamferType selects the chamfer cross-section geometry.
type ChamferType int

const (
	ChamferEqualOffsets ChamferType = iota
	ChamferTwoOffsets
	ChamferOffsetAngle
)

func (t ChamferType) String() string {
	switch t {
	case ChamferEqualOffsets:
		return "EQUAL_OFFSETS"
	case ChamferTwoOffsets:
		return "TWO_OFFSETS"
	case ChamferOffsetAngle:
		return "OFFSET_ANGLE"
	default:
		return "unknown"
	}
}

// Chamfer bevels a set of edges.
type Chamfer struct {
	Name     string
	Edges    []wire.Query
	Distance measure.Length
	Kind     ChamferType

	// MinDistance overrides the degeneracy floor (meters).
	MinDistance float64
}

// Build assembles the chamfer payload.
func (c Chamfer) Build() (*wire.FeatureDefinitionCall, error) {
	if len(c.Edges) == 0 {
		return nil, fmt.Errorf("%w: chamfer needs at least one edge", ErrMissingReference)
	}
	distance, err := c.Distance.Normalize()
	if err != nil {
		return nil, err
	}
	if err := checkDimension(c.Distance, distance, c.MinDistance); err != nil {
		return nil, fmt.Errorf("chamfer %q: width %s: %w", c.Name, distance.Expression, err)
	}

	return wire.SolidFeature("chamfer", c.Name, []wire.Parameter{
		wire.QueryList("entities", c.Edges...),
		wire.Enum("chamferType", "ChamferType", c.Kind.String()),
		wire.Quantity("width", distance.Expression, distance.Value),
	}), nil
}

// Package solid builds the solid-modeling feature payloads: extrude,
// revolve, thicken, fillet, chamfer, boolean, and linear/circular
// patterns. Builders are plain structs; Build validates locally
// (degenerate dimensions, instance counts) and returns a complete
// payload or nothing, never a partial one.
package solid

import (
	"errors"

	"github.com/chamferlabs/ftree/pkg/measure"
	"github.com/chamferlabs/ftree/pkg/wire"
)

// ErrDegenerateDimension is returned for radii/distances below the
// configured minimum; the remote solver rejects those with a generic
// failure code, so they are caught before any round trip.
var ErrDegenerateDimension = errors.New("solid: dimension below degenerate-geometry minimum")

// ErrInvalidCount is returned for pattern instance counts below 2.
var ErrInvalidCount = errors.New("solid: pattern instance count must be at least 2")

// ErrMissingReference is returned when a builder lacks the geometry
// it operates on.
var ErrMissingReference = errors.New("solid: missing geometry reference")

// DefaultMinDimension is the linear-dimension degeneracy floor in
// meters (0.005 in), applied when a builder's override is zero.
const DefaultMinDimension = 0.005 * measure.MetersPerInch

// OpType selects how a solid feature's result merges with existing
// bodies (the NewBodyOperationType enum).
type OpType int

const (
	OpNew OpType = iota
	OpAdd
	OpRemove
	OpIntersect
)

func (t OpType) String() string {
	switch t {
	case OpNew:
		return "NEW"
	case OpAdd:
		return "ADD"
	case OpRemove:
		return "REMOVE"
	case OpIntersect:
		return "INTERSECT"
	default:
		return "unknown"
	}
}

// Axis is a model-space axis selector for revolve and pattern
// directions, resolved through the standard plane that owns the axis
// edge: X lies in the Right plane, Y in Top, Z in Front.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "unknown"
	}
}

// plane returns the standard-plane tag owning the axis edge.
func (a Axis) plane() string {
	switch a {
	case AxisX:
		return "RIGHT"
	case AxisY:
		return "TOP"
	default:
		return "FRONT"
	}
}

// axisQuery selects the default edge of the plane owning an axis.
func axisQuery(parameterID string, a Axis) wire.QueryListParameter {
	return wire.QueryList(parameterID,
		wire.Script(`query = qCreatedBy(makeId("`+a.plane()+`"), EntityType.EDGE);`),
	)
}

// checkDimension rejects literal dimensions below min. Variable
// references defer to the remote variable table and pass through.
func checkDimension(l measure.Length, q measure.Quantity, min float64) error {
	if min <= 0 {
		min = DefaultMinDimension
	}
	if !l.IsVariable() && q.Value < min {
		return ErrDegenerateDimension
	}
	return nil
}

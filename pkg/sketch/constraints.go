package sketch

import (
	"errors"
	"fmt"

	"github.com/chamferlabs/ftree/pkg/measure"
	"github.com/chamferlabs/ftree/pkg/wire"
)

// ErrUnsupportedPrimitive is returned for a primitive or dimension
// binding outside the enumerated constraint policies.
var ErrUnsupportedPrimitive = errors.New("sketch: unsupported primitive")

// Constraint type strings accepted by the sketch solver.
const (
	ConstraintCoincident    = "COINCIDENT"
	ConstraintPerpendicular = "PERPENDICULAR"
	ConstraintParallel      = "PARALLEL"
	ConstraintHorizontal    = "HORIZONTAL"
	ConstraintVertical      = "VERTICAL"
	ConstraintLength        = "LENGTH"
	ConstraintRadius        = "RADIUS"
)

// coincident pins two endpoints together.
func coincident(id EntityID, pointA, pointB EntityID) wire.Constraint {
	return wire.NewConstraint(ConstraintCoincident, string(id),
		wire.String("localFirst", string(pointA)),
		wire.String("localSecond", string(pointB)),
	)
}

// perpendicular pins two lines orthogonal.
func perpendicular(id EntityID, lineA, lineB EntityID) wire.Constraint {
	return wire.NewConstraint(ConstraintPerpendicular, string(id),
		wire.String("localFirst", string(lineA)),
		wire.String("localSecond", string(lineB)),
	)
}

// horizontal pins a line to the sketch X axis.
func horizontal(id EntityID, line EntityID) wire.Constraint {
	return wire.NewConstraint(ConstraintHorizontal, string(id),
		wire.String("localFirst", string(line)),
	)
}

// vertical pins a line to the sketch Y axis.
func vertical(id EntityID, line EntityID) wire.Constraint {
	return wire.NewConstraint(ConstraintVertical, string(id),
		wire.String("localFirst", string(line)),
	)
}

// length binds a dimensional constraint to a line. The parameter
// order (entity, direction, quantity, alignment) replicates accepted
// payloads; reordering is rejected without diagnostics.
func length(id EntityID, line EntityID, dim measure.Quantity) wire.Constraint {
	return wire.NewConstraint(ConstraintLength, string(id),
		wire.String("localFirst", string(line)),
		wire.Choice("direction", "DimensionDirection", "MINIMUM"),
		wire.Dimension("length", dim.Expression),
		wire.Choice("alignment", "DimensionAlignment", "ALIGNED"),
	)
}

// radius binds a radial dimension to a circle or arc entity.
func radius(id EntityID, curve EntityID, dim measure.Quantity) wire.Constraint {
	return wire.NewConstraint(ConstraintRadius, string(id),
		wire.String("localFirst", string(curve)),
		wire.Dimension("radius", dim.Expression),
	)
}

// rectangleConstraints emits the minimal set that fully constrains a
// rectangle once anchored: 4 coincidences at shared corners, 2
// perpendicularity constraints on adjacent side pairs, 1 horizontal
// on the bottom side, then width and height dimensions. The solver is
// order-sensitive during incremental edits, so the emission order is
// fixed: coincidences, orthogonality/orientation, dimensions.
func rectangleConstraints(base EntityID, sides rectSides, width, height measure.Quantity) []wire.Constraint {
	return []wire.Constraint{
		coincident(base.Sub("corner0"), sides.bottom.Sub("start"), sides.left.Sub("end")),
		coincident(base.Sub("corner1"), sides.bottom.Sub("end"), sides.right.Sub("start")),
		coincident(base.Sub("corner2"), sides.top.Sub("start"), sides.right.Sub("end")),
		coincident(base.Sub("corner3"), sides.top.Sub("end"), sides.left.Sub("start")),
		perpendicular(base.Sub("perpendicular.1"), sides.bottom, sides.left),
		perpendicular(base.Sub("perpendicular.2"), sides.bottom, sides.right),
		horizontal(base.Sub("horizontal"), sides.bottom),
		length(base.Sub("width"), sides.bottom, width),
		length(base.Sub("height"), sides.right, height),
	}
}

// lineConstraints emits nothing unless an explicit alignment was
// requested; under-constrained placement is acceptable for lines.
func lineConstraints(base EntityID, line EntityID, align Alignment) ([]wire.Constraint, error) {
	switch align {
	case AlignNone:
		return nil, nil
	case AlignHorizontal:
		return []wire.Constraint{horizontal(base.Sub("horizontal"), line)}, nil
	case AlignVertical:
		return []wire.Constraint{vertical(base.Sub("vertical"), line)}, nil
	default:
		return nil, fmt.Errorf("%w: line alignment %d", ErrUnsupportedPrimitive, int(align))
	}
}

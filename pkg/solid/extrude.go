package solid

import (
	"fmt"

	"github.com/chamferlabs/ftree/pkg/measure"
	"github.com/chamferlabs/ftree/pkg/wire"
)

// Extrude sweeps the regions of a sketch along the plane normal.
type Extrude struct {
	Name              string
	SketchFeatureID   string
	Depth             measure.Length
	Operation         OpType
	OppositeDirection bool

	// MinDepth overrides the degeneracy floor (meters). Zero keeps
	// DefaultMinDimension.
	MinDepth float64
}

// Build assembles the extrude payload. Parameter order is fixed:
// entities, operation type, depth, direction.
func (e Extrude) Build() (*wire.FeatureDefinitionCall, error) {
	if e.SketchFeatureID == "" {
		return nil, fmt.Errorf("%w: extrude needs a source sketch", ErrMissingReference)
	}
	depth, err := e.Depth.Normalize()
	if err != nil {
		return nil, err
	}
	if err := checkDimension(e.Depth, depth, e.MinDepth); err != nil {
		return nil, fmt.Errorf("extrude %q: depth %s: %w", e.Name, depth.Expression, err)
	}

	return wire.SolidFeature("extrude", e.Name, []wire.Parameter{
		wire.QueryList("entities", wire.SketchRegion(e.SketchFeatureID)),
		wire.Enum("operationType", "NewBodyOperationType", e.Operation.String()),
		wire.Quantity("depth", depth.Expression, depth.Value),
		wire.Boolean("oppositeDirection", e.OppositeDirection),
	}), nil
}

// Revolve sweeps the regions of a sketch around a model axis.
type Revolve struct {
	Name              string
	SketchFeatureID   string
	Axis              Axis
	Angle             measure.Angle
	Operation         OpType
	OppositeDirection bool
}

// Build assembles the revolve payload.
func (r Revolve) Build() (*wire.FeatureDefinitionCall, error) {
	if r.SketchFeatureID == "" {
		return nil, fmt.Errorf("%w: revolve needs a source sketch", ErrMissingReference)
	}
	angle := r.Angle
	if angle.IsZero() {
		angle = measure.Degrees(360.0)
	}
	angleQ, err := angle.Normalize()
	if err != nil {
		return nil, err
	}

	return wire.SolidFeature("revolve", r.Name, []wire.Parameter{
		wire.QueryList("entities", wire.SketchRegion(r.SketchFeatureID)),
		axisQuery("axis", r.Axis),
		wire.Enum("operationType", "NewBodyOperationType", r.Operation.String()),
		wire.Quantity("revolveAngle", angleQ.Expression, angleQ.Value),
		wire.Boolean("oppositeDirection", r.OppositeDirection),
	}), nil
}

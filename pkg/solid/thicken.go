package solid

import (
	"fmt"

	"github.com/chamferlabs/ftree/pkg/measure"
	"github.com/chamferlabs/ftree/pkg/wire"
)

// Thicken gives a surface or sketch region solid thickness. The
// second-side thickness is pinned to zero; Midplane splits the
// thickness symmetrically about the sketch plane instead.
type Thicken struct {
	Name              string
	SketchFeatureID   string
	Thickness         measure.Length
	Operation         OpType
	Midplane          bool
	OppositeDirection bool

	// MinThickness overrides the degeneracy floor (meters). Zero keeps
	// DefaultMinDimension.
	MinThickness float64
}

// Build assembles the thicken payload. Thicken uses the short
// parameter forms and a bare feature envelope, matching its reference
// capture rather than the extrude family's long forms.
func (t Thicken) Build() (*wire.FeatureDefinitionCall, error) {
	if t.SketchFeatureID == "" {
		return nil, fmt.Errorf("%w: thicken needs a source sketch", ErrMissingReference)
	}
	if t.Thickness.IsZero() {
		return nil, fmt.Errorf("%w: thickness not set", ErrMissingReference)
	}
	thickness, err := t.Thickness.Normalize()
	if err != nil {
		return nil, err
	}
	if err := checkDimension(t.Thickness, thickness, t.MinThickness); err != nil {
		return nil, fmt.Errorf("thicken %q: thickness %s: %w", t.Name, thickness.Expression, err)
	}

	return &wire.FeatureDefinitionCall{
		Feature: &wire.Feature{
			BTType:      wire.TypeFeature,
			FeatureType: "thicken",
			Name:        t.Name,
			Namespace:   &wire.EmptyNamespace,
			Parameters: []wire.Parameter{
				wire.Choice("operationType", "NewBodyOperationType", t.Operation.String()),
				wire.CompactQueryList("entities", wire.SketchRegion(t.SketchFeatureID)),
				wire.Flag("midplane", t.Midplane),
				wire.Dimension("thickness1", thickness.Expression),
				wire.Flag("oppositeDirection", t.OppositeDirection),
				wire.Dimension("thickness2", "0 in"),
			},
		},
	}, nil
}

// Package assembly builds assembly feature payloads: mate connectors
// (BTMMateConnector-66), mates (BTMMate-64), and the occurrence
// transform math used to place instances.
package assembly

import (
	"errors"
	"fmt"

	"github.com/chamferlabs/ftree/pkg/measure"
	"github.com/chamferlabs/ftree/pkg/wire"
)

// ErrMissingConnector is returned when a mate lacks one of its two
// mate connectors.
var ErrMissingConnector = errors.New("assembly: mate connector not set")

// SecondaryAxis reorients a connector's secondary axis around its
// primary (Z) axis.
type SecondaryAxis int

const (
	PlusX SecondaryAxis = iota
	PlusY
	MinusX
	MinusY
)

func (a SecondaryAxis) String() string {
	switch a {
	case PlusX:
		return "PLUS_X"
	case PlusY:
		return "PLUS_Y"
	case MinusX:
		return "MINUS_X"
	case MinusY:
		return "MINUS_Y"
	default:
		return "unknown"
	}
}

// RotationAxis selects the connector-local axis an offset rotation
// turns about.
type RotationAxis int

const (
	AboutZ RotationAxis = iota
	AboutX
	AboutY
)

func (a RotationAxis) String() string {
	switch a {
	case AboutX:
		return "ABOUT_X"
	case AboutY:
		return "ABOUT_Y"
	case AboutZ:
		return "ABOUT_Z"
	default:
		return "unknown"
	}
}

// Offset is an optional rigid transform applied to a connector after
// inference: a translation from the face center plus a rotation about
// one connector axis.
type Offset struct {
	Translation   [3]measure.Length
	Rotation      measure.Angle
	RotationAbout RotationAxis
}

// MateConnector places a connector frame on a face of an assembly
// instance, anchored at the face centroid with the primary axis along
// the face normal. FaceID is the face's deterministic identifier and
// OccurrencePath the instance path that owns it.
type MateConnector struct {
	Name           string
	FaceID         string
	OccurrencePath []string
	FlipPrimary    bool
	SecondaryAxis  SecondaryAxis
	Offset         *Offset
}

// Build assembles the mate connector payload. Optional parameter
// blocks (flip, reorientation, transform) are appended only when they
// differ from the connector defaults, matching reference captures.
func (m MateConnector) Build() (*wire.FeatureDefinitionCall, error) {
	if m.FaceID == "" {
		return nil, fmt.Errorf("%w: mate connector needs an origin face", ErrMissingConnector)
	}

	params := []wire.Parameter{
		wire.Choice("originType", "Origin type", "ON_ENTITY"),
		wire.OccurrenceQueryList("originQuery",
			wire.CentroidInference(m.OccurrencePath, m.FaceID)),
	}
	if m.FlipPrimary {
		params = append(params, wire.Flag("flipPrimary", true))
	}
	if m.SecondaryAxis != PlusX {
		params = append(params,
			wire.Choice("secondaryAxisType", "Reorient secondary axis", m.SecondaryAxis.String()))
	}
	if m.Offset != nil {
		offsetParams, err := m.Offset.parameters()
		if err != nil {
			return nil, err
		}
		params = append(params, offsetParams...)
	}

	return &wire.FeatureDefinitionCall{
		Feature: &wire.Feature{
			BTType:      wire.TypeMateConnector,
			FeatureType: "mateConnector",
			Name:        m.Name,
			Parameters:  params,
		},
	}, nil
}

// parameters renders the transform block. Translations go out in
// meters and the rotation in radians regardless of input units.
func (o *Offset) parameters() ([]wire.Parameter, error) {
	params := []wire.Parameter{wire.Flag("transform", true)}

	ids := [3]string{"translationX", "translationY", "translationZ"}
	for i, l := range o.Translation {
		if l.IsZero() {
			l = measure.Inches(0)
		}
		q, err := l.Normalize()
		if err != nil {
			return nil, err
		}
		params = append(params, wire.Dimension(ids[i], metersExpression(q)))
	}

	rotation := o.Rotation
	if rotation.IsZero() {
		rotation = measure.Degrees(0)
	}
	rotQ, err := rotation.Normalize()
	if err != nil {
		return nil, err
	}
	params = append(params,
		wire.Choice("rotationType", "Rotation axis", o.RotationAbout.String()),
		wire.Dimension("rotation", radiansExpression(rotQ)),
	)
	return params, nil
}

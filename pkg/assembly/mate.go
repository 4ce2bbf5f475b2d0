package assembly

import (
	"strconv"

	"github.com/chamferlabs/ftree/pkg/measure"
	"github.com/chamferlabs/ftree/pkg/wire"
)

// MateType selects the degrees of freedom a mate leaves open.
type MateType int

const (
	Fastened MateType = iota
	Revolute
	Slider
	Cylindrical
)

func (t MateType) String() string {
	switch t {
	case Fastened:
		return "FASTENED"
	case Revolute:
		return "REVOLUTE"
	case Slider:
		return "SLIDER"
	case Cylindrical:
		return "CYLINDRICAL"
	default:
		return "unknown"
	}
}

// translates reports whether the mate has a translational degree of
// freedom along the connector Z axis.
func (t MateType) translates() bool { return t == Slider || t == Cylindrical }

// rotates reports whether the mate has a rotational degree of freedom
// about the connector Z axis.
func (t MateType) rotates() bool { return t == Revolute || t == Cylindrical }

// Limits bounds the open degrees of freedom of a non-fastened mate.
// Axial bounds apply to sliders and cylindricals, rotational bounds to
// revolutes. Bounds for a direction the mate type lacks are ignored.
type Limits struct {
	AxialMin    measure.Length
	AxialMax    measure.Length
	RotationMin measure.Angle
	RotationMax measure.Angle
}

// Mate joins two previously created mate connectors, identified by
// their feature IDs. The first connector's owner moves to satisfy the
// mate; the second anchors.
type Mate struct {
	Name       string
	Kind       MateType
	ConnectorA string
	ConnectorB string
	Limits     *Limits
}

// Build assembles the BTMMate-64 payload. Connector order is
// preserved: Onshape solves mates by moving the first connector's
// instance onto the second.
func (m Mate) Build() (*wire.FeatureDefinitionCall, error) {
	if m.ConnectorA == "" || m.ConnectorB == "" {
		return nil, ErrMissingConnector
	}

	params := []wire.Parameter{
		wire.Choice("mateType", "Mate type", m.Kind.String()),
		wire.OccurrenceQueryList("mateConnectorsQuery",
			wire.FeatureRef(m.ConnectorA),
			wire.FeatureRef(m.ConnectorB)),
	}
	if m.Limits != nil && m.Kind != Fastened {
		limitParams, err := m.Limits.parameters(m.Kind)
		if err != nil {
			return nil, err
		}
		params = append(params, limitParams...)
	}

	return &wire.FeatureDefinitionCall{
		Feature: &wire.Feature{
			BTType:      wire.TypeMate,
			FeatureType: "mate",
			Name:        m.Name,
			Parameters:  params,
		},
	}, nil
}

// parameters renders the limit block for the degrees of freedom the
// mate type actually has. Axial limits are emitted in meters and
// rotational limits in radians.
func (l *Limits) parameters(kind MateType) ([]wire.Parameter, error) {
	params := []wire.Parameter{wire.Flag("limitsEnabled", true)}

	if kind.translates() {
		min, max := l.AxialMin, l.AxialMax
		if min.IsZero() {
			min = measure.Inches(0)
		}
		if max.IsZero() {
			max = measure.Inches(0)
		}
		minQ, err := min.Normalize()
		if err != nil {
			return nil, err
		}
		maxQ, err := max.Normalize()
		if err != nil {
			return nil, err
		}
		params = append(params,
			wire.Dimension("limitAxialZMin", metersExpression(minQ)),
			wire.Dimension("limitAxialZMax", metersExpression(maxQ)),
		)
	}
	if kind.rotates() {
		min, max := l.RotationMin, l.RotationMax
		if min.IsZero() {
			min = measure.Degrees(0)
		}
		if max.IsZero() {
			max = measure.Degrees(0)
		}
		minQ, err := min.Normalize()
		if err != nil {
			return nil, err
		}
		maxQ, err := max.Normalize()
		if err != nil {
			return nil, err
		}
		params = append(params,
			wire.Dimension("limitRotationMin", radiansExpression(minQ)),
			wire.Dimension("limitRotationMax", radiansExpression(maxQ)),
		)
	}
	return params, nil
}

// metersExpression renders a normalized quantity as a base-unit meter
// expression. Variable references pass through as-is so the variable
// table keeps authority over the value.
func metersExpression(q measure.Quantity) string {
	if q.Deferred || q.Expression != "" && q.Expression[0] == '#' {
		return q.Expression
	}
	return strconv.FormatFloat(q.Value, 'g', -1, 64) + " m"
}

// radiansExpression renders a normalized quantity as a base-unit
// radian expression.
func radiansExpression(q measure.Quantity) string {
	if q.Deferred || q.Expression != "" && q.Expression[0] == '#' {
		return q.Expression
	}
	return strconv.FormatFloat(q.Value, 'g', -1, 64) + " rad"
}

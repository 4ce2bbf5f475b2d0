// Package compose is the facade callers drive: it accepts logical
// operation descriptors, resolves their geometry references, applies
// the configured validation floors, and hands back submission-ready
// feature payloads.
package compose

import (
	"github.com/chamferlabs/ftree/pkg/assembly"
	"github.com/chamferlabs/ftree/pkg/measure"
	"github.com/chamferlabs/ftree/pkg/query"
	"github.com/chamferlabs/ftree/pkg/sketch"
	"github.com/chamferlabs/ftree/pkg/solid"
)

// Operation is a logical feature request. Implementations are the Op
// structs below; the set is closed.
type Operation interface {
	operationNode()
}

// SketchOp draws primitives on a plane. A nil Plane falls back to the
// configured default sketch plane.
type SketchOp struct {
	Name       string
	Plane      query.Reference
	Primitives []sketch.Primitive
}

// ExtrudeOp sweeps a prior sketch's regions along its plane normal.
type ExtrudeOp struct {
	Name              string
	SketchFeatureID   string
	Depth             measure.Length
	Operation         solid.OpType
	OppositeDirection bool
}

// RevolveOp sweeps a prior sketch's regions around a model axis.
type RevolveOp struct {
	Name              string
	SketchFeatureID   string
	Axis              solid.Axis
	Angle             measure.Angle
	Operation         solid.OpType
	OppositeDirection bool
}

// ThickenOp gives a prior sketch's regions solid thickness.
type ThickenOp struct {
	Name              string
	SketchFeatureID   string
	Thickness         measure.Length
	Operation         solid.OpType
	Midplane          bool
	OppositeDirection bool
}

// FilletOp rounds referenced edges.
type FilletOp struct {
	Name   string
	Edges  []query.Reference
	Radius measure.Length
}

// ChamferOp bevels referenced edges.
type ChamferOp struct {
	Name     string
	Edges    []query.Reference
	Distance measure.Length
	Kind     solid.ChamferType
}

// BooleanOp combines referenced bodies. Reference order is preserved.
type BooleanOp struct {
	Name    string
	Kind    solid.BooleanType
	Tools   []query.Reference
	Targets []query.Reference
}

// LinearPatternOp repeats referenced seed features along an axis.
type LinearPatternOp struct {
	Name     string
	Seeds    []query.Reference
	Axis     solid.Axis
	Distance measure.Length
	Count    int
}

// CircularPatternOp repeats referenced seed features around an axis.
type CircularPatternOp struct {
	Name  string
	Seeds []query.Reference
	Axis  solid.Axis
	Angle measure.Angle
	Count int
}

// MateConnectorOp places a connector frame on an instance face.
type MateConnectorOp struct {
	Name           string
	FaceID         string
	OccurrencePath []string
	FlipPrimary    bool
	SecondaryAxis  assembly.SecondaryAxis
	Offset         *assembly.Offset
}

// MateOp joins two previously created mate connectors.
type MateOp struct {
	Name       string
	Kind       assembly.MateType
	ConnectorA string
	ConnectorB string
	Limits     *assembly.Limits
}

func (SketchOp) operationNode()          {}
func (ExtrudeOp) operationNode()         {}
func (RevolveOp) operationNode()         {}
func (ThickenOp) operationNode()         {}
func (FilletOp) operationNode()          {}
func (ChamferOp) operationNode()         {}
func (BooleanOp) operationNode()         {}
func (LinearPatternOp) operationNode()   {}
func (CircularPatternOp) operationNode() {}
func (MateConnectorOp) operationNode()   {}
func (MateOp) operationNode()            {}

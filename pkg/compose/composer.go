package compose

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/chamferlabs/ftree/pkg/assembly"
	"github.com/chamferlabs/ftree/pkg/config"
	"github.com/chamferlabs/ftree/pkg/measure"
	"github.com/chamferlabs/ftree/pkg/query"
	"github.com/chamferlabs/ftree/pkg/sketch"
	"github.com/chamferlabs/ftree/pkg/solid"
	"github.com/chamferlabs/ftree/pkg/wire"
)

// ErrUnknownOperation is returned for an Operation variant the
// composer does not recognize.
var ErrUnknownOperation = errors.New("compose: unknown operation")

// VariableSource looks up the current expression of a variable table
// entry. The composer uses it only to annotate logs with the default
// behind a deferred "#name" reference; correctness never depends on
// the answer.
type VariableSource interface {
	Variable(ctx context.Context, name string) (string, error)
}

// Composer turns logical operations into submission-ready payloads.
// One composer serves one resolution session; it is safe for
// concurrent use because all per-feature state lives in the builders.
type Composer struct {
	resolver *query.Resolver
	cfg      config.Config
	vars     VariableSource
	log      *zap.Logger
}

// New returns a composer. vars may be nil; a nil logger disables
// logging.
func New(resolver *query.Resolver, cfg config.Config, vars VariableSource, log *zap.Logger) *Composer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Composer{resolver: resolver, cfg: cfg, vars: vars, log: log}
}

// Compose builds the payload for one logical operation. Validation
// failures (degenerate dimensions, bad counts, unresolvable
// references) surface as wrapped sentinel errors and must not be
// retried with the same inputs.
func (c *Composer) Compose(ctx context.Context, op Operation) (*wire.FeatureDefinitionCall, error) {
	switch op := op.(type) {
	case SketchOp:
		return c.composeSketch(ctx, op)
	case ExtrudeOp:
		c.noteVariable(ctx, "depth", op.Depth)
		return solid.Extrude{
			Name:              op.Name,
			SketchFeatureID:   op.SketchFeatureID,
			Depth:             op.Depth,
			Operation:         op.Operation,
			OppositeDirection: op.OppositeDirection,
			MinDepth:          c.minDimension(),
		}.Build()
	case RevolveOp:
		return solid.Revolve{
			Name:              op.Name,
			SketchFeatureID:   op.SketchFeatureID,
			Axis:              op.Axis,
			Angle:             c.defaultAngle(op.Angle),
			Operation:         op.Operation,
			OppositeDirection: op.OppositeDirection,
		}.Build()
	case ThickenOp:
		c.noteVariable(ctx, "thickness", op.Thickness)
		return solid.Thicken{
			Name:              op.Name,
			SketchFeatureID:   op.SketchFeatureID,
			Thickness:         op.Thickness,
			Operation:         op.Operation,
			Midplane:          op.Midplane,
			OppositeDirection: op.OppositeDirection,
			MinThickness:      c.minDimension(),
		}.Build()
	case FilletOp:
		edges, err := c.resolveAll(ctx, op.Edges)
		if err != nil {
			return nil, err
		}
		return solid.Fillet{
			Name:      op.Name,
			Edges:     edges,
			Radius:    op.Radius,
			MinRadius: c.cfg.Limits.MinFilletRadiusInches * measure.MetersPerInch,
		}.Build()
	case ChamferOp:
		edges, err := c.resolveAll(ctx, op.Edges)
		if err != nil {
			return nil, err
		}
		return solid.Chamfer{
			Name:        op.Name,
			Edges:       edges,
			Distance:    op.Distance,
			Kind:        op.Kind,
			MinDistance: c.cfg.Limits.MinChamferWidthInches * measure.MetersPerInch,
		}.Build()
	case BooleanOp:
		tools, err := c.resolveAll(ctx, op.Tools)
		if err != nil {
			return nil, err
		}
		targets, err := c.resolveAll(ctx, op.Targets)
		if err != nil {
			return nil, err
		}
		return solid.Boolean{Name: op.Name, Kind: op.Kind, Tools: tools, Targets: targets}.Build()
	case LinearPatternOp:
		seeds, err := c.resolveAll(ctx, op.Seeds)
		if err != nil {
			return nil, err
		}
		return solid.LinearPattern{
			Name:        op.Name,
			Seeds:       seeds,
			Axis:        op.Axis,
			Distance:    op.Distance,
			Count:       op.Count,
			MinDistance: c.minDimension(),
		}.Build()
	case CircularPatternOp:
		seeds, err := c.resolveAll(ctx, op.Seeds)
		if err != nil {
			return nil, err
		}
		return solid.CircularPattern{
			Name:  op.Name,
			Seeds: seeds,
			Axis:  op.Axis,
			Angle: op.Angle,
			Count: op.Count,
		}.Build()
	case MateConnectorOp:
		return assembly.MateConnector{
			Name:           op.Name,
			FaceID:         op.FaceID,
			OccurrencePath: op.OccurrencePath,
			FlipPrimary:    op.FlipPrimary,
			SecondaryAxis:  op.SecondaryAxis,
			Offset:         op.Offset,
		}.Build()
	case MateOp:
		return assembly.Mate{
			Name:       op.Name,
			Kind:       op.Kind,
			ConnectorA: op.ConnectorA,
			ConnectorB: op.ConnectorB,
			Limits:     op.Limits,
		}.Build()
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownOperation, op)
	}
}

func (c *Composer) composeSketch(ctx context.Context, op SketchOp) (*wire.FeatureDefinitionCall, error) {
	plane := op.Plane
	if plane == nil {
		plane = query.StandardPlane{Plane: c.defaultPlane()}
	}
	resolved, err := c.resolver.Resolve(ctx, plane)
	if err != nil {
		return nil, err
	}
	sp, ok := resolved.(query.StandardPlane)
	if !ok {
		return nil, fmt.Errorf("%w: sketches attach to standard planes, got %T",
			query.ErrUnresolvableReference, resolved)
	}

	b := sketch.NewBuilder(op.Name)
	for _, p := range op.Primitives {
		if err := b.Add(p); err != nil {
			return nil, err
		}
	}
	payload, err := b.Build(sp.ID)
	if err != nil {
		return nil, err
	}
	c.log.Debug("composed sketch",
		zap.String("name", op.Name),
		zap.Stringer("plane", sp.Plane),
		zap.Int("primitives", len(op.Primitives)))
	return payload, nil
}

// resolveAll resolves a reference list into wire queries, preserving
// caller order.
func (c *Composer) resolveAll(ctx context.Context, refs []query.Reference) ([]wire.Query, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	queries := make([]wire.Query, 0, len(refs))
	for _, ref := range refs {
		resolved, err := c.resolver.Resolve(ctx, ref)
		if err != nil {
			return nil, err
		}
		q, err := query.ToQuery(resolved)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}
	return queries, nil
}

// minDimension is the configured general linear-dimension floor in
// meters, applied to extrude depth, thicken thickness, and pattern
// spacing. Fillet and chamfer carry their own floors.
func (c *Composer) minDimension() float64 {
	return c.cfg.Limits.MinDimensionInches * measure.MetersPerInch
}

func (c *Composer) defaultPlane() query.Plane {
	switch c.cfg.Defaults.SketchPlane {
	case "Top":
		return query.Top
	case "Right":
		return query.Right
	default:
		return query.Front
	}
}

func (c *Composer) defaultAngle(a measure.Angle) measure.Angle {
	if a.IsZero() {
		return measure.Degrees(c.cfg.Defaults.RevolveAngleDegrees)
	}
	return a
}

// noteVariable logs the variable table's current default behind a
// symbolic dimension. Lookup failures are logged and ignored; the
// remote service resolves the variable at rebuild time either way.
func (c *Composer) noteVariable(ctx context.Context, field string, l measure.Length) {
	if c.vars == nil || !l.IsVariable() {
		return
	}
	q, err := l.Normalize()
	if err != nil {
		return
	}
	name := q.Expression[1:] // strip '#'
	value, err := c.vars.Variable(ctx, name)
	if err != nil {
		c.log.Debug("variable default unavailable",
			zap.String("field", field),
			zap.String("variable", name),
			zap.Error(err))
		return
	}
	c.log.Debug("variable default",
		zap.String("field", field),
		zap.String("variable", name),
		zap.String("value", value))
}

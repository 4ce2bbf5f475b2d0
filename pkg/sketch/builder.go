package sketch

import (
	"errors"
	"fmt"
	"math"

	"github.com/chamferlabs/ftree/pkg/measure"
	"github.com/chamferlabs/ftree/pkg/wire"
)

// ErrMissingPlane is returned when a sketch is built without a
// resolved sketch-plane identifier.
var ErrMissingPlane = errors.New("sketch: sketch plane ID not set")

// Builder accumulates primitives into one sketch feature. A failed
// Add poisons the builder so a partially constructed payload can
// never be submitted.
type Builder struct {
	name        string
	scope       *Scope
	entities    []wire.Entity
	constraints []wire.Constraint
	err         error
}

// NewBuilder returns a sketch builder for a feature with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name, scope: NewScope()}
}

// Scope exposes the builder's identifier scope, letting callers look
// up the IDs allocated for logical roles.
func (b *Builder) Scope() *Scope { return b.scope }

// Add appends a primitive with its constraint set.
func (b *Builder) Add(p Primitive) error {
	if b.err != nil {
		return b.err
	}
	var err error
	switch prim := p.(type) {
	case Rectangle:
		err = b.addRectangle(prim)
	case Circle:
		err = b.addCircle(prim)
	case Line:
		err = b.addLine(prim)
	case Arc:
		err = b.addArc(prim)
	default:
		err = fmt.Errorf("%w: %T", ErrUnsupportedPrimitive, p)
	}
	if err != nil {
		b.err = err
	}
	return err
}

// Build assembles the BTMSketch-151 payload. planeID is the resolved
// deterministic identifier of the sketch plane. The sketch envelope
// carries no btType discriminator, unlike solid features.
func (b *Builder) Build(planeID string) (*wire.FeatureDefinitionCall, error) {
	if b.err != nil {
		return nil, b.err
	}
	if planeID == "" {
		return nil, ErrMissingPlane
	}
	return &wire.FeatureDefinitionCall{
		Feature: &wire.Feature{
			BTType:      wire.TypeSketch,
			FeatureType: "newSketch",
			Name:        b.name,
			Parameters: []wire.Parameter{
				wire.CompactQueryList("sketchPlane", wire.Deterministic(planeID)),
			},
			Entities:    b.entities,
			Constraints: b.constraints,
		},
	}, nil
}

// coord normalizes a literal coordinate to meters.
func coord(l measure.Length) (float64, error) {
	if l.IsVariable() {
		return 0, fmt.Errorf("%w: variable reference in point coordinate", ErrUnsupportedPrimitive)
	}
	q, err := l.Normalize()
	if err != nil {
		return 0, err
	}
	return q.Value, nil
}

// point normalizes both coordinates of a point.
func point(p Point) (x, y float64, err error) {
	if x, err = coord(p.X); err != nil {
		return 0, 0, err
	}
	if y, err = coord(p.Y); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// rectSides holds the four line entities of one rectangle.
type rectSides struct {
	bottom, right, top, left EntityID
}

// lineSegment emits one bounded line entity. Geometry is in meters;
// the segment parameter range is its length.
func lineSegment(id EntityID, x, y, dirX, dirY, length float64) wire.CurveSegment {
	return wire.CurveSegment{
		BTType:       wire.TypeCurveSegment,
		EntityID:     string(id),
		StartPointID: string(id.Sub("start")),
		EndPointID:   string(id.Sub("end")),
		StartParam:   0.0,
		EndParam:     length,
		Geometry:     wire.Line(x, y, dirX, dirY),
	}
}

func (b *Builder) addRectangle(r Rectangle) error {
	x1, y1, err := point(r.Corner1)
	if err != nil {
		return err
	}
	x2, y2, err := point(r.Corner2)
	if err != nil {
		return err
	}
	if x1 == x2 || y1 == y2 {
		return fmt.Errorf("%w: rectangle has zero width or height", ErrUnsupportedPrimitive)
	}

	width := r.Width
	if width.IsZero() {
		if width, err = measure.Delta(r.Corner2.X, r.Corner1.X); err != nil {
			return err
		}
	}
	height := r.Height
	if height.IsZero() {
		if height, err = measure.Delta(r.Corner2.Y, r.Corner1.Y); err != nil {
			return err
		}
	}
	widthQ, err := width.Normalize()
	if err != nil {
		return err
	}
	heightQ, err := height.Normalize()
	if err != nil {
		return err
	}

	base := b.scope.Allocate("rect")
	sides := rectSides{
		bottom: base.Sub("bottom"),
		right:  base.Sub("right"),
		top:    base.Sub("top"),
		left:   base.Sub("left"),
	}
	b.scope.Bind(string(base)+":bottom", sides.bottom)
	b.scope.Bind(string(base)+":right", sides.right)
	b.scope.Bind(string(base)+":top", sides.top)
	b.scope.Bind(string(base)+":left", sides.left)

	dirX := 1.0
	if x2 < x1 {
		dirX = -1.0
	}
	dirY := 1.0
	if y2 < y1 {
		dirY = -1.0
	}
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	// Sides run counterclockwise from corner1: bottom, right, top, left.
	b.entities = append(b.entities,
		lineSegment(sides.bottom, x1, y1, dirX, 0.0, dx),
		lineSegment(sides.right, x2, y1, 0.0, dirY, dy),
		lineSegment(sides.top, x2, y2, -dirX, 0.0, dx),
		lineSegment(sides.left, x1, y2, 0.0, -dirY, dy),
	)
	b.constraints = append(b.constraints, rectangleConstraints(base, sides, widthQ, heightQ)...)
	return nil
}

func (b *Builder) addCircle(c Circle) error {
	cx, cy, err := point(c.Center)
	if err != nil {
		return err
	}
	radiusQ, err := c.Radius.Normalize()
	if err != nil {
		return err
	}

	id := b.scope.Allocate("circle")
	b.entities = append(b.entities, wire.Curve{
		BTType:   wire.TypeCurve,
		EntityID: string(id),
		CenterID: string(id.Sub("center")),
		Geometry: wire.Circle(cx, cy, radiusQ.Value),
	})
	b.constraints = append(b.constraints, radius(id.Sub("radius"), id, radiusQ))
	return nil
}

func (b *Builder) addLine(l Line) error {
	x1, y1, err := point(l.Start)
	if err != nil {
		return err
	}
	x2, y2, err := point(l.End)
	if err != nil {
		return err
	}
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return fmt.Errorf("%w: zero-length line", ErrUnsupportedPrimitive)
	}

	id := b.scope.Allocate("line")
	b.entities = append(b.entities, lineSegment(id, x1, y1, dx/length, dy/length, length))

	constraints, err := lineConstraints(id, id, l.Align)
	if err != nil {
		return err
	}
	b.constraints = append(b.constraints, constraints...)
	return nil
}

func (b *Builder) addArc(a Arc) error {
	cx, cy, err := point(a.Center)
	if err != nil {
		return err
	}
	radiusQ, err := a.Radius.Normalize()
	if err != nil {
		return err
	}
	// Arc angles are geometric parameters, not constraints, so a
	// variable reference has nowhere to go on the wire.
	if a.Start.IsVariable() || a.End.IsVariable() {
		return fmt.Errorf("%w: variable reference in arc angle", ErrUnsupportedPrimitive)
	}
	startQ, err := a.Start.Normalize()
	if err != nil {
		return err
	}
	endQ, err := a.End.Normalize()
	if err != nil {
		return err
	}

	id := b.scope.Allocate("arc")
	b.entities = append(b.entities, wire.CurveSegment{
		BTType:       wire.TypeCurveSegment,
		EntityID:     string(id),
		StartPointID: string(id.Sub("start")),
		EndPointID:   string(id.Sub("end")),
		StartParam:   startQ.Value,
		EndParam:     endQ.Value,
		Geometry:     wire.Circle(cx, cy, radiusQ.Value),
	})
	b.constraints = append(b.constraints, radius(id.Sub("radius"), id, radiusQ))
	return nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

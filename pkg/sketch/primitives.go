package sketch

import "github.com/chamferlabs/ftree/pkg/measure"

// Primitive is the closed set of sketch shapes the builder accepts.
type Primitive interface {
	primitive() // marker method restricting implementations to this package
}

// Point is a 2D sketch-plane coordinate. Coordinates must be literal
// lengths; variable references are only valid in dimension bindings.
type Point struct {
	X, Y measure.Length
}

// XY returns a point given in inches.
func XY(x, y float64) Point {
	return Point{X: measure.Inches(x), Y: measure.Inches(y)}
}

// Alignment optionally pins a line horizontal or vertical.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignHorizontal
	AlignVertical
)

func (a Alignment) String() string {
	switch a {
	case AlignNone:
		return "none"
	case AlignHorizontal:
		return "horizontal"
	case AlignVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Rectangle is an axis-aligned rectangle between two opposite corners.
// Width and Height optionally bind the dimensional constraints to a
// variable or explicit literal; when zero they default to the literal
// corner distances.
type Rectangle struct {
	Corner1, Corner2 Point
	Width, Height    measure.Length
}

func (Rectangle) primitive() {}

// Circle is a full circle. Radius may be a literal or a variable.
type Circle struct {
	Center Point
	Radius measure.Length
}

func (Circle) primitive() {}

// Line is a bounded segment. Placement is under-constrained by
// default; Align requests an explicit orientation constraint.
type Line struct {
	Start, End Point
	Align      Alignment
}

func (Line) primitive() {}

// Arc is a circular arc swept counterclockwise from Start to End.
// Angles are embedded as geometric parameters, not constraints.
type Arc struct {
	Center     Point
	Radius     measure.Length
	Start, End measure.Angle
}

func (Arc) primitive() {}

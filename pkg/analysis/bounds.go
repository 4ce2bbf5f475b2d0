// Package analysis checks assembly placement before submission:
// world-space bounding boxes, pairwise interference, and positioning
// helpers that derive occurrence transforms. All lengths here are in
// meters, the unit assembly transforms carry.
package analysis

import (
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chamferlabs/ftree/pkg/assembly"
	"github.com/chamferlabs/ftree/pkg/measure"
)

// MetersToInches converts back to the unit callers report in.
const MetersToInches = 1.0 / measure.MetersPerInch

// Bounds is an axis-aligned box in world space.
type Bounds struct {
	box sdf.Box3
}

// NewBounds returns the box spanning two opposite corners, in meters.
func NewBounds(min, max [3]float64) Bounds {
	return Bounds{box: sdf.Box3{
		Min: v3.Vec{X: min[0], Y: min[1], Z: min[2]},
		Max: v3.Vec{X: max[0], Y: max[1], Z: max[2]},
	}}
}

// Min returns the low corner in meters.
func (b Bounds) Min() [3]float64 { return [3]float64{b.box.Min.X, b.box.Min.Y, b.box.Min.Z} }

// Max returns the high corner in meters.
func (b Bounds) Max() [3]float64 { return [3]float64{b.box.Max.X, b.box.Max.Y, b.box.Max.Z} }

// Size returns the extents in meters.
func (b Bounds) Size() [3]float64 {
	return [3]float64{
		b.box.Max.X - b.box.Min.X,
		b.box.Max.Y - b.box.Min.Y,
		b.box.Max.Z - b.box.Min.Z,
	}
}

// Transform returns the axis-aligned box enclosing this box after the
// given rigid transform: all eight corners are transformed and
// re-enclosed, so a rotated box grows rather than shears.
func (b Bounds) Transform(m assembly.Matrix) Bounds {
	corners := [8]v3.Vec{
		{X: b.box.Min.X, Y: b.box.Min.Y, Z: b.box.Min.Z},
		{X: b.box.Max.X, Y: b.box.Min.Y, Z: b.box.Min.Z},
		{X: b.box.Min.X, Y: b.box.Max.Y, Z: b.box.Min.Z},
		{X: b.box.Max.X, Y: b.box.Max.Y, Z: b.box.Min.Z},
		{X: b.box.Min.X, Y: b.box.Min.Y, Z: b.box.Max.Z},
		{X: b.box.Max.X, Y: b.box.Min.Y, Z: b.box.Max.Z},
		{X: b.box.Min.X, Y: b.box.Max.Y, Z: b.box.Max.Z},
		{X: b.box.Max.X, Y: b.box.Max.Y, Z: b.box.Max.Z},
	}

	x, y, z := m.Apply(corners[0].X, corners[0].Y, corners[0].Z)
	out := sdf.Box3{Min: v3.Vec{X: x, Y: y, Z: z}, Max: v3.Vec{X: x, Y: y, Z: z}}
	for _, c := range corners[1:] {
		x, y, z := m.Apply(c.X, c.Y, c.Z)
		out.Min.X = min(out.Min.X, x)
		out.Min.Y = min(out.Min.Y, y)
		out.Min.Z = min(out.Min.Z, z)
		out.Max.X = max(out.Max.X, x)
		out.Max.Y = max(out.Max.Y, y)
		out.Max.Z = max(out.Max.Z, z)
	}
	return Bounds{box: out}
}

// overlapTolerance filters floating-point noise at touching
// boundaries (~4e-7 inches).
const overlapTolerance = 1e-8

// overlap returns the per-axis overlap depth with another box, or
// false if any axis is disjoint or merely touching.
func (b Bounds) overlap(other Bounds) ([3]float64, bool) {
	var depth [3]float64
	lo := [3]float64{
		max(b.box.Min.X, other.box.Min.X),
		max(b.box.Min.Y, other.box.Min.Y),
		max(b.box.Min.Z, other.box.Min.Z),
	}
	hi := [3]float64{
		min(b.box.Max.X, other.box.Max.X),
		min(b.box.Max.Y, other.box.Max.Y),
		min(b.box.Max.Z, other.box.Max.Z),
	}
	for i := range depth {
		depth[i] = hi[i] - lo[i]
		if depth[i] <= overlapTolerance {
			return [3]float64{}, false
		}
	}
	return depth, true
}

package assembly

import (
	"math"

	"github.com/chamferlabs/ftree/pkg/measure"
)

// Matrix is a 4x4 rigid transform in row-major order, the layout the
// assembly occurrence endpoint exchanges. Translation lives in the
// fourth column and is always in meters.
type Matrix [16]float64

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a pure translation. Inputs are in inches, the
// unit positioning callers think in.
func Translation(x, y, z float64) Matrix {
	m := Identity()
	m[3] = x * measure.MetersPerInch
	m[7] = y * measure.MetersPerInch
	m[11] = z * measure.MetersPerInch
	return m
}

// Transform composes a rigid transform from per-axis rotations in
// degrees and a translation in inches. Rotations apply in X, Y, Z
// order, so the combined rotation is Rz * Ry * Rx.
func Transform(tx, ty, tz, rx, ry, rz float64) Matrix {
	ax := rx * math.Pi / 180
	ay := ry * math.Pi / 180
	az := rz * math.Pi / 180

	cx, sx := math.Cos(ax), math.Sin(ax)
	cy, sy := math.Cos(ay), math.Sin(ay)
	cz, sz := math.Cos(az), math.Sin(az)

	rotX := Matrix{
		1, 0, 0, 0,
		0, cx, -sx, 0,
		0, sx, cx, 0,
		0, 0, 0, 1,
	}
	rotY := Matrix{
		cy, 0, sy, 0,
		0, 1, 0, 0,
		-sy, 0, cy, 0,
		0, 0, 0, 1,
	}
	rotZ := Matrix{
		cz, -sz, 0, 0,
		sz, cz, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}

	m := rotZ.Mul(rotY).Mul(rotX)
	m[3] = tx * measure.MetersPerInch
	m[7] = ty * measure.MetersPerInch
	m[11] = tz * measure.MetersPerInch
	return m
}

// Mul returns m * n.
func (m Matrix) Mul(n Matrix) Matrix {
	var out Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * n[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// Apply transforms a point, given and returned in meters.
func (m Matrix) Apply(x, y, z float64) (float64, float64, float64) {
	return m[0]*x + m[1]*y + m[2]*z + m[3],
		m[4]*x + m[5]*y + m[6]*z + m[7],
		m[8]*x + m[9]*y + m[10]*z + m[11]
}

// TranslationOf extracts the translation column in meters.
func (m Matrix) TranslationOf() (float64, float64, float64) {
	return m[3], m[7], m[11]
}

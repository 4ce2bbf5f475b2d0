// Package measure defines dimension values for feature construction.
// A value is either a literal in a declared unit or a reference to a
// variable in the Part Studio's variable table. Normalization converts
// literals to Onshape's base units (meters, radians) while rendering an
// expression string in the original display unit.
package measure

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidUnit is returned when a value carries a unit the expression
// parser does not accept.
var ErrInvalidUnit = errors.New("measure: unrecognized unit")

// Unit is the display unit suffix used in Onshape expressions.
type Unit string

const (
	Inch       Unit = "in"
	Millimeter Unit = "mm"
	Meter      Unit = "m"
	Degree     Unit = "deg"
	Radian     Unit = "rad"
)

// MetersPerInch is the exact conversion factor Onshape uses.
const MetersPerInch = 0.0254

// lengthFactors maps a length unit to its meters-per-unit factor.
var lengthFactors = map[Unit]float64{
	Inch:       MetersPerInch,
	Millimeter: 0.001,
	Meter:      1.0,
}

// angleFactors maps an angle unit to its radians-per-unit factor.
var angleFactors = map[Unit]float64{
	Degree: math.Pi / 180.0,
	Radian: 1.0,
}

// Quantity is a normalized dimension value ready for wire emission.
// Expression is exactly what the remote expression parser accepts;
// Value is in base units. Deferred marks a variable reference whose
// numeric default is unknown until the variable table resolves it.
type Quantity struct {
	Expression string
	Value      float64
	Deferred   bool
}

// Length is a linear dimension: a literal in a length unit, or a
// variable reference. Exactly one of the two forms is populated.
type Length struct {
	value    float64
	unit     Unit
	variable string
	hasValue bool
}

// Inches returns a literal length in inches.
func Inches(v float64) Length {
	return Length{value: v, unit: Inch, hasValue: true}
}

// Millimeters returns a literal length in millimeters.
func Millimeters(v float64) Length {
	return Length{value: v, unit: Millimeter, hasValue: true}
}

// Meters returns a literal length in meters.
func Meters(v float64) Length {
	return Length{value: v, unit: Meter, hasValue: true}
}

// LengthVar returns a reference to a variable table entry. The name is
// given without the leading '#'.
func LengthVar(name string) Length {
	return Length{variable: name}
}

// LengthVarDefault returns a variable reference carrying a best-effort
// literal default in inches, used for display only.
func LengthVarDefault(name string, inches float64) Length {
	return Length{variable: name, value: inches, unit: Inch, hasValue: true}
}

// IsVariable reports whether the length is a variable reference.
func (l Length) IsVariable() bool { return l.variable != "" }

// IsZero reports whether the length is the zero value (no literal, no
// variable). Builders treat a zero Length as "not supplied".
func (l Length) IsZero() bool { return !l.hasValue && l.variable == "" }

// Normalize renders the expression string and converts the literal to
// meters. Variable references pass through unconverted as "#name".
func (l Length) Normalize() (Quantity, error) {
	if l.variable != "" {
		q := Quantity{Expression: "#" + l.variable, Deferred: !l.hasValue}
		if l.hasValue {
			q.Value = l.value * lengthFactors[l.unit]
		}
		return q, nil
	}
	factor, ok := lengthFactors[l.unit]
	if !ok {
		return Quantity{}, fmt.Errorf("%w: %q", ErrInvalidUnit, l.unit)
	}
	return Quantity{
		Expression: formatLiteral(l.value, l.unit),
		Value:      l.value * factor,
	}, nil
}

// Angle is an angular dimension: a literal in an angle unit, or a
// variable reference.
type Angle struct {
	value    float64
	unit     Unit
	variable string
	hasValue bool
}

// Degrees returns a literal angle in degrees.
func Degrees(v float64) Angle {
	return Angle{value: v, unit: Degree, hasValue: true}
}

// Radians returns a literal angle in radians.
func Radians(v float64) Angle {
	return Angle{value: v, unit: Radian, hasValue: true}
}

// AngleVar returns a reference to a variable table entry.
func AngleVar(name string) Angle {
	return Angle{variable: name}
}

// IsVariable reports whether the angle is a variable reference.
func (a Angle) IsVariable() bool { return a.variable != "" }

// IsZero reports whether the angle is the zero value.
func (a Angle) IsZero() bool { return !a.hasValue && a.variable == "" }

// Normalize renders the expression string and converts the literal to
// radians. Variable references pass through unconverted as "#name".
func (a Angle) Normalize() (Quantity, error) {
	if a.variable != "" {
		q := Quantity{Expression: "#" + a.variable, Deferred: !a.hasValue}
		if a.hasValue {
			q.Value = a.value * angleFactors[a.unit]
		}
		return q, nil
	}
	factor, ok := angleFactors[a.unit]
	if !ok {
		return Quantity{}, fmt.Errorf("%w: %q", ErrInvalidUnit, a.unit)
	}
	return Quantity{
		Expression: formatLiteral(a.value, a.unit),
		Value:      a.value * factor,
	}, nil
}

// formatLiteral renders "0.75 in" style expressions. The shortest
// round-trippable decimal form keeps expressions stable across builds.
func formatLiteral(v float64, u Unit) string {
	return strconv.FormatFloat(v, 'g', -1, 64) + " " + string(u)
}

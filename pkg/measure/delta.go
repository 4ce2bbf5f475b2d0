package measure

import (
	"errors"
	"math"
)

// ErrVariableArithmetic is returned when arithmetic is attempted on a
// variable reference. Expression arithmetic belongs to the remote
// expression parser, not this package.
var ErrVariableArithmetic = errors.New("measure: arithmetic on variable reference")

// Delta returns |a - b| as a literal length. When both operands share
// a display unit the result keeps that unit, so derived dimensions
// read naturally ("16 in" rather than "0.4064 m"); otherwise the
// result is in meters.
func Delta(a, b Length) (Length, error) {
	if a.IsVariable() || b.IsVariable() {
		return Length{}, ErrVariableArithmetic
	}
	if a.unit == b.unit {
		return Length{value: math.Abs(a.value - b.value), unit: a.unit, hasValue: true}, nil
	}
	qa, err := a.Normalize()
	if err != nil {
		return Length{}, err
	}
	qb, err := b.Normalize()
	if err != nil {
		return Length{}, err
	}
	return Meters(math.Abs(qa.Value - qb.Value)), nil
}

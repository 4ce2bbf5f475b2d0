package solid

import (
	"fmt"
	"strconv"

	"github.com/chamferlabs/ftree/pkg/measure"
	"github.com/chamferlabs/ftree/pkg/wire"
)

// LinearPattern repeats seed features along a model axis. Count is
// the total number of instances including the original.
type LinearPattern struct {
	Name     string
	Seeds    []wire.Query
	Axis     Axis
	Distance measure.Length
	Count    int

	// MinDistance overrides the degeneracy floor (meters). Zero keeps
	// DefaultMinDimension.
	MinDistance float64
}

// Build assembles the linear pattern payload.
func (p LinearPattern) Build() (*wire.FeatureDefinitionCall, error) {
	if len(p.Seeds) == 0 {
		return nil, fmt.Errorf("%w: pattern needs at least one seed feature", ErrMissingReference)
	}
	if p.Count < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, p.Count)
	}
	distance, err := p.Distance.Normalize()
	if err != nil {
		return nil, err
	}
	if err := checkDimension(p.Distance, distance, p.MinDistance); err != nil {
		return nil, fmt.Errorf("linear pattern %q: spacing %s: %w", p.Name, distance.Expression, err)
	}

	return wire.SolidFeature("linearPattern", p.Name, []wire.Parameter{
		wire.QueryList("entities", p.Seeds...),
		axisQuery("directionQuery", p.Axis),
		wire.Enum("patternType", "PatternType", "FEATURE"),
		wire.Quantity("distance", distance.Expression, distance.Value),
		wire.IntegerQuantity("instanceCount", strconv.Itoa(p.Count), p.Count),
	}), nil
}

// CircularPattern repeats seed features around a model axis. A zero
// Angle spreads instances over a full turn.
type CircularPattern struct {
	Name  string
	Seeds []wire.Query
	Axis  Axis
	Angle measure.Angle
	Count int
}

// Build assembles the circular pattern payload.
func (p CircularPattern) Build() (*wire.FeatureDefinitionCall, error) {
	if len(p.Seeds) == 0 {
		return nil, fmt.Errorf("%w: pattern needs at least one seed feature", ErrMissingReference)
	}
	if p.Count < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, p.Count)
	}
	angle := p.Angle
	if angle.IsZero() {
		angle = measure.Degrees(360.0)
	}
	angleQ, err := angle.Normalize()
	if err != nil {
		return nil, err
	}

	return wire.SolidFeature("circularPattern", p.Name, []wire.Parameter{
		wire.QueryList("entities", p.Seeds...),
		axisQuery("axisQuery", p.Axis),
		wire.Enum("patternType", "PatternType", "FEATURE"),
		wire.Quantity("angle", angleQ.Expression, angleQ.Value),
		wire.IntegerQuantity("instanceCount", strconv.Itoa(p.Count), p.Count),
	}), nil
}

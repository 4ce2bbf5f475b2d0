package analysis

import (
	"go.uber.org/zap"

	"github.com/chamferlabs/ftree/pkg/assembly"
)

// Instance is one placed part: a local bounding box plus the
// occurrence transform that positions it in world space. Instances
// without bounds (suppressed parts, parts the service returned no box
// for) carry a zero Bounds and are skipped with a warning.
type Instance struct {
	Name      string
	ID        string
	Bounds    Bounds
	HasBounds bool
	Transform assembly.Matrix
}

// Overlap reports one interfering pair. Depths and volume are in
// inches, the unit callers report in.
type Overlap struct {
	NameA, IDA string
	NameB, IDB string
	Depth      [3]float64
	Volume     float64
}

// Result is the outcome of one interference check.
type Result struct {
	Instances    int
	PairsChecked int
	Overlaps     []Overlap
	Warnings     []string
}

// Clear reports whether no pair interferes.
func (r Result) Clear() bool { return len(r.Overlaps) == 0 }

// CheckInterference computes world-space boxes for every instance and
// tests all pairs. Box overlap is conservative for rotated parts: a
// reported overlap may be a false positive, but a clear result is
// trustworthy. A nil logger disables logging.
func CheckInterference(instances []Instance, log *zap.Logger) Result {
	if log == nil {
		log = zap.NewNop()
	}
	result := Result{Instances: len(instances)}

	world := make([]Bounds, len(instances))
	checkable := make([]bool, len(instances))
	for i, inst := range instances {
		if !inst.HasBounds {
			warning := "no bounding box for instance " + inst.Name
			result.Warnings = append(result.Warnings, warning)
			log.Warn("skipping instance in interference check",
				zap.String("instance", inst.Name),
				zap.String("id", inst.ID))
			continue
		}
		world[i] = inst.Bounds.Transform(inst.Transform)
		checkable[i] = true
	}

	for i := range instances {
		if !checkable[i] {
			continue
		}
		for j := i + 1; j < len(instances); j++ {
			if !checkable[j] {
				continue
			}
			result.PairsChecked++
			depth, ok := world[i].overlap(world[j])
			if !ok {
				continue
			}
			o := Overlap{
				NameA: instances[i].Name, IDA: instances[i].ID,
				NameB: instances[j].Name, IDB: instances[j].ID,
				Depth: [3]float64{
					depth[0] * MetersToInches,
					depth[1] * MetersToInches,
					depth[2] * MetersToInches,
				},
			}
			o.Volume = o.Depth[0] * o.Depth[1] * o.Depth[2]
			result.Overlaps = append(result.Overlaps, o)
			log.Warn("instances interfere",
				zap.String("a", o.NameA),
				zap.String("b", o.NameB),
				zap.Float64("volume_in3", o.Volume))
		}
	}
	return result
}

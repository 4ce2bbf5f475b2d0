package analysis

import (
	"errors"
	"fmt"

	"github.com/chamferlabs/ftree/pkg/assembly"
)

// ErrUnknownFace is returned for a face name outside the six box
// faces.
var ErrUnknownFace = errors.New("analysis: unknown face")

// Face names one side of a world-axis-aligned box. Front/Back span Y,
// Left/Right span X, Bottom/Top span Z.
type Face int

const (
	FaceFront Face = iota
	FaceBack
	FaceLeft
	FaceRight
	FaceBottom
	FaceTop
)

func (f Face) String() string {
	switch f {
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceBottom:
		return "bottom"
	case FaceTop:
		return "top"
	default:
		return "unknown"
	}
}

// Position is a world placement summary for one instance, reported in
// inches.
type Position struct {
	Name     string
	ID       string
	Location [3]float64
	Size     [3]float64
	WorldMin [3]float64
	WorldMax [3]float64
}

// Describe summarizes an instance's placement. The location is the
// occurrence transform's translation; the size and world bounds come
// from the transformed bounding box.
func Describe(inst Instance) Position {
	tx, ty, tz := inst.Transform.TranslationOf()
	p := Position{
		Name:     inst.Name,
		ID:       inst.ID,
		Location: [3]float64{tx * MetersToInches, ty * MetersToInches, tz * MetersToInches},
	}
	if inst.HasBounds {
		world := inst.Bounds.Transform(inst.Transform)
		size := world.Size()
		lo, hi := world.Min(), world.Max()
		for i := 0; i < 3; i++ {
			p.Size[i] = size[i] * MetersToInches
			p.WorldMin[i] = lo[i] * MetersToInches
			p.WorldMax[i] = hi[i] * MetersToInches
		}
	}
	return p
}

// AlignedPosition computes the translation that places the source
// instance flush against one face of the target's world box, outside
// the target. Only the axis perpendicular to the face changes; the
// source keeps its current position on the other two. Inputs and the
// result are in meters.
func AlignedPosition(sourceLocal Bounds, sourcePos [3]float64, targetWorld Bounds, face Face) ([3]float64, error) {
	pos := sourcePos
	srcLo, srcHi := sourceLocal.Min(), sourceLocal.Max()
	tgtLo, tgtHi := targetWorld.Min(), targetWorld.Max()

	switch face {
	case FaceFront:
		pos[1] = tgtLo[1] - srcHi[1]
	case FaceBack:
		pos[1] = tgtHi[1] - srcLo[1]
	case FaceLeft:
		pos[0] = tgtLo[0] - srcHi[0]
	case FaceRight:
		pos[0] = tgtHi[0] - srcLo[0]
	case FaceBottom:
		pos[2] = tgtLo[2] - srcHi[2]
	case FaceTop:
		pos[2] = tgtHi[2] - srcLo[2]
	default:
		return [3]float64{}, fmt.Errorf("%w: %d", ErrUnknownFace, face)
	}
	return pos, nil
}

// PlacementMatrix builds the occurrence transform for an absolute
// position given in inches: identity rotation, pure translation.
func PlacementMatrix(xInches, yInches, zInches float64) assembly.Matrix {
	return assembly.Translation(xInches, yInches, zInches)
}

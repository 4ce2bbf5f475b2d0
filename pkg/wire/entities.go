package wire

// Sketch entity and geometry btType discriminators.
const (
	TypeCurveSegment   = "BTMSketchCurveSegment-155"
	TypeCurve          = "BTMSketchCurve-4"
	TypeGeometryLine   = "BTCurveGeometryLine-117"
	TypeGeometryCircle = "BTCurveGeometryCircle-115"
	TypeConstraint     = "BTMSketchConstraint-2"
)

// Entity is one geometric element of a sketch's entity list.
type Entity interface {
	entity() // marker method restricting implementations to this package
}

// Geometry is the parametric curve underlying a sketch entity.
// Coordinates and parameters are always in base units (meters,
// radians) no matter what display unit the dimensions use.
type Geometry interface {
	geometry()
}

// LineGeometry is an infinite line through (PntX, PntY) with unit
// direction (DirX, DirY).
type LineGeometry struct {
	BTType string  `json:"btType"`
	PntX   float64 `json:"pntX"`
	PntY   float64 `json:"pntY"`
	DirX   float64 `json:"dirX"`
	DirY   float64 `json:"dirY"`
}

func (LineGeometry) geometry() {}

// Line returns line geometry through the given point and direction.
func Line(pntX, pntY, dirX, dirY float64) LineGeometry {
	return LineGeometry{BTType: TypeGeometryLine, PntX: pntX, PntY: pntY, DirX: dirX, DirY: dirY}
}

// CircleGeometry is a circle of Radius centered at (XCenter, YCenter).
// XDir/YDir fix the parameterization origin; arcs measure their
// start/end parameters from it.
type CircleGeometry struct {
	BTType    string  `json:"btType"`
	Radius    float64 `json:"radius"`
	XCenter   float64 `json:"xCenter"`
	YCenter   float64 `json:"yCenter"`
	XDir      float64 `json:"xDir"`
	YDir      float64 `json:"yDir"`
	Clockwise bool    `json:"clockwise"`
}

func (CircleGeometry) geometry() {}

// Circle returns circle geometry with the standard parameterization.
func Circle(xCenter, yCenter, radius float64) CircleGeometry {
	return CircleGeometry{
		BTType:  TypeGeometryCircle,
		Radius:  radius,
		XCenter: xCenter,
		YCenter: yCenter,
		XDir:    1.0,
		YDir:    0.0,
	}
}

// CurveSegment is a bounded span of a curve: a line segment or an arc.
// StartParam/EndParam bound the geometry's natural parameter: arc
// length in meters for lines, angle in radians for circles.
type CurveSegment struct {
	BTType         string   `json:"btType"`
	EntityID       string   `json:"entityId"`
	StartPointID   string   `json:"startPointId"`
	EndPointID     string   `json:"endPointId"`
	StartParam     float64  `json:"startParam"`
	EndParam       float64  `json:"endParam"`
	Geometry       Geometry `json:"geometry"`
	IsConstruction bool     `json:"isConstruction"`
}

func (CurveSegment) entity() {}

// Curve is an unbounded closed curve entity (a full circle).
type Curve struct {
	BTType         string   `json:"btType"`
	EntityID       string   `json:"entityId"`
	CenterID       string   `json:"centerId"`
	Geometry       Geometry `json:"geometry"`
	IsConstruction bool     `json:"isConstruction"`
}

func (Curve) entity() {}

// Constraint is one geometric or dimensional relationship in a
// sketch's constraint list. Entities are referenced by identifier
// value in the parameter list, never shared.
type Constraint struct {
	BTType         string      `json:"btType"`
	ConstraintType string      `json:"constraintType"`
	EntityID       string      `json:"entityId"`
	Parameters     []Parameter `json:"parameters"`
}

// NewConstraint returns a constraint of the given type.
func NewConstraint(constraintType, entityID string, params ...Parameter) Constraint {
	return Constraint{
		BTType:         TypeConstraint,
		ConstraintType: constraintType,
		EntityID:       entityID,
		Parameters:     params,
	}
}

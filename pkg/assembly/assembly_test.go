package assembly

import (
	"errors"
	"math"
	"testing"

	"github.com/chamferlabs/ftree/pkg/measure"
	"github.com/chamferlabs/ftree/pkg/wire"
)

func TestMateConnectorMinimal(t *testing.T) {
	payload, err := MateConnector{
		Name:           "Panel Face Connector",
		FaceID:         "JGD",
		OccurrencePath: []string{"MInstance1"},
	}.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if payload.BTType != "" {
		t.Errorf("envelope btType = %q, want empty", payload.BTType)
	}
	f := payload.Feature
	if f.BTType != wire.TypeMateConnector || f.FeatureType != "mateConnector" {
		t.Fatalf("feature header = %s/%s", f.BTType, f.FeatureType)
	}
	if len(f.Parameters) != 2 {
		t.Fatalf("minimal connector has %d parameters, want 2", len(f.Parameters))
	}

	origin := f.Parameters[0].(wire.ChoiceParameter)
	if origin.ParameterID != "originType" || origin.Value != "ON_ENTITY" {
		t.Errorf("originType = %+v", origin)
	}
	queryParam := f.Parameters[1].(wire.OccurrenceQueryListParameter)
	inference := queryParam.Queries[0].(wire.InferenceQuery)
	if inference.InferenceType != "CENTROID" {
		t.Errorf("inferenceType = %q", inference.InferenceType)
	}
	if len(inference.Path) != 1 || inference.Path[0] != "MInstance1" {
		t.Errorf("path = %v", inference.Path)
	}
	if len(inference.DeterministicIDs) != 1 || inference.DeterministicIDs[0] != "JGD" {
		t.Errorf("deterministicIds = %v", inference.DeterministicIDs)
	}
}

func TestMateConnectorOptions(t *testing.T) {
	payload, err := MateConnector{
		Name:          "Reoriented",
		FaceID:        "JGD",
		FlipPrimary:   true,
		SecondaryAxis: MinusY,
		Offset: &Offset{
			Translation:   [3]measure.Length{measure.Inches(1), {}, {}},
			Rotation:      measure.Degrees(90),
			RotationAbout: AboutZ,
		},
	}.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	ids := make([]string, 0)
	var translationX, rotation wire.DimensionParameter
	for _, p := range payload.Feature.Parameters {
		switch p := p.(type) {
		case wire.FlagParameter:
			ids = append(ids, p.ParameterID)
		case wire.ChoiceParameter:
			ids = append(ids, p.ParameterID)
			if p.ParameterID == "secondaryAxisType" && p.Value != "MINUS_Y" {
				t.Errorf("secondaryAxisType = %q", p.Value)
			}
		case wire.DimensionParameter:
			ids = append(ids, p.ParameterID)
			if p.ParameterID == "translationX" {
				translationX = p
			}
			if p.ParameterID == "rotation" {
				rotation = p
			}
		case wire.OccurrenceQueryListParameter:
			ids = append(ids, p.ParameterID)
		}
	}

	want := []string{
		"originType", "originQuery", "flipPrimary", "secondaryAxisType",
		"transform", "translationX", "translationY", "translationZ",
		"rotationType", "rotation",
	}
	if len(ids) != len(want) {
		t.Fatalf("parameter ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("parameter %d = %q, want %q", i, ids[i], want[i])
		}
	}

	// Offsets go out in base units.
	if translationX.Expression != "0.0254 m" {
		t.Errorf("translationX = %q, want 0.0254 m", translationX.Expression)
	}
	wantRot := "1.5707963267948966 rad"
	if rotation.Expression != wantRot {
		t.Errorf("rotation = %q, want %q", rotation.Expression, wantRot)
	}
}

func TestMateConnectorNeedsFace(t *testing.T) {
	_, err := MateConnector{Name: "Orphan"}.Build()
	if !errors.Is(err, ErrMissingConnector) {
		t.Errorf("error = %v, want ErrMissingConnector", err)
	}
}

func TestFastenedMate(t *testing.T) {
	payload, err := Mate{
		Name:       "Panel To Frame",
		Kind:       Fastened,
		ConnectorA: "FConnA",
		ConnectorB: "FConnB",
	}.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	f := payload.Feature
	if f.BTType != wire.TypeMate || f.FeatureType != "mate" {
		t.Fatalf("feature header = %s/%s", f.BTType, f.FeatureType)
	}

	kind := f.Parameters[0].(wire.ChoiceParameter)
	if kind.Value != "FASTENED" || kind.EnumName != "Mate type" {
		t.Errorf("mateType = %+v", kind)
	}
	connectors := f.Parameters[1].(wire.OccurrenceQueryListParameter)
	if len(connectors.Queries) != 2 {
		t.Fatalf("connector count = %d", len(connectors.Queries))
	}
	first := connectors.Queries[0].(wire.FeatureQuery)
	if first.FeatureID != "FConnA" {
		t.Errorf("first connector = %q, moving connector must come first", first.FeatureID)
	}
}

func TestSliderMateLimits(t *testing.T) {
	payload, err := Mate{
		Name:       "Drawer Slide",
		Kind:       Slider,
		ConnectorA: "FConnA",
		ConnectorB: "FConnB",
		Limits: &Limits{
			AxialMax: measure.Inches(14),
		},
	}.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	var got []string
	var maxExpr string
	for _, p := range payload.Feature.Parameters[2:] {
		switch p := p.(type) {
		case wire.FlagParameter:
			got = append(got, p.ParameterID)
		case wire.DimensionParameter:
			got = append(got, p.ParameterID)
			if p.ParameterID == "limitAxialZMax" {
				maxExpr = p.Expression
			}
		}
	}
	want := []string{"limitsEnabled", "limitAxialZMin", "limitAxialZMax"}
	if len(got) != len(want) {
		t.Fatalf("limit parameters = %v, want %v", got, want)
	}
	if maxExpr != "0.35559999999999997 m" && maxExpr != "0.3556 m" {
		t.Errorf("limitAxialZMax = %q", maxExpr)
	}
}

func TestRevoluteMateLimits(t *testing.T) {
	payload, err := Mate{
		Name:       "Door Hinge",
		Kind:       Revolute,
		ConnectorA: "FConnA",
		ConnectorB: "FConnB",
		Limits: &Limits{
			RotationMin: measure.Degrees(0),
			RotationMax: measure.Degrees(110),
		},
	}.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	var ids []string
	for _, p := range payload.Feature.Parameters[2:] {
		switch p := p.(type) {
		case wire.FlagParameter:
			ids = append(ids, p.ParameterID)
		case wire.DimensionParameter:
			ids = append(ids, p.ParameterID)
		}
	}
	want := []string{"limitsEnabled", "limitRotationMin", "limitRotationMax"}
	if len(ids) != len(want) {
		t.Fatalf("limit parameters = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("limit parameter %d = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestFastenedMateIgnoresLimits(t *testing.T) {
	payload, err := Mate{
		Name:       "Rigid",
		Kind:       Fastened,
		ConnectorA: "FConnA",
		ConnectorB: "FConnB",
		Limits:     &Limits{AxialMax: measure.Inches(1)},
	}.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(payload.Feature.Parameters) != 2 {
		t.Errorf("fastened mate has %d parameters, want 2", len(payload.Feature.Parameters))
	}
}

func TestMateNeedsBothConnectors(t *testing.T) {
	_, err := Mate{Name: "Half", ConnectorA: "FConnA"}.Build()
	if !errors.Is(err, ErrMissingConnector) {
		t.Errorf("error = %v, want ErrMissingConnector", err)
	}
}

func TestTranslationMatrix(t *testing.T) {
	m := Translation(10, 20, 30)
	tx, ty, tz := m.TranslationOf()
	if math.Abs(tx-0.254) > 1e-12 || math.Abs(ty-0.508) > 1e-12 || math.Abs(tz-0.762) > 1e-12 {
		t.Errorf("translation = (%v, %v, %v)", tx, ty, tz)
	}
	// Rotation block stays identity.
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Errorf("rotation block not identity: %v", m)
	}
}

func TestTransformRotationOrder(t *testing.T) {
	// 90 degrees about Z maps +X to +Y.
	m := Transform(0, 0, 0, 0, 0, 90)
	x, y, z := m.Apply(1, 0, 0)
	if math.Abs(x) > 1e-12 || math.Abs(y-1) > 1e-12 || math.Abs(z) > 1e-12 {
		t.Errorf("Rz(90)·(1,0,0) = (%v, %v, %v), want (0, 1, 0)", x, y, z)
	}

	// Combined rotation applies X first, then Y, then Z: Rz·Ry·Rx.
	got := Transform(0, 0, 0, 90, 90, 0)
	byHand := rotZ(0).Mul(rotY(math.Pi / 2)).Mul(rotX(math.Pi / 2))
	for i := range got {
		if math.Abs(got[i]-byHand[i]) > 1e-12 {
			t.Fatalf("matrix[%d] = %v, want %v", i, got[i], byHand[i])
		}
	}
}

func TestMatrixMulIdentity(t *testing.T) {
	m := Transform(1, 2, 3, 10, 20, 30)
	got := m.Mul(Identity())
	for i := range got {
		if math.Abs(got[i]-m[i]) > 1e-12 {
			t.Fatalf("m·I differs at %d: %v vs %v", i, got[i], m[i])
		}
	}
}

func rotX(a float64) Matrix {
	c, s := math.Cos(a), math.Sin(a)
	return Matrix{1, 0, 0, 0, 0, c, -s, 0, 0, s, c, 0, 0, 0, 0, 1}
}

func rotY(a float64) Matrix {
	c, s := math.Cos(a), math.Sin(a)
	return Matrix{c, 0, s, 0, 0, 1, 0, 0, -s, 0, c, 0, 0, 0, 0, 1}
}

func rotZ(a float64) Matrix {
	c, s := math.Cos(a), math.Sin(a)
	return Matrix{c, -s, 0, 0, s, c, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
}

package wire

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func marshal(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	return out
}

func TestSolidFeatureEnvelope(t *testing.T) {
	got := marshal(t, SolidFeature("extrude", "Side Panel", []Parameter{
		Boolean("oppositeDirection", false),
	}))

	want := map[string]any{
		"btType": "BTFeatureDefinitionCall-1406",
		"feature": map[string]any{
			"btType":      "BTMFeature-134",
			"featureType": "extrude",
			"name":        "Side Panel",
			"suppressed":  false,
			"namespace":   "",
			"parameters": []any{
				map[string]any{
					"btType":              "BTMParameterBoolean-144",
					"value":               false,
					"parameterId":         "oppositeDirection",
					"parameterName":       "",
					"libraryRelationType": "NONE",
				},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("solid feature envelope mismatch (-want +got):\n%s", diff)
	}
}

func TestQuantityParameterShape(t *testing.T) {
	got := marshal(t, Quantity("depth", "0.75 in", 0.01905))

	want := map[string]any{
		"btType":              "BTMParameterQuantity-147",
		"isInteger":           false,
		"value":               0.01905,
		"units":               "",
		"expression":          "0.75 in",
		"parameterId":         "depth",
		"parameterName":       "",
		"libraryRelationType": "NONE",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("quantity parameter mismatch (-want +got):\n%s", diff)
	}
}

func TestIntegerQuantity(t *testing.T) {
	got := marshal(t, IntegerQuantity("instanceCount", "4", 4))
	if got["isInteger"] != true {
		t.Error("instance count should marshal isInteger true")
	}
	if got["value"] != 4.0 {
		t.Errorf("value = %v, want 4", got["value"])
	}
}

func TestDimensionParameterShape(t *testing.T) {
	// Short form: no value/units/parameterName fields at all.
	got := marshal(t, Dimension("length", "#side_cabinet_height"))
	want := map[string]any{
		"btType":      "BTMParameterQuantity-147",
		"expression":  "#side_cabinet_height",
		"parameterId": "length",
		"isInteger":   false,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dimension parameter mismatch (-want +got):\n%s", diff)
	}
}

func TestDeterministicNeverNull(t *testing.T) {
	data, err := json.Marshal(Deterministic())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	got := string(data)
	want := `{"btType":"BTMIndividualQuery-138","deterministicIds":[]}`
	if got != want {
		t.Errorf("empty query = %s, want %s", got, want)
	}
}

func TestScriptQueryStatementNull(t *testing.T) {
	got := marshal(t, Script(`query = qCreatedBy(makeId("TOP"), EntityType.EDGE);`))
	v, present := got["queryStatement"]
	if !present {
		t.Fatal("queryStatement must be present")
	}
	if v != nil {
		t.Errorf("queryStatement = %v, want null", v)
	}
	raw := got["deterministicIds"]
	if ids, ok := raw.([]any); !ok || len(ids) != 0 {
		t.Errorf("deterministicIds = %v, want []", raw)
	}
}

func TestSketchRegionQuery(t *testing.T) {
	got := marshal(t, SketchRegion("FSidePanelProfile"))
	if got["queryString"] != `query = qSketchRegion(id + "FSidePanelProfile", true);` {
		t.Errorf("queryString = %q", got["queryString"])
	}
	if got["filterInnerLoops"] != true {
		t.Error("filterInnerLoops should be true")
	}
	if got["featureId"] != "FSidePanelProfile" {
		t.Errorf("featureId = %q", got["featureId"])
	}
}

func TestCentroidInference(t *testing.T) {
	got := marshal(t, CentroidInference([]string{"MInstance1"}, "JGD"))
	if got["inferenceType"] != "CENTROID" {
		t.Errorf("inferenceType = %q", got["inferenceType"])
	}
	if diff := cmp.Diff([]any{"MInstance1"}, got["path"]); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestConstraintShape(t *testing.T) {
	c := NewConstraint("COINCIDENT", "rect.1.corner0",
		String("localFirst", "rect.1.bottom.start"),
		String("localSecond", "rect.1.left.end"),
	)
	got := marshal(t, c)
	if got["btType"] != "BTMSketchConstraint-2" {
		t.Errorf("btType = %q", got["btType"])
	}
	if got["constraintType"] != "COINCIDENT" {
		t.Errorf("constraintType = %q", got["constraintType"])
	}
	params := got["parameters"].([]any)
	if len(params) != 2 {
		t.Fatalf("parameter count = %d", len(params))
	}
	first := params[0].(map[string]any)
	if first["btType"] != "BTMParameterString-149" || first["value"] != "rect.1.bottom.start" {
		t.Errorf("first parameter = %v", first)
	}
}

func TestLineGeometryShape(t *testing.T) {
	got := marshal(t, Line(0.0254, 0, 1, 0))
	if got["btType"] != "BTCurveGeometryLine-117" {
		t.Errorf("btType = %q", got["btType"])
	}
	if got["pntX"] != 0.0254 || got["dirX"] != 1.0 {
		t.Errorf("geometry = %v", got)
	}
}

package wire

// Query btType discriminators.
const (
	TypeIndividualQuery   = "BTMIndividualQuery-138"
	TypeSketchRegionQuery = "BTMIndividualSketchRegionQuery-140"
	TypeInferenceQuery    = "BTMInferenceQueryWithOccurrence-1083"
	TypeFeatureQuery      = "BTMFeatureQueryWithOccurrence-157"
)

// Query selects geometry for a query-list parameter.
type Query interface {
	query() // marker method restricting implementations to this package
}

// IndividualQuery selects geometry by deterministic identifiers.
type IndividualQuery struct {
	BTType           string   `json:"btType"`
	DeterministicIDs []string `json:"deterministicIds"`
}

func (IndividualQuery) query() {}

// Deterministic returns a query selecting the given deterministic IDs.
// The ID list is never null on the wire, only empty.
func Deterministic(ids ...string) IndividualQuery {
	if ids == nil {
		ids = []string{}
	}
	return IndividualQuery{BTType: TypeIndividualQuery, DeterministicIDs: ids}
}

// ScriptQuery selects geometry with a FeatureScript query string. The
// queryStatement field is always present and null in observed payloads.
type ScriptQuery struct {
	BTType           string   `json:"btType"`
	DeterministicIDs []string `json:"deterministicIds"`
	QueryStatement   *string  `json:"queryStatement"`
	QueryString      string   `json:"queryString"`
}

func (ScriptQuery) query() {}

// Script returns a FeatureScript query.
func Script(queryString string) ScriptQuery {
	return ScriptQuery{
		BTType:           TypeIndividualQuery,
		DeterministicIDs: []string{},
		QueryString:      queryString,
	}
}

// SketchRegionQuery selects the closed regions of a sketch feature,
// the input shape for extrude/revolve/thicken.
type SketchRegionQuery struct {
	BTType           string   `json:"btType"`
	QueryStatement   *string  `json:"queryStatement"`
	FilterInnerLoops bool     `json:"filterInnerLoops"`
	QueryString      string   `json:"queryString"`
	FeatureID        string   `json:"featureId"`
	DeterministicIDs []string `json:"deterministicIds"`
}

func (SketchRegionQuery) query() {}

// SketchRegion returns a region query for the given sketch feature ID.
func SketchRegion(sketchFeatureID string) SketchRegionQuery {
	return SketchRegionQuery{
		BTType:           TypeSketchRegionQuery,
		FilterInnerLoops: true,
		QueryString:      `query = qSketchRegion(id + "` + sketchFeatureID + `", true);`,
		FeatureID:        sketchFeatureID,
		DeterministicIDs: []string{},
	}
}

// InferenceQuery places an assembly mate connector on geometry of an
// instance, inferring the anchor point from the geometry.
type InferenceQuery struct {
	BTType           string   `json:"btType"`
	InferenceType    string   `json:"inferenceType"`
	Path             []string `json:"path"`
	DeterministicIDs []string `json:"deterministicIds"`
}

func (InferenceQuery) query() {}

// CentroidInference returns an inference query anchored at the
// centroid of the identified geometry.
func CentroidInference(occurrencePath []string, ids ...string) InferenceQuery {
	if occurrencePath == nil {
		occurrencePath = []string{}
	}
	if ids == nil {
		ids = []string{}
	}
	return InferenceQuery{
		BTType:           TypeInferenceQuery,
		InferenceType:    "CENTROID",
		Path:             occurrencePath,
		DeterministicIDs: ids,
	}
}

// FeatureQuery references another feature by ID, used by mates to
// name their mate connectors.
type FeatureQuery struct {
	BTType    string   `json:"btType"`
	FeatureID string   `json:"featureId"`
	Path      []string `json:"path"`
	QueryData string   `json:"queryData"`
}

func (FeatureQuery) query() {}

// FeatureRef returns a feature query for the given feature ID.
func FeatureRef(featureID string) FeatureQuery {
	return FeatureQuery{BTType: TypeFeatureQuery, FeatureID: featureID, Path: []string{}}
}

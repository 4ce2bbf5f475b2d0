package wire

// BTM type discriminators observed in working payloads.
const (
	TypeFeature               = "BTMFeature-134"
	TypeSketch                = "BTMSketch-151"
	TypeMateConnector         = "BTMMateConnector-66"
	TypeMate                  = "BTMMate-64"
	TypeFeatureDefinitionCall = "BTFeatureDefinitionCall-1406"
)

// Feature is one step of the feature tree in submission form. The
// featureType string selects the remote operation ("extrude",
// "newSketch", ...); Parameters is an ordered list whose order the
// remote solver is sensitive to. Entities and Constraints are only
// populated for sketches. A Feature is immutable once built; builders
// return fresh values rather than mutating.
type Feature struct {
	BTType      string       `json:"btType"`
	FeatureType string       `json:"featureType"`
	Name        string       `json:"name"`
	Suppressed  bool         `json:"suppressed"`
	Namespace   *string      `json:"namespace,omitempty"`
	Parameters  []Parameter  `json:"parameters"`
	Entities    []Entity     `json:"entities,omitempty"`
	Constraints []Constraint `json:"constraints,omitempty"`
}

// FeatureDefinitionCall is the top-level envelope posted to the
// feature endpoint. Solid features carry the BTFeatureDefinitionCall
// discriminator; sketch and assembly features omit it.
type FeatureDefinitionCall struct {
	BTType  string   `json:"btType,omitempty"`
	Feature *Feature `json:"feature"`
}

// EmptyNamespace is the explicit "" namespace BTMFeature-134 payloads
// carry. Observed sketch and mate payloads omit the field entirely.
var EmptyNamespace = ""

// SolidFeature returns a BTMFeature-134 skeleton wrapped in a
// definition-call envelope.
func SolidFeature(featureType, name string, params []Parameter) *FeatureDefinitionCall {
	return &FeatureDefinitionCall{
		BTType: TypeFeatureDefinitionCall,
		Feature: &Feature{
			BTType:      TypeFeature,
			FeatureType: featureType,
			Name:        name,
			Namespace:   &EmptyNamespace,
			Parameters:  params,
		},
	}
}

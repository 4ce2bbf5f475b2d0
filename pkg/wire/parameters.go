package wire

// Parameter btType discriminators.
const (
	TypeParameterQuantity            = "BTMParameterQuantity-147"
	TypeParameterEnum                = "BTMParameterEnum-145"
	TypeParameterString              = "BTMParameterString-149"
	TypeParameterBoolean             = "BTMParameterBoolean-144"
	TypeParameterQueryList           = "BTMParameterQueryList-148"
	TypeParameterOccurrenceQueryList = "BTMParameterQueryWithOccurrenceList-67"
)

// Parameter is one entry of a feature's ordered parameter list.
type Parameter interface {
	parameter() // marker method restricting implementations to this package
}

// ---------------------------------------------------------------------------
// Solid-feature parameter forms
// ---------------------------------------------------------------------------
//
// BTMFeature-134 payloads carry the long parameter form with explicit
// empty units/parameterName/libraryRelationType fields. Sketch
// constraints and assembly features use the short forms further down.
// Both forms were captured from accepted submissions; they are kept
// separate rather than merged behind omitempty so each serializes
// byte-for-byte like its reference payload.

// QuantityParameter is the long form of BTMParameterQuantity-147.
type QuantityParameter struct {
	BTType              string  `json:"btType"`
	IsInteger           bool    `json:"isInteger"`
	Value               float64 `json:"value"`
	Units               string  `json:"units"`
	Expression          string  `json:"expression"`
	ParameterID         string  `json:"parameterId"`
	ParameterName       string  `json:"parameterName"`
	LibraryRelationType string  `json:"libraryRelationType"`
}

func (QuantityParameter) parameter() {}

// Quantity returns a long-form quantity parameter.
func Quantity(parameterID, expression string, value float64) QuantityParameter {
	return QuantityParameter{
		BTType:              TypeParameterQuantity,
		Value:               value,
		Expression:          expression,
		ParameterID:         parameterID,
		LibraryRelationType: "NONE",
	}
}

// IntegerQuantity returns a long-form quantity parameter holding an
// integer count. The expression is the bare decimal rendering.
func IntegerQuantity(parameterID, expression string, value int) QuantityParameter {
	return QuantityParameter{
		BTType:              TypeParameterQuantity,
		IsInteger:           true,
		Value:               float64(value),
		Expression:          expression,
		ParameterID:         parameterID,
		LibraryRelationType: "NONE",
	}
}

// EnumParameter is the long form of BTMParameterEnum-145.
type EnumParameter struct {
	BTType              string `json:"btType"`
	Namespace           string `json:"namespace"`
	EnumName            string `json:"enumName"`
	Value               string `json:"value"`
	ParameterID         string `json:"parameterId"`
	ParameterName       string `json:"parameterName"`
	LibraryRelationType string `json:"libraryRelationType"`
}

func (EnumParameter) parameter() {}

// Enum returns a long-form enum parameter.
func Enum(parameterID, enumName, value string) EnumParameter {
	return EnumParameter{
		BTType:              TypeParameterEnum,
		EnumName:            enumName,
		Value:               value,
		ParameterID:         parameterID,
		LibraryRelationType: "NONE",
	}
}

// BooleanParameter is the long form of BTMParameterBoolean-144.
type BooleanParameter struct {
	BTType              string `json:"btType"`
	Value               bool   `json:"value"`
	ParameterID         string `json:"parameterId"`
	ParameterName       string `json:"parameterName"`
	LibraryRelationType string `json:"libraryRelationType"`
}

func (BooleanParameter) parameter() {}

// Boolean returns a long-form boolean parameter.
func Boolean(parameterID string, value bool) BooleanParameter {
	return BooleanParameter{
		BTType:              TypeParameterBoolean,
		Value:               value,
		ParameterID:         parameterID,
		LibraryRelationType: "NONE",
	}
}

// QueryListParameter is the long form of BTMParameterQueryList-148.
type QueryListParameter struct {
	BTType              string  `json:"btType"`
	Queries             []Query `json:"queries"`
	ParameterID         string  `json:"parameterId"`
	ParameterName       string  `json:"parameterName"`
	LibraryRelationType string  `json:"libraryRelationType"`
}

func (QueryListParameter) parameter() {}

// QueryList returns a long-form query-list parameter.
func QueryList(parameterID string, queries ...Query) QueryListParameter {
	return QueryListParameter{
		BTType:              TypeParameterQueryList,
		Queries:             queries,
		ParameterID:         parameterID,
		LibraryRelationType: "NONE",
	}
}

// ---------------------------------------------------------------------------
// Short parameter forms (sketch constraints, assembly features)
// ---------------------------------------------------------------------------

// StringParameter binds an entity identifier to a constraint slot
// (localFirst/localSecond).
type StringParameter struct {
	BTType      string `json:"btType"`
	Value       string `json:"value"`
	ParameterID string `json:"parameterId"`
}

func (StringParameter) parameter() {}

// String returns a short-form string parameter.
func String(parameterID, value string) StringParameter {
	return StringParameter{BTType: TypeParameterString, Value: value, ParameterID: parameterID}
}

// DimensionParameter is the short form of BTMParameterQuantity-147
// used inside sketch constraints and assembly features: expression
// only, no redundant value/units fields.
type DimensionParameter struct {
	BTType      string `json:"btType"`
	Expression  string `json:"expression"`
	ParameterID string `json:"parameterId"`
	IsInteger   bool   `json:"isInteger"`
}

func (DimensionParameter) parameter() {}

// Dimension returns a short-form quantity parameter.
func Dimension(parameterID, expression string) DimensionParameter {
	return DimensionParameter{BTType: TypeParameterQuantity, Expression: expression, ParameterID: parameterID}
}

// ChoiceParameter is the short form of BTMParameterEnum-145.
type ChoiceParameter struct {
	BTType      string `json:"btType"`
	ParameterID string `json:"parameterId"`
	EnumName    string `json:"enumName"`
	Value       string `json:"value"`
}

func (ChoiceParameter) parameter() {}

// Choice returns a short-form enum parameter.
func Choice(parameterID, enumName, value string) ChoiceParameter {
	return ChoiceParameter{BTType: TypeParameterEnum, ParameterID: parameterID, EnumName: enumName, Value: value}
}

// FlagParameter is the short form of BTMParameterBoolean-144.
type FlagParameter struct {
	BTType      string `json:"btType"`
	Value       bool   `json:"value"`
	ParameterID string `json:"parameterId"`
}

func (FlagParameter) parameter() {}

// Flag returns a short-form boolean parameter.
func Flag(parameterID string, value bool) FlagParameter {
	return FlagParameter{BTType: TypeParameterBoolean, Value: value, ParameterID: parameterID}
}

// CompactQueryListParameter is the short form of
// BTMParameterQueryList-148 used by sketch and thicken payloads.
type CompactQueryListParameter struct {
	BTType      string  `json:"btType"`
	Queries     []Query `json:"queries"`
	ParameterID string  `json:"parameterId"`
}

func (CompactQueryListParameter) parameter() {}

// CompactQueryList returns a short-form query-list parameter.
func CompactQueryList(parameterID string, queries ...Query) CompactQueryListParameter {
	return CompactQueryListParameter{
		BTType:      TypeParameterQueryList,
		Queries:     queries,
		ParameterID: parameterID,
	}
}

// OccurrenceQueryListParameter is BTMParameterQueryWithOccurrenceList-67,
// used by assembly mate and mate connector features.
type OccurrenceQueryListParameter struct {
	BTType      string  `json:"btType"`
	ParameterID string  `json:"parameterId"`
	Queries     []Query `json:"queries"`
}

func (OccurrenceQueryListParameter) parameter() {}

// OccurrenceQueryList returns an occurrence query-list parameter.
func OccurrenceQueryList(parameterID string, queries ...Query) OccurrenceQueryListParameter {
	return OccurrenceQueryListParameter{
		BTType:      TypeParameterOccurrenceQueryList,
		ParameterID: parameterID,
		Queries:     queries,
	}
}

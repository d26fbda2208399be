package domain

// Intent is the inferred category of a user's stated problem
type Intent string

const (
	IntentRetail   Intent = "retail"
	IntentProperty Intent = "property"
	IntentSchool   Intent = "school"
	IntentGeneric  Intent = "generic"
)

// AnswerKey identifies the field a follow-up answer writes to
type AnswerKey string

const (
	KeyGeography       AnswerKey = "geography"
	KeyCatchment       AnswerKey = "catchment"
	KeyFocus           AnswerKey = "focus"
	KeyAnchor          AnswerKey = "anchor"
	KeyStationName     AnswerKey = "stationName"
	KeyTargetMarket    AnswerKey = "targetMarket"
	KeyHorizon         AnswerKey = "horizon"
	KeyContextCheck    AnswerKey = "contextCheck"
	KeyAddressOrSuburb AnswerKey = "addressOrSuburb"
	KeyMode            AnswerKey = "mode"
	KeyMaxMins         AnswerKey = "maxMins"
	KeySupports        AnswerKey = "supports"
	KeySector          AnswerKey = "sector"
	KeyAudience        AnswerKey = "audience"
	KeyProduct         AnswerKey = "product"
	KeyPriceRange      AnswerKey = "priceRange"
	KeyPurpose         AnswerKey = "purpose"
)

var validAnswerKeys = map[AnswerKey]bool{
	KeyGeography: true, KeyCatchment: true, KeyFocus: true, KeyAnchor: true,
	KeyStationName: true, KeyTargetMarket: true, KeyHorizon: true, KeyContextCheck: true,
	KeyAddressOrSuburb: true, KeyMode: true, KeyMaxMins: true, KeySupports: true,
	KeySector: true, KeyAudience: true, KeyProduct: true, KeyPriceRange: true,
	KeyPurpose: true,
}

// Valid reports whether k is one of the enumerated answer keys
func (k AnswerKey) Valid() bool {
	return validAnswerKeys[k]
}

// AnswerKind tags the variant carried by an AnswerValue
type AnswerKind string

const (
	AnswerText      AnswerKind = "text"
	AnswerNumber    AnswerKind = "number"
	AnswerBool      AnswerKind = "bool"
	AnswerChoice    AnswerKind = "choice"
	AnswerGeography AnswerKind = "geography"
	AnswerNone      AnswerKind = "none"
)

// GeographyValue is a structured geography answer. Lat/Lon ranges are not
// validated here.
type GeographyValue struct {
	Type  string   `json:"type"` // suburb, sa2
	Value string   `json:"value"`
	Lat   *float64 `json:"lat,omitempty"`
	Lon   *float64 `json:"lon,omitempty"`
}

// AnswerValue is a tagged union over the value types a follow-up answer can
// carry. The "none" kind models an explicit null chip selection.
type AnswerValue struct {
	Kind      AnswerKind      `json:"kind"`
	Text      string          `json:"text,omitempty"`
	Number    float64         `json:"number,omitempty"`
	Bool      bool            `json:"bool,omitempty"`
	Choice    string          `json:"choice,omitempty"`
	Geography *GeographyValue `json:"geography,omitempty"`
}

// TextAnswer wraps free-text input
func TextAnswer(s string) AnswerValue {
	return AnswerValue{Kind: AnswerText, Text: s}
}

// NumberAnswer wraps a numeric input
func NumberAnswer(n float64) AnswerValue {
	return AnswerValue{Kind: AnswerNumber, Number: n}
}

// BoolAnswer wraps a boolean input
func BoolAnswer(b bool) AnswerValue {
	return AnswerValue{Kind: AnswerBool, Bool: b}
}

// ChoiceAnswer wraps a chip selection value
func ChoiceAnswer(v string) AnswerValue {
	return AnswerValue{Kind: AnswerChoice, Choice: v}
}

// GeographyAnswer wraps a structured geography value
func GeographyAnswer(g GeographyValue) AnswerValue {
	return AnswerValue{Kind: AnswerGeography, Geography: &g}
}

// NoneAnswer represents the null "None" chip
func NoneAnswer() AnswerValue {
	return AnswerValue{Kind: AnswerNone}
}

// IsNone reports whether the value is an explicit null selection
func (v AnswerValue) IsNone() bool {
	return v.Kind == AnswerNone
}

// AnswerMap holds the answers collected so far for one session
type AnswerMap map[AnswerKey]AnswerValue

// Clone returns a copy of the map
func (m AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// DatasetRef pairs a dataset identifier with its displayed fit score
type DatasetRef struct {
	ID       string `json:"id"`
	FitScore int    `json:"fitScore"`
}

// ProblemSession tracks one user's in-progress problem. The intent is derived
// once at creation and never changes; recommendations are recomputed in full
// on every answer write.
type ProblemSession struct {
	ID                  string       `json:"id"`
	RawProblem          string       `json:"rawProblem"`
	DerivedIntent       Intent       `json:"derivedIntent"`
	Answers             AnswerMap    `json:"answers"`
	RecommendedDatasets []DatasetRef `json:"recommendedDatasets"`
	CreatedAt           int64        `json:"createdAt"` // epoch millis
}

// Clone returns a deep copy of the session
func (p *ProblemSession) Clone() *ProblemSession {
	out := *p
	out.Answers = p.Answers.Clone()
	out.RecommendedDatasets = append([]DatasetRef(nil), p.RecommendedDatasets...)
	return &out
}

package domain

// DatasetSource is the publishing category of a dataset
type DatasetSource string

const (
	SourceABS   DatasetSource = "ABS"
	SourceACARA DatasetSource = "ACARA"
	SourceGTFS  DatasetSource = "GTFS"
)

// ChartType is the kind of sample chart attached to a dataset
type ChartType string

const (
	ChartBar  ChartType = "bar"
	ChartLine ChartType = "line"
	ChartPie  ChartType = "pie"
)

// SampleChart describes one illustrative chart for a dataset
type SampleChart struct {
	Type ChartType                `json:"type"`
	XKey string                   `json:"xKey"`
	YKey string                   `json:"yKey"`
	Data []map[string]interface{} `json:"data"`
}

// CodeSnippets holds example integration code keyed by target language
type CodeSnippets struct {
	Python     string `json:"python,omitempty"`
	JavaScript string `json:"javascript,omitempty"`
	SQL        string `json:"sql,omitempty"`
}

// Dataset is one immutable catalog entry. The catalog is loaded once and
// never mutated at runtime.
type Dataset struct {
	ID              string                   `json:"id"`
	Title           string                   `json:"title"`
	Source          DatasetSource            `json:"source"`
	Link            string                   `json:"link,omitempty"`
	LastUpdatedText string                   `json:"lastUpdatedText"`
	Tags            []string                 `json:"tags"`
	GeographyLevels []string                 `json:"geographyLevels"`
	PreviewRows     []map[string]interface{} `json:"previewRows"`
	SampleChart     SampleChart              `json:"sampleChart"`
	CodeSnippets    CodeSnippets             `json:"codeSnippets"`
	JoinKeys        []string                 `json:"joinKeys"`
	HowToJoin       string                   `json:"howToJoin"`
}

// UseCase is a hand-authored success story shown alongside the catalog
type UseCase struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	DatasetsUsed []string `json:"datasetsUsed"`
	Outcome      string   `json:"outcome"`
	Industry     string   `json:"industry"`
}

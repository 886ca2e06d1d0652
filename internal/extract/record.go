package extract

// Document is the decoded text of one résumé and the name of its source.
type Document struct {
	Name string
	Text string
}

// Record is the structured result for one document. It is built once by
// Extractor.Extract and not modified afterwards.
type Record struct {
	File         string         `json:"file"`
	Name         string         `json:"name"`
	Contacts     Contacts       `json:"contacts"`
	Skills       []string       `json:"skills"`
	CGPA         string         `json:"cgpa"`
	Projects     []string       `json:"projects"`
	ProjectsText string         `json:"projects_text"`
	Experience   []Experience   `json:"experience"`
	Confidence   map[string]int `json:"confidence"`
	Language     string         `json:"language"`
	RawText      string         `json:"raw_text"`
}

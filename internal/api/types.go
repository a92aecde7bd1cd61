package api

// SummarizeRequest is the body of POST /summarize. Exactly one of Content and
// ContentURI must be set. Percent and TopN fall back to the configured
// defaults when zero; TopN overrides Percent when both are present.
type SummarizeRequest struct {
	Content    string  `json:"content,omitempty"`
	ContentURI string  `json:"contentUri,omitempty"`
	Language   string  `json:"language,omitempty"`
	Percent    float64 `json:"percent,omitempty"`
	TopN       int     `json:"topN,omitempty"`
	Verbose    bool    `json:"verbose,omitempty"`
}

type SummarizeResponse struct {
	Info    string `json:"info"`
	Summary string `json:"summary"`
}

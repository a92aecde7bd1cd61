package rosette

import "fmt"

// DocumentParameters is the request body accepted by the Rosette document
// endpoints. Exactly one of Content and ContentURI should be set.
type DocumentParameters struct {
	Content    string `json:"content,omitempty"`
	ContentURI string `json:"contentUri,omitempty"`
	Language   string `json:"language,omitempty"`
}

type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

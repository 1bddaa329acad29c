package models

import (
	"github.com/BerylCAtieno/resume-autofill-api/internal/fieldparser"
)

type PrefillRequest struct {
	File        []byte
	Filename    string
	ContentType string
}

// PrefillResponse is what the application form merges into its state.
type PrefillResponse struct {
	Filename   string                       `json:"filename"`
	MediaType  string                       `json:"media_type"`
	Fields     fieldparser.CandidateFields  `json:"fields"`
	Matches    fieldparser.CandidateMatches `json:"matches"`
	TextLength int                          `json:"text_length"`
}

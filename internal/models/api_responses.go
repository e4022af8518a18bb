package models

import "github.com/google/uuid"

// LookupAPIResponse is the JSON form of a successful lookup.
type LookupAPIResponse struct {
	LookupID    uuid.UUID `json:"lookup_id"`
	Word        string    `json:"word"`
	Definitions []string  `json:"definitions"`
	AudioToken  string    `json:"audio_token,omitempty"`
	AudioURL    string    `json:"audio_url,omitempty"`
}

// LookupAPIError is the JSON body of a failed lookup.
type LookupAPIError struct {
	Status      string    `json:"status"`
	Error       string    `json:"error"`
	LookupID    uuid.UUID `json:"lookup_id"`
	Suggestions []string  `json:"suggestions,omitempty"`
}

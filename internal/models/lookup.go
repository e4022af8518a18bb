package models

// LookupResult is the outcome of one successful dictionary lookup.
// Word, Definitions and AudioToken belong together and are always replaced as
// one value.
type LookupResult struct {
	Word        string   `json:"word"`
	Definitions []string `json:"definitions"`
	AudioToken  string   `json:"audio_token,omitempty"`
}

// HasAudio reports whether the lookup carried a pronunciation token.
func (r *LookupResult) HasAudio() bool {
	return r != nil && r.AudioToken != ""
}

// IsZero reports whether no lookup has succeeded yet.
func (r *LookupResult) IsZero() bool {
	return r == nil || (r.Word == "" && len(r.Definitions) == 0 && r.AudioToken == "")
}

package models

import "testing"

func TestLookupResult_HasAudio(t *testing.T) {
	tests := []struct {
		name     string
		result   *LookupResult
		expected bool
	}{
		{"nil result", nil, false},
		{"no token", &LookupResult{Word: "cat"}, false},
		{"with token", &LookupResult{Word: "cat", AudioToken: "cat00001"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.HasAudio(); got != tt.expected {
				t.Errorf("HasAudio() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLookupResult_IsZero(t *testing.T) {
	tests := []struct {
		name     string
		result   *LookupResult
		expected bool
	}{
		{"nil result", nil, true},
		{"empty result", &LookupResult{}, true},
		{"empty definitions slice", &LookupResult{Definitions: []string{}}, true},
		{"word only", &LookupResult{Word: "cat"}, false},
		{"definitions only", &LookupResult{Definitions: []string{"a feline"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.IsZero(); got != tt.expected {
				t.Errorf("IsZero() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestOutcomeConstants(t *testing.T) {
	// Values are stored in the database and exported as metric labels.
	if OutcomeResolved != "resolved" {
		t.Errorf("OutcomeResolved = %q, want %q", OutcomeResolved, "resolved")
	}
	if OutcomeNoData != "no_data" {
		t.Errorf("OutcomeNoData = %q, want %q", OutcomeNoData, "no_data")
	}
	if OutcomeUpstreamError != "upstream_error" {
		t.Errorf("OutcomeUpstreamError = %q, want %q", OutcomeUpstreamError, "upstream_error")
	}
	if OutcomeMalformed != "malformed" {
		t.Errorf("OutcomeMalformed = %q, want %q", OutcomeMalformed, "malformed")
	}
}

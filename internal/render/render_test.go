package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordlookup/internal/models"
)

const media = "https://media.merriam-webster.com/soundc11"

func TestBuild_NumbersAndCapitalizesDefinitions(t *testing.T) {
	t.Parallel()

	result := &models.LookupResult{
		Word:        "voluminous",
		Definitions: []string{"having great volume", "numerous", "Already capitalized"},
	}

	view := Build(result, media)

	assert.Equal(t, "voluminous", view.Heading)
	require.Len(t, view.Definitions, 3)
	assert.Equal(t, []Definition{
		{Number: 1, Text: "Having great volume"},
		{Number: 2, Text: "Numerous"},
		{Number: 3, Text: "Already capitalized"},
	}, view.Definitions)
}

func TestBuild_ExactlyNEntries(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 7} {
		defs := make([]string, n)
		for i := range defs {
			defs[i] = "sense"
		}

		view := Build(&models.LookupResult{Word: "w", Definitions: defs}, media)

		require.Len(t, view.Definitions, n)
		for i, d := range view.Definitions {
			assert.Equal(t, i+1, d.Number)
			assert.Equal(t, "Sense", d.Text)
		}
	}
}

func TestBuild_WithAudio(t *testing.T) {
	t.Parallel()

	view := Build(&models.LookupResult{Word: "abc", AudioToken: "abc"}, media)

	assert.True(t, view.HasAudio)
	assert.Equal(t, media+"/a/abc.wav", view.AudioSrc)
}

func TestBuild_WithoutAudio(t *testing.T) {
	t.Parallel()

	view := Build(&models.LookupResult{Word: "cat", Definitions: []string{"a feline"}}, media)

	assert.False(t, view.HasAudio)
	assert.Empty(t, view.AudioSrc)
	assert.Equal(t, FallbackAudioText, view.FallbackText)
}

func TestBuild_NilResult(t *testing.T) {
	t.Parallel()

	view := Build(nil, media)

	assert.Empty(t, view.Heading)
	assert.NotNil(t, view.Definitions)
	assert.Empty(t, view.Definitions)
	assert.False(t, view.HasAudio)
	assert.Equal(t, FallbackAudioText, view.FallbackText)
}

func TestBuild_DoesNotMutateResult(t *testing.T) {
	t.Parallel()

	result := &models.LookupResult{Word: "cat", Definitions: []string{"a feline"}}
	Build(result, media)

	assert.Equal(t, []string{"a feline"}, result.Definitions)
}

func TestCapitalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"word", "Word"},
		{"Word", "Word"},
		{"two words", "Two words"},
		{"élan", "Élan"},
		{"1st place", "1st place"},
		{"", ""},
		{"a", "A"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Capitalize(tt.in), "Capitalize(%q)", tt.in)
	}
}

// Package render turns a lookup result into the values the results view prints.
package render

import (
	"unicode"
	"unicode/utf8"

	"wordlookup/internal/dictionary"
	"wordlookup/internal/models"
)

// FallbackAudioText is shown when a result has no pronunciation clip.
const FallbackAudioText = "No pronunciation available"

// Definition is one numbered definition line.
type Definition struct {
	Number int
	Text   string
}

// View is everything the results template needs. It holds no behavior.
type View struct {
	Heading      string
	Definitions  []Definition
	HasAudio     bool
	AudioSrc     string
	FallbackText string
}

// Build is a pure function of the lookup result: the heading is the word,
// definitions are numbered from 1 in their original order with the first
// letter capitalized, and the audio source is derived from the token.
func Build(result *models.LookupResult, mediaBase string) View {
	view := View{
		Definitions:  []Definition{},
		FallbackText: FallbackAudioText,
	}
	if result == nil {
		return view
	}

	view.Heading = result.Word

	view.Definitions = make([]Definition, len(result.Definitions))
	for i, def := range result.Definitions {
		view.Definitions[i] = Definition{Number: i + 1, Text: Capitalize(def)}
	}

	if result.HasAudio() {
		view.HasAudio = true
		view.AudioSrc = dictionary.AudioURL(mediaBase, result.AudioToken)
	}

	return view
}

// Capitalize upper-cases the first character and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

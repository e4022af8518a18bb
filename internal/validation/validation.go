package validation

import (
	"net/url"
	"regexp"
	"strings"
)

// MaxWordLength bounds a search term in bytes.
const MaxWordLength = 100

// WordPattern defines the valid search term format: starts with a letter or
// digit, then letters, digits, spaces, hyphens, apostrophes and periods.
var WordPattern = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} '.-]*$`)

// ValidateWord checks if a search term is non-empty and matches the allowed pattern.
func ValidateWord(word string) bool {
	if word == "" || len(word) > MaxWordLength {
		return false
	}
	return WordPattern.MatchString(word)
}

// NormalizeWord trims surrounding whitespace and collapses inner runs of
// whitespace to a single space. Case is preserved: the dictionary
// distinguishes "Polish" from "polish".
func NormalizeWord(word string) string {
	return strings.Join(strings.Fields(word), " ")
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	// Parse the URL
	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	// Check scheme - only allow http and https
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	// Ensure host is present
	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

package dictionary

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// AudioURL builds the pronunciation clip URL for token on the media host:
// <mediaBase>/<first character of token>/<token>.wav. Returns "" for an empty token.
func AudioURL(mediaBase, token string) string {
	if token == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(token)
	subdir := token[:size]

	return strings.TrimRight(mediaBase, "/") + "/" + url.PathEscape(subdir) + "/" + url.PathEscape(token) + ".wav"
}

// Package static embeds the stylesheet and other public assets.
package static

import "embed"

// FS holds the files served under /static/.
//
//go:embed *.css
var FS embed.FS

// Package views embeds the HTML templates.
package views

import "embed"

// FS holds every template, addressed by path without the .html extension
// (e.g. "index", "layouts/main", "partials/result").
//
//go:embed *.html layouts/*.html partials/*.html
var FS embed.FS

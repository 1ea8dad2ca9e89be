// Package templates embeds the page templates rendered by fiber's html engine.
package templates

import "embed"

//go:embed *.html layouts/*.html
var FS embed.FS

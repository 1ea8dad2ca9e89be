// Package assets embeds the static files served under /assets and /images.
package assets

import "embed"

//go:embed app.js style.css images/*.svg
var FS embed.FS

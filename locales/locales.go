// Package locales embeds the staff UI message files.
package locales

import "embed"

//go:embed active.*.toml
var FS embed.FS

// Files lists the message files in load order
var Files = []string{
	"active.ja.toml",
	"active.en.toml",
	"active.es.toml",
}

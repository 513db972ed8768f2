// Package data bundles the site's static collections and locale bundles.
// Everything here is compiled into the binary and read once at startup.
package data

import "embed"

// FS holds articles.json, projects.json, experience.json, milestones.json
// and the locale bundles under locales/.
//
//go:embed *.json locales/*.yaml
var FS embed.FS

package folio

import "embed"

// EmbeddedAssets contains the script and stylesheet shipped with folio,
// served under /assets/.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

// Package migrations embeds the SQL schema migrations shipped with diario.
package migrations

import "embed"

// FS holds one sub-directory per storage driver (currently only "sqlite").
//
//go:embed sqlite/*.sql
var FS embed.FS

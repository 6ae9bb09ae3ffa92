// Package migrations embeds the versioned schema for each supported SQL dialect.
package migrations

import "embed"

// FS holds one directory of golang-migrate files per dialect: sqlite and postgres.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS

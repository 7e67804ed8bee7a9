// Package migrations embeds the schema for every supported driver so the
// server and CLI binaries can migrate without shipping SQL files.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS

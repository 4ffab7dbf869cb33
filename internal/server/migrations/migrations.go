// Package migrations embeds the goose SQL migrations for the SQL identity
// backend.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

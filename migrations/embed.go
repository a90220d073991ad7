// Package migrations holds the SQL schema applied by golang-migrate.
package migrations

import "embed"

// FS contains every migration file of the schema
//
//go:embed *.sql
var FS embed.FS

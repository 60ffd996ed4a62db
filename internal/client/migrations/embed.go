// Package migrations embeds the goose SQL migrations for the local store.
// The statements are kept portable between SQLite and Postgres.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

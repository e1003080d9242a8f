// Package postgres holds the embedded goose migrations for the PostgreSQL
// backend. Unlike SQLite, Postgres supports ADD COLUMN IF NOT EXISTS, so
// everything is plain SQL.
package postgres

import "embed"

//go:embed *.sql
var Migrations embed.FS

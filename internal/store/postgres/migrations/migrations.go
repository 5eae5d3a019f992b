// Package migrations embeds the PostgreSQL schema for the kv store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

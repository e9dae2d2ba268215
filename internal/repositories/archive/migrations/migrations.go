// Package migrations embeds the archive schema for goose
package migrations

import "embed"

// FS holds the SQL migrations
//
//go:embed *.sql
var FS embed.FS

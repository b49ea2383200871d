// Package migrations embeds the SQL schema migrations shipped with the binary.
package migrations

import "embed"

// FS holds the versioned *.up.sql / *.down.sql pairs
//
//go:embed *.sql
var FS embed.FS

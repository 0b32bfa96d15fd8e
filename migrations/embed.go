package migrations

import "embed"

// Files holds the schema migrations applied by db.OpenSQLite, in file name order.
//
//go:embed *.sql
var Files embed.FS

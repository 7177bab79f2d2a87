package migrations

import "embed"

// FS embeds SQL migration files stored in this directory, one
// subdirectory per SQL dialect. The golang-migrate library will read these
// files via the iofs driver when applying migrations.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

const Version = 1

// Dialect subdirectories of FS.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

package migration

import "context"

// Migrators maps a schema version to the migrator bringing the database
// to that version. New versions append a new entry, never modify an old
// one.
var Migrators = map[string]func(ctx context.Context) error{
	"auto": AutoMigrate,
	"0000": migrate0000,
}

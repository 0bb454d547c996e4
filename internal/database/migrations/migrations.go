// Package migrations registers the schema migrations for the moderation
// store.
package migrations

import "github.com/uptrace/bun/migrate"

// Migrations holds every registered migration in creation order.
var Migrations = migrate.NewMigrations()

// Package clubdb holds all the migrations for the clubhouse database
package clubdb

import "github.com/uptrace/bun/migrate"

// Migrations is the ordered set of clubhouse schema migrations.
var Migrations = migrate.NewMigrations()

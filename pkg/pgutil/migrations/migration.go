// Package migrations holds the schema helpers shared by clubhouse migrations
// and the migrate command runner.
package migrations

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

const usageText = `Usage:
  clubhouse-migrate [-config path] <command>

Commands:
  init     create the bun migration tables
  up       apply every pending migration group
  down     roll back the last applied group
  status   print applied and pending migrations

Examples:
  clubhouse-migrate -config config.yaml init
  clubhouse-migrate -config config.yaml up
`

// Usage prints command usage and exits.
func Usage() {
	fmt.Print(usageText)
	flag.PrintDefaults()
	os.Exit(2)
}

// Exitf prints the message and the usage text, then exits non-zero.
func Exitf(s string, args ...any) {
	fmt.Fprintf(os.Stderr, s+"\n", args...)
	Usage()
}

// CreateSchema creates one table per model, skipping tables that exist.
func CreateSchema(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		log.Println("creating table for", reflect.TypeOf(model))
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table for %T: %w", model, err)
		}
	}
	return nil
}

// DropTables drops the tables backing the models, cascading to dependents.
func DropTables(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		log.Println("dropping table for", reflect.TypeOf(model))
		if _, err := db.NewDropTable().Model(model).IfExists().Cascade().Exec(ctx); err != nil {
			return fmt.Errorf("drop table for %T: %w", model, err)
		}
	}
	return nil
}

// CreateModelIndexes creates one idx_<table>_<column> index per column.
func CreateModelIndexes(ctx context.Context, db bun.IDB, model any, columns ...string) error {
	for _, column := range columns {
		name, err := modelIndexName(db, model, column)
		if err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().
			Model(model).
			Index(name).
			Column(column).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("create index %s: %w", name, err)
		}
	}
	return nil
}

func modelIndexName(db bun.IDB, model any, column string) (string, error) {
	if model == nil {
		return "", fmt.Errorf("model cannot be nil")
	}
	table := db.NewCreateIndex().Model(model).GetTableName()
	if table == "" {
		return "", fmt.Errorf("failed to resolve table name for model %T", model)
	}
	table = strings.NewReplacer(`"`, "", ".", "_").Replace(table)
	return fmt.Sprintf("idx_%s_%s", table, column), nil
}

// RunMigrations executes a single migrate command against the migrator.
func RunMigrations(ctx context.Context, migrator *migrate.Migrator, args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command provided")
	}

	switch args[0] {
	case "init":
		if err := migrator.Init(ctx); err != nil {
			return err
		}
		log.Println("migration tables created")
		return nil

	case "up":
		return withLock(ctx, migrator, func() error {
			group, err := migrator.Migrate(ctx)
			if err != nil {
				return err
			}
			if group.IsZero() {
				log.Println("database is up to date")
			} else {
				log.Printf("migrated to %s", group)
			}
			return nil
		})

	case "down":
		return withLock(ctx, migrator, func() error {
			group, err := migrator.Rollback(ctx)
			if err != nil {
				return err
			}
			if group.IsZero() {
				log.Println("no migration group to roll back")
			} else {
				log.Printf("rolled back %s", group)
			}
			return nil
		})

	case "status":
		ms, err := migrator.MigrationsWithStatus(ctx)
		if err != nil {
			return err
		}
		log.Printf("migrations: %s", ms)
		log.Printf("unapplied migrations: %s", ms.Unapplied())
		log.Printf("last migration group: %s", ms.LastGroup())
		return nil

	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func withLock(ctx context.Context, migrator *migrate.Migrator, fn func() error) error {
	if err := migrator.Lock(ctx); err != nil {
		return fmt.Errorf("failed to acquire migration lock: %w", err)
	}
	defer func() {
		if err := migrator.Unlock(ctx); err != nil {
			log.Printf("failed to release migration lock: %v", err)
		}
	}()
	return fn()
}

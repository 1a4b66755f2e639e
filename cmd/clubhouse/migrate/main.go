package main

import (
	"context"
	"flag"
	"log"

	"github.com/uptrace/bun/migrate"

	"github.com/ZenRepublic/Clubhouse/pkg/config"
	"github.com/ZenRepublic/Clubhouse/pkg/migrations/clubdb"
	"github.com/ZenRepublic/Clubhouse/pkg/pgutil"
	mghelper "github.com/ZenRepublic/Clubhouse/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	db, err := pgutil.ConnectDB(context.Background(), &cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for clubhouse database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, clubdb.Migrations)

	if err := mghelper.RunMigrations(context.Background(), migrator, flag.Args()...); err != nil {
		db.Close()
		mghelper.Exitf("%v", err)
	}
}

package clubdb

import (
	"context"
	"log"

	"github.com/ZenRepublic/Clubhouse/pkg/clubstore"
	mghelper "github.com/ZenRepublic/Clubhouse/pkg/pgutil/migrations"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating ledger_entries table...")
		if err := mghelper.CreateSchema(ctx, db, &clubstore.LedgerEntryDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &clubstore.LedgerEntryDao{}, "from_owner", "to_owner", "created_at")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping ledger_entries table...")
		return mghelper.DropTables(ctx, db, &clubstore.LedgerEntryDao{})
	})
}

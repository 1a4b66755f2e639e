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
		log.Println("creating balances table...")
		if err := mghelper.CreateSchema(ctx, db, &clubstore.BalanceDao{}); err != nil {
			return err
		}
		if err := mghelper.CreateModelIndexes(ctx, db, &clubstore.BalanceDao{}, "asset"); err != nil {
			return err
		}
		// Balances must fit an unsigned 64-bit amount.
		_, err := db.ExecContext(ctx, `ALTER TABLE balances ADD CONSTRAINT balances_amount_range
			CHECK (amount >= 0 AND amount <= 18446744073709551615)`)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping balances table...")
		return mghelper.DropTables(ctx, db, &clubstore.BalanceDao{})
	})
}

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
		log.Println("creating houses table...")
		if err := mghelper.CreateSchema(ctx, db, &clubstore.HouseDao{}); err != nil {
			return err
		}
		if err := mghelper.CreateModelIndexes(ctx, db, &clubstore.HouseDao{}, "admin"); err != nil {
			return err
		}
		_, err := db.ExecContext(ctx, `ALTER TABLE houses ADD CONSTRAINT houses_open_campaigns_range
			CHECK (open_campaigns >= 0 AND open_campaigns <= total_campaigns)`)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping houses table...")
		return mghelper.DropTables(ctx, db, &clubstore.HouseDao{})
	})
}

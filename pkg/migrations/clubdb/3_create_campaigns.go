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
		log.Println("creating campaigns table...")
		if err := mghelper.CreateSchema(ctx, db, &clubstore.CampaignDao{}); err != nil {
			return err
		}
		if err := mghelper.CreateModelIndexes(ctx, db, &clubstore.CampaignDao{}, "house", "creator"); err != nil {
			return err
		}
		// Reserved rewards are carved out of the available pool.
		_, err := db.ExecContext(ctx, `ALTER TABLE campaigns ADD CONSTRAINT campaigns_reserve_range
			CHECK (reserved_rewards >= 0 AND reserved_rewards <= rewards_available)`)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping campaigns table...")
		return mghelper.DropTables(ctx, db, &clubstore.CampaignDao{})
	})
}

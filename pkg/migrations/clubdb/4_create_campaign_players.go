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
		log.Println("creating campaign_players table...")
		if err := mghelper.CreateSchema(ctx, db, &clubstore.PlayerDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &clubstore.PlayerDao{}, "house")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping campaign_players table...")
		return mghelper.DropTables(ctx, db, &clubstore.PlayerDao{})
	})
}

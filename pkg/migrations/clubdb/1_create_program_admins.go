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
		log.Println("creating program_admins table...")
		return mghelper.CreateSchema(ctx, db, &clubstore.ProgramAdminDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping program_admins table...")
		return mghelper.DropTables(ctx, db, &clubstore.ProgramAdminDao{})
	})
}

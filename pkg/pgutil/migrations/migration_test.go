package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/ZenRepublic/Clubhouse/pkg/config"
	"github.com/ZenRepublic/Clubhouse/pkg/pgutil"
)

type scoreDao struct {
	bun.BaseModel `bun:"table:test_scores"`
	ID            int64  `bun:",pk,autoincrement"`
	Campaign      string `bun:",notnull,type:varchar(42)"`
	Player        string `bun:",notnull,type:varchar(42)"`
	Won           int64  `bun:",notnull,default:0"`
}

type scoreNoteDao struct {
	bun.BaseModel `bun:"table:test_score_notes"`
	ID            int64  `bun:",pk,autoincrement"`
	ScoreID       int64  `bun:",notnull"`
	Note          string `bun:",nullzero"`
}

func TestConnectDB_InvalidHost(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "invalid-host-that-does-not-exist",
		Port:     5432,
		User:     "test",
		Password: "test",
		Database: "test",
		SSLMode:  "disable",
	}

	db, err := pgutil.ConnectDB(context.Background(), cfg)
	if err == nil {
		db.Close()
		t.Fatal("ConnectDB() should fail with invalid host")
	}
}

func TestCreateSchema_Idempotent(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &scoreDao{}, &scoreNoteDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	pgutil.AssertTableExists(t, db, "test_scores")
	pgutil.AssertTableExists(t, db, "test_score_notes")

	if err := CreateSchema(ctx, db, &scoreDao{}); err != nil {
		t.Fatalf("CreateSchema() second call failed: %v", err)
	}
}

func TestDropTables_Idempotent(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &scoreDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if err := DropTables(ctx, db, &scoreDao{}); err != nil {
		t.Fatalf("DropTables() failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "test_scores")

	if err := DropTables(ctx, db, &scoreDao{}); err != nil {
		t.Fatalf("DropTables() second call failed: %v", err)
	}
}

func TestCreateModelIndexes(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &scoreDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if err := CreateModelIndexes(ctx, db, &scoreDao{}, "campaign", "player"); err != nil {
		t.Fatalf("CreateModelIndexes() failed: %v", err)
	}
	pgutil.AssertIndexExists(t, db, "idx_test_scores_campaign")
	pgutil.AssertIndexExists(t, db, "idx_test_scores_player")

	if err := CreateModelIndexes(ctx, db, &scoreDao{}, "campaign"); err != nil {
		t.Fatalf("CreateModelIndexes() second call failed: %v", err)
	}
}

func TestCreateModelIndexes_NilModel(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()

	if err := CreateModelIndexes(context.Background(), db, nil, "campaign"); err == nil {
		t.Fatal("expected error for nil model")
	}
}

func TestRunMigrations_Commands(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	ms := migrate.NewMigrations()
	ms.MustRegister(func(ctx context.Context, db *bun.DB) error {
		return CreateSchema(ctx, db, &scoreDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		return DropTables(ctx, db, &scoreDao{})
	})
	migrator := migrate.NewMigrator(db, ms)

	if err := RunMigrations(ctx, migrator); err == nil {
		t.Fatal("expected error without a command")
	}
	if err := RunMigrations(ctx, migrator, "sideways"); err == nil {
		t.Fatal("expected error for unknown command")
	}

	for _, cmd := range []string{"init", "up", "status"} {
		if err := RunMigrations(ctx, migrator, cmd); err != nil {
			t.Fatalf("RunMigrations(%q) failed: %v", cmd, err)
		}
	}
	pgutil.AssertTableExists(t, db, "test_scores")

	if err := RunMigrations(ctx, migrator, "down"); err != nil {
		t.Fatalf("RunMigrations(down) failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "test_scores")
}

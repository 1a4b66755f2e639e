package pgutil

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ZenRepublic/Clubhouse/pkg/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
)

// RequireDocker skips the test when no docker daemon socket answers.
func RequireDocker(t *testing.T) {
	t.Helper()

	candidates := []string{
		"/var/run/docker.sock",
		filepath.Join(os.Getenv("HOME"), ".docker/run/docker.sock"),
	}

	for _, sock := range candidates {
		if _, err := os.Stat(sock); err != nil {
			continue
		}
		conn, err := (&net.Dialer{}).DialContext(context.Background(), "unix", sock)
		if err == nil {
			_ = conn.Close()
			return
		}
	}

	t.Skip("docker daemon socket is not accessible; skipping testcontainer-backed tests")
}

// SetupTestDB starts a throwaway PostgreSQL container and returns a bun
// connection to it with a cleanup func. The test is skipped without docker.
func SetupTestDB(t *testing.T) (*bun.DB, func()) {
	t.Helper()
	RequireDocker(t)
	ctx := context.Background()

	const (
		user     = "clubhouse"
		password = "clubhouse"
		database = "clubhouse_test"
	)

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase(database),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	terminate := func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	host, err := container.Host(ctx)
	if err != nil {
		terminate()
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		terminate()
		t.Fatalf("failed to get container port: %v", err)
	}

	cfg := &config.DatabaseConfig{
		Host:     host,
		Port:     port.Int(),
		User:     user,
		Password: password,
		Database: database,
		SSLMode:  "disable",
	}

	// The log line can precede the listener by a few hundred milliseconds.
	var db *bun.DB
	const attempts = 8
	for i := 0; i < attempts; i++ {
		if db, err = ConnectDB(context.Background(), cfg); err == nil {
			break
		}
		if i == attempts-1 {
			terminate()
			t.Fatalf("failed to connect to test database after %d attempts: %v", attempts, err)
		}
		time.Sleep(time.Duration(100<<i) * time.Millisecond)
	}

	return db, func() {
		_ = db.Close()
		terminate()
	}
}

func catalogHas(t *testing.T, db *bun.DB, query, name string) bool {
	t.Helper()
	var exists bool
	if err := db.NewSelect().ColumnExpr(query, "public", name).Scan(context.Background(), &exists); err != nil {
		t.Fatalf("failed to look up %s: %v", name, err)
	}
	return exists
}

const (
	tableQuery = "EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = ? AND table_name = ?)"
	indexQuery = "EXISTS (SELECT 1 FROM pg_indexes WHERE schemaname = ? AND indexname = ?)"
)

// AssertTableExists fails the test if the public table is missing.
func AssertTableExists(t *testing.T, db *bun.DB, tableName string) {
	t.Helper()
	if !catalogHas(t, db, tableQuery, tableName) {
		t.Errorf("table %s does not exist", tableName)
	}
}

// AssertTableNotExists fails the test if the public table is present.
func AssertTableNotExists(t *testing.T, db *bun.DB, tableName string) {
	t.Helper()
	if catalogHas(t, db, tableQuery, tableName) {
		t.Errorf("table %s should not exist but it does", tableName)
	}
}

// AssertIndexExists fails the test if the public index is missing.
func AssertIndexExists(t *testing.T, db *bun.DB, indexName string) {
	t.Helper()
	if !catalogHas(t, db, indexQuery, indexName) {
		t.Errorf("index %s does not exist", indexName)
	}
}

// AssertRowCount checks if a table has the expected number of rows
func AssertRowCount(t *testing.T, db *bun.DB, tableName string, expected int) {
	t.Helper()

	var count int
	err := db.NewSelect().
		TableExpr("?", bun.Ident(tableName)).
		ColumnExpr("COUNT(*)").
		Scan(context.Background(), &count)
	if err != nil {
		t.Fatalf("failed to count rows in table %s: %v", tableName, err)
	}
	if count != expected {
		t.Errorf("table %s: expected %d rows, got %d", tableName, expected, count)
	}
}

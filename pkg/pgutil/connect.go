// Package pgutil opens the clubhouse postgres database and carries the test
// helpers shared by the store and migration suites.
package pgutil

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/ZenRepublic/Clubhouse/pkg/config"
)

const defaultConnectTimeout = 5 * time.Second

// ConnectDB opens the database described by cfg and pings it within
// cfg.ConnectTimeout. Sessions run in UTC so stored campaign timestamps
// round-trip unchanged.
func ConnectDB(ctx context.Context, cfg *config.DatabaseConfig) (*bun.DB, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	appName := cfg.ApplicationName
	if appName == "" {
		appName = config.ServiceName
	}

	connector := pgdriver.NewConnector(
		pgdriver.WithNetwork("tcp"),
		pgdriver.WithAddr(net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))),
		pgdriver.WithUser(cfg.User),
		pgdriver.WithPassword(cfg.Password),
		pgdriver.WithDatabase(cfg.Database),
		pgdriver.WithInsecure(cfg.SSLMode == "disable"),
		pgdriver.WithApplicationName(appName),
		pgdriver.WithDialTimeout(timeout),
		pgdriver.WithConnParams(map[string]any{"timezone": "UTC"}),
	)

	sqldb := sql.OpenDB(connector)
	if cfg.MaxOpenConns > 0 {
		sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
		sqldb.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	db := bun.NewDB(sqldb, pgdialect.New())

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", cfg.Database, err)
	}
	return db, nil
}

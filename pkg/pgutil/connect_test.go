package pgutil

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ZenRepublic/Clubhouse/pkg/config"
)

func TestConnectDB_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	db, err := ConnectDB(ctx, &config.DatabaseConfig{
		Host:           "127.0.0.1",
		Port:           1,
		User:           "clubhouse",
		Database:       "clubhouse",
		SSLMode:        "disable",
		ConnectTimeout: time.Second,
	})
	if err == nil {
		_ = db.Close()
		t.Fatal("expected ConnectDB to fail with a canceled context")
	}
	if !strings.Contains(err.Error(), "clubhouse") {
		t.Fatalf("error should name the database: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("ConnectDB ignored its deadline, took %v", elapsed)
	}
}

func TestConnectDB_SessionSettings(t *testing.T) {
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	var appName, tz string
	if err := db.QueryRowContext(context.Background(), "SELECT current_setting('application_name'), current_setting('TimeZone')").Scan(&appName, &tz); err != nil {
		t.Fatalf("query settings: %v", err)
	}
	if appName != config.ServiceName {
		t.Fatalf("application_name = %q, want %q", appName, config.ServiceName)
	}
	if tz != "UTC" {
		t.Fatalf("TimeZone = %q, want UTC", tz)
	}
}

// Package dbtest opens a migrated PostgreSQL database for integration tests.
// Tests are skipped unless JOBTRACKER_TEST_DSN is set.
package dbtest

import (
	"database/sql"
	"os"
	"sync"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/jobtracker/migrations"
)

// EnvDSN names the variable holding the test database connection string.
const EnvDSN = "JOBTRACKER_TEST_DSN"

var (
	migrateOnce sync.Once
	migrateErr  error
)

// Open returns a connection to the test database with all migrations
// applied. Tests should scope their data to fresh UUID partitions rather
// than truncating shared tables.
func Open(t testing.TB) *sql.DB {
	t.Helper()

	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		t.Skipf("%s not set", EnvDSN)
	}

	migrateOnce.Do(func() {
		migrateErr = migrations.Up(dsn)
	})
	if migrateErr != nil {
		t.Fatalf("migrate: %v", migrateErr)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

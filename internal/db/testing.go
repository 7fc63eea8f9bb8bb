package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// CreateTestPool connects to the test database and applies migrations.
// Tests calling it are skipped when TEST_POSTGRESQL_URL is not set.
func CreateTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	connString := os.Getenv("TEST_POSTGRESQL_URL")
	if connString == "" {
		t.Skip("TEST_POSTGRESQL_URL is not set")
	}
	applyMigrations(t, connString)

	pool, err := pgxpool.Connect(context.Background(), connString)
	if err != nil {
		t.Fatalf("Could not connect to the test database: %v.", err)
	}
	return pool
}

func TruncateTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), "TRUNCATE reminder, billing_notification")
	if err != nil {
		t.Fatalf("Could not truncate DB tables: %v.", err)
	}
}

func applyMigrations(t *testing.T, connString string) {
	t.Helper()

	migrationsPath := os.Getenv("TEST_MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "../../../migrations"
	}
	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), connString)
	if err != nil {
		t.Fatalf("Could not connect to DB for applying migrations: %v.", err)
	}
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("Could not apply DB migrations: %v.", err)
	}
}

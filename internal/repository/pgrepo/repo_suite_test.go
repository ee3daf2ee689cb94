package pgrepo

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	// migration drivers, normally registered by the app bootstrap
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const testDSNEnv = "TEST_DATABASE_URI"

// The repository suites run against a real database: the behaviors under test
// (the ON CONFLICT increment, the GREATEST floor, delete row locking) live in
// SQL and cannot be observed through mocks. Without TEST_DATABASE_URI the
// suites are skipped.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	l := logrus.New()
	l.SetOutput(io.Discard)

	pool, err := Connect(context.Background(), "../../../migrations", os.Getenv(testDSNEnv), l)
	require.NoError(t, err)
	return pool
}

func truncateAll(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `TRUNCATE users, orders`)
	require.NoError(t, err)
}

package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-portal-go/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

// TestDatabaseSetup holds a migrated connection to the integration database.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and applies the schema. The
// test is skipped when the variable is unset.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolConfig{MaxConns: 4})
	require.NoError(t, err, "connect to test database")
	require.NoError(t, postgresql.Migrate(ctx, db))

	setup := &TestDatabaseSetup{DB: db}
	require.NoError(t, setup.TruncateAllTables(ctx))
	t.Cleanup(setup.Close)

	return setup
}

// TruncateAllTables removes every row from the portal tables.
func (s *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tables := []string{
		"time_logs",
		"project_tasks",
		"project_members",
		"projects",
		"leave_balances",
		"work_sessions",
		"attendances",
		"leaves",
		"holidays",
	}

	return postgresql.WithTransaction(ctx, s.DB, func(ctx context.Context) error {
		for _, table := range tables {
			if _, err := postgresql.GetQuerier(ctx, s.DB).Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
				return fmt.Errorf("failed to truncate table %s: %w", table, err)
			}
		}
		return nil
	})
}

// Exec runs a fixture statement.
func (s *TestDatabaseSetup) Exec(t *testing.T, sql string, args ...interface{}) {
	t.Helper()
	_, err := s.DB.Exec(context.Background(), sql, args...)
	require.NoError(t, err)
}

func (s *TestDatabaseSetup) Close() {
	s.DB.Close()
}

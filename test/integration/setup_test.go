package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"

	"github.com/turnero/turnero/internal/platform/db"
)

// testDB holds the shared database infrastructure for integration tests.
type testDB struct {
	ConnStr       string
	MigrationsDir string
}

// globalDB is the package-level test database, initialized once in TestMain.
var globalDB *testDB

func TestMain(m *testing.M) {
	ctx := context.Background()

	connStr, cleanup, err := testDatabase(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skipping integration tests: %v\n", err)
		os.Exit(0)
	}

	globalDB = &testDB{
		ConnStr:       connStr,
		MigrationsDir: findMigrationsDir(),
	}

	if err := runMigrations(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to migrate test database: %v\n", err)
		cleanup()
		os.Exit(1)
	}

	code := m.Run()
	cleanup()
	os.Exit(code)
}

// testDatabase returns a connection string for a disposable Postgres. An
// externally provided TEST_DATABASE_URL wins; otherwise a container is
// started with the Docker CLI.
func testDatabase(ctx context.Context) (string, func(), error) {
	if url := os.Getenv("TEST_DATABASE_URL"); url != "" {
		return url, func() {}, nil
	}
	return startPostgresContainer(ctx)
}

// runMigrations applies the real migration files so the tests run against
// the same schema the server does.
func runMigrations(ctx context.Context) error {
	pool, err := db.NewMigratorPool(ctx, globalDB.ConnStr)
	if err != nil {
		return err
	}
	defer pool.Close()

	migrator := db.NewMigrator(pool, globalDB.MigrationsDir)
	_, err = migrator.Up(ctx)
	return err
}

// findMigrationsDir locates the migrations directory relative to this file.
func findMigrationsDir() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	// test/integration -> module root
	return filepath.Join(dir, "..", "..", "migrations")
}

// newScope builds the production provider/scope pair against the test
// database. Every operation opens and closes its own connection, exactly as
// in the server.
func newScope() *db.Scope {
	return db.NewScope(db.NewProvider(globalDB.ConnStr, zerolog.Nop()))
}

// resetTables empties both person tables and restarts their identity
// sequences so each test sees a predictable key space.
func resetTables(t *testing.T, ctx context.Context) {
	t.Helper()
	scope := newScope()
	err := scope.Execute(ctx, "reset tables", func(ctx context.Context, q db.Querier) error {
		_, err := q.Exec(ctx, `TRUNCATE doctors, patients RESTART IDENTITY`)
		return err
	})
	if err != nil {
		t.Fatalf("reset tables: %v", err)
	}
}

func strPtr(s string) *string { return &s }

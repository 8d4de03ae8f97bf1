//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"creator-market/internal/infra/db"
	"creator-market/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// createDatabase gives the calling test binary a fresh, migrated database and
// drops it again on cleanup.
func createDatabase(t *testing.T, server pgServer) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()
	name := "e2e_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, server.dsn("postgres"))
	require.NoError(t, err, "connect as admin")
	defer admin.Close()

	// CREATE DATABASE copies template1 and fails while another binary holds it
	err = retry(ctx, 5, func() error {
		_, execErr := admin.Exec(ctx, "CREATE DATABASE "+name)
		return execErr
	})
	require.NoError(t, err, "create database %s", name)

	t.Cleanup(func() {
		dropCtx, drop := context.WithTimeout(context.Background(), 5*time.Second)
		defer drop()
		conn, err := pgxpool.New(dropCtx, server.dsn("postgres"))
		if err != nil {
			slog.Warn("drop database: connect failed", "database", name, "error", err)
			return
		}
		defer conn.Close()
		if _, err := conn.Exec(dropCtx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop database failed", "database", name, "error", err)
		}
	})

	cfg := config.DBConfig{
		Host:     server.Host,
		Port:     server.Port,
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 8,
	}
	pool, _, err := db.Connect(cfg)
	require.NoError(t, err, "connect to %s", name)
	t.Cleanup(pool.Close)

	require.NoError(t, migrate(ctx, pool), "apply migrations")
	return pool, cfg
}

func retry(ctx context.Context, attempts int, fn func() error) error {
	var err error
	for i := range attempts {
		if err = fn(); err == nil {
			return nil
		}
		wait := min(time.Duration(i+1)*500*time.Millisecond, 3*time.Second)
		slog.Warn("retrying", "attempt", i+1, "wait", wait, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return err
}

// migrate runs every migrations/*.sql in name order. atlas.sum is ignored; the
// schema is plain SQL.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	root, err := repoRoot()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(root, "migrations", "*.sql"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no migrations under %s", root)
	}
	sort.Strings(files)

	for _, file := range files {
		sql, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("apply %s: %w", filepath.Base(file), err)
		}
	}
	return nil
}

// repoRoot walks up from the package directory `go test` runs in until it
// finds go.mod.
func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above the working directory")
		}
		dir = parent
	}
}

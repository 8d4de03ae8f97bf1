//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")
)

// pgServer is the container address shared by every suite in the process.
type pgServer struct {
	Host string
	Port string
}

func (s pgServer) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, s.Host, s.Port, database)
}

var (
	pgOnce   sync.Once
	pgShared pgServer
	pgErr    error
)

// postgresServer starts postgres:17-alpine on first use. Durability is off and
// the data directory is tmpfs; the container only lives for the test binary.
func postgresServer(t *testing.T) pgServer {
	t.Helper()
	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17-alpine",
				Name:         "creator-market-postgres-e2e",
				Labels:       map[string]string{"purpose": "e2e-tests"},
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd: []string{"postgres",
					"-c", "fsync=off",
					"-c", "synchronous_commit=off",
					"-c", "full_page_writes=off",
					"-c", "log_statement=none",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return pgServer{Host: host, Port: port.Port()}.dsn("postgres")
				}).WithStartupTimeout(time.Minute),
			},
			Started: true,
		})
		if err != nil {
			pgErr = fmt.Errorf("start postgres container: %w", err)
			return
		}
		t.Cleanup(func() {
			stopCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
			defer stop()
			if err := container.Terminate(stopCtx); err != nil {
				slog.Warn("failed to terminate postgres container", "error", err)
			}
		})

		host, err := container.Host(ctx)
		if err != nil {
			pgErr = fmt.Errorf("resolve container host: %w", err)
			return
		}
		port, err := container.MappedPort(ctx, pgPort)
		if err != nil {
			pgErr = fmt.Errorf("resolve container port: %w", err)
			return
		}
		pgShared = pgServer{Host: host, Port: port.Port()}
	})
	require.NoError(t, pgErr)
	return pgShared
}

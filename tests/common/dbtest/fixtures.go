//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"creator-market/internal/infra/db"
	"creator-market/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertCampaign stores v as-is, including its id and created_at.
func InsertCampaign(t *testing.T, dbtx db.DBTX, v *queries.CampaignView) {
	t.Helper()

	_, err := dbtx.Exec(context.Background(),
		`INSERT INTO campaigns (id, title, brand_name, start_date, end_date, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		v.ID, v.Title, v.BrandName, v.StartDate, v.EndDate, v.Status, v.CreatedAt)
	require.NoError(t, err)
}

func GetKV(t *testing.T, dbtx db.DBTX, key string) (string, bool) {
	t.Helper()

	var value string
	err := dbtx.QueryRow(context.Background(), "SELECT value FROM client_kv WHERE key = $1", key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

func PutKV(t *testing.T, dbtx db.DBTX, key, value string) {
	t.Helper()

	_, err := dbtx.Exec(context.Background(),
		"INSERT INTO client_kv (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value",
		key, value)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}

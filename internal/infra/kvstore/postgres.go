package kvstore

import (
	"context"

	"creator-market/internal/infra"
	"creator-market/internal/infra/db"
	"creator-market/internal/pkg/pgconv"
)

const (
	getValueSQL = `SELECT value FROM client_kv WHERE key = $1`

	// last write wins
	upsertValueSQL = `
INSERT INTO client_kv (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	deleteValueSQL = `DELETE FROM client_kv WHERE key = $1`
)

type PostgresStore struct {
	db db.DBTX
}

func NewPostgresStore(dbtx db.DBTX) *PostgresStore {
	return &PostgresStore{db: dbtx}
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(ctx, getValueSQL, key).Scan(&value)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", false, nil
		}
		return "", false, infra.WrapRepoErr("failed to get kv value", err)
	}
	return value, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.Exec(ctx, upsertValueSQL, key, value); err != nil {
		return infra.WrapRepoErr("failed to set kv value", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, deleteValueSQL, key); err != nil {
		return infra.WrapRepoErr("failed to delete kv value", err)
	}
	return nil
}

package readstore

import (
	"context"
	"time"

	"creator-market/internal/infra"
	"creator-market/internal/infra/db"
	"creator-market/internal/pkg/pgconv"
	"creator-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const campaignColumns = `id, title, brand_name, start_date, end_date, status, created_at`

const (
	getCampaignByIDSQL = `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

	// storefront listing never exposes drafts
	listCampaignsFirstPageSQL = `
SELECT ` + campaignColumns + ` FROM campaigns
WHERE status <> 'draft'
ORDER BY created_at DESC, id DESC
LIMIT $1`

	listCampaignsKeysetSQL = `
SELECT ` + campaignColumns + ` FROM campaigns
WHERE status <> 'draft' AND (created_at, id) < ($1, $2)
ORDER BY created_at DESC, id DESC
LIMIT $3`
)

type campaignRow struct {
	ID        pgtype.UUID        `db:"id"`
	Title     string             `db:"title"`
	BrandName pgtype.Text        `db:"brand_name"`
	StartDate pgtype.Timestamptz `db:"start_date"`
	EndDate   pgtype.Timestamptz `db:"end_date"`
	Status    string             `db:"status"`
	CreatedAt pgtype.Timestamptz `db:"created_at"`
}

type CampaignReadStore struct {
	db db.DBTX
}

func NewCampaignReadStore(dbtx db.DBTX) *CampaignReadStore {
	return &CampaignReadStore{db: dbtx}
}

func (r *CampaignReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CampaignView, error) {
	rows, err := r.db.Query(ctx, getCampaignByIDSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get campaign by id", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[campaignRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("campaign not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan campaign", err)
	}
	return toCampaignView(row), nil
}

func (r *CampaignReadStore) ListFirstPage(ctx context.Context, limit int32) ([]*queries.CampaignView, error) {
	rows, err := r.db.Query(ctx, listCampaignsFirstPageSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list campaigns first page", err)
	}
	return collectCampaigns(rows)
}

func (r *CampaignReadStore) ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.CampaignView, error) {
	rows, err := r.db.Query(ctx, listCampaignsKeysetSQL, pgconv.TimeToPgtype(lastCreatedAt), pgconv.UUIDToPgtype(lastID), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list campaigns keyset", err)
	}
	return collectCampaigns(rows)
}

func collectCampaigns(rows pgx.Rows) ([]*queries.CampaignView, error) {
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[campaignRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan campaigns", err)
	}
	result := make([]*queries.CampaignView, len(collected))
	for i, row := range collected {
		result[i] = toCampaignView(row)
	}
	return result, nil
}

func toCampaignView(row campaignRow) *queries.CampaignView {
	return &queries.CampaignView{
		ID:        pgconv.UUIDFromPgtype(row.ID),
		Title:     row.Title,
		BrandName: pgconv.TextOr(row.BrandName, ""),
		StartDate: pgconv.TimeFromPgtype(row.StartDate),
		EndDate:   pgconv.TimeFromPgtype(row.EndDate),
		Status:    row.Status,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

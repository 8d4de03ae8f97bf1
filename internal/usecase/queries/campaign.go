package queries

//go:generate mockgen -destination=../../../tests/mock/queries/campaign_mock.go -package=queriesmock creator-market/internal/usecase/queries CampaignQueries

import (
	"context"
	"log/slog"
	"time"

	"creator-market/internal/domain/campaign"
	"creator-market/internal/infra"
	"creator-market/internal/pkg/clock"
	"creator-market/internal/pkg/config"
	"creator-market/internal/pkg/errs"
	"creator-market/internal/pkg/ticker"

	"github.com/google/uuid"
)

var (
	ErrCampaignNotFound = errs.ErrCampaignNotFound
	ErrInvalidCursor    = errs.ErrInvalidCursor
	ErrInvalidSchedule  = errs.New("campaign has an invalid schedule")
)

type CampaignReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CampaignView, error)
	ListFirstPage(ctx context.Context, limit int32) ([]*CampaignView, error)
	ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*CampaignView, error)
}

type CampaignQueries interface {
	GetLifecycle(ctx context.Context, id uuid.UUID) (*CampaignLifecycle, error)
	ListCampaigns(ctx context.Context, cursor *Cursor, limit int) ([]*CampaignLifecycle, *Cursor, error)
	// WatchCountdown evaluates the countdown immediately and then once per tick,
	// passing every event to emit on the caller's goroutine. It returns nil after
	// the started event, or ctx.Err() when the watcher is torn down first.
	WatchCountdown(ctx context.Context, id uuid.UUID, emit func(CountdownEvent)) error
}

type campaignQueriesImpl struct {
	repo     CampaignReadStore
	clock    clock.Clock
	ticker   ticker.Ticker
	interval time.Duration
	logger   *slog.Logger
}

func NewCampaignQueries(repo CampaignReadStore, clk clock.Clock, tk ticker.Ticker, cfg config.Config, logger *slog.Logger) CampaignQueries {
	return &campaignQueriesImpl{
		repo:     repo,
		clock:    clk,
		ticker:   tk,
		interval: cfg.Lifecycle.TickInterval,
		logger:   logger,
	}
}

func (q *campaignQueriesImpl) GetLifecycle(ctx context.Context, id uuid.UUID) (*CampaignLifecycle, error) {
	view, err := q.findCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	w, err := windowOf(view)
	if err != nil {
		return nil, err
	}
	return derive(view, w, q.clock.Now()), nil
}

func (q *campaignQueriesImpl) ListCampaigns(ctx context.Context, cursor *Cursor, limit int) ([]*CampaignLifecycle, *Cursor, error) {
	limit = ClampLimit(limit)
	var rows []*CampaignView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.ListFirstPage(ctx, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.ListKeyset(ctx, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}

	now := q.clock.Now()
	items := make([]*CampaignLifecycle, 0, len(rows))
	for _, row := range rows {
		w, werr := windowOf(row)
		if werr != nil {
			q.logger.Warn("skipping campaign with invalid schedule", "campaign_id", row.ID.String(), "error", werr.Error())
			continue
		}
		items = append(items, derive(row, w, now))
	}
	return items, next, nil
}

func (q *campaignQueriesImpl) WatchCountdown(ctx context.Context, id uuid.UUID, emit func(CountdownEvent)) error {
	view, err := q.findCampaign(ctx, id)
	if err != nil {
		return err
	}
	w, err := windowOf(view)
	if err != nil {
		return err
	}

	tracker := campaign.NewTracker(w.StartDate())
	toEvent := func(now time.Time) (CountdownEvent, bool) {
		tick := tracker.Tick(now)
		if tick.Started && !tick.JustStarted {
			return CountdownEvent{}, false
		}
		return CountdownEvent{
			CampaignID: view.ID,
			Countdown:  tick.Countdown,
			Started:    tick.JustStarted,
			At:         now,
		}, true
	}

	first, _ := toEvent(q.clock.Now())
	emit(first)
	if first.Started {
		return nil
	}

	events := make(chan CountdownEvent, 1)
	stop := make(chan struct{})
	defer close(stop)

	handle := q.ticker.Start(func(now time.Time) {
		ev, ok := toEvent(now)
		if !ok {
			return
		}
		select {
		case events <- ev:
		case <-stop:
		}
	}, q.interval)
	defer handle.Cancel()

	for {
		select {
		case ev := <-events:
			emit(ev)
			if ev.Started {
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (q *campaignQueriesImpl) findCampaign(ctx context.Context, id uuid.UUID) (*CampaignView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	return view, nil
}

func windowOf(v *CampaignView) (campaign.Window, error) {
	status, err := campaign.NewStoredStatus(v.Status)
	if err != nil {
		return campaign.Window{}, errs.Mark(errs.Wrapf(err, "campaign %s", v.ID), ErrInvalidSchedule)
	}
	w, err := campaign.NewWindow(v.StartDate, v.EndDate, status)
	if err != nil {
		return campaign.Window{}, errs.Mark(errs.Wrapf(err, "campaign %s", v.ID), ErrInvalidSchedule)
	}
	return w, nil
}

func derive(v *CampaignView, w campaign.Window, now time.Time) *CampaignLifecycle {
	cd := campaign.ComputeCountdown(w.StartDate(), now)
	return &CampaignLifecycle{
		Campaign:      v,
		DisplayStatus: campaign.ComputeDisplayStatus(w, now),
		Countdown:     cd,
		Started:       cd == nil,
		Now:           now,
	}
}

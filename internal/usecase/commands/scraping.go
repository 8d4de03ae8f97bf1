package commands

//go:generate mockgen -destination=../../../tests/mock/commands/scraping_mock.go -package=commandsmock creator-market/internal/usecase/commands ScrapingCommands

import (
	"context"
	"log/slog"
	"time"

	"creator-market/internal/domain/cooldown"
	"creator-market/internal/domain/scraping"
	"creator-market/internal/pkg/config"
	"creator-market/internal/pkg/errs"
	"creator-market/internal/pkg/patch"
)

var (
	ErrCooldownActive = errs.ErrCooldownActive
	ErrDispatchFailed = errs.ErrDispatchFailed
)

type StartRunRequest struct {
	Keywords   []string
	Location   string
	MaxResults *int
	BatchSize  *int
}

type StartRunResult struct {
	Engine   scraping.Engine
	Params   scraping.RunParams
	Cooldown *cooldown.State
	Receipt  *DispatchReceipt
}

type ScrapingCommands interface {
	// StartRun arms the engine's cooldown and then dispatches the batch. When
	// the dispatch fails the cooldown keeps running, and the result is returned
	// together with an error marked ErrDispatchFailed.
	StartRun(ctx context.Context, engine scraping.Engine, req StartRunRequest) (*StartRunResult, error)
	CooldownStatus(ctx context.Context, engine scraping.Engine) (*CooldownView, error)
	DismissCooldown(ctx context.Context, engine scraping.Engine) error
}

type scrapingUseCaseImpl struct {
	cooldowns  CooldownCommands
	dispatcher Dispatcher
	durations  map[scraping.Engine]time.Duration
	defaultMax int
	logger     *slog.Logger
}

func NewScrapingCommands(cooldowns CooldownCommands, dispatcher Dispatcher, cfg config.Config, logger *slog.Logger) ScrapingCommands {
	return &scrapingUseCaseImpl{
		cooldowns:  cooldowns,
		dispatcher: dispatcher,
		durations: map[scraping.Engine]time.Duration{
			scraping.EngineGoogle: cfg.Scraping.GoogleCooldown,
			scraping.EngineBing:   cfg.Scraping.BingCooldown,
		},
		defaultMax: cfg.Scraping.DefaultMaxItems,
		logger:     logger,
	}
}

func (uc *scrapingUseCaseImpl) StartRun(ctx context.Context, engine scraping.Engine, req StartRunRequest) (*StartRunResult, error) {
	params, err := scraping.NewRunParams(
		req.Keywords,
		req.Location,
		patch.Coalesce(req.MaxResults, uc.defaultMax),
		patch.Coalesce(req.BatchSize, 0),
	)
	if err != nil {
		return nil, err
	}

	st, started, err := uc.cooldowns.TryStart(ctx, engine.CooldownKey(), uc.durations[engine])
	if err != nil {
		return nil, errs.Wrap(err, "failed to start cooldown")
	}
	if !started {
		return nil, errs.Wrapf(ErrCooldownActive, "%s cooldown ends at %s", engine, cooldown.EncodeEndTime(st.EndTime()))
	}

	result := &StartRunResult{
		Engine:   engine,
		Params:   params,
		Cooldown: st,
	}

	receipt, err := uc.dispatcher.Dispatch(ctx, engine, params)
	if err != nil {
		uc.logger.Warn("scraping dispatch failed, cooldown kept",
			"engine", engine.String(),
			"keywords", len(params.Keywords),
			"error", err.Error())
		return result, errs.Mark(errs.Wrap(err, "dispatch scraping batch"), ErrDispatchFailed)
	}

	result.Receipt = receipt
	uc.logger.Info("scraping batch dispatched",
		"engine", engine.String(),
		"batch_id", receipt.BatchID,
		"accepted", receipt.Accepted)
	return result, nil
}

func (uc *scrapingUseCaseImpl) CooldownStatus(ctx context.Context, engine scraping.Engine) (*CooldownView, error) {
	return uc.cooldowns.Status(ctx, engine.CooldownKey())
}

func (uc *scrapingUseCaseImpl) DismissCooldown(ctx context.Context, engine scraping.Engine) error {
	return uc.cooldowns.Dismiss(ctx, engine.CooldownKey())
}

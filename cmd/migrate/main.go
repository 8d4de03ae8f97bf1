// Command migrate applies the SQL files under migrations/ with the Atlas CLI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"creator-market/internal/handler/middleware"
	"creator-market/internal/pkg/config"
	"creator-market/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

type migrateConfig struct {
	DB       config.DBConfig
	Log      config.LogConfig
	Dir      string `envconfig:"MIGRATIONS_DIR" default:"file://migrations"`
	AtlasBin string `envconfig:"ATLAS_BIN" default:"atlas"`
}

func main() {
	timeout := flag.Duration("timeout", 2*time.Minute, "overall migration timeout")
	flag.Parse()

	var cfg migrateConfig
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("failed to process env config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := apply(ctx, cfg, logger); err != nil {
		logger.Error("migration failed", "error", err.Error(), "stack", errs.ExtractStackLines(err, 8))
		os.Exit(1)
	}
}

func apply(ctx context.Context, cfg migrateConfig, logger *slog.Logger) error {
	wd, err := os.Getwd()
	if err != nil {
		return errs.Wrap(err, "resolve working directory")
	}
	client, err := atlasexec.NewClient(wd, cfg.AtlasBin)
	if err != nil {
		return errs.Wrap(err, "init atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: cfg.Dir,
	})
	if err != nil {
		return errs.Wrap(err, "atlas migrate apply")
	}

	logger.Info("migrations applied",
		"from", res.Current,
		"to", res.Target,
		"files", len(res.Applied))
	return nil
}

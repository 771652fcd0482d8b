package main

import (
	"context"

	"payment-gateway-core/config"
	pgStorage "payment-gateway-core/internal/adapter/storage/postgres"
	"payment-gateway-core/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// adminDeps bundles the database handle every subcommand needs. Each
// command opens its own pool and closes it on return rather than sharing
// one across the process's lifetime, since spg-admin runs one command and
// exits.
type adminDeps struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
	cfg  *config.Config
}

func connect(ctx context.Context) (*adminDeps, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}
	return &adminDeps{pool: pool, log: log, cfg: cfg}, nil
}

func (d *adminDeps) Close() {
	d.pool.Close()
}

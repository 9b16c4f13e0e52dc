package db

import (
	"context"

	"chershare/internal/pkg/config"
	"chershare/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	pool, err := pgxpool.New(context.Background(), cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrapf(err, "failed to open database pool %s:%s/%s", cfg.Host, cfg.Port, cfg.DBName)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, nil, errs.Wrapf(err, "failed to ping database %s:%s/%s", cfg.Host, cfg.Port, cfg.DBName)
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}

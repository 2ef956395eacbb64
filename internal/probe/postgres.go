package probe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const livenessQuery = `SELECT NOW()`

// PostgresChecker builds a throwaway pool, runs one liveness query on a
// pooled connection and tears everything down again.
type PostgresChecker struct {
	DSN string
}

func NewPostgresChecker(dsn string) *PostgresChecker {
	return &PostgresChecker{DSN: dsn}
}

func (p *PostgresChecker) Name() string { return "postgres" }

func (p *PostgresChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()
	now, err := p.query(ctx)
	if err != nil {
		return failed(p.Name(), start, err)
	}
	out := passed(p.Name(), start, "query ok")
	out.Detail = "server_time=" + now.UTC().Format(time.RFC3339)
	return out
}

func (p *PostgresChecker) query(ctx context.Context) (time.Time, error) {
	if p.DSN == "" {
		return time.Time{}, errors.New("DB_URL is not set")
	}
	cfg, err := pgxpool.ParseConfig(p.DSN)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse DB_URL: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return time.Time{}, fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("acquire: %w", err)
	}
	defer conn.Release()

	var now time.Time
	if err := conn.QueryRow(ctx, livenessQuery).Scan(&now); err != nil {
		return time.Time{}, fmt.Errorf("liveness query: %w", err)
	}
	return now, nil
}

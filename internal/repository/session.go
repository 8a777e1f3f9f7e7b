package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"opsmonitor/internal/config"
	"opsmonitor/internal/domain"
)

const createSessionsTable = `
CREATE TABLE IF NOT EXISTS sessions (
	id            TEXT PRIMARY KEY,
	user_id       TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL,
	last_activity TIMESTAMPTZ NOT NULL,
	is_active     BOOLEAN NOT NULL DEFAULT TRUE
);
CREATE INDEX IF NOT EXISTS sessions_active_last_activity_idx
	ON sessions (last_activity) WHERE is_active`

// SessionRepository is the Postgres-backed session directory.
type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(ctx context.Context, cfg *config.DatabaseConfig, tracer pgx.QueryTracer) (*SessionRepository, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if tracer != nil {
		poolCfg.ConnConfig.Tracer = tracer
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if _, err := pool.Exec(ctx, createSessionsTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SessionRepository{pool: pool}, nil
}

func (r *SessionRepository) Pool() *pgxpool.Pool {
	return r.pool
}

func (r *SessionRepository) Close() {
	r.pool.Close()
}

func (r *SessionRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *SessionRepository) FindActiveSessionsSince(ctx context.Context, cutoff time.Time) ([]domain.Session, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, created_at, last_activity, is_active
		   FROM sessions
		  WHERE is_active AND last_activity >= $1`,
		cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query active sessions: %w", err)
	}

	sessions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Session, error) {
		var s domain.Session
		err := row.Scan(&s.ID, &s.UserID, &s.CreatedAt, &s.LastActivity, &s.Active)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan active sessions: %w", err)
	}
	return sessions, nil
}

// Save upserts a session; the host application calls it on login and on activity.
func (r *SessionRepository) Save(ctx context.Context, s domain.Session) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO sessions (id, user_id, created_at, last_activity, is_active)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE
		    SET last_activity = EXCLUDED.last_activity,
		        is_active = EXCLUDED.is_active`,
		s.ID, s.UserID, s.CreatedAt, s.LastActivity, s.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

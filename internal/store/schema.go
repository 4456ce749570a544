package store

import (
	"context"
	"fmt"
)

// The log tables are owned by the health-record service; they are created
// here only so a fresh database works end to end. health_insights is owned
// by this service. The UNIQUE index on (user_id, generated_date) is what
// resolves concurrent generation for the same day: the second writer's
// insert is a no-op and it re-reads the winner's row.
const schema = `
CREATE TABLE IF NOT EXISTS daily_logs (
    id UUID PRIMARY KEY,
    user_id UUID NOT NULL,
    date DATE NOT NULL,
    mood INT NOT NULL,
    notes TEXT NOT NULL DEFAULT '',
    symptoms TEXT[] NOT NULL DEFAULT '{}',
    medications_taken TEXT[] NOT NULL DEFAULT '{}',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (user_id, date)
);

CREATE TABLE IF NOT EXISTS lifestyle_logs (
    id UUID PRIMARY KEY,
    user_id UUID NOT NULL,
    date DATE NOT NULL,
    activity_type TEXT NOT NULL,
    activity_name TEXT NOT NULL,
    duration_minutes INT NOT NULL DEFAULT 0,
    intensity TEXT NOT NULL DEFAULT '',
    quantity INT NOT NULL DEFAULT 0,
    notes TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS health_insights (
    id UUID PRIMARY KEY,
    user_id UUID NOT NULL,
    title VARCHAR(255) NOT NULL,
    content TEXT NOT NULL,
    category TEXT NOT NULL,
    generated_date DATE NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (user_id, generated_date)
);

CREATE INDEX IF NOT EXISTS idx_daily_logs_user_date ON daily_logs(user_id, date);
CREATE INDEX IF NOT EXISTS idx_lifestyle_logs_user_date ON lifestyle_logs(user_id, date);
`

// EnsureSchema applies the embedded DDL. Safe to run on every startup.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

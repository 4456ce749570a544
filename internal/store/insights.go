package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/healthloop/pulse/internal/insight"
	"github.com/healthloop/pulse/internal/record"
)

// FindInsight returns the insight generated for (userID, day), or nil when
// none exists.
func (s *Store) FindInsight(ctx context.Context, userID uuid.UUID, day record.Day) (*insight.Insight, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT title, content, category, generated_date
		FROM health_insights
		WHERE user_id = $1 AND generated_date = $2`,
		userID, day.Time(),
	)

	var (
		rec insight.Insight
		d   time.Time
	)
	if err := row.Scan(&rec.Title, &rec.Content, &rec.Category, &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query insight: %w", err)
	}
	rec.UserID = userID
	rec.GeneratedDate = record.DayOf(d)
	return &rec, nil
}

// SaveInsight appends an insight record. When a concurrent writer has already
// inserted a row for the same (user_id, generated_date), the insert is a
// no-op and the existing row is returned instead, so both callers observe
// the same record.
func (s *Store) SaveInsight(ctx context.Context, rec insight.Insight) (insight.Insight, error) {
	tag, err := s.pool.Exec(ctx, `
		INSERT INTO health_insights (id, user_id, title, content, category, generated_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (user_id, generated_date) DO NOTHING`,
		uuid.New(), rec.UserID, rec.Title, rec.Content, rec.Category, rec.GeneratedDate.Time(),
	)
	if err != nil {
		return insight.Insight{}, fmt.Errorf("insert insight: %w", err)
	}

	if tag.RowsAffected() == 0 {
		existing, err := s.FindInsight(ctx, rec.UserID, rec.GeneratedDate)
		if err != nil {
			return insight.Insight{}, fmt.Errorf("re-read after conflict: %w", err)
		}
		if existing == nil {
			return insight.Insight{}, fmt.Errorf("insight conflict for user %s on %s but no row found", rec.UserID, rec.GeneratedDate)
		}
		return *existing, nil
	}

	return rec, nil
}

// ListInsights returns stored insights with generated_date in [from, to],
// ascending. Read path for the dashboard layer; never generates.
func (s *Store) ListInsights(ctx context.Context, userID uuid.UUID, from, to record.Day) ([]insight.Insight, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT title, content, category, generated_date
		FROM health_insights
		WHERE user_id = $1 AND generated_date BETWEEN $2 AND $3
		ORDER BY generated_date`,
		userID, from.Time(), to.Time(),
	)
	if err != nil {
		return nil, fmt.Errorf("query insights: %w", err)
	}
	defer rows.Close()

	var out []insight.Insight
	for rows.Next() {
		var (
			rec insight.Insight
			d   time.Time
		)
		if err := rows.Scan(&rec.Title, &rec.Content, &rec.Category, &d); err != nil {
			return nil, fmt.Errorf("scan insight: %w", err)
		}
		rec.UserID = userID
		rec.GeneratedDate = record.DayOf(d)
		out = append(out, rec)
	}
	return out, rows.Err()
}

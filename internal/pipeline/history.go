package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/healthloop/pulse/internal/insight"
)

// ListHistory generates (or returns) one insight per logged day, for the
// trailing windowDays distinct log dates, ascending. The most recent log
// date is always covered since it is the last element of the trailing set.
// A failing date is logged and skipped; one bad date never fails the whole
// listing. Cancelling ctx stops the loop before the next date.
func (p *Pipeline) ListHistory(ctx context.Context, userID uuid.UUID, windowDays int) ([]insight.Insight, error) {
	if windowDays < 1 {
		return nil, fmt.Errorf("window days must be positive, got %d", windowDays)
	}

	dates, err := p.store.GetAllLogDates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load log dates: %w", err)
	}
	if len(dates) == 0 {
		return []insight.Insight{}, nil
	}

	start := len(dates) - windowDays
	if start < 0 {
		start = 0
	}

	out := make([]insight.Insight, 0, len(dates)-start)
	for _, day := range dates[start:] {
		if ctx.Err() != nil {
			break
		}
		rec, err := p.generate(ctx, userID, day)
		if err != nil {
			p.logger.Warn("insight generation failed, skipping date",
				"user_id", userID.String(),
				"date", day.String(),
				"error", err,
			)
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

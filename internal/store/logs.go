package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/healthloop/pulse/internal/record"
)

// GetDailyLogs returns the user's daily logs with date in [from, to],
// ascending by date.
func (s *Store) GetDailyLogs(ctx context.Context, userID uuid.UUID, from, to record.Day) ([]record.DailyLog, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT date, mood, notes, symptoms, medications_taken
		FROM daily_logs
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date`,
		userID, from.Time(), to.Time(),
	)
	if err != nil {
		return nil, fmt.Errorf("query daily logs: %w", err)
	}
	defer rows.Close()

	var logs []record.DailyLog
	for rows.Next() {
		var (
			l record.DailyLog
			d time.Time
		)
		if err := rows.Scan(&d, &l.Mood, &l.Notes, &l.Symptoms, &l.MedicationsTaken); err != nil {
			return nil, fmt.Errorf("scan daily log: %w", err)
		}
		l.UserID = userID
		l.Date = record.DayOf(d)
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// GetLifestyleLogs returns the user's lifestyle logs with date in [from, to],
// ascending by date.
func (s *Store) GetLifestyleLogs(ctx context.Context, userID uuid.UUID, from, to record.Day) ([]record.LifestyleLog, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT date, activity_type, activity_name, duration_minutes, intensity, quantity, notes
		FROM lifestyle_logs
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date`,
		userID, from.Time(), to.Time(),
	)
	if err != nil {
		return nil, fmt.Errorf("query lifestyle logs: %w", err)
	}
	defer rows.Close()

	var logs []record.LifestyleLog
	for rows.Next() {
		var (
			l record.LifestyleLog
			d time.Time
		)
		if err := rows.Scan(&d, &l.ActivityType, &l.ActivityName, &l.DurationMinutes, &l.Intensity, &l.Quantity, &l.Notes); err != nil {
			return nil, fmt.Errorf("scan lifestyle log: %w", err)
		}
		l.UserID = userID
		l.Date = record.DayOf(d)
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// GetAllLogDates returns every distinct calendar day on which the user has a
// daily or lifestyle log, ascending. UNION deduplicates across both tables.
func (s *Store) GetAllLogDates(ctx context.Context, userID uuid.UUID) ([]record.Day, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT date FROM daily_logs WHERE user_id = $1
		UNION
		SELECT date FROM lifestyle_logs WHERE user_id = $1
		ORDER BY date`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query log dates: %w", err)
	}
	defer rows.Close()

	var days []record.Day
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan log date: %w", err)
		}
		days = append(days, record.DayOf(d))
	}
	return days, rows.Err()
}

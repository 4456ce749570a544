package record

import "github.com/google/uuid"

// ActivityType labels a lifestyle log entry.
type ActivityType string

const (
	ActivityExercise ActivityType = "EXERCISE"
	ActivitySmoking  ActivityType = "SMOKING"
	ActivityDrinking ActivityType = "DRINKING"
)

// DailyLog is one user's health log for a single calendar day. At most one
// exists per (user, day); the health-record service upserts on write.
type DailyLog struct {
	UserID           uuid.UUID `json:"user_id"`
	Date             Day       `json:"date"`
	Mood             int       `json:"mood"` // 1-5
	Notes            string    `json:"notes,omitempty"`
	Symptoms         []string  `json:"symptoms,omitempty"`
	MedicationsTaken []string  `json:"medications_taken,omitempty"`
}

// LifestyleLog is a single logged activity. Multiple per user per day are allowed.
type LifestyleLog struct {
	UserID          uuid.UUID    `json:"user_id"`
	Date            Day          `json:"date"`
	ActivityType    ActivityType `json:"activity_type"`
	ActivityName    string       `json:"activity_name"`
	DurationMinutes int          `json:"duration_minutes,omitempty"`
	Intensity       string       `json:"intensity,omitempty"`
	Quantity        int          `json:"quantity,omitempty"`
	Notes           string       `json:"notes,omitempty"`
}

// Context is the trailing data window serialized into the completion prompt.
// It is never persisted.
type Context struct {
	DailyLogs     []DailyLog     `json:"daily_logs"`
	LifestyleLogs []LifestyleLog `json:"lifestyle_logs"`
}

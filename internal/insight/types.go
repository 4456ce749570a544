package insight

import (
	"github.com/google/uuid"

	"github.com/healthloop/pulse/internal/record"
)

// Category is the closed set of insight categories.
type Category string

const (
	CategorySleep      Category = "Sleep"
	CategoryExercise   Category = "Exercise"
	CategoryHydration  Category = "Hydration"
	CategoryMood       Category = "Mood"
	CategorySymptoms   Category = "Symptoms"
	CategoryMedication Category = "Medication"
	CategoryGeneral    Category = "General"
)

const (
	// MaxTitleLen and MaxContentLen bound what gets persisted, regardless
	// of what the completion returns.
	MaxTitleLen   = 255
	MaxContentLen = 10000
)

// Insight is one generated observation tied to a single calendar day for one
// user. Records are written once and never mutated; (UserID, GeneratedDate)
// is the pipeline's idempotency key.
type Insight struct {
	UserID        uuid.UUID  `json:"user_id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Category      Category   `json:"category"`
	GeneratedDate record.Day `json:"generated_date"`
}

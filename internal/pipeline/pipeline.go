package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/healthloop/pulse/internal/bus"
	"github.com/healthloop/pulse/internal/insight"
	"github.com/healthloop/pulse/internal/record"
)

// The trailing context window: the target day plus the six days before it.
const windowDays = 6

const maxCompletionTokens = 500

// Fixed fallback records. Users never see a pipeline failure; the worst case
// is one of these two.
const (
	noDataTitle   = "No Health Data"
	noDataContent = "No health or lifestyle data was logged for this day."

	noInsightTitle   = "No Actionable Insight"
	noInsightContent = "No actionable health insight could be generated for this day."
)

// Store is what the pipeline needs from persistence: read-only access to the
// health log tables and append access to the insights table.
type Store interface {
	GetDailyLogs(ctx context.Context, userID uuid.UUID, from, to record.Day) ([]record.DailyLog, error)
	GetLifestyleLogs(ctx context.Context, userID uuid.UUID, from, to record.Day) ([]record.LifestyleLog, error)
	GetAllLogDates(ctx context.Context, userID uuid.UUID) ([]record.Day, error)
	FindInsight(ctx context.Context, userID uuid.UUID, day record.Day) (*insight.Insight, error)
	SaveInsight(ctx context.Context, rec insight.Insight) (insight.Insight, error)
}

// Completer is the text-completion boundary.
type Completer interface {
	Complete(ctx context.Context, system, user string, maxTokens int) (string, error)
}

// Publisher emits service events. Best-effort: publish failures are logged,
// never surfaced.
type Publisher interface {
	Publish(subject string, data any) error
}

// Notifier receives newly generated non-fallback insights.
type Notifier interface {
	PostInsight(ctx context.Context, rec insight.Insight) error
}

// Pipeline orchestrates insight generation: idempotency check, data window,
// completion call, extraction, classification, persistence.
type Pipeline struct {
	store    Store
	llm      Completer
	bus      Publisher // optional
	notifier Notifier  // optional
	logger   *slog.Logger
}

func New(s Store, llm Completer, b Publisher, n Notifier, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		store:    s,
		llm:      llm,
		bus:      b,
		notifier: n,
		logger:   logger,
	}
}

// GetOrGenerate returns the insight for (userID, date), generating and
// persisting one if none exists. date must be YYYY-MM-DD; anything else
// fails with record.ErrInvalidDate before any store or completion call.
func (p *Pipeline) GetOrGenerate(ctx context.Context, userID uuid.UUID, date string) (insight.Insight, error) {
	day, err := record.ParseDay(date)
	if err != nil {
		return insight.Insight{}, err
	}
	return p.generate(ctx, userID, day)
}

func (p *Pipeline) generate(ctx context.Context, userID uuid.UUID, day record.Day) (insight.Insight, error) {
	// Idempotency: at most one insight per user per day, never overwritten.
	existing, err := p.store.FindInsight(ctx, userID, day)
	if err != nil {
		return insight.Insight{}, fmt.Errorf("find insight: %w", err)
	}
	if existing != nil {
		return *existing, nil
	}

	from := day.AddDays(-windowDays)
	daily, err := p.store.GetDailyLogs(ctx, userID, from, day)
	if err != nil {
		return insight.Insight{}, fmt.Errorf("load daily logs: %w", err)
	}
	lifestyle, err := p.store.GetLifestyleLogs(ctx, userID, from, day)
	if err != nil {
		return insight.Insight{}, fmt.Errorf("load lifestyle logs: %w", err)
	}

	if len(daily) == 0 && len(lifestyle) == 0 {
		return p.persist(ctx, insight.Insight{
			UserID:        userID,
			Title:         noDataTitle,
			Content:       noDataContent,
			Category:      insight.CategoryGeneral,
			GeneratedDate: day,
		}, true)
	}

	raw, err := p.complete(ctx, daily, lifestyle)
	if err != nil {
		// Completion failures stop here: log and fall back.
		p.logger.Warn("completion failed, using fallback insight",
			"user_id", userID.String(),
			"date", day.String(),
			"error", err,
		)
		return p.persist(ctx, p.fallback(userID, day), true)
	}

	title, content, ok := insight.ExtractActionable(raw)
	if !ok {
		p.logger.Info("no actionable insight extracted",
			"user_id", userID.String(),
			"date", day.String(),
		)
		return p.persist(ctx, p.fallback(userID, day), true)
	}

	rec := insight.Insight{
		UserID:        userID,
		Title:         title,
		Content:       content,
		Category:      insight.Classify(title + " " + content),
		GeneratedDate: day,
	}
	return p.persist(ctx, rec, false)
}

func (p *Pipeline) complete(ctx context.Context, daily []record.DailyLog, lifestyle []record.LifestyleLog) (string, error) {
	window := record.Context{DailyLogs: daily, LifestyleLogs: lifestyle}
	payload, err := json.Marshal(window)
	if err != nil {
		return "", fmt.Errorf("marshal context: %w", err)
	}
	return p.llm.Complete(ctx, insight.SystemPrompt, string(payload), maxCompletionTokens)
}

func (p *Pipeline) fallback(userID uuid.UUID, day record.Day) insight.Insight {
	return insight.Insight{
		UserID:        userID,
		Title:         noInsightTitle,
		Content:       noInsightContent,
		Category:      insight.CategoryGeneral,
		GeneratedDate: day,
	}
}

func (p *Pipeline) persist(ctx context.Context, rec insight.Insight, isFallback bool) (insight.Insight, error) {
	saved, err := p.store.SaveInsight(ctx, rec)
	if err != nil {
		return insight.Insight{}, fmt.Errorf("save insight: %w", err)
	}

	if p.bus != nil {
		evt := bus.InsightGeneratedEvent{
			UserID:        saved.UserID.String(),
			GeneratedDate: saved.GeneratedDate.String(),
			Title:         saved.Title,
			Category:      string(saved.Category),
			Fallback:      isFallback,
		}
		if err := p.bus.Publish(bus.SubjectInsightGenerated, evt); err != nil {
			p.logger.Warn("failed to publish insight event", "error", err)
		}
	}

	if p.notifier != nil && !isFallback {
		if err := p.notifier.PostInsight(ctx, saved); err != nil {
			p.logger.Warn("failed to post insight notification", "error", err)
		}
	}

	return saved, nil
}

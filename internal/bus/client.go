package bus

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	// SubjectInsightGenerated is published after each newly persisted insight.
	SubjectInsightGenerated = "health.insight.generated"
	// SubjectServiceRegistered announces the service on startup.
	SubjectServiceRegistered = "health.insight.service.registered"
)

// InsightGeneratedEvent is the payload for SubjectInsightGenerated. Fallback
// is true for the "No Health Data" / "No Actionable Insight" records.
type InsightGeneratedEvent struct {
	UserID        string `json:"user_id"`
	GeneratedDate string `json:"generated_date"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Fallback      bool   `json:"fallback"`
}

type Client struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewClient(url, token string, logger *slog.Logger) (*Client, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Client{conn: nc, logger: logger}, nil
}

func (c *Client) Publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return c.conn.Publish(subject, payload)
}

func (c *Client) Close() {
	c.conn.Close()
}

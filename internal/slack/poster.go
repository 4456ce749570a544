package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/healthloop/pulse/internal/insight"
)

const defaultPostMessageURL = "https://slack.com/api/chat.postMessage"

// Poster sends newly generated insights to a Slack channel. Optional: when
// not configured the service runs without notifications.
type Poster struct {
	token   string
	channel string
	client  *http.Client
	logger  *slog.Logger
	apiURL  string
}

func NewPoster(token, channel string, logger *slog.Logger) *Poster {
	return &Poster{
		token:   token,
		channel: channel,
		client:  &http.Client{Timeout: 10 * time.Second},
		apiURL:  defaultPostMessageURL,
		logger:  logger,
	}
}

// PostInsight posts one insight as a formatted message.
func (p *Poster) PostInsight(ctx context.Context, rec insight.Insight) error {
	text := formatInsightMessage(rec)

	body, err := json.Marshal(map[string]any{
		"channel": p.channel,
		"text":    text,
		"blocks": []map[string]any{
			{
				"type": "section",
				"text": map[string]any{
					"type": "mrkdwn",
					"text": text,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("slack post: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var slackResp struct {
		OK    bool   `json:"ok"`
		Error string `json:"error,omitempty"`
	}
	if err := json.Unmarshal(respBody, &slackResp); err != nil {
		return fmt.Errorf("parse slack response: %w", err)
	}
	if !slackResp.OK {
		return fmt.Errorf("slack error: %s", slackResp.Error)
	}

	p.logger.Info("insight posted to slack",
		"user_id", rec.UserID.String(),
		"date", rec.GeneratedDate.String(),
		"category", string(rec.Category),
	)
	return nil
}

func formatInsightMessage(rec insight.Insight) string {
	return fmt.Sprintf(":bulb: *%s* — %s, %s\n%s",
		rec.Title, rec.Category, rec.GeneratedDate, rec.Content)
}

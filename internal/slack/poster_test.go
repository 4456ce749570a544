package slack

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/healthloop/pulse/internal/insight"
	"github.com/healthloop/pulse/internal/record"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testInsight() insight.Insight {
	d, _ := record.ParseDay("2024-01-05")
	return insight.Insight{
		UserID:        uuid.New(),
		Title:         "Sleep Pattern",
		Content:       "You slept late on 4 of 7 nights.",
		Category:      insight.CategorySleep,
		GeneratedDate: d,
	}
}

func TestPostInsight_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer xoxb-test" {
			t.Errorf("expected bearer token, got %q", r.Header.Get("Authorization"))
		}

		var payload struct {
			Channel string `json:"channel"`
			Text    string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
		if payload.Channel != "C12345" {
			t.Errorf("expected channel C12345, got %q", payload.Channel)
		}
		for _, want := range []string{"Sleep Pattern", "Sleep", "2024-01-05", "4 of 7 nights"} {
			if !strings.Contains(payload.Text, want) {
				t.Errorf("expected message to contain %q, got %q", want, payload.Text)
			}
		}

		json.NewEncoder(w).Encode(map[string]any{"ok": true, "ts": "1234.5678"})
	}))
	defer server.Close()

	p := NewPoster("xoxb-test", "C12345", discardLogger())
	p.apiURL = server.URL

	if err := p.PostInsight(context.Background(), testInsight()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPostInsight_SlackError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "channel_not_found"})
	}))
	defer server.Close()

	p := NewPoster("xoxb-test", "C-missing", discardLogger())
	p.apiURL = server.URL

	err := p.PostInsight(context.Background(), testInsight())
	if err == nil {
		t.Fatal("expected error for slack error response")
	}
	if !strings.Contains(err.Error(), "channel_not_found") {
		t.Errorf("expected slack error detail, got %v", err)
	}
}

func TestFormatInsightMessage(t *testing.T) {
	msg := formatInsightMessage(testInsight())

	for _, want := range []string{"Sleep Pattern", "Sleep", "2024-01-05"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected message to contain %q, got %q", want, msg)
		}
	}
}

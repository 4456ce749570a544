package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestComplete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("expected path /chat/completions, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("expected bearer auth, got %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected Content-Type application/json, got %q", r.Header.Get("Content-Type"))
		}

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("expected model test-model, got %q", req.Model)
		}
		if req.Temperature != 0.7 {
			t.Errorf("expected temperature 0.7, got %f", req.Temperature)
		}
		if req.MaxTokens != 500 {
			t.Errorf("expected max_tokens 500, got %d", req.MaxTokens)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}
		if req.Messages[0].Content != "you are a test" {
			t.Errorf("expected system prompt, got %q", req.Messages[0].Content)
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{
					"message":       map[string]any{"role": "assistant", "content": "Sleep Pattern: test output"},
					"finish_reason": "stop",
				},
			},
		})
	}))
	defer server.Close()

	c := NewClient("test-key", "test-model", server.URL, 5*time.Second)

	result, err := c.Complete(context.Background(), "you are a test", "hello", 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "Sleep Pattern: test output" {
		t.Errorf("unexpected completion: %q", result)
	}
}

func TestComplete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "rate_limit_error",
				"message": "rate limited",
			},
		})
	}))
	defer server.Close()

	c := NewClient("test-key", "test-model", server.URL, 5*time.Second)

	if _, err := c.Complete(context.Background(), "", "hi", 500); err == nil {
		t.Fatal("expected error for API error response")
	}
}

func TestComplete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	c := NewClient("test-key", "test-model", server.URL, 5*time.Second)

	if _, err := c.Complete(context.Background(), "", "hi", 500); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestComplete_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	c := NewClient("test-key", "test-model", server.URL, 5*time.Second)

	if _, err := c.Complete(context.Background(), "", "hi", 500); err == nil {
		t.Fatal("expected error for malformed body")
	}
}

func TestComplete_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	c := NewClient("test-key", "test-model", server.URL, 20*time.Millisecond)

	if _, err := c.Complete(context.Background(), "", "hi", 500); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	c := NewClient("k", "m", "", time.Second)
	if c.baseURL != defaultBaseURL {
		t.Errorf("expected default base URL, got %q", c.baseURL)
	}
}

package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart-task-api/pkg/llm"
)

func TestComplete(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  req.Model,
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": `{"description":"Buy milk","due_date":"tomorrow","background":false}`,
					},
					"finish_reason": "stop",
				},
			},
		})
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := llm.NewClient(llm.Config{
		APIKey:  "test-key",
		BaseURL: ts.URL,
	})

	got, err := client.Complete(context.Background(), "You are a task management assistant.", "Buy milk tomorrow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"description":"Buy milk","due_date":"tomorrow","background":false}` {
		t.Errorf("unexpected completion content: %q", got)
	}
}

func TestCompleteUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer ts.Close()

	client := llm.NewClient(llm.Config{APIKey: "test-key", BaseURL: ts.URL})

	_, err := client.Complete(context.Background(), "system", "user")
	if err == nil {
		t.Fatalf("expected error for upstream failure")
	}
}

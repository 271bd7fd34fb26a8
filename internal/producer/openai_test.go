package producer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// completionResponse mirrors the minimal chat-completions payload shape.
type completionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func newCompletionServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("Authorization header = %q, want bearer test-key", r.Header.Get("Authorization"))
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}

		var resp completionResponse
		resp.Choices = make([]struct {
			Message struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"message"`
		}, 1)
		resp.Choices[0].Message.Role = "assistant"
		resp.Choices[0].Message.Content = content

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encoding response: %v", err)
		}
	}))
}

func TestOpenAINextReply(t *testing.T) {
	srv := newCompletionServer(t, http.StatusOK, "We open at 8am on weekdays.")
	defer srv.Close()

	p := NewOpenAI(OpenAIConfig{
		APIKey:       "test-key",
		BaseURL:      srv.URL + "/v1",
		Model:        "gpt-4o-mini",
		BusinessName: "Testco",
	})

	reply, err := p.NextReply(context.Background(), "When do you open?")
	if err != nil {
		t.Fatalf("NextReply returned error: %v", err)
	}
	if reply.Text != "We open at 8am on weekdays." {
		t.Errorf("reply text = %q, want server content", reply.Text)
	}
	if len(reply.QuickReplies) != 0 {
		t.Errorf("remote reply carried %d quick replies, want 0", len(reply.QuickReplies))
	}
}

func TestOpenAINextReplyUpstreamError(t *testing.T) {
	srv := newCompletionServer(t, http.StatusInternalServerError, "")
	defer srv.Close()

	p := NewOpenAI(OpenAIConfig{
		APIKey:       "test-key",
		BaseURL:      srv.URL + "/v1",
		Model:        "gpt-4o-mini",
		BusinessName: "Testco",
	})

	if _, err := p.NextReply(context.Background(), "hello"); err == nil {
		t.Errorf("NextReply = nil error on 500 response, want error")
	}
}

func TestOpenAIHistoryIsBounded(t *testing.T) {
	srv := newCompletionServer(t, http.StatusOK, "ok")
	defer srv.Close()

	p := NewOpenAI(OpenAIConfig{
		APIKey:       "test-key",
		BaseURL:      srv.URL + "/v1",
		Model:        "gpt-4o-mini",
		BusinessName: "Testco",
	})

	for i := 0; i < maxHistoryTurns*3; i++ {
		if _, err := p.NextReply(context.Background(), "turn"); err != nil {
			t.Fatalf("NextReply returned error on turn %d: %v", i, err)
		}
	}

	p.mu.Lock()
	got := len(p.history)
	p.mu.Unlock()
	if got > maxHistoryTurns*2 {
		t.Errorf("history length = %d, want at most %d", got, maxHistoryTurns*2)
	}
}

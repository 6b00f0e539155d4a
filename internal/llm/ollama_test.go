package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/odaklab/adaptiq/internal/quiz"
)

func ollamaServer(t *testing.T, handler http.HandlerFunc) *OllamaProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOllamaProvider(OllamaConfig{
		URL:     srv.URL,
		Model:   "test-model",
		Timeout: 5 * time.Second,
	})
}

func TestOllamaGenerateQuestion(t *testing.T) {
	var got ollamaGenerateRequest
	p := ollamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(ollamaGenerateResponse{Response: validWire})
	})

	q, err := p.GenerateQuestion(context.Background(), QuestionRequest{
		Subject:    "hayvanlar",
		Difficulty: Kolay,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Model != "test-model" || got.Format != "json" || got.Stream {
		t.Errorf("wire request = %+v", got)
	}
	if got.Options != DefaultGenOptions {
		t.Errorf("options = %+v, want defaults", got.Options)
	}
	if !strings.Contains(got.Prompt, "hayvanlar") || !strings.Contains(got.Prompt, "kolay") {
		t.Error("prompt should embed subject and difficulty")
	}

	if !strings.HasPrefix(q.ID, "gen_") {
		t.Errorf("id = %q, want gen_ prefix", q.ID)
	}
	if q.Source != quiz.SourceBackend {
		t.Errorf("source = %q, want backend", q.Source)
	}
	if q.Difficulty != quiz.Easy {
		t.Errorf("difficulty = %q, want easy", q.Difficulty)
	}
	if q.Confidence != 0.9 {
		t.Errorf("confidence = %v, want 0.9", q.Confidence)
	}
}

func TestOllamaNon200IsBackendUnavailable(t *testing.T) {
	p := ollamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	})

	_, err := p.GenerateQuestion(context.Background(), QuestionRequest{Subject: "renkler", Difficulty: Orta})
	var unavailable *ErrBackendUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("got %T, want ErrBackendUnavailable", err)
	}
}

func TestOllamaUnreachableIsBackendUnavailable(t *testing.T) {
	p := NewOllamaProvider(OllamaConfig{
		URL:     "http://127.0.0.1:1",
		Model:   "test-model",
		Timeout: time.Second,
	})

	_, err := p.GenerateQuestion(context.Background(), QuestionRequest{Subject: "renkler", Difficulty: Orta})
	var unavailable *ErrBackendUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("got %T, want ErrBackendUnavailable", err)
	}
}

func TestOllamaEmptyResponseIsInvalidContent(t *testing.T) {
	p := ollamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaGenerateResponse{Response: ""})
	})

	_, err := p.GenerateQuestion(context.Background(), QuestionRequest{Subject: "renkler", Difficulty: Orta})
	var invalid *ErrInvalidContent
	if !errors.As(err, &invalid) {
		t.Fatalf("got %T, want ErrInvalidContent", err)
	}
}

func TestOllamaDoesNotRetry(t *testing.T) {
	calls := 0
	p := ollamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	p.GenerateQuestion(context.Background(), QuestionRequest{Subject: "renkler", Difficulty: Orta})
	if calls != 1 {
		t.Errorf("backend called %d times, want exactly 1", calls)
	}
}

func TestOllamaHealthy(t *testing.T) {
	p := ollamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	if !p.Healthy(context.Background()) {
		t.Error("expected healthy against live endpoint")
	}

	down := NewOllamaProvider(OllamaConfig{URL: "http://127.0.0.1:1", Model: "m", Timeout: time.Second})
	if down.Healthy(context.Background()) {
		t.Error("expected unhealthy against dead endpoint")
	}
}

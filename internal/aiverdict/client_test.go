package aiverdict

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/MokshaVS03/scam-url-detector/internal/types"
)

// completionsReply wraps content in the chat completions envelope.
func completionsReply(content string) string {
	reply := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
	raw, _ := json.Marshal(reply)

	return string(raw)
}

func TestClassifyWithoutAPIKey(t *testing.T) {
	c := New("")

	verdict, err := c.Classify(context.Background(), &types.PageContent{Text: "anything"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if verdict.IsPhishing || verdict.Confidence != 0 {
		t.Errorf("expected default verdict, got %+v", verdict)
	}
	if !strings.Contains(verdict.Reasoning, "no API key") {
		t.Errorf("reasoning = %q", verdict.Reasoning)
	}
}

func TestClassifyParsesJSONVerdict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("authorization = %q", auth)
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("request body decode: %v", err)
		}
		if req["model"] != "gpt-3.5-turbo" {
			t.Errorf("model = %v", req["model"])
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionsReply(`{"is_phishing": true, "confidence": 85, "reasoning": "urgency and credential requests"}`)))
	}))
	defer srv.Close()

	c := New("test-key", WithBaseURL(srv.URL))

	verdict, err := c.Classify(context.Background(), &types.PageContent{
		Title: "Verify your account",
		Text:  "act now",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !verdict.IsPhishing {
		t.Error("expected phishing verdict")
	}
	if verdict.Confidence != 85 {
		t.Errorf("confidence = %d, want 85", verdict.Confidence)
	}
	if verdict.Reasoning != "urgency and credential requests" {
		t.Errorf("reasoning = %q", verdict.Reasoning)
	}
}

func TestClassifyTruncatesOnRuneBoundary(t *testing.T) {
	var userContent string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("request body decode: %v", err)
		}

		for _, msg := range req.Messages {
			if msg.Role == "user" {
				userContent = msg.Content
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionsReply(`{"is_phishing": false, "confidence": 0, "reasoning": "ok"}`)))
	}))
	defer srv.Close()

	c := New("test-key", WithBaseURL(srv.URL))

	// Multi-byte text well past the analysis cap must be cut between
	// characters, never inside one.
	_, err := c.Classify(context.Background(), &types.PageContent{
		Text: strings.Repeat("é", maxAnalysisChars+500),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !utf8.ValidString(userContent) {
		t.Error("expected prompt to remain valid UTF-8 after truncation")
	}
	if strings.ContainsRune(userContent, utf8.RuneError) {
		t.Error("expected no replacement character from a split rune")
	}

	// The leading space from joining title and text consumes one of the
	// allowed characters.
	if got := strings.Count(userContent, "é"); got != maxAnalysisChars-1 {
		t.Errorf("truncated text carries %d characters, want %d", got, maxAnalysisChars-1)
	}
}

func TestClassifyFallbackOnUnparseableReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionsReply("This page is almost certainly a phishing attempt.")))
	}))
	defer srv.Close()

	c := New("test-key", WithBaseURL(srv.URL))

	verdict, err := c.Classify(context.Background(), &types.PageContent{Text: "content"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !verdict.IsPhishing {
		t.Error("expected fallback keyword scan to flag phishing")
	}
	if verdict.Confidence != 50 {
		t.Errorf("confidence = %d, want fallback 50", verdict.Confidence)
	}
}

func TestClassifyFallbackBenignReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionsReply("The page looks like an ordinary documentation site.")))
	}))
	defer srv.Close()

	c := New("test-key", WithBaseURL(srv.URL))

	verdict, err := c.Classify(context.Background(), &types.PageContent{Text: "content"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if verdict.IsPhishing {
		t.Error("expected benign fallback verdict")
	}
}

func TestClassifyClampsConfidence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionsReply(`{"is_phishing": true, "confidence": 900, "reasoning": "x"}`)))
	}))
	defer srv.Close()

	c := New("test-key", WithBaseURL(srv.URL))

	verdict, err := c.Classify(context.Background(), &types.PageContent{Text: "content"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if verdict.Confidence != 100 {
		t.Errorf("confidence = %d, want clamped 100", verdict.Confidence)
	}
}

func TestClassifyEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	c := New("test-key", WithBaseURL(srv.URL))

	if _, err := c.Classify(context.Background(), &types.PageContent{Text: "x"}); !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestClassifyUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New("test-key", WithBaseURL(srv.URL))

	if _, err := c.Classify(context.Background(), &types.PageContent{Text: "x"}); !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
	}
}

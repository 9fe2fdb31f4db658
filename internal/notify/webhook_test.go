package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MokshaVS03/scam-url-detector/internal/types"
)

func highRiskAssessment() *types.Assessment {
	return &types.Assessment{
		URL:        "http://paypa1-login.tk/verify",
		AssessedAt: 1700000000,
		TrustAssessment: types.TrustAssessment{
			Score:          10,
			RiskLevel:      types.RiskHigh,
			Summary:        "URL shows strong indicators of phishing or scam",
			Recommendation: "Do not visit - likely phishing or scam site",
		},
		Details: types.AssessmentDetails{
			URLFinding: &types.URLFinding{
				OriginalURL:        "http://paypa1-login.tk/verify",
				SuspiciousPatterns: []string{"verify.*account", "suspicious_tld_.tk"},
			},
			Reputation: types.ReputationFinding{DetectionCount: 12, TotalScans: 70},
			AIVerdict:  types.AIVerdict{IsPhishing: true, Confidence: 92},
		},
	}
}

func TestSend_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}

		contentType := r.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "application/json") {
			t.Errorf("expected Content-Type to start with application/json, got %s", contentType)
		}

		var msg Message
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			t.Fatalf("failed to decode message: %v", err)
		}

		if msg.Text != "test message" {
			t.Errorf("expected text 'test message', got %s", msg.Text)
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(server.URL, WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	err = client.Send(context.Background(), Message{Text: "test message"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAlertHighRisk(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg Message
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			t.Fatalf("failed to decode message: %v", err)
		}

		if !strings.Contains(msg.Text, "paypa1-login.tk") {
			t.Errorf("expected fallback text to include the URL, got %s", msg.Text)
		}

		if len(msg.Blocks) == 0 {
			t.Fatal("expected blocks in alert message")
		}

		if msg.Blocks[0].Type != "header" {
			t.Errorf("expected first block type header, got %s", msg.Blocks[0].Type)
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(server.URL, WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	err = client.AlertHighRisk(context.Background(), highRiskAssessment())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHighRiskMessage_Fields(t *testing.T) {
	msg := HighRiskMessage(highRiskAssessment())

	var fields []TextObject

	for _, block := range msg.Blocks {
		if len(block.Fields) > 0 {
			fields = block.Fields
		}
	}

	if len(fields) != 5 {
		t.Fatalf("expected score, risk, confidence, detections and patterns fields, got %d", len(fields))
	}
}

func TestHighRiskMessage_MinimalDetails(t *testing.T) {
	assessment := &types.Assessment{
		URL: "http://example.tk",
		TrustAssessment: types.TrustAssessment{
			Score:     30,
			RiskLevel: types.RiskHigh,
		},
	}

	msg := HighRiskMessage(assessment)

	for _, block := range msg.Blocks {
		if len(block.Fields) > 0 && len(block.Fields) != 2 {
			t.Errorf("expected only score and risk fields, got %d", len(block.Fields))
		}
	}
}

func TestNew_MissingWebhookURL(t *testing.T) {
	_, err := New("")
	if err == nil {
		t.Fatal("expected error for missing webhook URL")
	}

	if err != ErrMissingWebhookURL {
		t.Errorf("expected ErrMissingWebhookURL, got %v", err)
	}
}

func TestSend_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := New(server.URL, WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	err = client.Send(context.Background(), Message{Text: "test"})
	if err == nil {
		t.Fatal("expected error for server error response")
	}
}

func TestSend_RequestError(t *testing.T) {
	client, err := New("http://localhost:1/invalid", WithHTTPClient(&http.Client{}))
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	err = client.Send(context.Background(), Message{Text: "test"})
	if err == nil {
		t.Fatal("expected error for request failure")
	}
}

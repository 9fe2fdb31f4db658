// Package aiverdict asks an external language-model classifier whether
// fetched page content looks like phishing and normalizes the reply into
// an AIVerdict. Unparseable replies degrade to a keyword fallback and a
// neutral confidence; they never surface as errors to the aggregator.
package aiverdict

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/theopenlane/httpsling"

	"github.com/MokshaVS03/scam-url-detector/internal/types"
)

const (
	// defaultBaseURL is the root endpoint of the classifier API
	defaultBaseURL = "https://api.openai.com/v1"
	// completionsPath is the chat completions endpoint
	completionsPath = "/chat/completions"
	// defaultModel is the classifier model used when none is configured
	defaultModel = "gpt-3.5-turbo"
	// defaultRequestTimeout bounds classification calls.
	defaultRequestTimeout = 10 * time.Second

	// maxAnalysisChars caps how much page text is sent to the classifier.
	maxAnalysisChars = 2000
	// maxTokens bounds the classifier's reply length.
	maxTokens = 500
	// temperature keeps the classifier's output near-deterministic.
	temperature = 0.1

	// fallbackConfidence is assigned when the reply is not valid JSON but
	// still names phishing or scam content.
	fallbackConfidence = 50

	// reasonNoAPIKey explains the default verdict without credentials.
	reasonNoAPIKey = "AI analysis unavailable - no API key"

	systemPrompt = "You are a cybersecurity expert specializing in phishing detection."

	promptTemplate = `Analyze the following webpage content for phishing/scam indicators:

Title: %s
Content: %s

Consider these factors:
1. Urgency language and pressure tactics
2. Requests for personal/financial information
3. Grammatical errors and poor writing quality
4. Suspicious offers or claims
5. Impersonation of legitimate organizations
6. Fear-based messaging

Respond with a JSON object containing:
- is_phishing: boolean
- confidence: number (0-100)
- reasoning: string explaining the analysis`
)

// Client queries the content classifier.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// Option configures the Client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client for classification calls
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the default classifier API base URL
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithModel overrides the classifier model
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// New creates a classifier client. An empty API key is allowed and makes
// every classification return the documented default verdict.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		model:      defaultModel,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// chatMessage is a single message in the completions request.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the completions request body.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

// chatResponse is the completions response envelope.
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// verdictPayload is the JSON shape the classifier is instructed to return.
type verdictPayload struct {
	IsPhishing bool   `json:"is_phishing"`
	Confidence int    `json:"confidence"`
	Reasoning  string `json:"reasoning"`
}

// Classify submits page content to the classifier and returns its
// verdict. Without credentials it returns the default verdict and no
// error; transport and status failures are returned to the caller for
// defaulting.
func (c *Client) Classify(ctx context.Context, page *types.PageContent) (types.AIVerdict, error) {
	if c.apiKey == "" {
		return types.DefaultAIVerdict(reasonNoAPIKey), nil
	}

	var title, text string
	if page != nil {
		title = page.Title
		text = page.Text
	}

	// Truncation counts characters, not bytes, so multi-byte text is
	// never cut mid-rune.
	analysisText := title + " " + text
	if runes := []rune(analysisText); len(runes) > maxAnalysisChars {
		analysisText = string(runes[:maxAnalysisChars])
	}

	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(promptTemplate, title, analysisText)},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	requester := httpsling.MustNew(
		httpsling.URL(c.baseURL+completionsPath),
		httpsling.Post(),
		httpsling.BearerAuth(c.apiKey),
		httpsling.JSONBody(body),
		httpsling.WithHTTPClient(c.httpClient),
	)

	var reply chatResponse

	resp, err := requester.ReceiveWithContext(ctx, &reply)
	if err != nil {
		return types.AIVerdict{}, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close error is non-critical

	if resp.StatusCode != http.StatusOK {
		return types.AIVerdict{}, fmt.Errorf("%w: status %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if len(reply.Choices) == 0 {
		return types.AIVerdict{}, ErrEmptyResponse
	}

	return parseVerdict(reply.Choices[0].Message.Content), nil
}

// parseVerdict decodes the classifier's reply. A reply that is not the
// requested JSON shape falls back to a keyword scan of the raw text with
// a neutral confidence rather than failing the assessment.
func parseVerdict(raw string) types.AIVerdict {
	var payload verdictPayload
	if err := json.Unmarshal([]byte(raw), &payload); err == nil {
		return types.AIVerdict{
			IsPhishing: payload.IsPhishing,
			Confidence: clampConfidence(payload.Confidence),
			Reasoning:  payload.Reasoning,
		}
	}

	lower := strings.ToLower(raw)

	return types.AIVerdict{
		IsPhishing: strings.Contains(lower, "phishing") || strings.Contains(lower, "scam"),
		Confidence: fallbackConfidence,
		Reasoning:  raw,
	}
}

// clampConfidence bounds a confidence value to [0, 100].
func clampConfidence(confidence int) int {
	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}

	return confidence
}

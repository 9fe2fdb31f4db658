package notify

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/theopenlane/httpsling"

	"github.com/MokshaVS03/scam-url-detector/internal/types"
)

// Message represents a Slack-compatible webhook message payload
type Message struct {
	// Text is the fallback text for the notification
	Text string `json:"text"`
	// Blocks holds the rich layout blocks for the message
	Blocks []Block `json:"blocks,omitempty"`
}

// Block represents a Block Kit block
type Block struct {
	// Type is the block type (section, divider, header, etc.)
	Type string `json:"type"`
	// Text is the text object for this block
	Text *TextObject `json:"text,omitempty"`
	// Fields holds multiple text objects for section blocks
	Fields []TextObject `json:"fields,omitempty"`
}

// TextObject represents a text object within a block
type TextObject struct {
	// Type is the text type (plain_text or mrkdwn)
	Type string `json:"type"`
	// Text is the actual text content
	Text string `json:"text"`
}

// HighRiskMessage builds the alert payload for a high-risk assessment
func HighRiskMessage(assessment *types.Assessment) Message {
	fields := []TextObject{
		{Type: "mrkdwn", Text: fmt.Sprintf("*Trust Score:*\n%d/100", assessment.TrustAssessment.Score)},
		{Type: "mrkdwn", Text: fmt.Sprintf("*Risk Level:*\n%s", assessment.TrustAssessment.RiskLevel)},
	}

	if assessment.Details.AIVerdict.IsPhishing {
		fields = append(fields, TextObject{
			Type: "mrkdwn",
			Text: fmt.Sprintf("*Phishing Confidence:*\n%d%%", assessment.Details.AIVerdict.Confidence),
		})
	}

	if assessment.Details.Reputation.DetectionCount > 0 {
		fields = append(fields, TextObject{
			Type: "mrkdwn",
			Text: fmt.Sprintf("*Engine Detections:*\n%d of %d", assessment.Details.Reputation.DetectionCount, assessment.Details.Reputation.TotalScans),
		})
	}

	if finding := assessment.Details.URLFinding; finding != nil && len(finding.SuspiciousPatterns) > 0 {
		fields = append(fields, TextObject{
			Type: "mrkdwn",
			Text: fmt.Sprintf("*URL Patterns:*\n%s", strings.Join(finding.SuspiciousPatterns, ", ")),
		})
	}

	return Message{
		Text: fmt.Sprintf("High-risk URL detected: %s", assessment.URL),
		Blocks: []Block{
			{
				Type: "header",
				Text: &TextObject{Type: "plain_text", Text: "High-Risk URL Detected"},
			},
			{
				Type: "section",
				Text: &TextObject{Type: "mrkdwn", Text: fmt.Sprintf("`%s`", assessment.URL)},
			},
			{
				Type:   "section",
				Fields: fields,
			},
			{
				Type: "section",
				Text: &TextObject{Type: "mrkdwn", Text: fmt.Sprintf("*Recommendation:* %s", assessment.TrustAssessment.Recommendation)},
			},
			{
				Type: "section",
				Text: &TextObject{Type: "mrkdwn", Text: fmt.Sprintf("_Assessed at %s_", time.Unix(assessment.AssessedAt, 0).UTC().Format(time.RFC3339))},
			},
		},
	}
}

// Send posts a message to the configured webhook
func (c *Client) Send(ctx context.Context, msg Message) error {
	requester := httpsling.MustNew(
		httpsling.URL(c.webhookURL),
		httpsling.Post(),
		httpsling.JSONBody(msg),
		httpsling.WithHTTPClient(c.httpClient),
	)

	resp, err := requester.SendWithContext(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close error is non-critical

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return nil
}

// AlertHighRisk sends the standard alert for a high-risk assessment
func (c *Client) AlertHighRisk(ctx context.Context, assessment *types.Assessment) error {
	return c.Send(ctx, HighRiskMessage(assessment))
}

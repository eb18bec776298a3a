package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"engagement_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	EventQuoteAcceptance = "quote.acceptance"
	EventRequestUpdate   = "request.update"
)

// Envelope is the JSON body posted to the notification webhook.
type Envelope struct {
	EventID   string         `json:"event_id"`
	EventType string         `json:"event_type"`
	Timestamp time.Time      `json:"timestamp"`
	Source    string         `json:"source"`
	Data      map[string]any `json:"data"`
}

// WebhookNotifier forwards notifications to a push delivery service over
// HTTP. With no URL configured it only logs the event.
type WebhookNotifier struct {
	source     string
	url        string
	httpClient *http.Client
}

var _ interfaces.INotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(source, url string) *WebhookNotifier {
	return &WebhookNotifier{
		source: source,
		url:    url,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (n *WebhookNotifier) NotifyQuoteAcceptance(ctx context.Context, quoteID, actingProfileID string, isRequester bool) error {
	return n.publish(ctx, EventQuoteAcceptance, map[string]any{
		"quote_id":          quoteID,
		"acting_profile_id": actingProfileID,
		"is_requester":      isRequester,
	})
}

func (n *WebhookNotifier) NotifyProviderOfRequestUpdate(ctx context.Context, requestID, kind string) error {
	return n.publish(ctx, EventRequestUpdate, map[string]any{
		"request_id": requestID,
		"kind":       kind,
	})
}

func (n *WebhookNotifier) publish(ctx context.Context, eventType string, data map[string]any) error {
	envelope := Envelope{
		EventID:   "evt_" + uuid.NewString(),
		EventType: eventType,
		Timestamp: time.Now().UTC(),
		Source:    n.source,
		Data:      data,
	}

	slog.InfoContext(ctx, "notification_published",
		"event_id", envelope.EventID,
		"event_type", envelope.EventType,
	)
	if n.url == "" {
		return nil
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event-ID", envelope.EventID)
	req.Header.Set("X-Event-Type", envelope.EventType)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("notification webhook returned status %d", resp.StatusCode)
	}
	return nil
}

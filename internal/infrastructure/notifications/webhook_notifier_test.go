package notifications

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWebhookNotifier_NoURL(t *testing.T) {
	n := NewWebhookNotifier("engagement-service", "")

	if err := n.NotifyProviderOfRequestUpdate(context.Background(), "req-1", "reopened"); err != nil {
		t.Fatalf("expected nil err without webhook, got %v", err)
	}
}

func TestWebhookNotifier_PostsEnvelope(t *testing.T) {
	var got Envelope
	var eventType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		eventType = r.Header.Get("X-Event-Type")
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("missing content type header")
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	n := NewWebhookNotifier("engagement-service", server.URL)
	if err := n.NotifyQuoteAcceptance(context.Background(), "quote-1", "req-owner", true); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if eventType != EventQuoteAcceptance || got.EventType != EventQuoteAcceptance {
		t.Fatalf("unexpected event type header=%q body=%q", eventType, got.EventType)
	}
	if got.Source != "engagement-service" || got.EventID == "" {
		t.Fatalf("unexpected envelope: %+v", got)
	}
	if got.Data["quote_id"] != "quote-1" || got.Data["is_requester"] != true {
		t.Fatalf("unexpected data: %+v", got.Data)
	}
}

func TestWebhookNotifier_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	n := NewWebhookNotifier("engagement-service", server.URL)
	if err := n.NotifyProviderOfRequestUpdate(context.Background(), "req-1", "assigned"); err == nil {
		t.Fatalf("expected error on 502")
	}
}

package entities

import (
	"encoding/json"
	"strings"
	"time"
)

// ProviderStatus is a provider's private marker on one request. Each status
// has a rank in the status hierarchy; New and Hidden share the lowest rank.
type ProviderStatus int

const (
	ProviderStatusHidden ProviderStatus = iota
	ProviderStatusViewed
	ProviderStatusNegotiating
	ProviderStatusQuoted
	ProviderStatusAssigned
	ProviderStatusRejected
	ProviderStatusCompleted
	// ProviderStatusNew marks a request the provider has not acted on yet.
	// Unlike Hidden it keeps the request visible.
	ProviderStatusNew
)

var providerStatusNames = [...]string{
	ProviderStatusHidden:      "hidden",
	ProviderStatusViewed:      "viewed",
	ProviderStatusNegotiating: "negotiating",
	ProviderStatusQuoted:      "quoted",
	ProviderStatusAssigned:    "assigned",
	ProviderStatusRejected:    "rejected",
	ProviderStatusCompleted:   "completed",
	ProviderStatusNew:         "new",
}

func (s ProviderStatus) Rank() int {
	if s == ProviderStatusNew {
		return 0
	}
	return int(s)
}

func (s ProviderStatus) IsValid() bool {
	return s >= ProviderStatusHidden && s <= ProviderStatusNew
}

func (s ProviderStatus) String() string {
	if !s.IsValid() {
		return "unknown"
	}
	return providerStatusNames[s]
}

// ParseProviderStatus accepts the lowercase names used on the wire.
func ParseProviderStatus(v string) (ProviderStatus, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for i, name := range providerStatusNames {
		if name == v {
			return ProviderStatus(i), nil
		}
	}
	return ProviderStatusHidden, ErrUnknownProviderStatus
}

func (s ProviderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ProviderStatus) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	parsed, err := ParseProviderStatus(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// CanAdvance is the status hierarchy rule: a status may move up (or stay),
// may always drop to hidden, and a rejected relationship may be revived.
func CanAdvance(current, proposed ProviderStatus) bool {
	switch {
	case proposed == ProviderStatusHidden:
		return true
	case current == ProviderStatusRejected:
		return true
	default:
		return proposed.Rank() >= current.Rank()
	}
}

// ProviderRequestStatus is one row per (provider, request). The status field is
// unexported so every change goes through Advance and obeys the hierarchy.
//
// Storage model (DynamoDB):
//   - PK: request_id, SK: provider_id
//   - GSI (provider_id-index): provider_id
type ProviderRequestStatus struct {
	ProviderID  string
	RequestID   string
	status      ProviderStatus
	QuoteID     string
	LastUpdated time.Time
	Version     int64
}

// NewProviderRequestStatus builds the implicit row of a provider that never
// interacted with the request.
func NewProviderRequestStatus(providerID, requestID string) ProviderRequestStatus {
	return ProviderRequestStatus{ProviderID: providerID, RequestID: requestID, status: ProviderStatusNew}
}

// RestoreProviderRequestStatus rebuilds a stored row. Persistence adapters only.
func RestoreProviderRequestStatus(providerID, requestID string, status ProviderStatus, quoteID string, lastUpdated time.Time, version int64) ProviderRequestStatus {
	return ProviderRequestStatus{
		ProviderID:  providerID,
		RequestID:   requestID,
		status:      status,
		QuoteID:     quoteID,
		LastUpdated: lastUpdated,
		Version:     version,
	}
}

func (p ProviderRequestStatus) Status() ProviderStatus { return p.status }

// Persisted reports whether the row has been stored at least once.
func (p ProviderRequestStatus) Persisted() bool { return p.Version > 0 }

// Advance applies proposed when the hierarchy allows it. A refused proposal
// leaves the row untouched and returns false.
func (p *ProviderRequestStatus) Advance(proposed ProviderStatus, now time.Time) bool {
	if !proposed.IsValid() || !CanAdvance(p.status, proposed) {
		return false
	}
	p.status = proposed
	p.LastUpdated = now
	return true
}

func (p *ProviderRequestStatus) LinkQuote(quoteID string) {
	p.QuoteID = quoteID
}

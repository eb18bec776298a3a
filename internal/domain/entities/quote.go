package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus is informational; the agreement carries the binding state.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
)

// Quote is a provider's priced offer against a ServiceRequest.
//
// Storage model (DynamoDB):
//   - PK: request_id, SK: provider_id (one quote per provider and request)
//   - GSI (id-index): id
type Quote struct {
	ID         string          `json:"id"`
	ProviderID string          `json:"provider_id"`
	RequestID  string          `json:"request_id"`
	Price      decimal.Decimal `json:"price"`
	Message    string          `json:"message"`
	Status     QuoteStatus     `json:"status"`
	ExpiresAt  time.Time       `json:"expires_at"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Version    int64           `json:"-"`
}

// IsExpired reports whether the quote can no longer be accepted.
func (q Quote) IsExpired(now time.Time) bool {
	return !q.ExpiresAt.IsZero() && now.After(q.ExpiresAt)
}

func (q *Quote) MarkAccepted(now time.Time) {
	q.Status = QuoteStatusAccepted
	q.UpdatedAt = now
}

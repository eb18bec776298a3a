package entities

import "time"

type AgreementStatus string

const (
	AgreementStatusPending  AgreementStatus = "pending"
	AgreementStatusAccepted AgreementStatus = "accepted"
	AgreementStatusRejected AgreementStatus = "rejected"
)

// Agreement tracks bilateral acceptance of one quote.
//
// Storage model (DynamoDB):
//   - PK: quote_id (one agreement per quote, and a quote fixes both parties)
//
// Accepted and rejected agreements are immutable.
type Agreement struct {
	ID                  string          `json:"id"`
	QuoteID             string          `json:"quote_id"`
	RequestID           string          `json:"request_id"`
	RequesterID         string          `json:"requester_id"`
	ProviderID          string          `json:"provider_id"`
	RequesterAccepted   bool            `json:"requester_accepted"`
	RequesterAcceptedAt *time.Time      `json:"requester_accepted_at,omitempty"`
	ProviderAccepted    bool            `json:"provider_accepted"`
	ProviderAcceptedAt  *time.Time      `json:"provider_accepted_at,omitempty"`
	Status              AgreementStatus `json:"status"`
	RejectedBy          string          `json:"rejected_by,omitempty"`
	RejectedAt          *time.Time      `json:"rejected_at,omitempty"`
	FinalizedAt         *time.Time      `json:"finalized_at,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	Version             int64           `json:"-"`
}

func NewAgreement(id string, quote Quote, requesterID string, now time.Time) Agreement {
	return Agreement{
		ID:          id,
		QuoteID:     quote.ID,
		RequestID:   quote.RequestID,
		RequesterID: requesterID,
		ProviderID:  quote.ProviderID,
		Status:      AgreementStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (a Agreement) IsFinalized() bool { return a.Status == AgreementStatusAccepted }

func (a Agreement) IsRejected() bool { return a.Status == AgreementStatusRejected }

func (a Agreement) BothAccepted() bool { return a.RequesterAccepted && a.ProviderAccepted }

// Accept records the acting party's acceptance. Accepting twice is a no-op.
func (a *Agreement) Accept(party Party, now time.Time) (bool, error) {
	switch a.Status {
	case AgreementStatusRejected:
		return false, ErrAgreementRejected
	case AgreementStatusAccepted:
		return false, nil
	}

	switch party {
	case PartyRequester:
		if a.RequesterAccepted {
			return false, nil
		}
		a.RequesterAccepted = true
		a.RequesterAcceptedAt = &now
	case PartyProvider:
		if a.ProviderAccepted {
			return false, nil
		}
		a.ProviderAccepted = true
		a.ProviderAcceptedAt = &now
	default:
		return false, ErrNotAParty
	}
	a.UpdatedAt = now
	return true, nil
}

// Reject closes the agreement for good. Rejecting twice is a no-op.
func (a *Agreement) Reject(party Party, now time.Time) (bool, error) {
	switch a.Status {
	case AgreementStatusAccepted:
		return false, ErrAgreementFinalized
	case AgreementStatusRejected:
		return false, nil
	}
	if party != PartyRequester && party != PartyProvider {
		return false, ErrNotAParty
	}
	a.Status = AgreementStatusRejected
	a.RejectedBy = string(party)
	a.RejectedAt = &now
	a.UpdatedAt = now
	return true, nil
}

// Finalize flips a mutually accepted agreement to accepted.
func (a *Agreement) Finalize(now time.Time) bool {
	if a.Status != AgreementStatusPending || !a.BothAccepted() {
		return false
	}
	a.Status = AgreementStatusAccepted
	a.FinalizedAt = &now
	a.UpdatedAt = now
	return true
}

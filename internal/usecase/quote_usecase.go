package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"engagement_service/internal/domain/entities"
	"engagement_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultQuoteTTL = 7 * 24 * time.Hour

// IQuoteUseCase is the quote ledger.
//
//   - SubmitQuote records a provider offer; resubmitting returns the existing quote.
//   - ListByRequest lets the requester see every offer on their request.
type IQuoteUseCase interface {
	SubmitQuote(ctx context.Context, providerID, requestID string, price decimal.Decimal, message string) (QuoteSubmission, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByRequest(ctx context.Context, actingID, requestID string) ([]entities.Quote, error)
}

// QuoteSubmission is the outcome of SubmitQuote. Created is false when the
// provider had already quoted and the stored quote is returned unchanged.
type QuoteSubmission struct {
	Quote   entities.Quote
	Created bool
}

type QuoteUseCase struct {
	deps Dependencies
	ttl  time.Duration
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(deps Dependencies, ttl time.Duration) *QuoteUseCase {
	if ttl <= 0 {
		ttl = DefaultQuoteTTL
	}
	return &QuoteUseCase{deps: deps, ttl: ttl}
}

func (u *QuoteUseCase) SubmitQuote(ctx context.Context, providerID, requestID string, price decimal.Decimal, message string) (QuoteSubmission, error) {
	providerID = strings.TrimSpace(providerID)
	requestID = strings.TrimSpace(requestID)
	if providerID == "" {
		return QuoteSubmission{}, ErrInvalidProviderID
	}
	if requestID == "" {
		return QuoteSubmission{}, ErrInvalidRequestID
	}
	if !price.IsPositive() {
		return QuoteSubmission{}, ErrInvalidPrice
	}
	message = strings.TrimSpace(message)

	unlock := u.deps.lock(requestID)
	sub, effects, err := u.submitLocked(ctx, providerID, requestID, price, message)
	unlock()
	if err != nil {
		log.Printf("[quote][usecase] submit failed provider_id=%s request_id=%s err=%v", providerID, requestID, err)
		return QuoteSubmission{}, err
	}
	effects.flush(u.deps.Effects)

	log.Printf("[quote][usecase] submit done provider_id=%s request_id=%s quote_id=%s created=%t", providerID, requestID, sub.Quote.ID, sub.Created)
	return sub, nil
}

func (u *QuoteUseCase) submitLocked(ctx context.Context, providerID, requestID string, price decimal.Decimal, message string) (QuoteSubmission, effectBatch, error) {
	req, err := u.deps.loadRequest(ctx, requestID)
	if err != nil {
		return QuoteSubmission{}, nil, err
	}

	// A retried submission must neither duplicate nor fail.
	existing, err := u.deps.Quotes.GetByProviderAndRequest(ctx, providerID, requestID)
	if err != nil {
		return QuoteSubmission{}, nil, err
	}
	if existing.ID != "" {
		return QuoteSubmission{Quote: existing}, nil, nil
	}

	if !req.Status.IsOpen() {
		return QuoteSubmission{}, nil, ErrRequestNotOpen
	}
	if req.IsOwnedBy(providerID) {
		return QuoteSubmission{}, nil, ErrOwnRequest
	}

	now := u.deps.now()
	quote := entities.Quote{
		ID:         uuid.NewString(),
		ProviderID: providerID,
		RequestID:  requestID,
		Price:      price,
		Message:    message,
		Status:     entities.QuoteStatusPending,
		ExpiresAt:  now.Add(u.ttl),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	var cs interfaces.ChangeSet
	cs.PutQuote(&quote)

	row, err := u.deps.loadProviderStatus(ctx, providerID, requestID)
	if err != nil {
		return QuoteSubmission{}, nil, err
	}
	row.Advance(entities.ProviderStatusQuoted, now)
	row.LinkQuote(quote.ID)
	cs.PutProviderStatus(&row)

	if err := u.deps.UnitOfWork.Commit(ctx, cs); err != nil {
		if errors.Is(err, entities.ErrConflict) {
			// Another writer stored this provider's quote first.
			if stored, getErr := u.deps.Quotes.GetByProviderAndRequest(ctx, providerID, requestID); getErr == nil && stored.ID != "" {
				return QuoteSubmission{Quote: stored}, nil, nil
			}
		}
		return QuoteSubmission{}, nil, err
	}

	var effects effectBatch
	effects.message(providerID, req.RequesterID, req.ID, quoteSummary(req, quote))
	return QuoteSubmission{Quote: quote, Created: true}, effects, nil
}

func quoteSummary(req entities.ServiceRequest, q entities.Quote) string {
	text := fmt.Sprintf("New quote of %s for %q.", q.Price.StringFixed(2), req.Title)
	if q.Message != "" {
		text += " " + q.Message
	}
	return text
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.deps.Quotes.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByRequest(ctx context.Context, actingID, requestID string) ([]entities.Quote, error) {
	actingID = strings.TrimSpace(actingID)
	requestID = strings.TrimSpace(requestID)
	if actingID == "" {
		return nil, ErrInvalidProfileID
	}
	if requestID == "" {
		return nil, ErrInvalidRequestID
	}

	req, err := u.deps.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !req.IsOwnedBy(actingID) {
		return nil, entities.ErrNotRequestOwner
	}
	return u.deps.Quotes.ListByRequestID(ctx, requestID)
}

package usecase

import (
	"context"
	"log"
	"strings"

	"engagement_service/internal/domain/entities"
	"engagement_service/internal/usecase/interfaces"
)

// IProviderStatusUseCase tracks each provider's private marker on a request
// and decides which requests a provider may still see.
type IProviderStatusUseCase interface {
	AdvanceStatus(ctx context.Context, providerID, requestID string, proposed entities.ProviderStatus) (StatusAdvance, error)
	Get(ctx context.Context, providerID, requestID string) (entities.ProviderRequestStatus, error)
	ListAvailable(ctx context.Context, providerID string) ([]entities.ServiceRequest, error)
}

// StatusAdvance reports the status after an AdvanceStatus call. Applied is
// false when the hierarchy kept a more advanced status in place.
type StatusAdvance struct {
	Row     entities.ProviderRequestStatus
	Applied bool
}

func (s StatusAdvance) Status() entities.ProviderStatus { return s.Row.Status() }

type ProviderStatusUseCase struct {
	deps Dependencies
}

var _ IProviderStatusUseCase = (*ProviderStatusUseCase)(nil)

func NewProviderStatusUseCase(deps Dependencies) *ProviderStatusUseCase {
	return &ProviderStatusUseCase{deps: deps}
}

func (u *ProviderStatusUseCase) AdvanceStatus(ctx context.Context, providerID, requestID string, proposed entities.ProviderStatus) (StatusAdvance, error) {
	providerID = strings.TrimSpace(providerID)
	requestID = strings.TrimSpace(requestID)
	if providerID == "" {
		return StatusAdvance{}, ErrInvalidProviderID
	}
	if requestID == "" {
		return StatusAdvance{}, ErrInvalidRequestID
	}
	if !proposed.IsValid() {
		return StatusAdvance{}, entities.ErrUnknownProviderStatus
	}

	unlock := u.deps.lock(requestID)
	defer unlock()

	if _, err := u.deps.loadRequest(ctx, requestID); err != nil {
		return StatusAdvance{}, err
	}

	row, err := u.deps.loadProviderStatus(ctx, providerID, requestID)
	if err != nil {
		return StatusAdvance{}, err
	}
	current := row.Status()
	if !row.Advance(proposed, u.deps.now()) {
		log.Printf("[provider-status][usecase] stale update ignored provider_id=%s request_id=%s current=%s proposed=%s", providerID, requestID, current, proposed)
		return StatusAdvance{Row: row}, nil
	}

	var cs interfaces.ChangeSet
	cs.PutProviderStatus(&row)
	if err := u.deps.UnitOfWork.Commit(ctx, cs); err != nil {
		log.Printf("[provider-status][usecase] commit failed provider_id=%s request_id=%s err=%v", providerID, requestID, err)
		return StatusAdvance{}, err
	}
	return StatusAdvance{Row: row, Applied: true}, nil
}

// Get returns the provider's row, or the implicit new row when the provider
// never interacted with the request.
func (u *ProviderStatusUseCase) Get(ctx context.Context, providerID, requestID string) (entities.ProviderRequestStatus, error) {
	providerID = strings.TrimSpace(providerID)
	requestID = strings.TrimSpace(requestID)
	if providerID == "" {
		return entities.ProviderRequestStatus{}, ErrInvalidProviderID
	}
	if requestID == "" {
		return entities.ProviderRequestStatus{}, ErrInvalidRequestID
	}
	if _, err := u.deps.loadRequest(ctx, requestID); err != nil {
		return entities.ProviderRequestStatus{}, err
	}
	return u.deps.loadProviderStatus(ctx, providerID, requestID)
}

// ListAvailable lists open requests the provider has neither hidden nor quoted on.
func (u *ProviderStatusUseCase) ListAvailable(ctx context.Context, providerID string) ([]entities.ServiceRequest, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return nil, ErrInvalidProviderID
	}

	open, err := u.deps.Requests.ListByStatus(ctx, entities.RequestStatusOpen, entities.RequestStatusReopened)
	if err != nil {
		return nil, err
	}
	rows, err := u.deps.Statuses.ListByProviderID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	byRequest := make(map[string]entities.ProviderRequestStatus, len(rows))
	for _, row := range rows {
		byRequest[row.RequestID] = row
	}

	available := make([]entities.ServiceRequest, 0, len(open))
	for _, req := range open {
		if req.IsOwnedBy(providerID) {
			continue
		}
		row, ok := byRequest[req.ID]
		if ok && !isVisible(row) {
			continue
		}
		available = append(available, req)
	}
	return available, nil
}

func isVisible(row entities.ProviderRequestStatus) bool {
	if row.Status() == entities.ProviderStatusHidden {
		return false
	}
	return row.QuoteID == "" && row.Status() != entities.ProviderStatusQuoted
}

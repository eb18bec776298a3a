package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"engagement_service/internal/domain/entities"
	"engagement_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// NewServiceRequest carries the requester-provided fields of a request.
type NewServiceRequest struct {
	RequesterID string
	Category    string
	Subcategory string
	Location    string
	Title       string
	Description string
}

// IRequestLifecycleUseCase owns the service request status.
//
// Operations map to the request state machine:
//   - CreateRequest => open
//   - Assign => assigned (owner hands the request to a provider that quoted)
//   - Reject => rejected, Reopen => reopened, Cancel => cancelled
//   - Complete => completed (assigned provider, finalized agreement required)
type IRequestLifecycleUseCase interface {
	CreateRequest(ctx context.Context, in NewServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	Assign(ctx context.Context, actingID, requestID, providerID string) (entities.ServiceRequest, error)
	Reopen(ctx context.Context, requestID, actingID string) (entities.ServiceRequest, error)
	Cancel(ctx context.Context, requestID, actingID string) (entities.ServiceRequest, error)
	Reject(ctx context.Context, requestID, actingID string) (entities.ServiceRequest, error)
	Complete(ctx context.Context, requestID, providerID string) (entities.ServiceRequest, error)
}

type RequestLifecycleUseCase struct {
	deps Dependencies
}

var _ IRequestLifecycleUseCase = (*RequestLifecycleUseCase)(nil)

func NewRequestLifecycleUseCase(deps Dependencies) *RequestLifecycleUseCase {
	return &RequestLifecycleUseCase{deps: deps}
}

func (u *RequestLifecycleUseCase) CreateRequest(ctx context.Context, in NewServiceRequest) (entities.ServiceRequest, error) {
	in.RequesterID = strings.TrimSpace(in.RequesterID)
	in.Category = strings.TrimSpace(in.Category)
	in.Title = strings.TrimSpace(in.Title)
	if in.RequesterID == "" {
		return entities.ServiceRequest{}, ErrInvalidProfileID
	}
	if in.Category == "" {
		return entities.ServiceRequest{}, ErrMissingCategory
	}
	if in.Title == "" {
		return entities.ServiceRequest{}, ErrMissingTitle
	}

	now := u.deps.now()
	req := entities.ServiceRequest{
		ID:          uuid.NewString(),
		RequesterID: in.RequesterID,
		Category:    in.Category,
		Subcategory: strings.TrimSpace(in.Subcategory),
		Location:    strings.TrimSpace(in.Location),
		Title:       in.Title,
		Description: strings.TrimSpace(in.Description),
		Status:      entities.RequestStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var cs interfaces.ChangeSet
	cs.PutRequest(&req)
	if err := u.deps.UnitOfWork.Commit(ctx, cs); err != nil {
		log.Printf("[request][usecase] create failed requester_id=%s err=%v", in.RequesterID, err)
		return entities.ServiceRequest{}, err
	}
	log.Printf("[request][usecase] created request_id=%s requester_id=%s category=%s", req.ID, req.RequesterID, req.Category)
	return req, nil
}

func (u *RequestLifecycleUseCase) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}
	return u.deps.loadRequest(ctx, id)
}

func (u *RequestLifecycleUseCase) Assign(ctx context.Context, actingID, requestID, providerID string) (entities.ServiceRequest, error) {
	return u.mutate(ctx, "assign", requestID, actingID, func(req *entities.ServiceRequest, cs *interfaces.ChangeSet, effects *effectBatch) error {
		providerID = strings.TrimSpace(providerID)
		if providerID == "" {
			return ErrInvalidProviderID
		}
		if !req.IsOwnedBy(actingID) {
			return entities.ErrNotRequestOwner
		}
		quote, err := u.deps.Quotes.GetByProviderAndRequest(ctx, providerID, req.ID)
		if err != nil {
			return err
		}
		if quote.ID == "" {
			return ErrProviderHasNoQuote
		}

		now := u.deps.now()
		if err := req.Assign(providerID, now); err != nil {
			return err
		}
		cs.PutRequest(req)
		if _, err := u.deps.advanceProviderStatus(ctx, cs, providerID, req.ID, entities.ProviderStatusAssigned, now); err != nil {
			return err
		}
		wf, err := u.deps.startWorkflow(ctx, req.ID, providerID, now)
		if err != nil {
			return err
		}
		cs.PutWorkflow(&wf)

		effects.message(actingID, providerID, req.ID, fmt.Sprintf("You were assigned to %q.", req.Title))
		effects.requestUpdate(req.ID, interfaces.RequestUpdateAssigned)
		return nil
	})
}

func (u *RequestLifecycleUseCase) Reopen(ctx context.Context, requestID, actingID string) (entities.ServiceRequest, error) {
	return u.mutate(ctx, "reopen", requestID, actingID, func(req *entities.ServiceRequest, cs *interfaces.ChangeSet, effects *effectBatch) error {
		if err := req.Reopen(actingID, u.deps.now()); err != nil {
			return err
		}
		cs.PutRequest(req)
		effects.requestUpdate(req.ID, interfaces.RequestUpdateReopened)
		return nil
	})
}

func (u *RequestLifecycleUseCase) Cancel(ctx context.Context, requestID, actingID string) (entities.ServiceRequest, error) {
	return u.mutate(ctx, "cancel", requestID, actingID, func(req *entities.ServiceRequest, cs *interfaces.ChangeSet, effects *effectBatch) error {
		now := u.deps.now()
		previous, err := req.Cancel(actingID, now)
		if err != nil {
			return err
		}
		cs.PutRequest(req)
		if previous != "" {
			if _, err := u.deps.advanceProviderStatus(ctx, cs, previous, req.ID, entities.ProviderStatusRejected, now); err != nil {
				return err
			}
			effects.message(actingID, previous, req.ID, fmt.Sprintf("%q was cancelled by the requester.", req.Title))
		}
		effects.requestUpdate(req.ID, interfaces.RequestUpdateCancelled)
		return nil
	})
}

func (u *RequestLifecycleUseCase) Reject(ctx context.Context, requestID, actingID string) (entities.ServiceRequest, error) {
	return u.mutate(ctx, "reject", requestID, actingID, func(req *entities.ServiceRequest, cs *interfaces.ChangeSet, effects *effectBatch) error {
		if err := req.Reject(actingID, u.deps.now()); err != nil {
			return err
		}
		cs.PutRequest(req)
		effects.requestUpdate(req.ID, interfaces.RequestUpdateRejected)
		return nil
	})
}

func (u *RequestLifecycleUseCase) Complete(ctx context.Context, requestID, providerID string) (entities.ServiceRequest, error) {
	return u.mutate(ctx, "complete", requestID, providerID, func(req *entities.ServiceRequest, cs *interfaces.ChangeSet, effects *effectBatch) error {
		changed, err := u.deps.planCompletion(ctx, cs, req, nil, providerID, u.deps.now())
		if err != nil || !changed {
			return err
		}
		effects.message(providerID, req.RequesterID, req.ID, fmt.Sprintf("%q was completed.", req.Title))
		effects.requestUpdate(req.ID, interfaces.RequestUpdateCompleted)
		return nil
	})
}

// mutate runs one lifecycle operation under the request lock, commits what it
// queued and dispatches its side effects after the lock is released.
func (u *RequestLifecycleUseCase) mutate(
	ctx context.Context,
	op string,
	requestID string,
	actingID string,
	apply func(req *entities.ServiceRequest, cs *interfaces.ChangeSet, effects *effectBatch) error,
) (entities.ServiceRequest, error) {
	requestID = strings.TrimSpace(requestID)
	actingID = strings.TrimSpace(actingID)
	if requestID == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}
	if actingID == "" {
		return entities.ServiceRequest{}, ErrInvalidProfileID
	}

	unlock := u.deps.lock(requestID)
	req, effects, err := func() (entities.ServiceRequest, effectBatch, error) {
		req, err := u.deps.loadRequest(ctx, requestID)
		if err != nil {
			return entities.ServiceRequest{}, nil, err
		}
		var cs interfaces.ChangeSet
		var effects effectBatch
		if err := apply(&req, &cs, &effects); err != nil {
			return entities.ServiceRequest{}, nil, err
		}
		if cs.Len() == 0 {
			return req, nil, nil
		}
		if err := u.deps.UnitOfWork.Commit(ctx, cs); err != nil {
			return entities.ServiceRequest{}, nil, err
		}
		return req, effects, nil
	}()
	unlock()
	if err != nil {
		log.Printf("[request][usecase] %s failed request_id=%s acting_id=%s err=%v", op, requestID, actingID, err)
		return entities.ServiceRequest{}, err
	}
	effects.flush(u.deps.Effects)

	log.Printf("[request][usecase] %s done request_id=%s status=%s", op, req.ID, req.Status)
	return req, nil
}

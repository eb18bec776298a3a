package usecase

import (
	"context"
	"time"

	"engagement_service/internal/domain/entities"
	"engagement_service/internal/usecase/interfaces"
)

// Dependencies groups the ports shared by the engagement use cases. All use
// cases of one process must share the same Locks so that operations on one
// request are serialized.
type Dependencies struct {
	Requests   interfaces.IServiceRequestRepository
	Quotes     interfaces.IQuoteRepository
	Statuses   interfaces.IProviderStatusRepository
	Agreements interfaces.IAgreementRepository
	Workflows  interfaces.IWorkflowRepository
	UnitOfWork interfaces.IUnitOfWork
	Effects    interfaces.ISideEffects
	Locks      *KeyedLocker
	Now        func() time.Time
}

func (d Dependencies) now() time.Time {
	if d.Now != nil {
		return d.Now().UTC()
	}
	return time.Now().UTC()
}

func (d Dependencies) lock(requestID string) func() {
	if d.Locks == nil {
		return func() {}
	}
	return d.Locks.Lock(requestID)
}

func (d Dependencies) loadRequest(ctx context.Context, id string) (entities.ServiceRequest, error) {
	req, err := d.Requests.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if req.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	return req, nil
}

// loadProviderStatus returns the stored row or the implicit one of a provider
// that never touched the request.
func (d Dependencies) loadProviderStatus(ctx context.Context, providerID, requestID string) (entities.ProviderRequestStatus, error) {
	row, err := d.Statuses.Get(ctx, providerID, requestID)
	if err != nil {
		return entities.ProviderRequestStatus{}, err
	}
	if row.ProviderID == "" {
		return entities.NewProviderRequestStatus(providerID, requestID), nil
	}
	return row, nil
}

// advanceProviderStatus loads the provider row, applies the hierarchy rule and
// queues the row when it changed.
func (d Dependencies) advanceProviderStatus(ctx context.Context, cs *interfaces.ChangeSet, providerID, requestID string, proposed entities.ProviderStatus, now time.Time) (*entities.ProviderRequestStatus, error) {
	row, err := d.loadProviderStatus(ctx, providerID, requestID)
	if err != nil {
		return nil, err
	}
	if row.Advance(proposed, now) {
		cs.PutProviderStatus(&row)
	}
	return &row, nil
}

// requireFinalizedAgreement guards completion: the provider and the request's
// requester must share an accepted agreement.
func (d Dependencies) requireFinalizedAgreement(ctx context.Context, req entities.ServiceRequest, providerID string) error {
	quote, err := d.Quotes.GetByProviderAndRequest(ctx, providerID, req.ID)
	if err != nil {
		return err
	}
	if quote.ID == "" {
		return ErrNoFinalizedAgreement
	}
	agr, err := d.Agreements.GetByQuoteID(ctx, quote.ID)
	if err != nil {
		return err
	}
	if !agr.IsFinalized() || agr.RequesterID != req.RequesterID || agr.ProviderID != providerID {
		return ErrNoFinalizedAgreement
	}
	return nil
}

// planCompletion queues everything completing a request writes. wf may be nil,
// in which case the workflow row is loaded (or created).
func (d Dependencies) planCompletion(ctx context.Context, cs *interfaces.ChangeSet, req *entities.ServiceRequest, wf *entities.WorkflowStatus, providerID string, now time.Time) (bool, error) {
	if !req.IsAssignedTo(providerID) {
		return false, entities.ErrNotAssignedProvider
	}
	if err := d.requireFinalizedAgreement(ctx, *req, providerID); err != nil {
		return false, err
	}
	changed, err := req.Complete(providerID, now)
	if err != nil || !changed {
		return false, err
	}
	cs.PutRequest(req)

	if wf == nil {
		loaded, err := d.loadWorkflow(ctx, req.ID, providerID, now)
		if err != nil {
			return false, err
		}
		wf = &loaded
	}
	if _, err := wf.Mark(entities.MilestoneCompleted, now); err != nil {
		return false, err
	}
	cs.PutWorkflow(wf)

	if _, err := d.advanceProviderStatus(ctx, cs, providerID, req.ID, entities.ProviderStatusCompleted, now); err != nil {
		return false, err
	}
	return true, nil
}

// startWorkflow begins the workflow of a new assignment. Milestones left by an
// earlier engagement of the same provider are discarded.
func (d Dependencies) startWorkflow(ctx context.Context, requestID, providerID string, now time.Time) (entities.WorkflowStatus, error) {
	stored, err := d.Workflows.Get(ctx, requestID, providerID)
	if err != nil {
		return entities.WorkflowStatus{}, err
	}
	wf := entities.NewWorkflowStatus(requestID, providerID, now)
	wf.Version = stored.Version
	return wf, nil
}

func (d Dependencies) loadWorkflow(ctx context.Context, requestID, providerID string, now time.Time) (entities.WorkflowStatus, error) {
	wf, err := d.Workflows.Get(ctx, requestID, providerID)
	if err != nil {
		return entities.WorkflowStatus{}, err
	}
	if wf.RequestID == "" {
		return entities.NewWorkflowStatus(requestID, providerID, now), nil
	}
	return wf, nil
}

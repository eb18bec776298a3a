package usecase

import (
	"context"
	"engagement_service/internal/domain/entities"
	"engagement_service/internal/usecase/interfaces"
	"fmt"
	"log"
	"strings"
)

// IWorkflowUseCase records the assigned provider's execution milestones.
//
// Milestones may arrive out of order (checked_in without in_progress). The
// completed milestone always goes through the request completion rules.
type IWorkflowUseCase interface {
	AdvanceMilestone(ctx context.Context, requestID, providerID string, milestone entities.Milestone) (entities.WorkflowStatus, error)
	Get(ctx context.Context, requestID, providerID string) (entities.WorkflowStatus, error)
}

type WorkflowUseCase struct {
	deps Dependencies
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

func NewWorkflowUseCase(deps Dependencies) *WorkflowUseCase {
	return &WorkflowUseCase{deps: deps}
}

func (u *WorkflowUseCase) AdvanceMilestone(ctx context.Context, requestID, providerID string, milestone entities.Milestone) (entities.WorkflowStatus, error) {
	requestID = strings.TrimSpace(requestID)
	providerID = strings.TrimSpace(providerID)
	if requestID == "" {
		return entities.WorkflowStatus{}, ErrInvalidRequestID
	}
	if providerID == "" {
		return entities.WorkflowStatus{}, ErrInvalidProviderID
	}
	if _, err := entities.ParseMilestone(string(milestone)); err != nil {
		return entities.WorkflowStatus{}, err
	}

	unlock := u.deps.lock(requestID)
	wf, effects, err := u.advanceLocked(ctx, requestID, providerID, milestone)
	unlock()
	if err != nil {
		log.Printf("[workflow][usecase] advance failed request_id=%s provider_id=%s milestone=%s err=%v", requestID, providerID, milestone, err)
		return entities.WorkflowStatus{}, err
	}
	effects.flush(u.deps.Effects)

	log.Printf("[workflow][usecase] advance done request_id=%s provider_id=%s milestone=%s", requestID, providerID, milestone)
	return wf, nil
}

func (u *WorkflowUseCase) advanceLocked(ctx context.Context, requestID, providerID string, milestone entities.Milestone) (entities.WorkflowStatus, effectBatch, error) {
	req, err := u.deps.loadRequest(ctx, requestID)
	if err != nil {
		return entities.WorkflowStatus{}, nil, err
	}
	if !req.IsAssignedTo(providerID) {
		return entities.WorkflowStatus{}, nil, entities.ErrNotAssignedProvider
	}

	now := u.deps.now()
	wf, err := u.deps.loadWorkflow(ctx, requestID, providerID, now)
	if err != nil {
		return entities.WorkflowStatus{}, nil, err
	}
	// A completed workflow is terminal.
	if wf.Completed || wf.Has(milestone) {
		return wf, nil, nil
	}

	var cs interfaces.ChangeSet
	var effects effectBatch
	if milestone == entities.MilestoneCompleted {
		changed, err := u.deps.planCompletion(ctx, &cs, &req, &wf, providerID, now)
		if err != nil {
			return entities.WorkflowStatus{}, nil, err
		}
		if changed {
			effects.message(providerID, req.RequesterID, req.ID, fmt.Sprintf("%q was completed.", req.Title))
			effects.requestUpdate(req.ID, interfaces.RequestUpdateCompleted)
		}
	} else {
		if _, err := wf.Mark(milestone, now); err != nil {
			return entities.WorkflowStatus{}, nil, err
		}
		cs.PutWorkflow(&wf)
		moved, err := req.Progress(providerID, milestone.RequestStatus(), now)
		if err != nil {
			return entities.WorkflowStatus{}, nil, err
		}
		if moved {
			cs.PutRequest(&req)
		}
	}

	if cs.Len() == 0 {
		return wf, nil, nil
	}
	if err := u.deps.UnitOfWork.Commit(ctx, cs); err != nil {
		return entities.WorkflowStatus{}, nil, err
	}
	return wf, effects, nil
}

func (u *WorkflowUseCase) Get(ctx context.Context, requestID, providerID string) (entities.WorkflowStatus, error) {
	requestID = strings.TrimSpace(requestID)
	providerID = strings.TrimSpace(providerID)
	if requestID == "" {
		return entities.WorkflowStatus{}, ErrInvalidRequestID
	}
	if providerID == "" {
		return entities.WorkflowStatus{}, ErrInvalidProviderID
	}

	wf, err := u.deps.Workflows.Get(ctx, requestID, providerID)
	if err != nil {
		return entities.WorkflowStatus{}, err
	}
	if wf.RequestID == "" {
		return entities.WorkflowStatus{}, ErrWorkflowNotFound
	}
	return wf, nil
}

package entities

import (
	"errors"
	"testing"
	"time"
)

func newOpenRequest() ServiceRequest {
	return ServiceRequest{ID: "r-1", RequesterID: "req-owner", Status: RequestStatusOpen}
}

func TestCanTransition(t *testing.T) {
	if !CanTransition(RequestStatusAssigned, RequestStatusCheckedIn) {
		t.Fatalf("expected assigned -> checked_in to skip forward")
	}
	if CanTransition(RequestStatusCompleted, RequestStatusOpen) {
		t.Fatalf("completed is terminal")
	}
	if CanTransition(RequestStatusCheckedIn, RequestStatusInProgress) {
		t.Fatalf("execution states never move backward")
	}
	if !CanTransition(RequestStatusCancelled, RequestStatusReopened) {
		t.Fatalf("cancelled requests may be reopened")
	}
}

func TestServiceRequest_Assign(t *testing.T) {
	now := time.Now().UTC()

	r := newOpenRequest()
	if err := r.Assign("p-1", now); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.Status != RequestStatusAssigned || r.AssignedProviderID != "p-1" || !r.Status.HasAssignment() {
		t.Fatalf("unexpected request: %+v", r)
	}
	if err := r.Assign("p-2", now); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}

	closed := newOpenRequest()
	closed.Status = RequestStatusCancelled
	if err := closed.Assign("p-1", now); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestServiceRequest_CancelAndReopen(t *testing.T) {
	now := time.Now().UTC()
	r := newOpenRequest()
	_ = r.Assign("p-1", now)

	if _, err := r.Cancel("stranger", now); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	prev, err := r.Cancel("req-owner", now)
	if err != nil || prev != "p-1" {
		t.Fatalf("expected previous assignee p-1, got %q %v", prev, err)
	}
	if r.Status != RequestStatusCancelled || r.AssignedProviderID != "" {
		t.Fatalf("unexpected request: %+v", r)
	}

	if err := r.Reopen("req-owner", now); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.Status != RequestStatusReopened {
		t.Fatalf("expected reopened, got %s", r.Status)
	}
	if err := r.Reopen("req-owner", now); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("reopening an open request must fail, got %v", err)
	}
}

func TestServiceRequest_Reject(t *testing.T) {
	now := time.Now().UTC()
	r := newOpenRequest()
	if err := r.Reject("req-owner", now); err != nil || r.Status != RequestStatusRejected {
		t.Fatalf("unexpected reject: %v %+v", err, r)
	}

	assigned := newOpenRequest()
	_ = assigned.Assign("p-1", now)
	if err := assigned.Reject("req-owner", now); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestServiceRequest_ReturnToOpen(t *testing.T) {
	now := time.Now().UTC()

	r := newOpenRequest()
	r.Status = RequestStatusReopened
	if !r.ReturnToOpen(now) || r.Status != RequestStatusOpen {
		t.Fatalf("expected reopened -> open, got %+v", r)
	}
	if r.ReturnToOpen(now) {
		t.Fatalf("open request must stay untouched")
	}

	assigned := newOpenRequest()
	_ = assigned.Assign("p-1", now)
	if assigned.ReturnToOpen(now) || assigned.Status != RequestStatusAssigned {
		t.Fatalf("assigned request must stay untouched: %+v", assigned)
	}
}

func TestServiceRequest_ProgressAndComplete(t *testing.T) {
	now := time.Now().UTC()
	r := newOpenRequest()
	_ = r.Assign("p-1", now)

	if _, err := r.Progress("p-2", RequestStatusInProgress, now); !errors.Is(err, ErrNotAssignedProvider) {
		t.Fatalf("expected ErrNotAssignedProvider, got %v", err)
	}
	if moved, err := r.Progress("p-1", RequestStatusCheckedIn, now); err != nil || !moved {
		t.Fatalf("expected skip to checked_in, got %v %v", moved, err)
	}
	if moved, err := r.Progress("p-1", RequestStatusInProgress, now); err != nil || moved {
		t.Fatalf("late in_progress must be a no-op, got %v %v", moved, err)
	}
	if _, err := r.Progress("p-1", RequestStatusCompleted, now); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("progress must not complete, got %v", err)
	}

	if done, err := r.Complete("p-1", now); err != nil || !done {
		t.Fatalf("expected completion, got %v %v", done, err)
	}
	if done, err := r.Complete("p-1", now); err != nil || done {
		t.Fatalf("second completion must be a no-op, got %v %v", done, err)
	}
	if !r.Status.IsTerminal() {
		t.Fatalf("completed must be terminal")
	}
}

func TestServiceRequest_CompleteFromOpen(t *testing.T) {
	r := newOpenRequest()
	r.AssignedProviderID = "p-1"
	if _, err := r.Complete("p-1", time.Now()); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

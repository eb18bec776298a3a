package entities

import (
	"errors"
	"testing"
	"time"
)

func TestWorkflowStatus_Mark(t *testing.T) {
	now := time.Now().UTC()
	w := NewWorkflowStatus("r-1", "p-1", now)

	if !w.Assigned || w.AssignedAt == nil || w.Has(MilestoneInProgress) {
		t.Fatalf("unexpected new workflow: %+v", w)
	}
	if changed, err := w.Mark(MilestoneCheckedIn, now); err != nil || !changed {
		t.Fatalf("unexpected mark: %v %v", changed, err)
	}
	later := now.Add(time.Hour)
	if changed, _ := w.Mark(MilestoneCheckedIn, later); changed || !w.CheckedInAt.Equal(now) {
		t.Fatalf("milestones are set once: %+v", w)
	}
	if _, err := w.Mark(Milestone("paused"), now); !errors.Is(err, ErrUnknownMilestone) {
		t.Fatalf("expected ErrUnknownMilestone, got %v", err)
	}
}

func TestParseMilestone(t *testing.T) {
	m, err := ParseMilestone(" Checked_In ")
	if err != nil || m != MilestoneCheckedIn || m.RequestStatus() != RequestStatusCheckedIn {
		t.Fatalf("unexpected parse: %v %v", m, err)
	}
	if _, err := ParseMilestone("assigned"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestQuote_IsExpired(t *testing.T) {
	now := time.Now().UTC()
	if (Quote{}).IsExpired(now) {
		t.Fatalf("quote without expiry never expires")
	}
	if !(Quote{ExpiresAt: now.Add(-time.Second)}).IsExpired(now) {
		t.Fatalf("expected expired")
	}
	if (Quote{ExpiresAt: now}).IsExpired(now) {
		t.Fatalf("expiry instant is still valid")
	}
}

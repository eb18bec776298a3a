package entities

import (
	"strings"
	"time"
)

// Milestone is an execution step the assigned provider reports.
type Milestone string

const (
	MilestoneInProgress Milestone = "in_progress"
	MilestoneCheckedIn  Milestone = "checked_in"
	MilestoneCompleted  Milestone = "completed"
)

func ParseMilestone(v string) (Milestone, error) {
	switch m := Milestone(strings.ToLower(strings.TrimSpace(v))); m {
	case MilestoneInProgress, MilestoneCheckedIn, MilestoneCompleted:
		return m, nil
	}
	return "", ErrUnknownMilestone
}

// RequestStatus is the request status a milestone forwards to.
func (m Milestone) RequestStatus() RequestStatus {
	switch m {
	case MilestoneInProgress:
		return RequestStatusInProgress
	case MilestoneCheckedIn:
		return RequestStatusCheckedIn
	case MilestoneCompleted:
		return RequestStatusCompleted
	}
	return ""
}

// WorkflowStatus records the assigned provider's execution milestones.
// Milestones are set once and never cleared.
//
// Storage model (DynamoDB):
//   - PK: request_id, SK: provider_id
type WorkflowStatus struct {
	RequestID    string     `json:"request_id"`
	ProviderID   string     `json:"provider_id"`
	Assigned     bool       `json:"assigned"`
	AssignedAt   *time.Time `json:"assigned_at,omitempty"`
	InProgress   bool       `json:"in_progress"`
	InProgressAt *time.Time `json:"in_progress_at,omitempty"`
	CheckedIn    bool       `json:"checked_in"`
	CheckedInAt  *time.Time `json:"checked_in_at,omitempty"`
	Completed    bool       `json:"completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	Version      int64      `json:"-"`
}

func NewWorkflowStatus(requestID, providerID string, now time.Time) WorkflowStatus {
	return WorkflowStatus{
		RequestID:  requestID,
		ProviderID: providerID,
		Assigned:   true,
		AssignedAt: &now,
	}
}

// Mark sets a milestone. Marking an already set milestone is a no-op.
func (w *WorkflowStatus) Mark(m Milestone, now time.Time) (bool, error) {
	var flag *bool
	var at **time.Time
	switch m {
	case MilestoneInProgress:
		flag, at = &w.InProgress, &w.InProgressAt
	case MilestoneCheckedIn:
		flag, at = &w.CheckedIn, &w.CheckedInAt
	case MilestoneCompleted:
		flag, at = &w.Completed, &w.CompletedAt
	default:
		return false, ErrUnknownMilestone
	}
	if *flag {
		return false, nil
	}
	*flag = true
	*at = &now
	return true, nil
}

func (w WorkflowStatus) Has(m Milestone) bool {
	switch m {
	case MilestoneInProgress:
		return w.InProgress
	case MilestoneCheckedIn:
		return w.CheckedIn
	case MilestoneCompleted:
		return w.Completed
	}
	return false
}

package entities

import "time"

// RequestStatus is the lifecycle state of a ServiceRequest.
type RequestStatus string

const (
	RequestStatusOpen       RequestStatus = "open"
	RequestStatusReopened   RequestStatus = "reopened"
	RequestStatusAssigned   RequestStatus = "assigned"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCheckedIn  RequestStatus = "checked_in"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"
	RequestStatusRejected   RequestStatus = "rejected"
)

// requestTransitions is the full state machine. Execution states may be
// skipped forward because providers report milestones out of order.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusOpen:       {RequestStatusReopened, RequestStatusAssigned, RequestStatusCancelled, RequestStatusRejected},
	RequestStatusReopened:   {RequestStatusOpen, RequestStatusAssigned, RequestStatusCancelled, RequestStatusRejected},
	RequestStatusAssigned:   {RequestStatusInProgress, RequestStatusCheckedIn, RequestStatusCompleted, RequestStatusCancelled},
	RequestStatusInProgress: {RequestStatusCheckedIn, RequestStatusCompleted, RequestStatusCancelled},
	RequestStatusCheckedIn:  {RequestStatusCompleted, RequestStatusCancelled},
	RequestStatusRejected:   {RequestStatusReopened, RequestStatusCancelled},
	RequestStatusCancelled:  {RequestStatusReopened},
}

// CanTransition reports whether a request may move from one status to another.
func CanTransition(from, to RequestStatus) bool {
	for _, s := range requestTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsOpen reports whether providers may still quote on the request.
func (s RequestStatus) IsOpen() bool {
	return s == RequestStatusOpen || s == RequestStatusReopened
}

// IsTerminal reports whether the status ends the lifecycle.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCancelled
}

// HasAssignment reports whether a request in this status carries an assigned provider.
func (s RequestStatus) HasAssignment() bool {
	return executionRank(s) > 0
}

func executionRank(s RequestStatus) int {
	switch s {
	case RequestStatusAssigned:
		return 1
	case RequestStatusInProgress:
		return 2
	case RequestStatusCheckedIn:
		return 3
	case RequestStatusCompleted:
		return 4
	}
	return 0
}

// ServiceRequest is the unit of work a requester posts for providers.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (status-index): status
//
// AssignedProviderID is set iff Status is assigned, in_progress, checked_in or completed.
// Status only changes through the lifecycle methods below.
type ServiceRequest struct {
	ID                 string        `json:"id"`
	RequesterID        string        `json:"requester_id"`
	Category           string        `json:"category"`
	Subcategory        string        `json:"subcategory"`
	Location           string        `json:"location"`
	Title              string        `json:"title"`
	Description        string        `json:"description"`
	Status             RequestStatus `json:"status"`
	AssignedProviderID string        `json:"assigned_provider_id,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
	Version            int64         `json:"-"`
}

func (r ServiceRequest) IsOwnedBy(profileID string) bool {
	return profileID != "" && r.RequesterID == profileID
}

func (r ServiceRequest) IsAssignedTo(providerID string) bool {
	return providerID != "" && r.AssignedProviderID == providerID
}

func (r *ServiceRequest) transition(to RequestStatus, now time.Time) error {
	if !CanTransition(r.Status, to) {
		return ErrInvalidTransition
	}
	r.Status = to
	r.UpdatedAt = now
	return nil
}

// Assign hands the request to a provider. The request must be open and unassigned.
func (r *ServiceRequest) Assign(providerID string, now time.Time) error {
	if r.AssignedProviderID != "" {
		return ErrProviderAlreadyAssigned
	}
	if !r.Status.IsOpen() {
		return ErrInvalidTransition
	}
	if err := r.transition(RequestStatusAssigned, now); err != nil {
		return err
	}
	r.AssignedProviderID = providerID
	return nil
}

// ReturnToOpen puts a negotiating request back on the market after a rejected
// agreement. Requests that moved past negotiation are left alone.
func (r *ServiceRequest) ReturnToOpen(now time.Time) bool {
	if !r.Status.IsOpen() || r.AssignedProviderID != "" {
		return false
	}
	if r.Status == RequestStatusOpen {
		return false
	}
	r.Status = RequestStatusOpen
	r.UpdatedAt = now
	return true
}

// Reopen revives a rejected or cancelled request. Owner only.
func (r *ServiceRequest) Reopen(actingID string, now time.Time) error {
	if !r.IsOwnedBy(actingID) {
		return ErrNotRequestOwner
	}
	if r.Status != RequestStatusRejected && r.Status != RequestStatusCancelled {
		return ErrInvalidTransition
	}
	if err := r.transition(RequestStatusReopened, now); err != nil {
		return err
	}
	r.AssignedProviderID = ""
	return nil
}

// Cancel ends the request. It returns the provider that was assigned, if any.
func (r *ServiceRequest) Cancel(actingID string, now time.Time) (string, error) {
	if !r.IsOwnedBy(actingID) {
		return "", ErrNotRequestOwner
	}
	if err := r.transition(RequestStatusCancelled, now); err != nil {
		return "", err
	}
	previous := r.AssignedProviderID
	r.AssignedProviderID = ""
	return previous, nil
}

// Reject withdraws a request that is still being negotiated. Owner only.
func (r *ServiceRequest) Reject(actingID string, now time.Time) error {
	if !r.IsOwnedBy(actingID) {
		return ErrNotRequestOwner
	}
	if !r.Status.IsOpen() {
		return ErrInvalidTransition
	}
	return r.transition(RequestStatusRejected, now)
}

// Progress moves an assigned request forward to in_progress or checked_in.
// Reporting a status the request already reached is a no-op.
func (r *ServiceRequest) Progress(providerID string, to RequestStatus, now time.Time) (bool, error) {
	if to != RequestStatusInProgress && to != RequestStatusCheckedIn {
		return false, ErrInvalidTransition
	}
	if !r.IsAssignedTo(providerID) {
		return false, ErrNotAssignedProvider
	}
	if r.Status == RequestStatusCompleted {
		return false, nil
	}
	if executionRank(r.Status) >= executionRank(to) {
		return false, nil
	}
	if err := r.transition(to, now); err != nil {
		return false, err
	}
	return true, nil
}

// Complete marks the work done. Completing an already completed request is a no-op.
func (r *ServiceRequest) Complete(providerID string, now time.Time) (bool, error) {
	if !r.IsAssignedTo(providerID) {
		return false, ErrNotAssignedProvider
	}
	if r.Status == RequestStatusCompleted {
		return false, nil
	}
	if err := r.transition(RequestStatusCompleted, now); err != nil {
		return false, err
	}
	return true, nil
}

package response

import (
	"time"

	"engagement_service/internal/domain/entities"
	"engagement_service/internal/usecase"
)

type ServiceRequestResponse struct {
	ID                 string    `json:"id"`
	RequesterID        string    `json:"requester_id"`
	Category           string    `json:"category"`
	Subcategory        string    `json:"subcategory,omitempty"`
	Location           string    `json:"location,omitempty"`
	Title              string    `json:"title"`
	Description        string    `json:"description,omitempty"`
	Status             string    `json:"status"`
	AssignedProviderID string    `json:"assigned_provider_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromServiceRequest(r entities.ServiceRequest) ServiceRequestResponse {
	return ServiceRequestResponse{
		ID:                 r.ID,
		RequesterID:        r.RequesterID,
		Category:           r.Category,
		Subcategory:        r.Subcategory,
		Location:           r.Location,
		Title:              r.Title,
		Description:        r.Description,
		Status:             string(r.Status),
		AssignedProviderID: r.AssignedProviderID,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

func FromServiceRequests(rs []entities.ServiceRequest) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromServiceRequest(r))
	}
	return out
}

type QuoteResponse struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"provider_id"`
	RequestID  string    `json:"request_id"`
	Price      string    `json:"price" example:"50.00"`
	Message    string    `json:"message,omitempty"`
	Status     string    `json:"status"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:         q.ID,
		ProviderID: q.ProviderID,
		RequestID:  q.RequestID,
		Price:      q.Price.StringFixed(2),
		Message:    q.Message,
		Status:     string(q.Status),
		ExpiresAt:  q.ExpiresAt,
		CreatedAt:  q.CreatedAt,
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

// QuoteSubmissionResponse reports whether the quote was created by this call
// or already existed.
type QuoteSubmissionResponse struct {
	Quote   QuoteResponse `json:"quote"`
	Created bool          `json:"created"`
}

func FromQuoteSubmission(s usecase.QuoteSubmission) QuoteSubmissionResponse {
	return QuoteSubmissionResponse{Quote: FromQuote(s.Quote), Created: s.Created}
}

type ProviderStatusResponse struct {
	ProviderID  string    `json:"provider_id"`
	RequestID   string    `json:"request_id"`
	Status      string    `json:"status"`
	Rank        int       `json:"rank"`
	QuoteID     string    `json:"quote_id,omitempty"`
	LastUpdated time.Time `json:"last_updated,omitempty"`
	Applied     *bool     `json:"applied,omitempty"`
}

func FromProviderStatus(p entities.ProviderRequestStatus) ProviderStatusResponse {
	return ProviderStatusResponse{
		ProviderID:  p.ProviderID,
		RequestID:   p.RequestID,
		Status:      p.Status().String(),
		Rank:        p.Status().Rank(),
		QuoteID:     p.QuoteID,
		LastUpdated: p.LastUpdated,
	}
}

func FromStatusAdvance(a usecase.StatusAdvance) ProviderStatusResponse {
	out := FromProviderStatus(a.Row)
	applied := a.Applied
	out.Applied = &applied
	return out
}

type AgreementResponse struct {
	ID                  string     `json:"id"`
	QuoteID             string     `json:"quote_id"`
	RequestID           string     `json:"request_id"`
	RequesterID         string     `json:"requester_id"`
	ProviderID          string     `json:"provider_id"`
	RequesterAccepted   bool       `json:"requester_accepted"`
	RequesterAcceptedAt *time.Time `json:"requester_accepted_at,omitempty"`
	ProviderAccepted    bool       `json:"provider_accepted"`
	ProviderAcceptedAt  *time.Time `json:"provider_accepted_at,omitempty"`
	Status              string     `json:"status"`
	RejectedBy          string     `json:"rejected_by,omitempty"`
	FinalizedAt         *time.Time `json:"finalized_at,omitempty"`
}

func FromAgreement(a entities.Agreement) AgreementResponse {
	return AgreementResponse{
		ID:                  a.ID,
		QuoteID:             a.QuoteID,
		RequestID:           a.RequestID,
		RequesterID:         a.RequesterID,
		ProviderID:          a.ProviderID,
		RequesterAccepted:   a.RequesterAccepted,
		RequesterAcceptedAt: a.RequesterAcceptedAt,
		ProviderAccepted:    a.ProviderAccepted,
		ProviderAcceptedAt:  a.ProviderAcceptedAt,
		Status:              string(a.Status),
		RejectedBy:          a.RejectedBy,
		FinalizedAt:         a.FinalizedAt,
	}
}

type AgreementResultResponse struct {
	Agreement AgreementResponse `json:"agreement"`
	Party     string            `json:"party"`
	Changed   bool              `json:"changed"`
	Finalized bool              `json:"finalized"`
}

func FromAgreementResult(r usecase.AgreementResult) AgreementResultResponse {
	return AgreementResultResponse{
		Agreement: FromAgreement(r.Agreement),
		Party:     string(r.Party),
		Changed:   r.Changed,
		Finalized: r.Finalized(),
	}
}

type WorkflowResponse struct {
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
}

func FromWorkflow(w entities.WorkflowStatus) WorkflowResponse {
	return WorkflowResponse{
		RequestID:    w.RequestID,
		ProviderID:   w.ProviderID,
		Assigned:     w.Assigned,
		AssignedAt:   w.AssignedAt,
		InProgress:   w.InProgress,
		InProgressAt: w.InProgressAt,
		CheckedIn:    w.CheckedIn,
		CheckedInAt:  w.CheckedInAt,
		Completed:    w.Completed,
		CompletedAt:  w.CompletedAt,
	}
}

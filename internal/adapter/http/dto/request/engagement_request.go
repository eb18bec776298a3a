package request

import (
	"errors"
	"strings"

	"engagement_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuotePrice     = errors.New("invalid quote price")
	ErrStatusNotClientMarker = errors.New("status is not settable by clients")
)

// CreateServiceRequestRequest is the payload of POST /requests.
type CreateServiceRequestRequest struct {
	Category    string `json:"category" binding:"required"`
	Subcategory string `json:"subcategory"`
	Location    string `json:"location"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// SubmitQuoteRequest accepts the price as a JSON number or a decimal string.
type SubmitQuoteRequest struct {
	Price   decimal.Decimal `json:"price" swaggertype:"string" example:"50.00"`
	Message string          `json:"message"`
}

func (r SubmitQuoteRequest) ResolvePrice() (decimal.Decimal, error) {
	if !r.Price.IsPositive() {
		return decimal.Zero, ErrInvalidQuotePrice
	}
	return r.Price, nil
}

type AssignProviderRequest struct {
	ProviderID string `json:"provider_id" binding:"required"`
}

type RespondAgreementRequest struct {
	Accepted *bool `json:"accepted" binding:"required"`
}

// AdvanceProviderStatusRequest carries the client-driven markers. Quoted,
// assigned, rejected and completed are set by the lifecycle itself.
type AdvanceProviderStatusRequest struct {
	Status string `json:"status" binding:"required" example:"viewed"`
}

func (r AdvanceProviderStatusRequest) ResolveStatus() (entities.ProviderStatus, error) {
	status, err := entities.ParseProviderStatus(r.Status)
	if err != nil {
		return entities.ProviderStatusHidden, err
	}
	switch status {
	case entities.ProviderStatusNew, entities.ProviderStatusHidden, entities.ProviderStatusViewed, entities.ProviderStatusNegotiating:
		return status, nil
	}
	return entities.ProviderStatusHidden, ErrStatusNotClientMarker
}

type AdvanceMilestoneRequest struct {
	Milestone string `json:"milestone" binding:"required" example:"in_progress"`
}

func (r AdvanceMilestoneRequest) ResolveMilestone() (entities.Milestone, error) {
	return entities.ParseMilestone(strings.TrimSpace(r.Milestone))
}

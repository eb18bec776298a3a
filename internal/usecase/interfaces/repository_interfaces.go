package interfaces

//go:generate mockgen -source=repository_interfaces.go -destination=mocks/repository_interfaces_mock.go -package=mock_interfaces

import (
	"context"
	"engagement_service/internal/domain/entities"
)

// Repository lookups follow one convention: a missing entity is returned as the
// zero value with a nil error, and callers check the identity field.

type IServiceRequestRepository interface {
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	ListByStatus(ctx context.Context, statuses ...entities.RequestStatus) ([]entities.ServiceRequest, error)
}

type IQuoteRepository interface {
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByProviderAndRequest(ctx context.Context, providerID, requestID string) (entities.Quote, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.Quote, error)
}

type IProviderStatusRepository interface {
	Get(ctx context.Context, providerID, requestID string) (entities.ProviderRequestStatus, error)
	ListByProviderID(ctx context.Context, providerID string) ([]entities.ProviderRequestStatus, error)
}

type IAgreementRepository interface {
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Agreement, error)
}

type IWorkflowRepository interface {
	Get(ctx context.Context, requestID, providerID string) (entities.WorkflowStatus, error)
}

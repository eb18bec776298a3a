package usecase

import (
	"engagement_service/internal/domain/entities"
	"fmt"
)

var (
	ErrInvalidRequestID  = fmt.Errorf("invalid request id: %w", entities.ErrInvalidArgument)
	ErrInvalidQuoteID    = fmt.Errorf("invalid quote id: %w", entities.ErrInvalidArgument)
	ErrInvalidProfileID  = fmt.Errorf("invalid profile id: %w", entities.ErrInvalidArgument)
	ErrInvalidProviderID = fmt.Errorf("invalid provider id: %w", entities.ErrInvalidArgument)
	ErrInvalidPrice      = fmt.Errorf("invalid quote price: %w", entities.ErrInvalidArgument)
	ErrMissingCategory   = fmt.Errorf("missing category: %w", entities.ErrInvalidArgument)
	ErrMissingTitle      = fmt.Errorf("missing title: %w", entities.ErrInvalidArgument)

	ErrRequestNotFound   = fmt.Errorf("service request not found: %w", entities.ErrNotFound)
	ErrQuoteNotFound     = fmt.Errorf("quote not found: %w", entities.ErrNotFound)
	ErrAgreementNotFound = fmt.Errorf("agreement not found: %w", entities.ErrNotFound)
	ErrWorkflowNotFound  = fmt.Errorf("workflow status not found: %w", entities.ErrNotFound)

	ErrRequestNotOpen       = fmt.Errorf("service request is not open for quotes: %w", entities.ErrInvalidState)
	ErrRequestNotNegotiable = fmt.Errorf("service request is no longer under negotiation: %w", entities.ErrInvalidState)
	ErrOwnRequest           = fmt.Errorf("providers cannot quote on their own request: %w", entities.ErrInvalidState)
	ErrQuoteExpired         = fmt.Errorf("quote expired: %w", entities.ErrInvalidState)
	ErrProviderHasNoQuote   = fmt.Errorf("provider has not quoted on the request: %w", entities.ErrInvalidState)
	ErrNoFinalizedAgreement = fmt.Errorf("no finalized agreement between provider and requester: %w", entities.ErrInvalidState)
)

package entities

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the engagement core wraps exactly one
// of these so adapters can classify it with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidState      = errors.New("invalid state")
	ErrConflict          = errors.New("conflict")
	ErrDependencyFailure = errors.New("dependency failure")
	ErrInvalidArgument   = errors.New("invalid argument")
)

var (
	ErrNotRequestOwner         = fmt.Errorf("acting profile does not own the service request: %w", ErrUnauthorized)
	ErrNotAssignedProvider     = fmt.Errorf("acting profile is not the assigned provider: %w", ErrUnauthorized)
	ErrNotAParty               = fmt.Errorf("acting profile is not a party to the quote: %w", ErrUnauthorized)
	ErrInvalidTransition       = fmt.Errorf("service request status transition not allowed: %w", ErrInvalidState)
	ErrProviderAlreadyAssigned = fmt.Errorf("service request already has an assigned provider: %w", ErrInvalidState)
	ErrAgreementRejected       = fmt.Errorf("agreement was rejected: %w", ErrInvalidState)
	ErrAgreementFinalized      = fmt.Errorf("agreement is already finalized: %w", ErrInvalidState)
	ErrUnknownProviderStatus   = fmt.Errorf("unknown provider status: %w", ErrInvalidArgument)
	ErrUnknownMilestone        = fmt.Errorf("unknown milestone: %w", ErrInvalidArgument)
)

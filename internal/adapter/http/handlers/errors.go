package handlers

import (
	"errors"
	"net/http"

	"engagement_service/internal/domain/entities"
	"engagement_service/internal/usecase"
	"engagement_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// mapEngagementError turns a use case error into the API error. Specific
// sentinels get their own code; anything else is classified by kind.
func mapEngagementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAgreementNotFound):
		return pkg.NewDomainErrorSimple("AGREEMENT_NOT_FOUND", "Agreement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkflowNotFound):
		return pkg.NewDomainErrorSimple("WORKFLOW_NOT_FOUND", "Workflow not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteExpired):
		return pkg.NewDomainErrorSimple("QUOTE_EXPIRED", "Quote expired", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoFinalizedAgreement):
		return pkg.NewDomainErrorSimple("AGREEMENT_NOT_FINALIZED", "No finalized agreement for this provider", http.StatusConflict)
	case errors.Is(err, entities.ErrAgreementRejected):
		return pkg.NewDomainErrorSimple("AGREEMENT_REJECTED", "Agreement was rejected", http.StatusConflict)

	case errors.Is(err, entities.ErrInvalidArgument):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, entities.ErrUnauthorized):
		return pkg.NewDomainError("FORBIDDEN", err.Error(), err, http.StatusForbidden)
	case errors.Is(err, entities.ErrInvalidState):
		return pkg.NewDomainError("INVALID_STATE", err.Error(), err, http.StatusConflict)
	case errors.Is(err, entities.ErrConflict):
		return pkg.NewDomainError("CONFLICT", "Concurrent update, retry the request", err, http.StatusConflict)
	case errors.Is(err, entities.ErrDependencyFailure):
		return pkg.NewDomainError("DEPENDENCY_FAILURE", "A backing service is unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapEngagementError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalidPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}

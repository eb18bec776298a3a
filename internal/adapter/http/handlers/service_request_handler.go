package handlers

import (
	"context"
	"log"
	"net/http"

	request "engagement_service/internal/adapter/http/dto/request"
	response "engagement_service/internal/adapter/http/dto/response"
	"engagement_service/internal/domain/entities"
	"engagement_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceRequestHandler exposes the request lifecycle. The acting profile
// always comes from the identity headers, never from the body.
type ServiceRequestHandler struct {
	usecase usecase.IRequestLifecycleUseCase
}

func NewServiceRequestHandler(uc usecase.IRequestLifecycleUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{usecase: uc}
}

func (h *ServiceRequestHandler) CreateRequest(c *gin.Context) {
	var payload request.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	created, err := h.usecase.CreateRequest(c.Request.Context(), usecase.NewServiceRequest{
		RequesterID: actingProfile(c),
		Category:    payload.Category,
		Subcategory: payload.Subcategory,
		Location:    payload.Location,
		Title:       payload.Title,
		Description: payload.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceRequest(created))
}

func (h *ServiceRequestHandler) GetRequest(c *gin.Context) {
	req, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(req))
}

func (h *ServiceRequestHandler) CancelRequest(c *gin.Context) {
	h.transition(c, "cancel", h.usecase.Cancel)
}

func (h *ServiceRequestHandler) ReopenRequest(c *gin.Context) {
	h.transition(c, "reopen", h.usecase.Reopen)
}

func (h *ServiceRequestHandler) RejectRequest(c *gin.Context) {
	h.transition(c, "reject", h.usecase.Reject)
}

// CompleteRequest is called by the assigned provider.
func (h *ServiceRequestHandler) CompleteRequest(c *gin.Context) {
	h.transition(c, "complete", h.usecase.Complete)
}

func (h *ServiceRequestHandler) AssignProvider(c *gin.Context) {
	var payload request.AssignProviderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	requestID := c.Param("id")
	log.Printf("[request][handler] assign start request_id=%s provider_id=%s", requestID, payload.ProviderID)
	req, err := h.usecase.Assign(c.Request.Context(), actingProfile(c), requestID, payload.ProviderID)
	if err != nil {
		log.Printf("[request][handler] assign failed request_id=%s err=%v", requestID, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(req))
}

func (h *ServiceRequestHandler) transition(
	c *gin.Context,
	op string,
	apply func(ctx context.Context, requestID, actingID string) (entities.ServiceRequest, error),
) {
	requestID := c.Param("id")
	log.Printf("[request][handler] %s start request_id=%s acting_id=%s role=%s", op, requestID, actingProfile(c), actingRole(c))

	req, err := apply(c.Request.Context(), requestID, actingProfile(c))
	if err != nil {
		log.Printf("[request][handler] %s failed request_id=%s err=%v", op, requestID, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(req))
}

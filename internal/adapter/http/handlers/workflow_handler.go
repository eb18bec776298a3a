package handlers

import (
	"net/http"
	"strings"

	request "engagement_service/internal/adapter/http/dto/request"
	response "engagement_service/internal/adapter/http/dto/response"
	"engagement_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WorkflowHandler struct {
	usecase usecase.IWorkflowUseCase
}

func NewWorkflowHandler(uc usecase.IWorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc}
}

func (h *WorkflowHandler) AdvanceMilestone(c *gin.Context) {
	var payload request.AdvanceMilestoneRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	milestone, err := payload.ResolveMilestone()
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	wf, err := h.usecase.AdvanceMilestone(c.Request.Context(), c.Param("id"), actingProfile(c), milestone)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkflow(wf))
}

// GetWorkflow returns the workflow of ?provider_id=, defaulting to the acting profile.
func (h *WorkflowHandler) GetWorkflow(c *gin.Context) {
	providerID := strings.TrimSpace(c.Query("provider_id"))
	if providerID == "" {
		providerID = actingProfile(c)
	}

	wf, err := h.usecase.Get(c.Request.Context(), c.Param("id"), providerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkflow(wf))
}

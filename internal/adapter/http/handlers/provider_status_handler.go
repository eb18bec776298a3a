package handlers

import (
	"net/http"

	request "engagement_service/internal/adapter/http/dto/request"
	response "engagement_service/internal/adapter/http/dto/response"
	"engagement_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProviderStatusHandler struct {
	usecase usecase.IProviderStatusUseCase
}

func NewProviderStatusHandler(uc usecase.IProviderStatusUseCase) *ProviderStatusHandler {
	return &ProviderStatusHandler{usecase: uc}
}

// AdvanceStatus sets the acting provider's marker on a request. A stale
// proposal answers 200 with applied=false and the current status.
func (h *ProviderStatusHandler) AdvanceStatus(c *gin.Context) {
	var payload request.AdvanceProviderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	proposed, err := payload.ResolveStatus()
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	res, err := h.usecase.AdvanceStatus(c.Request.Context(), actingProfile(c), c.Param("id"), proposed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStatusAdvance(res))
}

func (h *ProviderStatusHandler) GetStatus(c *gin.Context) {
	row, err := h.usecase.Get(c.Request.Context(), actingProfile(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProviderStatus(row))
}

func (h *ProviderStatusHandler) ListAvailable(c *gin.Context) {
	reqs, err := h.usecase.ListAvailable(c.Request.Context(), actingProfile(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequests(reqs))
}

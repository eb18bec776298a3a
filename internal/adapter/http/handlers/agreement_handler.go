package handlers

import (
	"log"
	"net/http"

	request "engagement_service/internal/adapter/http/dto/request"
	response "engagement_service/internal/adapter/http/dto/response"
	"engagement_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AgreementHandler struct {
	usecase usecase.IAgreementUseCase
}

func NewAgreementHandler(uc usecase.IAgreementUseCase) *AgreementHandler {
	return &AgreementHandler{usecase: uc}
}

// RespondToAgreement records the acting party's answer on a quote. Which side
// the caller is on is resolved from the stored quote and request.
func (h *AgreementHandler) RespondToAgreement(c *gin.Context) {
	var payload request.RespondAgreementRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Accepted == nil {
		respondInvalidPayload(c)
		return
	}

	quoteID := c.Param("id")
	log.Printf("[agreement][handler] respond start quote_id=%s acting_id=%s accepted=%t", quoteID, actingProfile(c), *payload.Accepted)
	res, err := h.usecase.RespondToAgreement(c.Request.Context(), actingProfile(c), quoteID, *payload.Accepted)
	if err != nil {
		log.Printf("[agreement][handler] respond failed quote_id=%s err=%v", quoteID, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAgreementResult(res))
}

func (h *AgreementHandler) GetAgreement(c *gin.Context) {
	agr, err := h.usecase.GetByQuoteID(c.Request.Context(), actingProfile(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAgreement(agr))
}

package handlers

import (
	"log"
	"net/http"

	request "engagement_service/internal/adapter/http/dto/request"
	response "engagement_service/internal/adapter/http/dto/response"
	"engagement_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// SubmitQuote records the acting provider's offer. A repeated submission
// answers 200 with the stored quote instead of 201.
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	price, err := payload.ResolvePrice()
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	requestID := c.Param("id")
	sub, err := h.usecase.SubmitQuote(c.Request.Context(), actingProfile(c), requestID, price, payload.Message)
	if err != nil {
		log.Printf("[quote][handler] submit failed request_id=%s provider_id=%s err=%v", requestID, actingProfile(c), err)
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if sub.Created {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromQuoteSubmission(sub))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListByRequest(c.Request.Context(), actingProfile(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

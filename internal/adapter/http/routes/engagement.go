package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathRequests  = "/requests"
	PathQuotes    = "/quotes"
	PathProviders = "/providers"
)

func addEngagementRoutes(rg *gin.RouterGroup, h Handlers) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", h.Requests.CreateRequest)
		requests.GET("/:id", h.Requests.GetRequest)
		requests.PATCH("/:id/cancel", h.Requests.CancelRequest)
		requests.PATCH("/:id/reopen", h.Requests.ReopenRequest)
		requests.PATCH("/:id/reject", h.Requests.RejectRequest)
		requests.POST("/:id/assign", h.Requests.AssignProvider)
		requests.POST("/:id/complete", h.Requests.CompleteRequest)

		requests.GET("/:id/quotes", h.Quotes.ListQuotes)
		requests.POST("/:id/quotes", h.Quotes.SubmitQuote)

		requests.PUT("/:id/provider-status", h.ProviderStatus.AdvanceStatus)
		requests.GET("/:id/provider-status", h.ProviderStatus.GetStatus)

		requests.POST("/:id/workflow/milestones", h.Workflows.AdvanceMilestone)
		requests.GET("/:id/workflow", h.Workflows.GetWorkflow)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("/:id", h.Quotes.GetQuote)
		quotes.POST("/:id/agreement", h.Agreements.RespondToAgreement)
		quotes.GET("/:id/agreement", h.Agreements.GetAgreement)
	}

	providers := rg.Group(PathProviders)
	{
		providers.GET("/me/available-requests", h.ProviderStatus.ListAvailable)
	}
}

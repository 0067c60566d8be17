package routes

import (
	"portfolio_studio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// addPublicRoutes registers everything reachable without a back-office token:
// the shared proposal links, the checkout page, published content and the
// i18n helpers.
func addPublicRoutes(
	rg *gin.RouterGroup,
	access *handlers.ProposalAccessHandler,
	checkout *handlers.CheckoutHandler,
	content *handlers.ContentHandler,
	translation *handlers.TranslationHandler,
	users *handlers.UserHandler,
) {
	proposals := rg.Group("/p")
	{
		proposals.GET("/:slug", access.ViewProposal)
		proposals.POST("/:slug/session", access.CreateSession)
		proposals.POST("/:slug/accept", access.AcceptProposal)
	}

	checkouts := rg.Group("/checkout")
	{
		checkouts.GET("/:id", checkout.GetCheckout)
		checkouts.GET("/:id/installments", checkout.ListInstallments)
		checkouts.POST("/:id/pay", checkout.PayCheckout)
	}

	rg.GET("/projects", content.ListPublishedProjects)
	rg.GET("/projects/:slug", content.GetPublishedProject)
	rg.GET("/posts", content.ListPublishedPosts)
	rg.GET("/posts/:slug", content.GetPublishedPost)

	rg.POST("/translate", translation.Translate)
	rg.GET("/locale", translation.DetectLocale)

	rg.POST("/login", users.Login)
}

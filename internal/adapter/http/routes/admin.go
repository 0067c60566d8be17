package routes

import (
	"portfolio_studio/internal/adapter/http/handlers"
	"portfolio_studio/internal/adapter/http/middleware"
	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// addAdminRoutes registers the token-gated back-office tree. Proposal routes
// admit the proposal-editor role; everything else requires admin. Root passes
// every gate.
func addAdminRoutes(
	rg *gin.RouterGroup,
	tokens interfaces.ISessionTokens,
	proposals *handlers.ProposalHandler,
	checkouts *handlers.CheckoutHandler,
	content *handlers.ContentHandler,
	gallery *handlers.GalleryHandler,
	users *handlers.UserHandler,
) {
	admin := rg.Group("/admin", middleware.RequireUser(tokens))

	proposalRoutes := admin.Group("/proposals", middleware.RequireRole(entities.RoleAdmin, entities.RoleProposalEditor))
	{
		proposalRoutes.POST("", proposals.CreateProposal)
		proposalRoutes.GET("", proposals.ListProposals)
		proposalRoutes.GET("/:id", proposals.GetProposal)
		proposalRoutes.PUT("/:id", proposals.UpdateProposal)
		proposalRoutes.DELETE("/:id", proposals.DeleteProposal)
		proposalRoutes.GET("/:id/snapshots", proposals.ListSnapshots)
		proposalRoutes.GET("/:id/acceptance", proposals.GetAcceptance)
	}

	checkoutRoutes := admin.Group("/checkouts", middleware.RequireRole(entities.RoleAdmin))
	{
		checkoutRoutes.POST("", checkouts.CreateCheckout)
		checkoutRoutes.GET("", checkouts.ListCheckouts)
		checkoutRoutes.GET("/:id", checkouts.GetCheckout)
		checkoutRoutes.DELETE("/:id", checkouts.DeleteCheckout)
		checkoutRoutes.GET("/:id/charges", checkouts.ListCharges)
	}

	contentRoutes := admin.Group("", middleware.RequireRole(entities.RoleAdmin))
	{
		contentRoutes.POST("/projects", content.CreateProject)
		contentRoutes.GET("/projects", content.ListProjects)
		contentRoutes.GET("/projects/:id", content.GetProject)
		contentRoutes.PUT("/projects/:id", content.UpdateProject)
		contentRoutes.DELETE("/projects/:id", content.DeleteProject)
		// Collection-level PUT replaces the display ordering.
		contentRoutes.PUT("/projects", content.ReorderProjects)

		contentRoutes.POST("/posts", content.CreatePost)
		contentRoutes.GET("/posts", content.ListPosts)
		contentRoutes.GET("/posts/:id", content.GetPost)
		contentRoutes.PUT("/posts/:id", content.UpdatePost)
		contentRoutes.DELETE("/posts/:id", content.DeletePost)
	}

	galleryRoutes := admin.Group("/gallery", middleware.RequireRole(entities.RoleAdmin))
	{
		galleryRoutes.POST("/folders", gallery.CreateFolder)
		galleryRoutes.GET("/folders", gallery.ListFolders)
		galleryRoutes.DELETE("/folders/:id", gallery.DeleteFolder)

		galleryRoutes.POST("/images", gallery.UploadImage)
		galleryRoutes.GET("/images", gallery.ListImages)
		galleryRoutes.GET("/images/:id", gallery.GetImage)
		galleryRoutes.PUT("/images/:id", gallery.UpdateImageMetadata)
		galleryRoutes.PUT("/images/:id/move", gallery.MoveImage)
		galleryRoutes.PUT("/images/:id/rename", gallery.RenameImage)
		galleryRoutes.DELETE("/images/:id", gallery.DeleteImage)
		// Collection-level PUT replaces the display ordering within a folder.
		galleryRoutes.PUT("/images", gallery.ReorderImages)
	}

	userRoutes := admin.Group("/users", middleware.RequireRole(entities.RoleRoot))
	{
		userRoutes.POST("", users.CreateUser)
		userRoutes.GET("", users.ListUsers)
		userRoutes.GET("/:id", users.GetUser)
		userRoutes.DELETE("/:id", users.DeleteUser)
	}
}

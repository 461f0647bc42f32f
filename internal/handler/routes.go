package handler

import (
	"gamestore/backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API routes on apiV1.
func (h *Handler) RegisterRoutes(apiV1 *gin.RouterGroup, guard *auth.Guard, limiter *auth.RateLimiter) {
	// Auth routes
	authRoutes := apiV1.Group("/auth")
	{
		limited := authRoutes.Group("")
		limited.Use(limiter.Middleware())
		{
			limited.POST("/register", h.RegisterUser)
			limited.POST("/login", h.LoginUser)
			limited.POST("/password-reset", h.RequestPasswordReset)
		}

		authRoutes.POST("/logout", guard.AuthMiddleware(), h.LogoutUser)
		authRoutes.PUT("/password", guard.AuthMiddleware(), h.UpdatePassword)
		authRoutes.GET("/session", guard.AuthMiddleware(), h.GetSession)
	}

	apiV1.PUT("/language", h.SetLanguage)
	apiV1.GET("/contact/complaint-links", h.GetComplaintLinks)

	// Public game routes, personalised when a token is sent
	gameRoutes := apiV1.Group("/games")
	{
		gameRoutes.GET("", guard.OptionalAuthMiddleware(), h.GetGames)
		gameRoutes.GET("/:id", guard.OptionalAuthMiddleware(), h.GetGameByID)
		gameRoutes.GET("/:id/purchase-links", guard.OptionalAuthMiddleware(), h.GetPurchaseLinks)
		gameRoutes.GET("/:id/reviews", guard.OptionalAuthMiddleware(), h.GetReviews)
		gameRoutes.GET("/:id/reviews/stream", h.StreamReviews) // Must stay public for EventSource
		gameRoutes.POST("/:id/reviews", guard.AuthMiddleware(), h.SubmitReview)
		gameRoutes.DELETE("/:id/reviews/:reviewID", guard.AuthMiddleware(), h.DeleteReview)
	}

	// Blog routes
	postRoutes := apiV1.Group("/posts")
	{
		postRoutes.GET("", h.GetPosts)
		postRoutes.GET("/:slug", h.GetPostBySlug)
	}

	// Admin routes (protected by auth and admin check)
	adminRoutes := apiV1.Group("/admin")
	adminRoutes.Use(guard.AuthMiddleware(), guard.AdminMiddleware())
	{
		adminGameRoutes := adminRoutes.Group("/games")
		{
			adminGameRoutes.GET("", h.ListAdminGames)
			adminGameRoutes.POST("", h.CreateGame)
			adminGameRoutes.PUT("/:id", h.UpdateGame)
			adminGameRoutes.DELETE("/:id", h.DeleteGame)
		}

		adminPostRoutes := adminRoutes.Group("/posts")
		{
			adminPostRoutes.GET("", h.ListAdminPosts)
			adminPostRoutes.POST("", h.CreatePost)
			adminPostRoutes.PUT("/:id", h.UpdatePost)
			adminPostRoutes.DELETE("/:id", h.DeletePost)
		}
	}
}

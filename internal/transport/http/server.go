package http

import (
	"github.com/gin-gonic/gin"

	"reviewhub/internal/bootstrap"
	"reviewhub/internal/transport/http/handler"
	"reviewhub/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	svc := app.Services
	log := app.Logger
	authHandler := handler.NewAuthHandler(svc.Auth, log)
	itemHandler := handler.NewItemHandler(svc.Items, log)
	reviewHandler := handler.NewReviewHandler(svc.Reviews, log)
	commentHandler := handler.NewCommentHandler(svc.Comments, log)
	requireAuth := middleware.Auth(svc.Identity, log)

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", requireAuth, authHandler.Logout)
	authGroup.GET("/me", requireAuth, authHandler.Me)

	itemGroup := api.Group("/items")
	itemGroup.GET("", itemHandler.List)
	itemGroup.GET("/:itemId", itemHandler.Get)
	itemGroup.GET("/:itemId/reviews", reviewHandler.ListByItem)
	itemGroup.POST("/:itemId/reviews", requireAuth, reviewHandler.Create)

	reviewGroup := api.Group("/reviews")
	reviewGroup.GET("/me", requireAuth, reviewHandler.ListMine)
	reviewGroup.GET("/:reviewId", reviewHandler.Get)
	reviewGroup.PUT("/:reviewId", requireAuth, reviewHandler.Update)
	reviewGroup.DELETE("/:reviewId", requireAuth, reviewHandler.Delete)
	reviewGroup.GET("/:reviewId/comments", commentHandler.ListByReview)
	reviewGroup.POST("/:reviewId/comments", requireAuth, commentHandler.Create)

	commentGroup := api.Group("/comments")
	commentGroup.GET("/me", requireAuth, commentHandler.ListMine)
	commentGroup.PUT("/:commentId", requireAuth, commentHandler.Update)
	commentGroup.DELETE("/:commentId", requireAuth, commentHandler.Delete)

	return router
}

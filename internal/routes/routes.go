package routes

import (
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/handler"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/middleware"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	listingHandler *handler.ListingHandler,
	requestHandler *handler.RequestHandler,
	messageHandler *handler.MessageHandler,
	notificationHandler *handler.NotificationHandler,
	jwtManager *jwt.Manager,
) {
	api := router.Group("/api")

	auth := middleware.JWTAuth(jwtManager)
	admin := middleware.RequireAdmin()

	// Authentication endpoints (no auth required except /me)
	authGroup := api.Group("/auth")
	authGroup.POST("/initiate-signup", authHandler.InitiateSignup)
	authGroup.POST("/verify-token", authHandler.VerifyToken)
	authGroup.POST("/complete-signup", authHandler.CompleteSignup)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", auth, authHandler.Me)

	// Users
	users := api.Group("/users")
	users.POST("/check-username", userHandler.CheckUsername)
	users.POST("/recover-username", userHandler.RecoverUsername)
	users.GET("", auth, admin, userHandler.ListAll)
	users.PATCH("/me", auth, userHandler.UpdateProfile)
	users.GET("/:uid", auth, userHandler.GetProfile)
	users.PATCH("/:uid/blacklist", auth, admin, userHandler.SetSuspended)

	// Service listings (browsing is public)
	services := api.Group("/services")
	services.GET("", listingHandler.List)
	services.GET("/pending", auth, admin, listingHandler.ListPending)
	services.GET("/:id", listingHandler.Get)
	services.POST("", auth, listingHandler.Create)
	services.PATCH("/:id/status", auth, admin, listingHandler.SetStatus)
	services.DELETE("/:id", auth, admin, listingHandler.Delete)

	// Service requests
	requests := api.Group("/requests", auth)
	requests.POST("", requestHandler.Create)
	requests.GET("/:id", requestHandler.Get)

	// Direct messages
	messages := api.Group("/messages", auth)
	messages.POST("", messageHandler.Send)
	messages.GET("/conversations", messageHandler.ListConversations)
	messages.GET("/unread-count", messageHandler.UnreadCount)
	messages.GET("/:otherUid", messageHandler.ListThread)
	messages.PATCH("/:otherUid/read", messageHandler.MarkThreadRead)

	// Notifications
	notifications := api.Group("/notifications", auth)
	notifications.GET("", notificationHandler.List)
	notifications.GET("/unread-count", notificationHandler.UnreadCount)
	notifications.PATCH("/:id/read", notificationHandler.MarkAsRead)
}

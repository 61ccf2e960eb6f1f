package api

import (
	"net/http"

	"pushpull/studio-admin/internal/domain"
	"pushpull/studio-admin/internal/service"
	"pushpull/studio-admin/internal/storage"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every handler onto the router. Login is the only
// public endpoint besides the health check; everything else sits behind
// the JWT middleware, and mutating routes additionally require the
// trainer role.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	userService service.UserService,
	packageService service.PackageService,
	subscriptionService service.SubscriptionService,
	requestService service.RequestService,
	notificationService service.NotificationService,
	chatService service.ChatService,
	calendarService service.CalendarService,
	dashboardService service.DashboardService,
	mediaStorage storage.MediaStorage,
) {
	authHandler := NewAuthHandler(authService)
	trainerHandler := NewTrainerHandler(userService, calendarService, mediaStorage)
	customerHandler := NewCustomerHandler(userService)
	packageHandler := NewPackageHandler(packageService)
	subscriptionHandler := NewSubscriptionHandler(subscriptionService)
	requestHandler := NewRequestHandler(requestService)
	notificationHandler := NewNotificationHandler(notificationService)
	chatHandler := NewChatHandler(chatService)
	dashboardHandler := NewDashboardHandler(dashboardService)

	authMiddleware := AuthMiddleware(jwtSecret)
	trainerOnly := RoleMiddleware(domain.RoleTrainer)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr, "role": role})
		})

		trainerGroup := protected.Group("/trainers")
		{
			trainerGroup.GET("", trainerHandler.ListTrainers)
			trainerGroup.POST("", trainerOnly, trainerHandler.CreateTrainer)
			trainerGroup.PUT("/:id", trainerOnly, trainerHandler.UpdateTrainer)
			trainerGroup.DELETE("/:id", trainerOnly, trainerHandler.DeleteTrainer)
			trainerGroup.GET("/:id/calendar", trainerHandler.Calendar)
			trainerGroup.POST("/:id/photo-upload-url", trainerOnly, trainerHandler.PhotoUploadURL)
		}

		protected.GET("/customers", customerHandler.ListCustomers)

		packageGroup := protected.Group("/packages")
		{
			packageGroup.GET("", packageHandler.ListPackages)
			packageGroup.POST("", trainerOnly, packageHandler.CreatePackage)
			packageGroup.GET("/:id", packageHandler.GetPackage)
			packageGroup.DELETE("/:id", trainerOnly, packageHandler.DeletePackage)
		}

		subscriptionGroup := protected.Group("/subscriptions")
		{
			subscriptionGroup.GET("", subscriptionHandler.ListSubscriptions)
			subscriptionGroup.POST("", trainerOnly, subscriptionHandler.CreateSubscription)
			subscriptionGroup.GET("/:id", subscriptionHandler.GetSubscription)
			subscriptionGroup.PUT("/:id", trainerOnly, subscriptionHandler.UpdateSubscription)
			subscriptionGroup.DELETE("/:id", trainerOnly, subscriptionHandler.DeleteSubscription)
		}

		requestGroup := protected.Group("/requests")
		{
			requestGroup.GET("", requestHandler.ListRequests)
			requestGroup.GET("/:id", requestHandler.GetRequest)
			requestGroup.PATCH("/:id/status", trainerOnly, requestHandler.UpdateRequestStatus)
			requestGroup.POST("/:id/suggestions", trainerOnly, requestHandler.AddSuggestion)
			requestGroup.PUT("/:id/more-suggestions", trainerOnly, requestHandler.UpdateMoreSuggestions)
		}

		notificationGroup := protected.Group("/notifications")
		{
			notificationGroup.GET("/customers/:customerId", notificationHandler.ListCustomerNotifications)
			notificationGroup.PATCH("/customers/:customerId/read", notificationHandler.MarkCustomerNotificationRead)
			notificationGroup.GET("/trainers/:trainerId", notificationHandler.ListTrainerNotifications)
			notificationGroup.PATCH("/trainers/:trainerId/read", notificationHandler.MarkTrainerNotificationRead)
		}

		chatGroup := protected.Group("/chats")
		{
			chatGroup.GET("/:trainerId/:customerId/messages", chatHandler.ListMessages)
			chatGroup.POST("/:trainerId/:customerId/messages", chatHandler.SendMessage)
		}

		protected.GET("/dashboard/stats", dashboardHandler.Stats)
	}
}

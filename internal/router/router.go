package router

import (
	"time"

	"github.com/brandreach/campaign-crm-backend/internal/handlers"
	"github.com/brandreach/campaign-crm-backend/internal/middleware"
	"github.com/brandreach/campaign-crm-backend/internal/services"
	"github.com/brandreach/campaign-crm-backend/internal/services/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin router
func SetupRouter(db *gorm.DB, rabbitMQService *services.RabbitMQService) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Create a new router
	r := gin.New()

	// Use middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Create services
	authService := auth.NewAuthService(db)

	// Create middleware with services
	bearerTokenMiddleware := middleware.NewBearerTokenMiddleware(authService)

	// Create handlers with services
	authHandler := handlers.NewAuthHandler(authService)
	campaignHandler := handlers.NewCampaignHandler(db)
	retailerHandler := handlers.NewRetailerHandler(db)
	employeeHandler := handlers.NewEmployeeHandler(db)
	assignmentHandler := handlers.NewAssignmentHandler(db, rabbitMQService)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	api := r.Group("/api/v1")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now().Format(time.RFC3339),
			})
		})

		// Auth routes (public)
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh", authHandler.RefreshToken)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(bearerTokenMiddleware.BearerTokenAuthMiddleware())
		{
			// Auth protected routes
			authProtected := protected.Group("/auth")
			{
				authProtected.POST("/logout", authHandler.Logout)
				authProtected.GET("/profile", authHandler.GetProfile)
				authProtected.POST("/change-password", authHandler.ChangePassword)
			}

			// Campaign routes (read-only; campaign records are managed upstream)
			campaigns := protected.Group("/campaigns")
			{
				campaigns.GET("", campaignHandler.GetCampaigns)
				campaigns.GET("/:id", campaignHandler.GetCampaignByID)
				campaigns.GET("/:id/assignments", assignmentHandler.ListCampaignAssignments)
			}

			// Retailer routes
			retailers := protected.Group("/retailers")
			{
				retailers.GET("", retailerHandler.GetRetailers)
				retailers.GET("/:id", retailerHandler.GetRetailerByID)
			}

			// Employee routes
			employees := protected.Group("/employees")
			{
				employees.GET("", employeeHandler.GetEmployees)
				employees.GET("/:id", employeeHandler.GetEmployeeByID)
			}

			// Assignment routes
			assignments := protected.Group("/assignments")
			{
				assignments.POST("", assignmentHandler.AssignSelected)
				assignments.POST("/bulk", assignmentHandler.BulkAssign)
				assignments.GET("/template", assignmentHandler.DownloadTemplate)
				assignments.PUT("/:id/respond", assignmentHandler.RespondToAssignment)
			}
		}
	}

	return r
}

package routes

import (
	"travel-backoffice-backend/internal/api/handlers"
	"travel-backoffice-backend/internal/api/middleware"
	"travel-backoffice-backend/internal/auth"
	"travel-backoffice-backend/internal/config"
	"travel-backoffice-backend/internal/mailer"
	"travel-backoffice-backend/internal/repository"
	"travel-backoffice-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	leadRepo := repository.NewLeadRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	packageRepo := repository.NewPackageRepository(db)

	// Initialize outbound clients
	notifier := service.NewNotifierService(cfg)
	authProvider := service.NewAuthProviderService(cfg)
	mail := mailer.NewService(cfg.EmailFrom, cfg.EmailFromName, cfg.AppBaseURL, cfg.SendGridAPIKey)

	// Initialize services
	leadService := service.NewLeadService(leadRepo, validator)
	assignmentService := service.NewAssignmentService(leadRepo, employeeRepo, notifier)
	employeeService := service.NewEmployeeService(employeeRepo, authProvider, mail, validator)
	bookingService := service.NewBookingService(bookingRepo, validator)
	packageService := service.NewPackageService(packageRepo, validator)
	destinationService := service.NewDestinationService()

	// Initialize auth middleware
	authMiddleware := auth.NewMiddleware(cfg)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	leadHandler := handlers.NewLeadHandler(leadService, assignmentService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	packageHandler := handlers.NewPackageHandler(packageService)
	destinationHandler := handlers.NewDestinationHandler(destinationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	{
		// Lead routes
		leads := v1.Group("/leads")
		{
			leads.GET("", leadHandler.ListLeads)
			leads.POST("", leadHandler.CreateLead)
			leads.POST("/assign", leadHandler.AssignLead)
			leads.GET("/:id", leadHandler.GetLead)
			leads.PATCH("/:id", leadHandler.UpdateLead)
		}

		// Employee routes
		employees := v1.Group("/employees")
		{
			employees.GET("", employeeHandler.ListEmployees)
			employees.POST("", authMiddleware.RequireAdmin(), employeeHandler.CreateEmployee)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.PATCH("/:id", authMiddleware.RequireAdmin(), employeeHandler.UpdateEmployee)
		}

		// Booking routes
		bookings := v1.Group("/bookings")
		{
			bookings.GET("", bookingHandler.ListBookings)
			bookings.POST("", bookingHandler.CreateBooking)
			bookings.GET("/:id", bookingHandler.GetBooking)
			bookings.PATCH("/:id", bookingHandler.UpdateBooking)
		}

		// Travel package routes
		packages := v1.Group("/packages")
		{
			packages.GET("", packageHandler.ListPackages)
			packages.POST("", packageHandler.CreatePackage)
			packages.GET("/city/:city", packageHandler.GetPackagesByCity)
			packages.GET("/:id", packageHandler.GetPackage)
			packages.PATCH("/:id", packageHandler.UpdatePackage)
			packages.DELETE("/:id", packageHandler.DeletePackage)
		}

		// Destination routes
		destinations := v1.Group("/destinations")
		{
			destinations.GET("", destinationHandler.ListDestinations)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}

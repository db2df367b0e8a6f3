// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hotel-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/hotel-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	authController           *controller.AuthController
	hotelController          *controller.HotelController
	bookingController        *controller.BookingController
	incomeController         *controller.IncomeController
	expenseController        *controller.ExpenseController
	dashboardController      *controller.DashboardController
	reconciliationController *controller.ReconciliationController
	reportController         *controller.ReportController
	simpleBookingController  *controller.SimpleBookingController
	loginRateLimiter         *middleware.RateLimiter
	authMiddleware           *middleware.AuthMiddleware
	allowedOrigins           []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	hotelController *controller.HotelController,
	bookingController *controller.BookingController,
	incomeController *controller.IncomeController,
	expenseController *controller.ExpenseController,
	dashboardController *controller.DashboardController,
	reconciliationController *controller.ReconciliationController,
	reportController *controller.ReportController,
	simpleBookingController *controller.SimpleBookingController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController:         healthController,
		authController:           authController,
		hotelController:          hotelController,
		bookingController:        bookingController,
		incomeController:         incomeController,
		expenseController:        expenseController,
		dashboardController:      dashboardController,
		reconciliationController: reconciliationController,
		reportController:         reportController,
		simpleBookingController:  simpleBookingController,
		loginRateLimiter:         loginRateLimiter,
		authMiddleware:           authMiddleware,
		allowedOrigins:           allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.engine.Use(r.corsMiddleware())

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// corsMiddleware builds the CORS policy for browser clients.
func (r *Router) corsMiddleware() gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOrigins:     r.allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	return cors.New(corsConfig)
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Hotel profile routes (require authentication)
		if r.hotelController != nil && r.authMiddleware != nil {
			hotel := v1.Group("/hotel")
			hotel.Use(r.authMiddleware.Authenticate())
			{
				hotel.GET("", r.hotelController.Get)
				hotel.PATCH("", r.hotelController.Update)
			}
		}

		// Booking routes (require authentication)
		if r.bookingController != nil && r.authMiddleware != nil {
			bookings := v1.Group("/bookings")
			bookings.Use(r.authMiddleware.Authenticate())
			{
				bookings.GET("", r.bookingController.List)
				bookings.POST("", r.bookingController.Create)
				bookings.PATCH("/:id", r.bookingController.Update)
				bookings.DELETE("/:id", r.bookingController.Delete)
			}
		}

		// Extra income routes (require authentication)
		if r.incomeController != nil && r.authMiddleware != nil {
			income := v1.Group("/income")
			income.Use(r.authMiddleware.Authenticate())
			{
				income.GET("", r.incomeController.List)
				income.POST("", r.incomeController.Create)
				income.PATCH("/:id", r.incomeController.Update)
				income.DELETE("/:id", r.incomeController.Delete)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.POST("/suggest-type", r.expenseController.SuggestType)
				expenses.PATCH("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/overview", r.dashboardController.GetOverview)
			}
		}

		// Reconciliation routes (require authentication)
		if r.reconciliationController != nil && r.authMiddleware != nil {
			reconciliation := v1.Group("/reconciliation")
			reconciliation.Use(r.authMiddleware.Authenticate())
			{
				reconciliation.GET("", r.reconciliationController.Get)
			}
		}

		// Monthly report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("", r.reportController.List)
				reports.POST("/generate", r.reportController.Generate)
			}
		}

		// Simple booking routes (require authentication)
		if r.simpleBookingController != nil && r.authMiddleware != nil {
			simpleBookings := v1.Group("/simple-bookings")
			simpleBookings.Use(r.authMiddleware.Authenticate())
			{
				simpleBookings.GET("", r.simpleBookingController.List)
				simpleBookings.POST("", r.simpleBookingController.Create)
				simpleBookings.PATCH("/:id", r.simpleBookingController.Update)
				simpleBookings.DELETE("/:id", r.simpleBookingController.Delete)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/hotel-ledger/backend/config"
	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/application/usecase/auth"
	"github.com/hotel-ledger/backend/internal/application/usecase/booking"
	"github.com/hotel-ledger/backend/internal/application/usecase/dashboard"
	"github.com/hotel-ledger/backend/internal/application/usecase/expense"
	"github.com/hotel-ledger/backend/internal/application/usecase/hotel"
	"github.com/hotel-ledger/backend/internal/application/usecase/income"
	"github.com/hotel-ledger/backend/internal/application/usecase/reconciliation"
	"github.com/hotel-ledger/backend/internal/application/usecase/report"
	"github.com/hotel-ledger/backend/internal/application/usecase/simplebooking"
	"github.com/hotel-ledger/backend/internal/infra/cache"
	"github.com/hotel-ledger/backend/internal/infra/server/router"
	"github.com/hotel-ledger/backend/internal/integration/adapters"
	"github.com/hotel-ledger/backend/internal/integration/email"
	"github.com/hotel-ledger/backend/internal/integration/email/templates"
	"github.com/hotel-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/hotel-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/hotel-ledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The redis client may be nil; the dashboard then runs uncached.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	operatorRepo := persistence.NewOperatorRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	hotelRepo := persistence.NewHotelRepository(db)
	bookingRepo := persistence.NewBookingRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	reportRepo := persistence.NewReportRepository(db)
	simpleBookingRepo := persistence.NewSimpleBookingRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	expenseSuggester := adapters.NewGeminiService(cfg.Gemini.APIKey)

	var dashboardCache adapter.DashboardCache
	if redisClient != nil {
		dashboardCache = cache.NewDashboardCache(redisClient)
	}

	// Create email pipeline
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)
	emailRenderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, emailRenderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	registerUseCase := auth.NewRegisterOperatorUseCase(operatorRepo, hotelRepo, passwordService, tokenService, emailService)
	loginUseCase := auth.NewLoginOperatorUseCase(operatorRepo, hotelRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutOperatorUseCase(tokenService)

	// Create hotel use cases
	getHotelUseCase := hotel.NewGetHotelUseCase(hotelRepo)
	updateHotelUseCase := hotel.NewUpdateHotelUseCase(hotelRepo)

	// Create booking use cases
	listBookingsUseCase := booking.NewListBookingsUseCase(bookingRepo, hotelRepo)
	createBookingUseCase := booking.NewCreateBookingUseCase(bookingRepo, hotelRepo, dashboardCache)
	updateBookingUseCase := booking.NewUpdateBookingUseCase(bookingRepo, hotelRepo, dashboardCache)
	deleteBookingUseCase := booking.NewDeleteBookingUseCase(bookingRepo, incomeRepo, dashboardCache)

	// Create extra income use cases
	listIncomeUseCase := income.NewListIncomeUseCase(incomeRepo)
	createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo, bookingRepo, dashboardCache)
	updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo, bookingRepo, dashboardCache)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo, bookingRepo, dashboardCache)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, dashboardCache)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, dashboardCache)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, dashboardCache)
	suggestExpenseTypeUseCase := expense.NewSuggestExpenseTypeUseCase(expenseSuggester)

	// Create dashboard and reconciliation use cases
	getOverviewUseCase := dashboard.NewGetOverviewUseCase(hotelRepo, bookingRepo, incomeRepo, expenseRepo, reportRepo, dashboardCache)
	getReconciliationUseCase := reconciliation.NewGetReconciliationUseCase(hotelRepo, bookingRepo)

	// Create report use cases
	listReportsUseCase := report.NewListReportsUseCase(reportRepo)
	generateReportUseCase := report.NewGenerateReportUseCase(hotelRepo, operatorRepo, bookingRepo, incomeRepo, expenseRepo, reportRepo, emailService)

	// Create simple booking use cases
	listSimpleBookingsUseCase := simplebooking.NewListSimpleBookingsUseCase(simpleBookingRepo)
	createSimpleBookingUseCase := simplebooking.NewCreateSimpleBookingUseCase(simpleBookingRepo)
	updateSimpleBookingUseCase := simplebooking.NewUpdateSimpleBookingUseCase(simpleBookingRepo)
	deleteSimpleBookingUseCase := simplebooking.NewDeleteSimpleBookingUseCase(simpleBookingRepo)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		cacheHealthChecker(redisClient),
	)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	hotelController := controller.NewHotelController(
		getHotelUseCase,
		updateHotelUseCase,
	)

	bookingController := controller.NewBookingController(
		listBookingsUseCase,
		createBookingUseCase,
		updateBookingUseCase,
		deleteBookingUseCase,
	)

	incomeController := controller.NewIncomeController(
		listIncomeUseCase,
		createIncomeUseCase,
		updateIncomeUseCase,
		deleteIncomeUseCase,
	)

	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		suggestExpenseTypeUseCase,
	)

	dashboardController := controller.NewDashboardController(getOverviewUseCase)
	reconciliationController := controller.NewReconciliationController(getReconciliationUseCase)

	reportController := controller.NewReportController(
		listReportsUseCase,
		generateReportUseCase,
	)

	simpleBookingController := controller.NewSimpleBookingController(
		listSimpleBookingsUseCase,
		createSimpleBookingUseCase,
		updateSimpleBookingUseCase,
		deleteSimpleBookingUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService, operatorRepo, hotelRepo)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		hotelController,
		bookingController,
		incomeController,
		expenseController,
		dashboardController,
		reconciliationController,
		reportController,
		simpleBookingController,
		loginRateLimiter,
		authMiddleware,
		cfg.Server.AllowedOrigins,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}

// cacheHealthChecker builds the health probe for the optional Redis client.
func cacheHealthChecker(client *redis.Client) func() bool {
	if client == nil {
		return nil
	}
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return client.Ping(ctx).Err() == nil
	}
}

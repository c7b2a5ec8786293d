package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"household-expenses/internal/config"
	"household-expenses/internal/database"
	"household-expenses/internal/handlers"
	"household-expenses/internal/middleware"
	"household-expenses/internal/repositories"
	"household-expenses/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	tokenCleanupInterval = time.Hour
	requestBodyLimit     = "1M"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file loaded, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Repositories
	userRepo := repositories.NewUserRepository(db.DB)
	sessionRepo := repositories.NewSessionRepository(db.DB)
	revokedTokenRepo := repositories.NewRevokedTokenRepository(db.DB)
	auditLogRepo := repositories.NewAuditLogRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)
	bankRepo := repositories.NewBankTransactionRepository(db.DB)

	var expenseRepo repositories.ExpenseRepositoryInterface
	switch cfg.Database.ExpenseStore {
	case config.ExpenseStoreMemory:
		expenseRepo = repositories.NewMemoryExpenseRepository()
		logger.Warn("Expenses are kept in memory and will be lost on restart")
	default:
		expenseRepo = repositories.NewExpenseRepository(db.DB)
	}

	// Services
	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)

	alertPublisher, err := services.NewBudgetAlertPublisher(cfg.Notifications, logger, metrics)
	if err != nil {
		logger.Warn("Budget alert publisher unavailable, alerts will only be logged", "error", err)
		alertPublisher = services.NewNoopBudgetAlertPublisher(logger)
	}
	defer func() {
		if err := alertPublisher.Close(); err != nil {
			logger.Error("Failed to close budget alert publisher", "error", err)
		}
	}()

	passwordService := services.NewPasswordService(cfg.Security.BCryptCost, cfg.Security.PasswordMinLength)
	tokenService := services.NewTokenService(&cfg.JWT)
	auditService := services.NewAuditService(auditLogRepo, logger)
	alertService := services.NewBudgetAlertService(budgetRepo, expenseRepo, alertPublisher, services.NewNotificationLogger(logger), logger)

	authService := services.NewAuthService(userRepo, sessionRepo, revokedTokenRepo, auditLogRepo, passwordService, tokenService, metrics, logger)
	expenseService := services.NewExpenseService(expenseRepo, auditService, alertService, metrics, logger)
	budgetService := services.NewBudgetService(budgetRepo, expenseRepo, auditService, metrics, logger)
	bankService := services.NewBankService(bankRepo, expenseRepo, auditService, metrics, cfg.Dashboard, logger)
	dashboardService := services.NewDashboardService(expenseRepo, budgetRepo, bankRepo, metrics, cfg.Dashboard, logger)

	// Handlers
	currency := cfg.Dashboard.Currency
	authHandler := handlers.NewAuthHandler(authService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, currency)
	budgetHandler := handlers.NewBudgetHandler(budgetService, currency)
	bankHandler := handlers.NewBankHandler(bankService, currency)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, currency)
	activityHandler := handlers.NewActivityHandler(auditService)
	healthHandler := handlers.NewHealthCheckHandler(db.DB, cfg.Database.ExpenseStore)
	referenceHandler, err := handlers.NewReferenceHandler(currency)
	if err != nil {
		return fmt.Errorf("failed to build reference data: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	rateLimiter := middleware.NewIPRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	go rateLimiter.Run(ctx)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(echomw.BodyLimit(requestBodyLimit))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", rateLimiter.Middleware())

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)
	auth.POST("/logout", authHandler.Logout)

	requireAuth := middleware.RequireAuth(tokenService, revokedTokenRepo)
	auth.GET("/me", authHandler.Me, requireAuth)

	api.GET("/reference", referenceHandler.GetReference)

	protected := api.Group("", requireAuth)

	protected.POST("/expenses", expenseHandler.CreateExpense)
	protected.GET("/expenses", expenseHandler.ListExpenses)
	protected.GET("/expenses/:id", expenseHandler.GetExpense)
	protected.PUT("/expenses/:id", expenseHandler.UpdateExpense)
	protected.DELETE("/expenses/:id", expenseHandler.DeleteExpense)

	protected.GET("/budgets", budgetHandler.ListBudgets)
	protected.PUT("/budgets", budgetHandler.UpsertBudget)
	protected.GET("/budgets/overview", budgetHandler.GetOverview)
	protected.DELETE("/budgets/:id", budgetHandler.DeleteBudget)

	protected.POST("/bank/transactions", bankHandler.CreateTransaction)
	protected.GET("/bank/transactions", bankHandler.ListTransactions)
	protected.DELETE("/bank/transactions/:id", bankHandler.DeleteTransaction)
	protected.GET("/bank/balance", bankHandler.GetBalance)

	protected.GET("/dashboard", dashboardHandler.GetDashboard)
	protected.GET("/activity", activityHandler.ListActivity)

	if cfg.IsDevelopment() {
		demoDataService := services.NewDemoDataService(
			services.NewDemoDataGenerator(0),
			expenseRepo,
			bankRepo,
			budgetRepo,
			auditService,
			metrics,
			logger,
		)
		protected.POST("/dev/seed", handlers.NewDevHandler(demoDataService).SeedDemoData)
		logger.Info("Development routes enabled", "route", "/api/v1/dev/seed")
	}

	go cleanupExpiredTokens(ctx, db, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting household expenses server",
			"addr", server.Addr,
			"environment", cfg.Server.Environment,
			"expense_store", cfg.Database.ExpenseStore)
		if err := e.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}

func cleanupExpiredTokens(ctx context.Context, db *database.DB, logger *slog.Logger) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := db.CleanupExpiredTokens(); err != nil {
				logger.Error("Failed to cleanup expired tokens", "error", err)
			}
		}
	}
}

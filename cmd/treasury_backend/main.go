package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/wiradata/treasury_app/cmd/docs"
	"github.com/wiradata/treasury_app/internal/core/services"
	"github.com/wiradata/treasury_app/internal/handlers"
	"github.com/wiradata/treasury_app/internal/middleware"
	"github.com/wiradata/treasury_app/internal/platform/config"
	"github.com/wiradata/treasury_app/internal/repositories/database/pgsql"
	"github.com/wiradata/treasury_app/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Treasury Backend API
// @version 1.0
// @description Treasury and cash management backend: transactions, journal posting, giro settlement.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	handlers.RegisterCustomValidators()

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterHealthRoute(r)
	setupAPIV1Routes(r, cfg, dbPool)
	setupSwaggerRoutes(r, cfg)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations using a temporary
// database/sql connection on the pgx stdlib driver.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, dbPool *pgxpool.Pool) {
	repos := pgsql.NewRepositoryProvider(dbPool)

	directory := services.NewAccountDirectory(repos.AccountRepo)
	periodGuard := services.NewPeriodGuard(repos.PeriodRepo)
	notifier := services.NewSlogNotifier()

	approvalService := services.NewApprovalService(repos.ApprovalRepo, repos.TransactionRepo, services.ApprovalRuleConfig{
		Enabled:         cfg.ApprovalEnabled,
		AmountThreshold: cfg.ApprovalAmountThreshold,
		Kinds:           cfg.ApprovalKinds,
	})
	transactionService := services.NewTransactionService(repos.TransactionRepo, directory, repos.BankAccountRepo, periodGuard, cfg.RevisionReasonMinLen)
	postingService := services.NewPostingService(repos.TransactionRepo, repos.JournalRepo, directory, approvalService, periodGuard, notifier, cfg.RevisionReasonMinLen)
	giroService := services.NewGiroService(repos.TransactionRepo, repos.JournalRepo, repos.BankAccountRepo, periodGuard, notifier)
	balanceService := services.NewBalanceService(repos.BankAccountRepo)
	journalService := services.NewJournalService(repos.JournalRepo)

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		slog.Warn("Invalid RATE_LIMIT format, rate limiting disabled", slog.String("value", cfg.RateLimit))
	}

	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	if err == nil {
		v1.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))
	}

	handlers.RegisterAPIRoutes(v1, handlers.Services{
		Transactions: transactionService,
		Posting:      postingService,
		Giro:         giroService,
		Approvals:    approvalService,
		Balances:     balanceService,
		Journals:     journalService,
		Directory:    directory,
	})
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

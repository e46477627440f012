package main

import (
	"fmt"
	"log"
	"net/http"

	"ledgerly/internal/categorizer"
	"ledgerly/internal/config"
	"ledgerly/internal/database"
	"ledgerly/internal/handlers"
	"ledgerly/internal/logger"
	"ledgerly/internal/middleware"
	"ledgerly/internal/services"
	"ledgerly/internal/store"
	"ledgerly/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "ledgerly/internal/docs" // Import swagger docs
)

// @title           Ledgerly API
// @version         1.0
// @description     Ledgerly keeps a single owner's ledger of income, expenses, debts, and loans, and reconciles it into balances per counterparty, available cash, net worth, and spending per category.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := appConfig.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.Init(appConfig.Env, appConfig.LogLevel)
	defer logger.Sync()

	if err := run(appConfig); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(appConfig *config.Config) error {
	log := logger.Get()

	validator.Register()

	// Only the sql store opens a database. Without one, audit entries go to
	// the log.
	var db *gorm.DB
	if appConfig.StoreBackend == store.BackendSQL || appConfig.StoreBackend == "" {
		dbConfig, err := database.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load database configuration: %w", err)
		}

		dbManager, err := database.NewManager(dbConfig)
		if err != nil {
			return fmt.Errorf("failed to create database manager: %w", err)
		}
		defer func() {
			if err := dbManager.Close(); err != nil {
				log.Warnf("database close error: %v", err)
			}
		}()

		if err := dbManager.Migrate(); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
		db = dbManager.DB()
	}

	ledgerStore, err := store.New(store.Options{
		Backend:      appConfig.StoreBackend,
		WorkbookPath: appConfig.WorkbookPath,
	}, db)
	if err != nil {
		return fmt.Errorf("failed to open ledger store: %w", err)
	}

	rules := categorizer.Default()
	if appConfig.CategoriesFile != "" {
		rules, err = categorizer.LoadFile(appConfig.CategoriesFile)
		if err != nil {
			return fmt.Errorf("failed to load category rules: %w", err)
		}
		log.Infow("Loaded category rules", "file", appConfig.CategoriesFile, "categories", len(rules.Categories()))
	}

	// Initialize services
	ledgerService := services.NewLedgerService(ledgerStore, rules)
	auditService := services.NewAuditService(db)
	authService := services.NewAuthService(appConfig.LedgerPasswordHash, appConfig.JWTSecret, appConfig.JWTExpirationDur)
	if !authService.Enabled() {
		log.Warn("LEDGER_PASSWORD_HASH is not set; the API is open to anyone who can reach it")
	}

	// Initialize Gin router
	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": appConfig.StoreBackend})
	})

	handlers.RegisterRoutes(router.Group("/api/v1"), ledgerService, auditService, authService)

	log.Infow("Starting Ledgerly server", "port", appConfig.Port, "store", appConfig.StoreBackend, "auth", authService.Enabled())
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

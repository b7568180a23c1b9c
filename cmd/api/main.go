package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"siteledger/internal/audit"
	"siteledger/internal/config"
	"siteledger/internal/handlers"
	"siteledger/internal/ledger"
	"siteledger/internal/logger"
	"siteledger/internal/middleware"
	"siteledger/internal/upstream"
	"siteledger/internal/validator"

	_ "siteledger/internal/docs" // Import swagger docs
)

// @title           SiteLedger API
// @version         1.0
// @description     SiteLedger aggregates daily construction-project transactions from the back-office services into one normalized, filterable ledger view.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Register custom binding validators
	validator.Register()

	// Back-office client and services
	backoffice := upstream.NewClient(appConfig.BackofficeBaseURL, appConfig.UpstreamTimeout)
	ledgerService := ledger.NewService(backoffice)
	auditTrail := audit.NewTrail()

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(ledgerService, auditTrail)
	categoryHandler := handlers.NewCategoryHandler(ledgerService, auditTrail)
	accountHandler := handlers.NewAccountHandler(ledgerService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

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
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	daily := v1.Group("/daily")
	daily.GET("/transactions", transactionHandler.ListDailyTransactions)
	daily.GET("/transactions/snapshot", transactionHandler.GetSnapshot)
	daily.POST("/transactions", transactionHandler.CreateTransaction)
	daily.POST("/transactions/transfer", transactionHandler.CreateTransfer)
	daily.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)
	daily.GET("/categories", categoryHandler.ListCategories)
	daily.POST("/categories", categoryHandler.CreateCategory)
	daily.POST("/report", transactionHandler.GenerateReport)

	v1.GET("/accounts", accountHandler.ListAccounts)

	log.Infof("Starting SiteLedger gateway on port %s", appConfig.Port)
	log.Infof("Aggregating from back office at %s", appConfig.BackofficeBaseURL)
	return router.Run(":" + appConfig.Port)
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"ledgerly/internal/middleware"
	"ledgerly/internal/services"
)

// RegisterRoutes mounts the ledger API on v1. Every route except login sits
// behind OwnerAuth.
func RegisterRoutes(v1 *gin.RouterGroup, ledgerService services.LedgerServicer, auditService services.AuditServicer, authService services.AuthServicer) {
	authHandler := NewAuthHandler(authService)
	transactionHandler := NewTransactionHandler(ledgerService, auditService)
	summaryHandler := NewSummaryHandler(ledgerService)
	categoryHandler := NewCategoryHandler(ledgerService)

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.OwnerAuth(authService))

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	summary := protected.Group("/summary")
	summary.GET("", summaryHandler.GetSummary)
	summary.GET("/debts", summaryHandler.GetDebts)
	summary.GET("/loans", summaryHandler.GetLoans)
	summary.GET("/categories", summaryHandler.GetSpending)

	protected.GET("/counterparties", summaryHandler.GetOpenCounterparties)

	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.POST("/classify", categoryHandler.Classify)
}

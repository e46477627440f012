package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/pagination"
	"ledgerly/internal/services"
)

// TransactionHandler handles ledger transaction requests.
type TransactionHandler struct {
	ledgerService services.LedgerServicer
	auditService  services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerService services.LedgerServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService, auditService: auditService}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	Kind         models.TransactionKind `json:"kind" binding:"required,transaction_kind" example:"expense"`
	Counterparty string                 `json:"counterparty" binding:"required,max=255" example:"Mercadona"`
	Amount       decimal.Decimal        `json:"amount" binding:"required,gt=0" swaggertype:"string" example:"42.50"`
	Date         *string                `json:"date" example:"2025-03-14"`
}

// UpdateTransactionRequest represents the request payload for updating a transaction.
// Omitted fields are left unchanged.
type UpdateTransactionRequest struct {
	Kind         *models.TransactionKind `json:"kind" binding:"omitempty,transaction_kind"`
	Counterparty *string                 `json:"counterparty" binding:"omitempty,max=255"`
	Amount       *decimal.Decimal        `json:"amount" binding:"omitempty,gt=0" swaggertype:"string"`
	Date         *string                 `json:"date"`
}

// TransactionResponse represents a transaction in the response
type TransactionResponse struct {
	Transaction models.Transaction `json:"transaction"`
}

// CreateTransaction handles adding a transaction to the ledger
// @Summary     Add a transaction
// @Description Append an income, expense, debt, or loan movement. The id is assigned as the current max id + 1 and the category is derived from the kind and counterparty.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Ledger store unavailable"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transactionDate := time.Now()
	if req.Date != nil && *req.Date != "" {
		parsed, parseErr := parseFlexibleTime(*req.Date)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		transactionDate = parsed
	}

	transaction, err := h.ledgerService.AddTransaction(c.Request.Context(), req.Kind, req.Counterparty, req.Amount, transactionDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.ActionCreateTransaction, transaction.ID, c.ClientIP(),
		map[string]interface{}{"kind": req.Kind, "counterparty": transaction.Counterparty, "amount": req.Amount.String()})

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// ListTransactions handles the paginated transaction listing
// @Summary     List transactions
// @Description Get a paginated list of transactions, newest first, with optional filters
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page         query int    false "Page number (default 1)"
// @Param       page_size    query int    false "Items per page (default 20, max 100)"
// @Param       kind         query string false "Comma-separated kinds (income, expense, debt_incurred, debt_payment, loan_given, loan_collected)"
// @Param       flow         query string false "in (income, loan_collected) or out (expense, debt_payment, loan_given)"
// @Param       counterparty query string false "Case-insensitive substring of the counterparty"
// @Param       category     query string false "Category label"
// @Param       from_date    query string false "Filter by start date (RFC3339 e.g. 2024-01-01T00:00:00Z, or YYYY-MM-DD)"
// @Param       to_date      query string false "Filter by end date, inclusive (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Ledger store unavailable"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var query ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := query.filter()
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.ledgerService.ListTransactions(c.Request.Context(), query.PageRequest, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListTransactionsQuery holds the list query string.
type ListTransactionsQuery struct {
	pagination.PageRequest
	Kind         string      `form:"kind"`
	Flow         models.Flow `form:"flow" binding:"omitempty,flow"`
	Counterparty string      `form:"counterparty" binding:"omitempty,max=255"`
	Category     string      `form:"category" binding:"omitempty,max=64"`
	FromDate     string      `form:"from_date"`
	ToDate       string      `form:"to_date"`
}

func (q ListTransactionsQuery) filter() (services.TransactionFilter, error) {
	filter := services.TransactionFilter{
		Flow:         q.Flow,
		Counterparty: strings.TrimSpace(q.Counterparty),
		Category:     strings.TrimSpace(q.Category),
	}

	if q.Kind != "" {
		for _, part := range strings.Split(q.Kind, ",") {
			kind := models.TransactionKind(strings.TrimSpace(part))
			if !kind.Valid() {
				return filter, apperrors.WithMessage(apperrors.ErrInvalidTransactionKind, "invalid kind "+string(kind))
			}
			filter.Kinds = append(filter.Kinds, kind)
		}
	}

	if q.FromDate != "" {
		t, err := parseFlexibleTime(q.FromDate)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid from_date format, use RFC3339 or YYYY-MM-DD")
		}
		filter.FromDate = &t
	}

	if q.ToDate != "" {
		t, err := parseFlexibleTime(q.ToDate)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid to_date format, use RFC3339 or YYYY-MM-DD")
		}
		// A bare date includes the whole day.
		if isDateOnly(q.ToDate) {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		filter.ToDate = &t
	}

	return filter, nil
}

// GetTransaction handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Description Get a specific transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Success     200 {object} TransactionResponse "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.ledgerService.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransaction handles editing an existing transaction
// @Summary     Update transaction
// @Description Update kind, counterparty, amount, or date of a transaction. The category is recomputed.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                      true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} TransactionResponse "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	txID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	update := services.TransactionUpdate{
		Kind:         req.Kind,
		Counterparty: req.Counterparty,
		Amount:       req.Amount,
	}

	// Parse date if provided
	if req.Date != nil && *req.Date != "" {
		parsed, parseErr := parseFlexibleTime(*req.Date)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		update.Date = &parsed
	}

	transaction, err := h.ledgerService.UpdateTransaction(c.Request.Context(), txID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes := map[string]interface{}{}
	if req.Kind != nil {
		changes["kind"] = *req.Kind
	}
	if req.Counterparty != nil {
		changes["counterparty"] = transaction.Counterparty
	}
	if req.Amount != nil {
		changes["amount"] = req.Amount.String()
	}
	if update.Date != nil {
		changes["date"] = update.Date.Format(time.RFC3339)
	}
	h.auditService.Log(services.ActionUpdateTransaction, txID, c.ClientIP(), changes)

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete transaction
// @Description Delete a transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.ledgerService.DeleteTransaction(c.Request.Context(), transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.ActionDeleteTransaction, transactionID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

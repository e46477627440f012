package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/ledger"
	"ledgerly/internal/models"
	"ledgerly/internal/services"
)

// SummaryHandler serves the reconciled views of the ledger.
type SummaryHandler struct {
	ledgerService services.LedgerServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(ledgerService services.LedgerServicer) *SummaryHandler {
	return &SummaryHandler{ledgerService: ledgerService}
}

// SummaryResponse wraps a full reconciliation.
type SummaryResponse struct {
	Summary ledger.Result `json:"summary"`
}

// DebtsResponse lists per-creditor balances.
type DebtsResponse struct {
	Debts        []ledger.DebtSummary `json:"debts"`
	TotalPending string               `json:"total_pending"`
}

// LoansResponse lists per-debtor balances.
type LoansResponse struct {
	Loans           []ledger.LoanSummary `json:"loans"`
	TotalReceivable string               `json:"total_receivable"`
}

// SpendingResponse lists expense totals per category.
type SpendingResponse struct {
	Spending     []ledger.CategoryTotal `json:"spending"`
	TotalExpense string                 `json:"total_expense"`
}

// CounterpartiesResponse lists counterparties with an open balance.
type CounterpartiesResponse struct {
	Kind           models.TransactionKind `json:"kind"`
	Counterparties []string               `json:"counterparties"`
}

// GetSummary handles the full reconciliation
// @Summary     Ledger summary
// @Description Totals, available cash, net worth, per-counterparty debt and loan balances, spending per category, and rows excluded as anomalies
// @Tags        summary
// @Produce     json
// @Security    BearerAuth
// @Param       strict query bool false "Fail with INVALID_TRANSACTION instead of reporting anomalies"
// @Success     200 {object} SummaryResponse "Reconciled ledger"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     422 {object} ErrorResponse "Ledger has anomalies (strict mode)"
// @Failure     503 {object} ErrorResponse "Ledger store unavailable"
// @Router      /summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	strict, err := parseBoolQuery(c, "strict")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.ledgerService.GetSummary(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	if strict {
		if anomalies := result.Err(); anomalies != nil {
			appErr := apperrors.Wrap(apperrors.ErrInvalidTransaction, anomalies)
			appErr.Message = fmt.Sprintf("%d ledger row(s) cannot be reconciled, first: %s", len(result.Anomalies), result.Anomalies[0].Error())
			respondWithError(c, appErr)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"summary": result})
}

// GetDebts handles the per-creditor debt summary
// @Summary     Debt summary
// @Description Incurred, paid, and pending per creditor. Settled and overpaid creditors are included unless pending_only is set.
// @Tags        summary
// @Produce     json
// @Security    BearerAuth
// @Param       pending_only query bool false "Only creditors with pending > 0"
// @Success     200 {object} DebtsResponse "Debt balances"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Ledger store unavailable"
// @Router      /summary/debts [get]
func (h *SummaryHandler) GetDebts(c *gin.Context) {
	pendingOnly, err := parseBoolQuery(c, "pending_only")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.ledgerService.GetSummary(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	debts := result.Debts
	if pendingOnly {
		debts = result.PendingDebts()
	}

	c.JSON(http.StatusOK, DebtsResponse{Debts: debts, TotalPending: result.TotalPending.String()})
}

// GetLoans handles the per-debtor loan summary
// @Summary     Loan summary
// @Description Given, collected, and receivable per debtor. Settled debtors are included unless outstanding_only is set.
// @Tags        summary
// @Produce     json
// @Security    BearerAuth
// @Param       outstanding_only query bool false "Only debtors with receivable > 0"
// @Success     200 {object} LoansResponse "Loan balances"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Ledger store unavailable"
// @Router      /summary/loans [get]
func (h *SummaryHandler) GetLoans(c *gin.Context) {
	outstandingOnly, err := parseBoolQuery(c, "outstanding_only")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.ledgerService.GetSummary(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	loans := result.Loans
	if outstandingOnly {
		loans = result.OutstandingLoans()
	}

	c.JSON(http.StatusOK, LoansResponse{Loans: loans, TotalReceivable: result.TotalReceivable.String()})
}

// GetSpending handles expense totals per category
// @Summary     Spending by category
// @Description Expense totals per keyword category, largest first
// @Tags        summary
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} SpendingResponse "Spending per category"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Ledger store unavailable"
// @Router      /summary/categories [get]
func (h *SummaryHandler) GetSpending(c *gin.Context) {
	result, err := h.ledgerService.GetSummary(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	spending := result.Spending
	if spending == nil {
		spending = []ledger.CategoryTotal{}
	}

	c.JSON(http.StatusOK, SpendingResponse{Spending: spending, TotalExpense: result.TotalExpense.String()})
}

// GetOpenCounterparties handles the pick list for payment and collection forms
// @Summary     Open counterparties
// @Description Creditors with pending debt (kind=debt_payment) or debtors with an outstanding loan (kind=loan_collected)
// @Tags        summary
// @Produce     json
// @Security    BearerAuth
// @Param       kind query string true "debt_payment or loan_collected"
// @Success     200 {object} CounterpartiesResponse "Counterparty names"
// @Failure     400 {object} ErrorResponse "Unsupported kind"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Ledger store unavailable"
// @Router      /counterparties [get]
func (h *SummaryHandler) GetOpenCounterparties(c *gin.Context) {
	kind := models.TransactionKind(c.Query("kind"))

	names, err := h.ledgerService.OpenCounterparties(c.Request.Context(), kind)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CounterpartiesResponse{Kind: kind, Counterparties: names})
}

func parseBoolQuery(c *gin.Context, key string) (bool, error) {
	v := c.Query(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid "+key)
	}
	return b, nil
}

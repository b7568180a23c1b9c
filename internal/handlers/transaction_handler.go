package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"siteledger/internal/audit"
	apperrors "siteledger/internal/errors"
	"siteledger/internal/ledger"
	"siteledger/internal/models"
)

// TransactionHandler handles the aggregated daily-transactions view and the
// mutations proxied to the back office.
type TransactionHandler struct {
	ledgerService ledger.Servicer
	auditTrail    *audit.Trail
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerService ledger.Servicer, auditTrail *audit.Trail) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService, auditTrail: auditTrail}
}

// ListTransactionsRequest represents the query parameters of the view endpoint
type ListTransactionsRequest struct {
	FromDate string `form:"from_date" binding:"required,ledger_date"`
	ToDate   string `form:"to_date" binding:"required,ledger_date"`
	Tab      string `form:"tab" binding:"omitempty,tab_filter"`
	Category string `form:"category"`
	Method   string `form:"method"`
	Search   string `form:"search"`
	Sort     string `form:"sort" binding:"omitempty,sort_option"`
}

// ViewResponse represents the aggregated view model in the response
type ViewResponse struct {
	FromDate string                     `json:"from_date"`
	ToDate   string                     `json:"to_date"`
	Records  []models.TransactionRecord `json:"records"`
	Totals   models.Totals              `json:"totals"`
	Cycle    uint64                     `json:"cycle"`
}

// ListDailyTransactions aggregates every source for the range and renders the view
// @Summary     Aggregated daily transactions
// @Description Fetch, normalize, merge, filter, and sort transactions from all sources for a date range
// @Tags        transactions
// @Produce     json
// @Param       from_date query string true  "Range start (YYYY-MM-DD)"
// @Param       to_date   query string true  "Range end (YYYY-MM-DD)"
// @Param       tab       query string false "Flow-type tab: all, in, out, transfer"
// @Param       category  query string false "Exact category filter"
// @Param       method    query string false "Exact method filter"
// @Param       search    query string false "Free-text search"
// @Param       sort      query string false "Sort: date_asc, date_desc, amount_asc, amount_desc"
// @Success     200 {object} ViewResponse "Aggregated view"
// @Failure     400 {object} ErrorResponse "Invalid range or filter"
// @Failure     502 {object} ErrorResponse "A source fetch failed"
// @Router      /daily/transactions [get]
func (h *TransactionHandler) ListDailyTransactions(c *gin.Context) {
	var req ListTransactionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	from, err := parseDateParam(req.FromDate, "from_date")
	if err != nil {
		respondWithError(c, err)
		return
	}
	to, err := parseDateParam(req.ToDate, "to_date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter := ledger.Filter{
		Tab:      req.Tab,
		Category: req.Category,
		Method:   req.Method,
		Search:   req.Search,
	}

	view, err := h.ledgerService.View(c.Request.Context(), from, to, filter, ledger.SortOption(req.Sort))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"view": view})
}

// GetSnapshot returns the latest completed view without refetching
// @Summary     Latest snapshot
// @Description Return the aggregation state machine position and the most recent completed view
// @Tags        transactions
// @Produce     json
// @Success     200 {object} map[string]interface{} "State and view"
// @Router      /daily/transactions/snapshot [get]
func (h *TransactionHandler) GetSnapshot(c *gin.Context) {
	state, view, lastErr := h.ledgerService.Latest()

	resp := gin.H{"state": state, "view": view}
	if lastErr != nil {
		var appErr *apperrors.AppError
		if errors.As(lastErr, &appErr) {
			resp["error"] = gin.H{"code": appErr.Code, "message": appErr.Message}
		}
	}
	c.JSON(http.StatusOK, resp)
}

// CreateTransactionRequest represents the request payload for a new ledger entry
type CreateTransactionRequest struct {
	Date             *string         `json:"date"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	FlowType         string          `json:"flow_type" binding:"required,flow_type"`
	CounterpartyFrom string          `json:"counterparty_from"`
	CounterpartyTo   string          `json:"counterparty_to"`
	Category         string          `json:"category" binding:"required"`
	Method           string          `json:"method" binding:"required"`
	Remark           string          `json:"remark" binding:"max=500"`
}

// CreateTransaction proxies a new direct ledger entry to the back office
// @Summary     Create a ledger entry
// @Description Validate and create a new direct ledger entry upstream
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Entry details"
// @Success     201 {object} models.TransactionRecord "Entry created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Upstream rejected the entry"
// @Router      /daily/transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	entryDate := time.Now()
	if req.Date != nil && *req.Date != "" {
		parsed, parseErr := parseFlexibleTime(*req.Date)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		entryDate = parsed
	}

	record, err := h.ledgerService.CreateEntry(c.Request.Context(), ledger.NewEntry{
		Date:             entryDate,
		Amount:           req.Amount,
		FlowType:         models.FlowType(req.FlowType),
		CounterpartyFrom: req.CounterpartyFrom,
		CounterpartyTo:   req.CounterpartyTo,
		Category:         req.Category,
		Method:           req.Method,
		Remark:           req.Remark,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditTrail.Record("CREATE_ENTRY", "transaction", record.ID, c.ClientIP(),
		map[string]any{"flow_type": req.FlowType, "amount": req.Amount, "category": req.Category})

	c.JSON(http.StatusCreated, gin.H{"transaction": record})
}

// CreateTransferRequest represents the request payload for a transfer entry
type CreateTransferRequest struct {
	Date        *string         `json:"date"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	FromAccount string          `json:"from_account" binding:"required"`
	ToAccount   string          `json:"to_account" binding:"required"`
	Remark      string          `json:"remark" binding:"max=500"`
}

// CreateTransfer proxies a transfer entry to the back office
// @Summary     Create a transfer
// @Description Validate and create a transfer between two accounts upstream
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransferRequest true "Transfer details"
// @Success     201 {object} models.TransactionRecord "Transfer created"
// @Failure     400 {object} ErrorResponse "Invalid input or identical accounts"
// @Failure     502 {object} ErrorResponse "Upstream rejected the transfer"
// @Router      /daily/transactions/transfer [post]
func (h *TransactionHandler) CreateTransfer(c *gin.Context) {
	var req CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transferDate := time.Now()
	if req.Date != nil && *req.Date != "" {
		parsed, parseErr := parseFlexibleTime(*req.Date)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		transferDate = parsed
	}

	record, err := h.ledgerService.CreateTransfer(c.Request.Context(), ledger.NewTransfer{
		Date:        transferDate,
		Amount:      req.Amount,
		FromAccount: req.FromAccount,
		ToAccount:   req.ToAccount,
		Remark:      req.Remark,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditTrail.Record("CREATE_TRANSFER", "transaction", record.ID, c.ClientIP(),
		map[string]any{"amount": req.Amount, "from": req.FromAccount, "to": req.ToAccount})

	c.JSON(http.StatusCreated, gin.H{"transaction": record})
}

// DeleteTransaction deletes a direct ledger entry
// @Summary     Delete a ledger entry
// @Description Delete a daily ledger entry; records from any other source are read-only
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} map[string]string "Entry deleted"
// @Failure     403 {object} ErrorResponse "Record is not deletable"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     502 {object} ErrorResponse "Upstream rejected the delete"
// @Router      /daily/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id := c.Param("id")

	if err := h.ledgerService.DeleteEntry(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditTrail.Record("DELETE_ENTRY", "transaction", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// ReportRequest represents the request payload for report generation
type ReportRequest struct {
	FromDate string `json:"from_date" binding:"required,ledger_date"`
	ToDate   string `json:"to_date" binding:"required,ledger_date"`
}

// GenerateReport relays a server-rendered HTML report
// @Summary     Generate a daily report
// @Description Ask the back office for a server-rendered HTML report and relay it
// @Tags        transactions
// @Accept      json
// @Produce     html
// @Param       request body ReportRequest true "Report range"
// @Success     200 {string} string "HTML report"
// @Failure     400 {object} ErrorResponse "Invalid range"
// @Failure     502 {object} ErrorResponse "Upstream rejected the request"
// @Router      /daily/report [post]
func (h *TransactionHandler) GenerateReport(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	from, err := parseDateParam(req.FromDate, "from_date")
	if err != nil {
		respondWithError(c, err)
		return
	}
	to, err := parseDateParam(req.ToDate, "to_date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	html, err := h.ledgerService.Report(c.Request.Context(), from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

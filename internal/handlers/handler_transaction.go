package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mcodevbytes/finance_dashboard_app/internal/apperrors"
	portssvc "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/services"
	"github.com/mcodevbytes/finance_dashboard_app/internal/dto"
	"github.com/mcodevbytes/finance_dashboard_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to client transactions
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	invoiceService     portssvc.InvoiceSvcFacade
}

// registerTransactionRoutes registers routes related to client transactions
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, invoiceService portssvc.InvoiceSvcFacade) {
	h := &transactionHandler{
		transactionService: transactionService,
		invoiceService:     invoiceService,
	}

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transaction_id", h.getTransaction)
		transactions.PUT("/:transaction_id", h.updateTransaction)
		transactions.DELETE("/:transaction_id", h.deleteTransaction)
		transactions.POST("/:transaction_id/mark-paid", h.markPaid)
		transactions.GET("/:transaction_id/invoice", h.getInvoice)
	}
}

// createTransaction godoc
// @Summary Create transaction
// @Description Creates a new client transaction with its line items.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction Info"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	txn := req.ToDomain()
	txn.UserID = userID

	created, err := h.transactionService.CreateTransaction(c.Request.Context(), txn)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Transaction already exists"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to create transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create transaction"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(created))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists all transactions of the authenticated user, newest first.
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.ListTransactionsResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}

// getTransaction godoc
// @Summary Get transaction
// @Description Returns one transaction with line items.
// @Tags transactions
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transaction_id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), userID, c.Param("transaction_id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to fetch transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update transaction
// @Description Updates an existing transaction; a provided line item set replaces the previous one.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Transaction Fields"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transaction_id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), userID, c.Param("transaction_id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to fetch transaction for update", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update transaction"})
		return
	}

	req.Apply(txn)
	if err := h.transactionService.UpdateTransaction(c.Request.Context(), *txn); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to update transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete transaction
// @Description Deletes a transaction and its line items.
// @Tags transactions
// @Param transaction_id path string true "Transaction ID"
// @Success 204
// @Failure 403 {object} ErrorResponse "Paid transactions are immutable"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transaction_id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, c.Param("transaction_id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
			return
		}
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Paid transactions cannot be deleted"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete transaction"})
		return
	}

	c.Status(http.StatusNoContent)
}

// markPaid godoc
// @Summary Mark transaction paid
// @Description Transitions the transaction to paid and records the income ledger entry.
// @Tags transactions
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already paid"
// @Security BearerAuth
// @Router /transactions/{transaction_id}/mark-paid [post]
func (h *transactionHandler) markPaid(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.transactionService.MarkPaid(c.Request.Context(), userID, c.Param("transaction_id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
			return
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Transaction is already paid"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to mark transaction paid", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to mark transaction paid"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction marked as paid"})
}

// getInvoice godoc
// @Summary Generate invoice PDF
// @Description Renders the transaction's invoice PDF and returns it as a data URI.
// @Tags transactions
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.InvoiceDocumentResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transaction_id}/invoice [get]
func (h *transactionHandler) getInvoice(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	dataURI, err := h.invoiceService.GenerateInvoice(c.Request.Context(), userID, c.Param("transaction_id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate invoice"})
		return
	}

	c.JSON(http.StatusOK, dto.InvoiceDocumentResponse{DataURI: dataURI})
}

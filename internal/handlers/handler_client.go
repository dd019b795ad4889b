package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mcodevbytes/finance_dashboard_app/internal/apperrors"
	portssvc "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/services"
	"github.com/mcodevbytes/finance_dashboard_app/internal/dto"
	"github.com/mcodevbytes/finance_dashboard_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// clientHandler handles HTTP requests related to clients
type clientHandler struct {
	clientService      portssvc.ClientSvcFacade
	transactionService portssvc.TransactionSvcFacade
	invoiceService     portssvc.InvoiceSvcFacade
}

// registerClientRoutes registers routes related to clients
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade, transactionService portssvc.TransactionSvcFacade, invoiceService portssvc.InvoiceSvcFacade) {
	h := &clientHandler{
		clientService:      clientService,
		transactionService: transactionService,
		invoiceService:     invoiceService,
	}

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/:client_id", h.getClient)
		clients.PUT("/:client_id", h.updateClient)
		clients.DELETE("/:client_id", h.deleteClient)
		clients.GET("/:client_id/transactions", h.listClientTransactions)
		clients.GET("/:client_id/weekly-invoice", h.getWeeklyInvoice)
	}
}

// createClient godoc
// @Summary Create client
// @Description Creates a new client record.
// @Tags clients
// @Accept json
// @Produce json
// @Param client body dto.CreateClientRequest true "Client Info"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	client := req.ToDomain()
	client.UserID = userID

	created, err := h.clientService.CreateClient(c.Request.Context(), client)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Client with this email already exists"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to create client", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create client"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToClientResponse(created))
}

// listClients godoc
// @Summary List clients
// @Description Lists all clients of the authenticated user.
// @Tags clients
// @Produce json
// @Success 200 {object} dto.ListClientsResponse
// @Security BearerAuth
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), userID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list clients", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list clients"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListClientsResponse(clients))
}

// getClient godoc
// @Summary Get client
// @Description Returns one client by ID.
// @Tags clients
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	client, err := h.clientService.GetClientByID(c.Request.Context(), userID, c.Param("client_id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Client not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to fetch client", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch client"})
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// updateClient godoc
// @Summary Update client
// @Description Updates an existing client record.
// @Tags clients
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param client body dto.UpdateClientRequest true "Client Fields"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id} [put]
func (h *clientHandler) updateClient(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	client, err := h.clientService.GetClientByID(c.Request.Context(), userID, c.Param("client_id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Client not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to fetch client for update", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update client"})
		return
	}

	req.Apply(client)
	if err := h.clientService.UpdateClient(c.Request.Context(), *client); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to update client", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update client"})
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// deleteClient godoc
// @Summary Delete client
// @Description Deletes a client record.
// @Tags clients
// @Param client_id path string true "Client ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id} [delete]
func (h *clientHandler) deleteClient(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), userID, c.Param("client_id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Client not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete client", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete client"})
		return
	}

	c.Status(http.StatusNoContent)
}

// listClientTransactions godoc
// @Summary List client transactions
// @Description Lists a client's transactions, optionally restricted to a date range.
// @Tags clients
// @Produce json
// @Param client_id path string true "Client ID"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end, exclusive (YYYY-MM-DD)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/transactions [get]
func (h *clientHandler) listClientTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	// Default to an effectively unbounded range
	from := time.Time{}
	to := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid from date. Use YYYY-MM-DD"})
			return
		}
		from = parsed
	}
	if toStr := c.Query("to"); toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid to date. Use YYYY-MM-DD"})
			return
		}
		to = parsed
	}

	txns, err := h.transactionService.ListClientTransactions(c.Request.Context(), userID, c.Param("client_id"), from, to)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list client transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}

// getWeeklyInvoice godoc
// @Summary Generate weekly aggregate invoice
// @Description Rolls up a client's transactions for the week starting at the given date into one invoice PDF, returned as a data URI.
// @Tags clients
// @Produce json
// @Param client_id path string true "Client ID"
// @Param start query string true "Week start date (YYYY-MM-DD)"
// @Success 200 {object} dto.InvoiceDocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/weekly-invoice [get]
func (h *clientHandler) getWeeklyInvoice(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	startStr := c.Query("start")
	if startStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "start query parameter required"})
		return
	}
	weekStart, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid start date. Use YYYY-MM-DD"})
		return
	}

	dataURI, err := h.invoiceService.GenerateWeeklyInvoice(c.Request.Context(), userID, c.Param("client_id"), weekStart)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Client not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate weekly invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate invoice"})
		return
	}

	c.JSON(http.StatusOK, dto.InvoiceDocumentResponse{DataURI: dataURI})
}

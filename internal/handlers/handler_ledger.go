package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/services"
	"github.com/mcodevbytes/finance_dashboard_app/internal/dto"
	"github.com/mcodevbytes/finance_dashboard_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests related to ledger reports
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// registerLedgerRoutes registers routes related to ledger reports
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &ledgerHandler{ledgerService: ledgerService}

	ledger := rg.Group("/ledger")
	{
		ledger.GET("/current-month", h.getCurrentMonth)
		ledger.GET("/yearly-summary", h.getYearlySummary)
	}
}

// getCurrentMonth godoc
// @Summary Current month ledger report
// @Description Returns the entries of the current calendar month with income/expense/profit totals.
// @Tags ledger
// @Produce json
// @Success 200 {object} dto.LedgerReportResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Security BearerAuth
// @Router /ledger/current-month [get]
func (h *ledgerHandler) getCurrentMonth(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	report, err := h.ledgerService.CurrentMonthSummary(c.Request.Context(), userID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to build current month ledger report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch ledger summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerReportResponse(report))
}

// getYearlySummary godoc
// @Summary Yearly ledger summary
// @Description Returns totals for each of the trailing five calendar years, oldest first. Years without activity appear with zero totals.
// @Tags ledger
// @Produce json
// @Success 200 {object} dto.YearlySummaryResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Security BearerAuth
// @Router /ledger/yearly-summary [get]
func (h *ledgerHandler) getYearlySummary(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	years, err := h.ledgerService.YearlySummary(c.Request.Context(), userID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to build yearly ledger summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch yearly summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToYearlySummaryResponse(years))
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mcodevbytes/finance_dashboard_app/internal/apperrors"
	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	portssvc "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/services"
	"github.com/mcodevbytes/finance_dashboard_app/internal/dto"
	"github.com/mcodevbytes/finance_dashboard_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// staffHandler handles HTTP requests related to staff and payroll
type staffHandler struct {
	staffService portssvc.StaffSvcFacade
}

// registerStaffRoutes registers routes related to staff and payroll
func registerStaffRoutes(rg *gin.RouterGroup, staffService portssvc.StaffSvcFacade) {
	h := &staffHandler{staffService: staffService}

	staff := rg.Group("/staff")
	{
		staff.POST("", h.createStaff)
		staff.GET("", h.listStaff)
		staff.GET("/:staff_id", h.getStaff)
		staff.PUT("/:staff_id", h.updateStaff)
		staff.DELETE("/:staff_id", h.deleteStaff)
		staff.POST("/:staff_id/payments", h.recordPayment)
		staff.GET("/:staff_id/payments", h.listPayments)
	}
}

// createStaff godoc
// @Summary Create staff member
// @Description Creates a new staff record.
// @Tags staff
// @Accept json
// @Produce json
// @Param staff body dto.CreateStaffRequest true "Staff Info"
// @Success 201 {object} dto.StaffResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff [post]
func (h *staffHandler) createStaff(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	staff := req.ToDomain()
	staff.UserID = userID

	created, err := h.staffService.CreateStaff(c.Request.Context(), staff)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to create staff", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create staff"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToStaffResponse(created))
}

// listStaff godoc
// @Summary List staff
// @Description Lists all staff members of the authenticated user.
// @Tags staff
// @Produce json
// @Success 200 {object} dto.ListStaffResponse
// @Security BearerAuth
// @Router /staff [get]
func (h *staffHandler) listStaff(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	staffList, err := h.staffService.ListStaff(c.Request.Context(), userID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list staff", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list staff"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListStaffResponse(staffList))
}

// getStaff godoc
// @Summary Get staff member
// @Description Returns one staff member by ID.
// @Tags staff
// @Produce json
// @Param staff_id path string true "Staff ID"
// @Success 200 {object} dto.StaffResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{staff_id} [get]
func (h *staffHandler) getStaff(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	staff, err := h.staffService.GetStaffByID(c.Request.Context(), userID, c.Param("staff_id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Staff not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to fetch staff", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch staff"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStaffResponse(staff))
}

// updateStaff godoc
// @Summary Update staff member
// @Description Updates an existing staff record.
// @Tags staff
// @Accept json
// @Produce json
// @Param staff_id path string true "Staff ID"
// @Param staff body dto.UpdateStaffRequest true "Staff Fields"
// @Success 200 {object} dto.StaffResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{staff_id} [put]
func (h *staffHandler) updateStaff(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	staff, err := h.staffService.GetStaffByID(c.Request.Context(), userID, c.Param("staff_id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Staff not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to fetch staff for update", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update staff"})
		return
	}

	req.Apply(staff)
	if err := h.staffService.UpdateStaff(c.Request.Context(), *staff); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to update staff", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update staff"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStaffResponse(staff))
}

// deleteStaff godoc
// @Summary Delete staff member
// @Description Deletes a staff record.
// @Tags staff
// @Param staff_id path string true "Staff ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{staff_id} [delete]
func (h *staffHandler) deleteStaff(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.staffService.DeleteStaff(c.Request.Context(), userID, c.Param("staff_id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Staff not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete staff", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete staff"})
		return
	}

	c.Status(http.StatusNoContent)
}

// recordPayment godoc
// @Summary Record staff payment
// @Description Records a payroll payment and the matching expense ledger entry.
// @Tags staff
// @Accept json
// @Produce json
// @Param staff_id path string true "Staff ID"
// @Param payment body dto.RecordStaffPaymentRequest true "Payment Info"
// @Success 201 {object} dto.StaffPaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{staff_id}/payments [post]
func (h *staffHandler) recordPayment(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.RecordStaffPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	paymentDate := req.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}

	payment := domain.StaffPayment{
		StaffID:     c.Param("staff_id"),
		UserID:      userID,
		Amount:      req.Amount,
		PaymentDate: paymentDate,
		Description: req.Description,
	}

	recorded, err := h.staffService.RecordPayment(c.Request.Context(), payment)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Staff not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to record staff payment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record payment"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToStaffPaymentResponse(recorded))
}

// listPayments godoc
// @Summary List staff payments
// @Description Lists payroll payments of one staff member, newest first.
// @Tags staff
// @Produce json
// @Param staff_id path string true "Staff ID"
// @Success 200 {object} dto.ListStaffPaymentsResponse
// @Security BearerAuth
// @Router /staff/{staff_id}/payments [get]
func (h *staffHandler) listPayments(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payments, err := h.staffService.ListPayments(c.Request.Context(), userID, c.Param("staff_id"))
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list staff payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListStaffPaymentsResponse(payments))
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/services"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/dto"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/middleware"
)

// recoveryHandler serves the payment recovery dashboard and reminders.
type recoveryHandler struct {
	recoveryService portssvc.RecoverySvcFacade
}

func newRecoveryHandler(rs portssvc.RecoverySvcFacade) *recoveryHandler {
	return &recoveryHandler{recoveryService: rs}
}

// registerRecoveryRoutes registers all recovery routes.
func registerRecoveryRoutes(rg *gin.RouterGroup, recoveryService portssvc.RecoverySvcFacade) {
	h := newRecoveryHandler(recoveryService)

	recovery := rg.Group("/recovery")
	{
		recovery.GET("/stats", h.stats)
		recovery.POST("/send-reminder", h.sendReminder)
	}
}

// stats godoc
// @Summary Outstanding and overdue statistics
// @Description Aggregates outstanding amounts across all non-cancelled invoices, bucketed by age
// @Tags recovery
// @Produce  json
// @Success 200 {object} dto.RecoveryStats
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recovery/stats [get]
func (h *recoveryHandler) stats(c *gin.Context) {
	stats, err := h.recoveryService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute recovery statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// sendReminder godoc
// @Summary Send a WhatsApp payment reminder
// @Description Sends a payment reminder for one invoice; a failed send returns success=false, not an error
// @Tags recovery
// @Accept  json
// @Produce  json
// @Param   reminder body dto.SendReminderRequest true "Reminder details"
// @Success 200 {object} dto.NotifyResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Security BearerAuth
// @Router /recovery/send-reminder [post]
func (h *recoveryHandler) sendReminder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SendReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.recoveryService.SendReminder(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to send payment reminder")
		return
	}

	logger.Info("Payment reminder dispatched",
		slog.String("invoice_id", req.InvoiceID),
		slog.Bool("success", result.Success))
	c.JSON(http.StatusOK, result)
}

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/services"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/dto"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/export"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/middleware"
)

// dayBookHandler handles HTTP requests for the manually maintained day book.
type dayBookHandler struct {
	dayBookService portssvc.DayBookSvcFacade
}

func newDayBookHandler(ds portssvc.DayBookSvcFacade) *dayBookHandler {
	return &dayBookHandler{dayBookService: ds}
}

// registerDayBookRoutes registers all day book routes.
func registerDayBookRoutes(rg *gin.RouterGroup, dayBookService portssvc.DayBookSvcFacade) {
	h := newDayBookHandler(dayBookService)

	daybook := rg.Group("/daybook")
	{
		daybook.POST("", h.createEntry)
		daybook.GET("", h.listEntries)
		daybook.PUT("/:id", h.updateEntry)
		daybook.DELETE("/:id", h.deleteEntry)
		daybook.POST("/recompute", h.recompute)
		daybook.GET("/export-excel", h.exportExcel)
		daybook.GET("/export-pdf", h.exportPDF)
	}
}

// createEntry godoc
// @Summary Create a day book entry
// @Description Inserts an entry and recomputes every running balance; the stored balances always reflect strict date order regardless of insertion order
// @Tags daybook
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateDayBookEntryRequest true "Entry details"
// @Success 201 {object} domain.DayBookEntry
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /daybook [post]
func (h *dayBookHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDayBookEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.dayBookService.CreateEntry(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create day book entry")
		return
	}

	logger.Info("Day book entry created", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, entry)
}

// listEntries godoc
// @Summary List day book entries
// @Description Lists all entries in date order with their running balances
// @Tags daybook
// @Produce  json
// @Success 200 {array} domain.DayBookEntry
// @Security BearerAuth
// @Router /daybook [get]
func (h *dayBookHandler) listEntries(c *gin.Context) {
	entries, err := h.dayBookService.ListEntries(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list day book entries")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// updateEntry godoc
// @Summary Update a day book entry
// @Description Updates an entry and recomputes every running balance
// @Tags daybook
// @Accept  json
// @Produce  json
// @Param   id path string true "Entry ID"
// @Param   entry body dto.CreateDayBookEntryRequest true "Entry details"
// @Success 200 {object} domain.DayBookEntry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /daybook/{id} [put]
func (h *dayBookHandler) updateEntry(c *gin.Context) {
	var req dto.CreateDayBookEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.dayBookService.UpdateEntry(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to update day book entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// deleteEntry godoc
// @Summary Delete a day book entry
// @Description Deletes an entry and recomputes every running balance
// @Tags daybook
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /daybook/{id} [delete]
func (h *dayBookHandler) deleteEntry(c *gin.Context) {
	if err := h.dayBookService.DeleteEntry(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete day book entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// recompute godoc
// @Summary Recompute all day book balances
// @Description Rewrites every entry's balance as the prefix sum of credit minus debit in date order; safe to run at any time
// @Tags daybook
// @Produce  json
// @Success 204 "No Content"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /daybook/recompute [post]
func (h *dayBookHandler) recompute(c *gin.Context) {
	if err := h.dayBookService.RecomputeAll(c.Request.Context()); err != nil {
		respondError(c, err, "Failed to recompute day book balances")
		return
	}
	c.Status(http.StatusNoContent)
}

// exportExcel godoc
// @Summary Export the day book as Excel
// @Tags daybook
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /daybook/export-excel [get]
func (h *dayBookHandler) exportExcel(c *gin.Context) {
	entries, err := h.dayBookService.ListEntries(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list day book entries")
		return
	}

	file, err := export.DayBookExcel(entries)
	if err != nil {
		respondError(c, err, "Failed to render day book spreadsheet")
		return
	}

	c.Header("Content-Type", contentTypeXLSX)
	c.Header("Content-Disposition", "attachment; filename=daybook-"+time.Now().Format("20060102")+".xlsx")
	if err := file.Write(c.Writer); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to stream day book spreadsheet", slog.String("error", err.Error()))
	}
}

// exportPDF godoc
// @Summary Export the day book as PDF
// @Tags daybook
// @Produce  application/pdf
// @Success 200 {file} file
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /daybook/export-pdf [get]
func (h *dayBookHandler) exportPDF(c *gin.Context) {
	entries, err := h.dayBookService.ListEntries(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list day book entries")
		return
	}

	data, err := export.DayBookPDF(entries)
	if err != nil {
		respondError(c, err, "Failed to render day book PDF")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=daybook-"+time.Now().Format("20060102")+".pdf")
	c.Data(http.StatusOK, contentTypePDF, data)
}

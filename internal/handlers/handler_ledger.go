package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	portssvc "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/services"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/dto"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/export"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/middleware"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// ledgerHandler serves the customer ledger read model as JSON and as
// Excel/PDF exports. All three formats come from the same service call,
// so the numbers can never diverge between them.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers the customer ledger report routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledger := rg.Group("/reports/customer-ledger/:id")
	{
		ledger.GET("", h.getLedger)
		ledger.GET("/export-excel", h.exportExcel)
		ledger.GET("/export-excel-grouped", h.exportExcelGrouped)
		ledger.GET("/export-pdf", h.exportPDF)
	}
}

// fetchLedger loads the ledger and handles the unknown-customer case. The
// engine itself returns an empty ledger for an unknown customer; the API
// surfaces that as a 404.
func (h *ledgerHandler) fetchLedger(c *gin.Context) (*domain.CustomerLedger, bool) {
	ledger, err := h.ledgerService.GetCustomerLedger(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to build customer ledger")
		return nil, false
	}
	if ledger.Customer == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Customer not found"})
		return nil, false
	}
	return ledger, true
}

// getLedger godoc
// @Summary Get a customer's ledger
// @Description Merges the customer's invoices, credit notes, received payments and journal entries into one chronologically balanced statement with an independently computed summary
// @Tags ledger
// @Produce  json
// @Param   id path string true "Customer ID"
// @Success 200 {object} dto.CustomerLedgerResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/customer-ledger/{id} [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	ledger, ok := h.fetchLedger(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerLedgerResponse(ledger))
}

// exportExcel godoc
// @Summary Export a customer's ledger as Excel
// @Description Renders the item-wise ledger statement as a flat spreadsheet
// @Tags ledger
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   id path string true "Customer ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/customer-ledger/{id}/export-excel [get]
func (h *ledgerHandler) exportExcel(c *gin.Context) {
	h.streamExcel(c, export.LedgerExcel)
}

// exportExcelGrouped godoc
// @Summary Export a customer's ledger as a grouped Excel statement
// @Description Renders the ledger spreadsheet with one header row per document and its items beneath it
// @Tags ledger
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   id path string true "Customer ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/customer-ledger/{id}/export-excel-grouped [get]
func (h *ledgerHandler) exportExcelGrouped(c *gin.Context) {
	h.streamExcel(c, export.LedgerExcelGrouped)
}

func (h *ledgerHandler) streamExcel(c *gin.Context, render func(*domain.CustomerLedger) (*excelize.File, error)) {
	ledger, ok := h.fetchLedger(c)
	if !ok {
		return
	}

	file, err := render(ledger)
	if err != nil {
		respondError(c, err, "Failed to render ledger spreadsheet")
		return
	}

	c.Header("Content-Type", contentTypeXLSX)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=ledger-%s.xlsx", c.Param("id")))
	if err := file.Write(c.Writer); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to stream ledger spreadsheet", slog.String("error", err.Error()))
	}
}

// exportPDF godoc
// @Summary Export a customer's ledger as PDF
// @Description Renders the item-wise ledger statement as a landscape PDF
// @Tags ledger
// @Produce  application/pdf
// @Param   id path string true "Customer ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/customer-ledger/{id}/export-pdf [get]
func (h *ledgerHandler) exportPDF(c *gin.Context) {
	ledger, ok := h.fetchLedger(c)
	if !ok {
		return
	}

	data, err := export.LedgerPDF(ledger)
	if err != nil {
		respondError(c, err, "Failed to render ledger PDF")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=ledger-%s.pdf", c.Param("id")))
	c.Data(http.StatusOK, contentTypePDF, data)
}

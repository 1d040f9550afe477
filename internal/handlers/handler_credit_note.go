package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/services"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/dto"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/middleware"
)

// creditNoteHandler handles HTTP requests related to credit notes.
type creditNoteHandler struct {
	creditNoteService portssvc.CreditNoteSvcFacade
}

func newCreditNoteHandler(cs portssvc.CreditNoteSvcFacade) *creditNoteHandler {
	return &creditNoteHandler{creditNoteService: cs}
}

// registerCreditNoteRoutes registers all credit note routes.
func registerCreditNoteRoutes(rg *gin.RouterGroup, creditNoteService portssvc.CreditNoteSvcFacade) {
	h := newCreditNoteHandler(creditNoteService)

	creditNotes := rg.Group("/credit-notes")
	{
		creditNotes.POST("", h.createCreditNote)
		creditNotes.GET("", h.listCreditNotes)
		creditNotes.GET("/:id", h.getCreditNote)
		creditNotes.DELETE("/:id", h.deleteCreditNote)
	}
}

// createCreditNote godoc
// @Summary Create a credit note
// @Description Creates a credit note against an existing invoice; totals and the note number are computed server-side
// @Tags credit-notes
// @Accept  json
// @Produce  json
// @Param   creditNote body dto.CreateCreditNoteRequest true "Credit note details"
// @Success 201 {object} domain.CreditNote
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Referenced invoice not found"
// @Security BearerAuth
// @Router /credit-notes [post]
func (h *creditNoteHandler) createCreditNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCreditNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	creditNote, err := h.creditNoteService.CreateCreditNote(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create credit note")
		return
	}

	logger.Info("Credit note created",
		slog.String("credit_note_id", creditNote.CreditNoteID),
		slog.String("invoice_id", creditNote.InvoiceID))
	c.JSON(http.StatusCreated, creditNote)
}

// listCreditNotes godoc
// @Summary List credit notes
// @Tags credit-notes
// @Produce  json
// @Success 200 {array} domain.CreditNote
// @Security BearerAuth
// @Router /credit-notes [get]
func (h *creditNoteHandler) listCreditNotes(c *gin.Context) {
	creditNotes, err := h.creditNoteService.ListCreditNotes(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list credit notes")
		return
	}
	c.JSON(http.StatusOK, creditNotes)
}

// getCreditNote godoc
// @Summary Get a credit note by ID
// @Tags credit-notes
// @Produce  json
// @Param   id path string true "Credit note ID"
// @Success 200 {object} domain.CreditNote
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /credit-notes/{id} [get]
func (h *creditNoteHandler) getCreditNote(c *gin.Context) {
	creditNote, err := h.creditNoteService.GetCreditNoteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve credit note")
		return
	}
	c.JSON(http.StatusOK, creditNote)
}

// deleteCreditNote godoc
// @Summary Delete a credit note
// @Tags credit-notes
// @Produce  json
// @Param   id path string true "Credit note ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /credit-notes/{id} [delete]
func (h *creditNoteHandler) deleteCreditNote(c *gin.Context) {
	if err := h.creditNoteService.DeleteCreditNote(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete credit note")
		return
	}
	c.Status(http.StatusNoContent)
}

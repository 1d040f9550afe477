package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/services"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/dto"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/middleware"
)

// journalEntryHandler handles HTTP requests for manual journal entries.
type journalEntryHandler struct {
	journalEntryService portssvc.JournalEntrySvcFacade
}

func newJournalEntryHandler(js portssvc.JournalEntrySvcFacade) *journalEntryHandler {
	return &journalEntryHandler{journalEntryService: js}
}

// registerJournalEntryRoutes registers all journal entry routes.
func registerJournalEntryRoutes(rg *gin.RouterGroup, journalEntryService portssvc.JournalEntrySvcFacade) {
	h := newJournalEntryHandler(journalEntryService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:id", h.getEntry)
		entries.DELETE("/:id", h.deleteEntry)
	}
}

// createEntry godoc
// @Summary Post a manual journal entry
// @Description Posts an opening balance, freight, discount or other adjustment against a customer
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Journal entry details"
// @Success 201 {object} domain.JournalEntry
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalEntryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.journalEntryService.CreateEntry(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create journal entry")
		return
	}

	logger.Info("Journal entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("entry_type", string(entry.EntryType)))
	c.JSON(http.StatusCreated, entry)
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists journal entries, optionally filtered by customer
// @Tags journal-entries
// @Produce  json
// @Param   customerID query string false "Customer ID"
// @Success 200 {array} domain.JournalEntry
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalEntryHandler) listEntries(c *gin.Context) {
	entries, err := h.journalEntryService.ListEntries(c.Request.Context(), c.Query("customerID"))
	if err != nil {
		respondError(c, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// getEntry godoc
// @Summary Get a journal entry by ID
// @Tags journal-entries
// @Produce  json
// @Param   id path string true "Journal entry ID"
// @Success 200 {object} domain.JournalEntry
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal-entries/{id} [get]
func (h *journalEntryHandler) getEntry(c *gin.Context) {
	entry, err := h.journalEntryService.GetEntryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// deleteEntry godoc
// @Summary Delete a journal entry
// @Tags journal-entries
// @Produce  json
// @Param   id path string true "Journal entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal-entries/{id} [delete]
func (h *journalEntryHandler) deleteEntry(c *gin.Context) {
	if err := h.journalEntryService.DeleteEntry(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete journal entry")
		return
	}
	c.Status(http.StatusNoContent)
}

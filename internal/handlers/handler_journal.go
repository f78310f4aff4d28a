package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	portssvc "github.com/harborops/charter_accounting_app/internal/core/ports/services"
	"github.com/harborops/charter_accounting_app/internal/dto"
	"github.com/harborops/charter_accounting_app/internal/middleware"
)

// journalHandler handles HTTP requests for the journal read path.
type journalHandler struct {
	journalSvc portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalSvc portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalSvc: journalSvc}
}

// getJournalEntry godoc
// @Summary Get a journal entry with its lines
// @Tags journals
// @Produce  json
// @Param   entryID path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Router /journals/{entryID} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	entry, err := h.journalSvc.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
			return
		}
		logger.Error("Failed to get journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal entry"})
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listJournalEntries godoc
// @Summary List a company's journal entries
// @Tags journals
// @Produce  json
// @Param   companyID query string true "Company ID"
// @Param   limit query int false "Page size (default 50)"
// @Param   offset query int false "Offset"
// @Success 200 {array} dto.JournalEntryResponse
// @Router /journals [get]
func (h *journalHandler) listJournalEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID := c.Query("companyID")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "companyID query parameter is required"})
		return
	}
	params := dto.ListEntriesParams{}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	entries, err := h.journalSvc.ListEntriesByCompany(c.Request.Context(), companyID, params)
	if err != nil {
		logger.Error("Failed to list journal entries", slog.String("error", err.Error()), slog.String("company_id", companyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list journal entries"})
		return
	}

	responses := make([]dto.JournalEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, dto.ToJournalEntryResponse(&entries[i]))
	}
	c.JSON(http.StatusOK, responses)
}

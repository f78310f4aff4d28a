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

// eventHandler handles HTTP requests for the accounting event pipeline.
type eventHandler struct {
	pipelineSvc portssvc.EventPipelineSvcFacade
	journalSvc  portssvc.JournalSvcFacade
}

// newEventHandler creates a new eventHandler.
func newEventHandler(pipelineSvc portssvc.EventPipelineSvcFacade, journalSvc portssvc.JournalSvcFacade) *eventHandler {
	return &eventHandler{pipelineSvc: pipelineSvc, journalSvc: journalSvc}
}

// createAndProcessEvent godoc
// @Summary Record an accounting event and generate its journal entries
// @Description Persists the event and runs validation, settings checks, journal generation and the balance check as one unit. Business failures come back with success=false.
// @Tags events
// @Accept  json
// @Produce  json
// @Param   event body dto.CreateEventRequest true "Accounting event"
// @Success 200 {object} dto.ProcessEventResult
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Pipeline failure"
// @Router /events [post]
func (h *eventHandler) createAndProcessEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	createReq := dto.CreateEventRequest{}
	if err := c.ShouldBindJSON(&createReq); err != nil {
		logger.Error("Failed to bind JSON for createAndProcessEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("Actor user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.pipelineSvc.CreateAndProcess(c.Request.Context(), createReq, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Event rejected before processing", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Event pipeline failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process event"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// getEvent godoc
// @Summary Get an accounting event
// @Tags events
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Router /events/{eventID} [get]
func (h *eventHandler) getEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	event, err := h.pipelineSvc.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		logger.Error("Failed to get event", slog.String("error", err.Error()), slog.String("event_id", eventID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve event"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// cancelEvent godoc
// @Summary Cancel a processed accounting event
// @Description Moves a processed event to CANCELLED. Does not reverse the journal entries the event produced.
// @Tags events
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 409 {object} map[string]string "Event not cancellable in its current status"
// @Router /events/{eventID}/cancel [post]
func (h *eventHandler) cancelEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	actorUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.pipelineSvc.CancelEvent(c.Request.Context(), eventID, actorUserID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		case errors.Is(err, apperrors.ErrInvalidTransition):
			logger.Warn("Rejected event cancellation", slog.String("error", err.Error()), slog.String("event_id", eventID))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to cancel event", slog.String("error", err.Error()), slog.String("event_id", eventID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel event"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"eventID": eventID, "status": "CANCELLED"})
}

// listEventJournals godoc
// @Summary List the journal entries an event produced
// @Tags events
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {array} dto.JournalEntryResponse
// @Router /events/{eventID}/journals [get]
func (h *eventHandler) listEventJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	entries, err := h.journalSvc.ListEntriesByEvent(c.Request.Context(), eventID)
	if err != nil {
		logger.Error("Failed to list event journals", slog.String("error", err.Error()), slog.String("event_id", eventID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list journal entries"})
		return
	}

	responses := make([]dto.JournalEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, dto.ToJournalEntryResponse(&entries[i]))
	}
	c.JSON(http.StatusOK, responses)
}

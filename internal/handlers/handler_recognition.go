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

// recognitionHandler handles HTTP requests for the revenue recognition
// state machine.
type recognitionHandler struct {
	recognitionSvc portssvc.RecognitionSvcFacade
}

// newRecognitionHandler creates a new recognitionHandler.
func newRecognitionHandler(recognitionSvc portssvc.RecognitionSvcFacade) *recognitionHandler {
	return &recognitionHandler{recognitionSvc: recognitionSvc}
}

// createRecognition godoc
// @Summary Register a receipt line for deferred-revenue tracking
// @Tags recognitions
// @Accept  json
// @Produce  json
// @Param   recognition body dto.CreateRecognitionRequest true "Recognition record"
// @Success 201 {object} dto.RecognitionResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /recognitions [post]
func (h *recognitionHandler) createRecognition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.CreateRecognitionRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createRecognition", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rec, err := h.recognitionSvc.CreateDeferredRecord(c.Request.Context(), req, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create recognition record", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recognition record"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecognitionResponse(rec))
}

// getRecognition godoc
// @Summary Get a revenue recognition record
// @Tags recognitions
// @Produce  json
// @Param   recognitionID path string true "Recognition ID"
// @Success 200 {object} dto.RecognitionResponse
// @Failure 404 {object} map[string]string "Recognition not found"
// @Router /recognitions/{recognitionID} [get]
func (h *recognitionHandler) getRecognition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recognitionID := c.Param("recognitionID")

	rec, err := h.recognitionSvc.GetRecognition(c.Request.Context(), recognitionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recognition record not found"})
			return
		}
		logger.Error("Failed to get recognition record", slog.String("error", err.Error()), slog.String("recognition_id", recognitionID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recognition record"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRecognitionResponse(rec))
}

// runSweep godoc
// @Summary Run the automatic recognition sweep
// @Description Recognizes every pending record whose service window has passed. Safe to run repeatedly.
// @Tags recognitions
// @Produce  json
// @Success 200 {object} dto.SweepResult
// @Router /recognitions/sweep [post]
func (h *recognitionHandler) runSweep(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.recognitionSvc.RunAutomaticSweep(c.Request.Context(), actorUserID)
	if err != nil {
		logger.Error("Recognition sweep failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Recognition sweep failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// recognizeManually godoc
// @Summary Recognize a pending record ahead of its service window
// @Tags recognitions
// @Accept  json
// @Produce  json
// @Param   recognitionID path string true "Recognition ID"
// @Param   body body dto.RecognizeManuallyRequest false "Optional recognition date"
// @Success 200 {object} dto.RecognitionResponse
// @Failure 409 {object} map[string]string "Record not recognizable in its current status"
// @Router /recognitions/{recognitionID}/recognize [post]
func (h *recognitionHandler) recognizeManually(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recognitionID := c.Param("recognitionID")

	req := dto.RecognizeManuallyRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rec, err := h.recognitionSvc.RecognizeManually(c.Request.Context(), recognitionID, req, actorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Recognition record not found"})
		case errors.Is(err, apperrors.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to recognize record", slog.String("error", err.Error()), slog.String("recognition_id", recognitionID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recognize record"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRecognitionResponse(rec))
}

// updateServiceDates godoc
// @Summary Supply or adjust the service window of a recognition record
// @Tags recognitions
// @Accept  json
// @Produce  json
// @Param   recognitionID path string true "Recognition ID"
// @Param   dates body dto.UpdateServiceDatesRequest true "Service window"
// @Success 200 {object} dto.RecognitionResponse
// @Failure 409 {object} map[string]string "Record is terminal"
// @Router /recognitions/{recognitionID}/dates [put]
func (h *recognitionHandler) updateServiceDates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recognitionID := c.Param("recognitionID")

	req := dto.UpdateServiceDatesRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rec, err := h.recognitionSvc.UpdateServiceDates(c.Request.Context(), recognitionID, req, actorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Recognition record not found"})
		case errors.Is(err, apperrors.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update service dates", slog.String("error", err.Error()), slog.String("recognition_id", recognitionID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service dates"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRecognitionResponse(rec))
}

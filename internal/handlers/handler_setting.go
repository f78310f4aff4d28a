package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	portssvc "github.com/harborops/charter_accounting_app/internal/core/ports/services"
	"github.com/harborops/charter_accounting_app/internal/dto"
	"github.com/harborops/charter_accounting_app/internal/middleware"
)

// settingHandler handles HTTP requests for journal event settings.
type settingHandler struct {
	settingSvc portssvc.SettingSvcFacade
}

// newSettingHandler creates a new settingHandler.
func newSettingHandler(settingSvc portssvc.SettingSvcFacade) *settingHandler {
	return &settingHandler{settingSvc: settingSvc}
}

// getSetting godoc
// @Summary Get the effective setting for a company and event type
// @Description Returns the configured row when one exists, otherwise the pipeline defaults with configured=false.
// @Tags settings
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   eventType path string true "Event type"
// @Success 200 {object} dto.SettingResponse
// @Router /companies/{companyID}/settings/{eventType} [get]
func (h *settingHandler) getSetting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	eventType := domain.EventType(c.Param("eventType"))

	if !domain.IsKnownEventType(eventType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown event type"})
		return
	}

	setting, configured, err := h.settingSvc.Resolve(c.Request.Context(), companyID, eventType)
	if err != nil {
		logger.Error("Failed to resolve setting", slog.String("error", err.Error()), slog.String("company_id", companyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve setting"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingResponse(setting, configured))
}

// listSettings godoc
// @Summary List all configured settings of a company
// @Tags settings
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Success 200 {array} dto.SettingResponse
// @Router /companies/{companyID}/settings [get]
func (h *settingHandler) listSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	settings, err := h.settingSvc.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		logger.Error("Failed to list settings", slog.String("error", err.Error()), slog.String("company_id", companyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list settings"})
		return
	}

	responses := make([]dto.SettingResponse, 0, len(settings))
	for _, s := range settings {
		responses = append(responses, dto.ToSettingResponse(s, true))
	}
	c.JSON(http.StatusOK, responses)
}

// upsertSetting godoc
// @Summary Create or replace the setting for a company and event type
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   setting body dto.UpsertSettingRequest true "Setting"
// @Success 200 {object} dto.SettingResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /companies/{companyID}/settings [put]
func (h *settingHandler) upsertSetting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	req := dto.UpsertSettingRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for upsertSetting", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	setting, err := h.settingSvc.Upsert(c.Request.Context(), companyID, req, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to upsert setting", slog.String("error", err.Error()), slog.String("company_id", companyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save setting"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingResponse(*setting, true))
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	portssvc "github.com/harborops/charter_accounting_app/internal/core/ports/services"
	"github.com/harborops/charter_accounting_app/internal/middleware"
)

// closingHandler handles HTTP requests for the year-end close.
type closingHandler struct {
	closingSvc portssvc.ClosingSvcFacade
}

// newClosingHandler creates a new closingHandler.
func newClosingHandler(closingSvc portssvc.ClosingSvcFacade) *closingHandler {
	return &closingHandler{closingSvc: closingSvc}
}

// preCloseCheck godoc
// @Summary Check whether a fiscal year looks ready to close
// @Description Advisory only: reports open periods and whether the year's posted entries balance in aggregate.
// @Tags closing
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   year path int true "Fiscal year"
// @Success 200 {object} dto.PreCloseCheckResult
// @Router /companies/{companyID}/close/{year}/check [get]
func (h *closingHandler) preCloseCheck(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fiscal year"})
		return
	}

	result, err := h.closingSvc.PreCloseCheck(c.Request.Context(), companyID, year)
	if err != nil {
		logger.Error("Pre-close check failed", slog.String("error", err.Error()), slog.String("company_id", companyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Pre-close check failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// closeFiscalYear godoc
// @Summary Close a fiscal year
// @Description Nets revenue and expense accounts to retained earnings as one posted entry and locks all twelve periods.
// @Tags closing
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   year path int true "Fiscal year"
// @Success 200 {object} dto.CloseYearResult
// @Failure 400 {object} map[string]string "Nothing to close"
// @Router /companies/{companyID}/close/{year} [post]
func (h *closingHandler) closeFiscalYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fiscal year"})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.closingSvc.CloseFiscalYear(c.Request.Context(), companyID, year, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Year-end close failed", slog.String("error", err.Error()), slog.String("company_id", companyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Year-end close failed"})
		return
	}

	logger.Info("Fiscal year closed", slog.String("company_id", companyID), slog.Int("fiscal_year", year))
	c.JSON(http.StatusOK, result)
}

package services

import (
	"context"

	"github.com/harborops/charter_accounting_app/internal/dto"
)

// ClosingSvcFacade exposes the year-end close batch.
type ClosingSvcFacade interface {
	// PreCloseCheck reports whether the fiscal year looks ready to close:
	// all twelve periods closed and the year's posted entries balanced in
	// aggregate. Advisory only.
	PreCloseCheck(ctx context.Context, companyID string, fiscalYear int) (*dto.PreCloseCheckResult, error)

	// CloseFiscalYear nets revenue and expense accounts to zero, posts the
	// balancing retained-earnings line as one posted entry, and locks every
	// monthly period of the year.
	CloseFiscalYear(ctx context.Context, companyID string, fiscalYear int, actorUserID string) (*dto.CloseYearResult, error)
}

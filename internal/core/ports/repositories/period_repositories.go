package repositories

import (
	"context"
	"time"

	"github.com/harborops/charter_accounting_app/internal/core/domain"
)

// PeriodReader defines read operations for accounting periods.
type PeriodReader interface {
	// ListPeriodsByYear retrieves the (up to twelve) period rows of one
	// company fiscal year.
	ListPeriodsByYear(ctx context.Context, companyID string, fiscalYear int) ([]domain.AccountingPeriod, error)
}

// PeriodWriter defines write operations for accounting periods.
type PeriodWriter interface {
	// LockYear marks every monthly period of the fiscal year closed,
	// creating missing rows as closed.
	LockYear(ctx context.Context, companyID string, fiscalYear int, updatedBy string, updatedAt time.Time) error
}

// PeriodRepositoryFacade combines the period repository interfaces.
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
}

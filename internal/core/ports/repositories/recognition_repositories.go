package repositories

import (
	"context"
	"time"

	"github.com/harborops/charter_accounting_app/internal/core/domain"
)

// RecognitionReader defines read operations for revenue recognition rows.
type RecognitionReader interface {
	// FindRecognitionByID retrieves one recognition row.
	FindRecognitionByID(ctx context.Context, recognitionID string) (*domain.RevenueRecognition, error)

	// ListPendingDue retrieves all PENDING rows whose service window ends on
	// or before asOf. Feeds the automatic sweep.
	ListPendingDue(ctx context.Context, asOf time.Time) ([]domain.RevenueRecognition, error)

	// ListRecognitionsByCompany retrieves rows for a company filtered by
	// status; an empty status means all.
	ListRecognitionsByCompany(ctx context.Context, companyID string, status domain.RecognitionStatus, limit, offset int) ([]domain.RevenueRecognition, error)
}

// RecognitionWriter defines write operations for revenue recognition rows.
type RecognitionWriter interface {
	// SaveRecognition persists a new recognition row.
	SaveRecognition(ctx context.Context, rec domain.RevenueRecognition) error

	// UpdateRecognition replaces the mutable fields of a recognition row
	// (status, dates, trigger, audit).
	UpdateRecognition(ctx context.Context, rec domain.RevenueRecognition) error
}

// RecognitionRepositoryFacade combines all recognition repository interfaces.
type RecognitionRepositoryFacade interface {
	RecognitionReader
	RecognitionWriter
}

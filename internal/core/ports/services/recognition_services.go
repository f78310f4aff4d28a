package services

import (
	"context"

	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/harborops/charter_accounting_app/internal/dto"
)

// RecognitionSvcFacade exposes the revenue recognition state machine.
type RecognitionSvcFacade interface {
	// CreateDeferredRecord registers a receipt line; the initial status is
	// computed from the service-window end date.
	CreateDeferredRecord(ctx context.Context, req dto.CreateRecognitionRequest, actorUserID string) (*domain.RevenueRecognition, error)

	// RunAutomaticSweep recognizes every pending row whose service window has
	// passed. Idempotent: a second run recognizes nothing further.
	RunAutomaticSweep(ctx context.Context, actorUserID string) (*dto.SweepResult, error)

	// RecognizeManually recognizes a pending row ahead of its service window.
	RecognizeManually(ctx context.Context, recognitionID string, req dto.RecognizeManuallyRequest, actorUserID string) (*domain.RevenueRecognition, error)

	// UpdateServiceDates supplies or adjusts the service window and recomputes
	// the status with the creation-time rule.
	UpdateServiceDates(ctx context.Context, recognitionID string, req dto.UpdateServiceDatesRequest, actorUserID string) (*domain.RevenueRecognition, error)

	// GetRecognition retrieves one row.
	GetRecognition(ctx context.Context, recognitionID string) (*domain.RevenueRecognition, error)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/harborops/charter_accounting_app/internal/core/events"
	portsrepo "github.com/harborops/charter_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/harborops/charter_accounting_app/internal/core/ports/services"
	"github.com/harborops/charter_accounting_app/internal/dto"
	"github.com/harborops/charter_accounting_app/internal/middleware"
)

// recognitionService drives the deferred-revenue state machine. It only moves
// rows between statuses; the receipt event handler consults the status (via
// AccountForReceiptLine) when choosing which account a revenue line credits,
// so no reclassification journal is booked here.
type recognitionService struct {
	recognitionRepo portsrepo.RecognitionRepositoryFacade
}

// NewRecognitionService creates the recognition service.
func NewRecognitionService(recognitionRepo portsrepo.RecognitionRepositoryFacade) portssvc.RecognitionSvcFacade {
	return &recognitionService{recognitionRepo: recognitionRepo}
}

var _ portssvc.RecognitionSvcFacade = (*recognitionService)(nil)

// AccountForReceiptLine maps a recognition status to the account role a
// receipt's revenue line should credit: realized revenue once the service is
// delivered, the shared deferred-revenue liability while it is not. VAT is
// never routed through here; tax liability is recognized immediately.
func AccountForReceiptLine(status domain.RecognitionStatus) domain.AccountRole {
	if status.IsTerminal() {
		return domain.RoleRevenue
	}
	return domain.RoleDeferredRevenue
}

// CreateDeferredRecord registers a receipt line for recognition tracking. The
// initial status follows the service window: an end date already past means
// the revenue was never deferred and the row lands recognized at creation.
func (s *recognitionService) CreateDeferredRecord(ctx context.Context, req dto.CreateRecognitionRequest, actorUserID string) (*domain.RevenueRecognition, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: recognition amount must be positive", apperrors.ErrValidation)
	}
	if req.CharterDateFrom != nil && req.CharterDateTo != nil && req.CharterDateTo.Before(*req.CharterDateFrom) {
		return nil, fmt.Errorf("%w: charter end date precedes start date", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	rec := domain.RevenueRecognition{
		RecognitionID:          uuid.NewString(),
		CompanyID:              req.CompanyID,
		ProjectID:              req.ProjectID,
		ReceiptID:              req.ReceiptID,
		ReceiptLineID:          req.ReceiptLineID,
		CharterDateFrom:        req.CharterDateFrom,
		CharterDateTo:          req.CharterDateTo,
		Status:                 domain.ComputeInitialRecognitionStatus(req.CharterDateTo, now),
		Amount:                 req.Amount,
		CurrencyCode:           req.CurrencyCode,
		DeferredRevenueAccount: req.DeferredRevenueAccount,
		RevenueAccount:         req.RevenueAccount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}
	if rec.DeferredRevenueAccount == "" {
		rec.DeferredRevenueAccount, _ = events.DefaultAccountForRole(domain.RoleDeferredRevenue)
	}
	if rec.RevenueAccount == "" {
		rec.RevenueAccount, _ = events.DefaultAccountForRole(domain.RoleRevenue)
	}
	if rec.Status == domain.Recognized {
		trigger := domain.TriggerAutomatic
		rec.RecognitionTrigger = &trigger
		rec.RecognitionDate = &now
	}

	if err := s.recognitionRepo.SaveRecognition(ctx, rec); err != nil {
		logger.Error("Failed to save recognition row", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save recognition row: %w", err)
	}

	logger.Info("Recognition row created",
		slog.String("recognition_id", rec.RecognitionID),
		slog.String("status", string(rec.Status)),
	)
	return &rec, nil
}

// RunAutomaticSweep recognizes every pending row whose service window has
// passed, dating the recognition at the window end. The status guard makes a
// second run a no-op.
func (s *recognitionService) RunAutomaticSweep(ctx context.Context, actorUserID string) (*dto.SweepResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	due, err := s.recognitionRepo.ListPendingDue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list due recognition rows: %w", err)
	}

	result := &dto.SweepResult{RecognizedIDs: make([]string, 0, len(due))}
	for i := range due {
		rec := due[i]
		if rec.Status != domain.RecognitionPending || rec.CharterDateTo == nil {
			continue
		}
		trigger := domain.TriggerAutomatic
		rec.Status = domain.Recognized
		rec.RecognitionTrigger = &trigger
		rec.RecognitionDate = rec.CharterDateTo
		rec.LastUpdatedAt = now
		rec.LastUpdatedBy = actorUserID

		if err := s.recognitionRepo.UpdateRecognition(ctx, rec); err != nil {
			// One bad row should not starve the rest of the sweep.
			logger.Error("Failed to recognize row during sweep",
				slog.String("recognition_id", rec.RecognitionID),
				slog.String("error", err.Error()),
			)
			continue
		}
		result.RecognizedCount++
		result.RecognizedIDs = append(result.RecognizedIDs, rec.RecognitionID)
	}

	logger.Info("Recognition sweep completed",
		slog.Int("due", len(due)),
		slog.Int("recognized", result.RecognizedCount),
	)
	return result, nil
}

// RecognizeManually recognizes a pending row ahead of its service window, an
// explicit human override of the date rule.
func (s *recognitionService) RecognizeManually(ctx context.Context, recognitionID string, req dto.RecognizeManuallyRequest, actorUserID string) (*domain.RevenueRecognition, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rec, err := s.recognitionRepo.FindRecognitionByID(ctx, recognitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find recognition row %s: %w", recognitionID, err)
	}
	if rec.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: recognition row %s is already recognized", apperrors.ErrInvalidTransition, recognitionID)
	}
	if rec.Status == domain.RecognitionNeedsReview {
		return nil, fmt.Errorf("%w: recognition row %s needs a service window before it can be recognized", apperrors.ErrInvalidTransition, recognitionID)
	}

	now := time.Now().UTC()
	recognitionDate := now
	if req.RecognitionDate != nil {
		recognitionDate = req.RecognitionDate.UTC()
	}
	trigger := domain.TriggerImmediate
	rec.Status = domain.ManualRecognized
	rec.RecognitionTrigger = &trigger
	rec.RecognitionDate = &recognitionDate
	rec.LastUpdatedAt = now
	rec.LastUpdatedBy = actorUserID

	if err := s.recognitionRepo.UpdateRecognition(ctx, *rec); err != nil {
		return nil, fmt.Errorf("failed to update recognition row %s: %w", recognitionID, err)
	}

	logger.Info("Recognition row recognized manually", slog.String("recognition_id", recognitionID))
	return rec, nil
}

// UpdateServiceDates supplies or adjusts the service window and recomputes the
// status with the creation-time rule. Terminal rows are immutable.
func (s *recognitionService) UpdateServiceDates(ctx context.Context, recognitionID string, req dto.UpdateServiceDatesRequest, actorUserID string) (*domain.RevenueRecognition, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rec, err := s.recognitionRepo.FindRecognitionByID(ctx, recognitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find recognition row %s: %w", recognitionID, err)
	}
	if rec.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: recognition row %s is already recognized", apperrors.ErrInvalidTransition, recognitionID)
	}
	if req.CharterDateFrom != nil && req.CharterDateTo.Before(*req.CharterDateFrom) {
		return nil, fmt.Errorf("%w: charter end date precedes start date", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	rec.CharterDateFrom = req.CharterDateFrom
	rec.CharterDateTo = req.CharterDateTo
	rec.Status = domain.ComputeInitialRecognitionStatus(req.CharterDateTo, now)
	rec.LastUpdatedAt = now
	rec.LastUpdatedBy = actorUserID
	if rec.Status == domain.Recognized {
		trigger := domain.TriggerAutomatic
		rec.RecognitionTrigger = &trigger
		rec.RecognitionDate = &now
	}

	if err := s.recognitionRepo.UpdateRecognition(ctx, *rec); err != nil {
		return nil, fmt.Errorf("failed to update recognition row %s: %w", recognitionID, err)
	}

	logger.Info("Recognition service window updated",
		slog.String("recognition_id", recognitionID),
		slog.String("status", string(rec.Status)),
	)
	return rec, nil
}

// GetRecognition retrieves one row.
func (s *recognitionService) GetRecognition(ctx context.Context, recognitionID string) (*domain.RevenueRecognition, error) {
	rec, err := s.recognitionRepo.FindRecognitionByID(ctx, recognitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find recognition row %s: %w", recognitionID, err)
	}
	return rec, nil
}

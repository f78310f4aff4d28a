package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	portsrepo "github.com/harborops/charter_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/harborops/charter_accounting_app/internal/core/ports/services"
	"github.com/harborops/charter_accounting_app/internal/dto"
	"github.com/harborops/charter_accounting_app/internal/middleware"
)

// settingService provides the sparse per (company, event type) configuration
// overlay consumed by the pipeline.
type settingService struct {
	settingRepo portsrepo.SettingRepositoryFacade
}

// NewSettingService creates a new SettingService.
func NewSettingService(settingRepo portsrepo.SettingRepositoryFacade) portssvc.SettingSvcFacade {
	return &settingService{settingRepo: settingRepo}
}

var _ portssvc.SettingSvcFacade = (*settingService)(nil)

// Resolve returns the effective setting and whether an explicit row exists.
// An unconfigured pair behaves as enabled, draft entries, no overrides.
func (s *settingService) Resolve(ctx context.Context, companyID string, eventType domain.EventType) (domain.JournalEventSetting, bool, error) {
	setting, err := s.settingRepo.FindSetting(ctx, companyID, eventType)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.DefaultJournalEventSetting(companyID, eventType), false, nil
		}
		return domain.JournalEventSetting{}, false, fmt.Errorf("failed to resolve setting for company %s: %w", companyID, err)
	}
	return *setting, true, nil
}

// Upsert creates or replaces the configuration row for the pair.
func (s *settingService) Upsert(ctx context.Context, companyID string, req dto.UpsertSettingRequest, actorUserID string) (*domain.JournalEventSetting, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	eventType := domain.EventType(req.EventType)
	if !domain.IsKnownEventType(eventType) {
		return nil, fmt.Errorf("%w: unknown event type %s", apperrors.ErrValidation, req.EventType)
	}

	isEnabled := true
	if req.IsEnabled != nil {
		isEnabled = *req.IsEnabled
	}

	now := time.Now().UTC()
	setting := domain.JournalEventSetting{
		CompanyID:            companyID,
		EventType:            eventType,
		IsEnabled:            isEnabled,
		AutoPost:             req.AutoPost,
		DefaultDebitAccount:  req.DefaultDebitAccount,
		DefaultCreditAccount: req.DefaultCreditAccount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.settingRepo.UpsertSetting(ctx, setting); err != nil {
		logger.Error("Failed to upsert journal event setting", slog.String("error", err.Error()), slog.String("company_id", companyID), slog.String("event_type", req.EventType))
		return nil, fmt.Errorf("failed to save setting: %w", err)
	}

	logger.Info("Journal event setting saved", slog.String("company_id", companyID), slog.String("event_type", req.EventType), slog.Bool("is_enabled", isEnabled))
	return &setting, nil
}

// ListByCompany retrieves all configured rows for a company.
func (s *settingService) ListByCompany(ctx context.Context, companyID string) ([]domain.JournalEventSetting, error) {
	settings, err := s.settingRepo.ListSettingsByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings for company %s: %w", companyID, err)
	}
	return settings, nil
}

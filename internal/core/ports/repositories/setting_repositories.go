package repositories

import (
	"context"

	"github.com/harborops/charter_accounting_app/internal/core/domain"
)

// SettingReader defines read operations for journal event settings.
type SettingReader interface {
	// FindSetting retrieves the setting row for (companyID, eventType).
	// Returns apperrors.ErrNotFound when the pair is not configured — callers
	// must not conflate absence with "configured but disabled".
	FindSetting(ctx context.Context, companyID string, eventType domain.EventType) (*domain.JournalEventSetting, error)

	// ListSettingsByCompany retrieves all configured settings for a company.
	ListSettingsByCompany(ctx context.Context, companyID string) ([]domain.JournalEventSetting, error)
}

// SettingWriter defines write operations for journal event settings.
type SettingWriter interface {
	// UpsertSetting creates or replaces the setting row for its key pair.
	UpsertSetting(ctx context.Context, setting domain.JournalEventSetting) error
}

// SettingRepositoryFacade combines all setting repository interfaces.
type SettingRepositoryFacade interface {
	SettingReader
	SettingWriter
}

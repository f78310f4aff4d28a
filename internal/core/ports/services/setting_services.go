package services

import (
	"context"

	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/harborops/charter_accounting_app/internal/dto"
)

// SettingSvcFacade exposes per (company, event type) configuration.
type SettingSvcFacade interface {
	// Resolve returns the effective setting for the pair and whether an
	// explicit row exists. Absence yields the enabled/draft defaults.
	Resolve(ctx context.Context, companyID string, eventType domain.EventType) (domain.JournalEventSetting, bool, error)

	// Upsert creates or replaces the configuration row.
	Upsert(ctx context.Context, companyID string, req dto.UpsertSettingRequest, actorUserID string) (*domain.JournalEventSetting, error)

	// ListByCompany retrieves all configured rows for a company.
	ListByCompany(ctx context.Context, companyID string) ([]domain.JournalEventSetting, error)
}

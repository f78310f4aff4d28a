package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	portsrepo "github.com/harborops/charter_accounting_app/internal/core/ports/repositories"
	"github.com/harborops/charter_accounting_app/internal/models"
	"github.com/harborops/charter_accounting_app/internal/utils/mapping"
)

// PgxSettingRepository persists the sparse per (company, event type)
// configuration rows.
type PgxSettingRepository struct {
	BaseRepository
}

// newPgxSettingRepository creates a new repository for journal event settings.
func newPgxSettingRepository(pool *pgxpool.Pool) portsrepo.SettingRepositoryFacade {
	return &PgxSettingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingRepositoryFacade = (*PgxSettingRepository)(nil)

const settingColumns = `company_id, event_type, is_enabled, auto_post, default_debit_account, default_credit_account, created_at, created_by, last_updated_at, last_updated_by`

// FindSetting retrieves the setting row for (companyID, eventType). Absence
// is ErrNotFound, never a synthesized default.
func (r *PgxSettingRepository) FindSetting(ctx context.Context, companyID string, eventType domain.EventType) (*domain.JournalEventSetting, error) {
	query := `SELECT ` + settingColumns + ` FROM journal_event_settings WHERE company_id = $1 AND event_type = $2;`
	m, err := scanSetting(r.q(ctx).QueryRow(ctx, query, companyID, string(eventType)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no setting for " + companyID + "/" + string(eventType))
		}
		return nil, apperrors.NewAppError(500, "failed to find setting for "+companyID, err)
	}
	setting := mapping.ToDomainSetting(m)
	return &setting, nil
}

// ListSettingsByCompany retrieves all configured settings for a company.
func (r *PgxSettingRepository) ListSettingsByCompany(ctx context.Context, companyID string) ([]domain.JournalEventSetting, error) {
	query := `SELECT ` + settingColumns + ` FROM journal_event_settings WHERE company_id = $1 ORDER BY event_type;`
	rows, err := r.q(ctx).Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list settings for company "+companyID, err)
	}
	defer rows.Close()

	var settings []domain.JournalEventSetting
	for rows.Next() {
		m, err := scanSetting(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan setting row", err)
		}
		settings = append(settings, mapping.ToDomainSetting(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate setting rows", err)
	}
	return settings, nil
}

// UpsertSetting creates or replaces the setting row for its key pair.
func (r *PgxSettingRepository) UpsertSetting(ctx context.Context, setting domain.JournalEventSetting) error {
	m := mapping.ToModelSetting(setting)
	query := `
		INSERT INTO journal_event_settings (` + settingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (company_id, event_type) DO UPDATE SET
			is_enabled = EXCLUDED.is_enabled,
			auto_post = EXCLUDED.auto_post,
			default_debit_account = EXCLUDED.default_debit_account,
			default_credit_account = EXCLUDED.default_credit_account,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.q(ctx).Exec(ctx, query,
		m.CompanyID,
		m.EventType,
		m.IsEnabled,
		m.AutoPost,
		m.DefaultDebitAccount,
		m.DefaultCreditAccount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert setting for "+m.CompanyID+"/"+m.EventType, err)
	}
	return nil
}

func scanSetting(row pgx.Row) (models.JournalEventSetting, error) {
	var m models.JournalEventSetting
	err := row.Scan(
		&m.CompanyID,
		&m.EventType,
		&m.IsEnabled,
		&m.AutoPost,
		&m.DefaultDebitAccount,
		&m.DefaultCreditAccount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

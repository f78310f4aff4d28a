package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	portsrepo "github.com/harborops/charter_accounting_app/internal/core/ports/repositories"
	"github.com/harborops/charter_accounting_app/internal/models"
	"github.com/harborops/charter_accounting_app/internal/utils/mapping"
)

// PgxPeriodRepository persists the fiscal calendar rows.
type PgxPeriodRepository struct {
	BaseRepository
}

// newPgxPeriodRepository creates a new repository for accounting periods.
func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepositoryFacade {
	return &PgxPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

const periodColumns = `company_id, fiscal_year, month, is_closed, created_at, created_by, last_updated_at, last_updated_by`

// ListPeriodsByYear retrieves the period rows of one company fiscal year.
func (r *PgxPeriodRepository) ListPeriodsByYear(ctx context.Context, companyID string, fiscalYear int) ([]domain.AccountingPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM accounting_periods WHERE company_id = $1 AND fiscal_year = $2 ORDER BY month;`
	rows, err := r.q(ctx).Query(ctx, query, companyID, fiscalYear)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list periods for company "+companyID, err)
	}
	defer rows.Close()

	var periods []domain.AccountingPeriod
	for rows.Next() {
		var m models.AccountingPeriod
		if err := rows.Scan(
			&m.CompanyID,
			&m.FiscalYear,
			&m.Month,
			&m.IsClosed,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan period row", err)
		}
		periods = append(periods, mapping.ToDomainPeriod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate period rows", err)
	}
	return periods, nil
}

// LockYear marks every monthly period of the fiscal year closed, creating
// missing rows as closed. One batch of twelve upserts.
func (r *PgxPeriodRepository) LockYear(ctx context.Context, companyID string, fiscalYear int, updatedBy string, updatedAt time.Time) error {
	query := `
		INSERT INTO accounting_periods (` + periodColumns + `)
		VALUES ($1, $2, $3, TRUE, $4, $5, $4, $5)
		ON CONFLICT (company_id, fiscal_year, month) DO UPDATE SET
			is_closed = TRUE,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	batch := &pgx.Batch{}
	for month := 1; month <= 12; month++ {
		batch.Queue(query, companyID, fiscalYear, month, updatedAt, updatedBy)
	}
	results := r.q(ctx).SendBatch(ctx, batch)
	defer results.Close()
	for month := 1; month <= 12; month++ {
		if _, err := results.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to lock periods for company "+companyID, err)
		}
	}
	return nil
}

package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	portsrepo "github.com/harborops/charter_accounting_app/internal/core/ports/repositories"
	"github.com/harborops/charter_accounting_app/internal/models"
	"github.com/harborops/charter_accounting_app/internal/utils/mapping"
)

// PgxRecognitionRepository persists revenue recognition rows.
type PgxRecognitionRepository struct {
	BaseRepository
}

// newPgxRecognitionRepository creates a new repository for recognition rows.
func newPgxRecognitionRepository(pool *pgxpool.Pool) portsrepo.RecognitionRepositoryFacade {
	return &PgxRecognitionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RecognitionRepositoryFacade = (*PgxRecognitionRepository)(nil)

const recognitionColumns = `recognition_id, company_id, project_id, receipt_id, receipt_line_id, charter_date_from, charter_date_to, status, amount, currency_code, deferred_revenue_account, revenue_account, recognition_date, recognition_trigger, created_at, created_by, last_updated_at, last_updated_by`

// SaveRecognition persists a new recognition row.
func (r *PgxRecognitionRepository) SaveRecognition(ctx context.Context, rec domain.RevenueRecognition) error {
	m := mapping.ToModelRecognition(rec)
	query := `
		INSERT INTO revenue_recognitions (` + recognitionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.q(ctx).Exec(ctx, query,
		m.RecognitionID,
		m.CompanyID,
		m.ProjectID,
		m.ReceiptID,
		m.ReceiptLineID,
		m.CharterDateFrom,
		m.CharterDateTo,
		m.Status,
		m.Amount,
		m.CurrencyCode,
		m.DeferredRevenueAccount,
		m.RevenueAccount,
		m.RecognitionDate,
		m.RecognitionTrigger,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert recognition "+m.RecognitionID, err)
	}
	return nil
}

// UpdateRecognition replaces the mutable fields of a recognition row.
func (r *PgxRecognitionRepository) UpdateRecognition(ctx context.Context, rec domain.RevenueRecognition) error {
	m := mapping.ToModelRecognition(rec)
	query := `
		UPDATE revenue_recognitions
		SET charter_date_from = $2,
			charter_date_to = $3,
			status = $4,
			recognition_date = $5,
			recognition_trigger = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE recognition_id = $1;
	`
	tag, err := r.q(ctx).Exec(ctx, query,
		m.RecognitionID,
		m.CharterDateFrom,
		m.CharterDateTo,
		m.Status,
		m.RecognitionDate,
		m.RecognitionTrigger,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update recognition "+m.RecognitionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("recognition " + m.RecognitionID + " not found")
	}
	return nil
}

// FindRecognitionByID retrieves one recognition row.
func (r *PgxRecognitionRepository) FindRecognitionByID(ctx context.Context, recognitionID string) (*domain.RevenueRecognition, error) {
	query := `SELECT ` + recognitionColumns + ` FROM revenue_recognitions WHERE recognition_id = $1;`
	m, err := scanRecognition(r.q(ctx).QueryRow(ctx, query, recognitionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("recognition " + recognitionID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find recognition "+recognitionID, err)
	}
	rec := mapping.ToDomainRecognition(m)
	return &rec, nil
}

// ListPendingDue retrieves all PENDING rows whose service window ends on or
// before asOf.
func (r *PgxRecognitionRepository) ListPendingDue(ctx context.Context, asOf time.Time) ([]domain.RevenueRecognition, error) {
	query := `
		SELECT ` + recognitionColumns + `
		FROM revenue_recognitions
		WHERE status = $1 AND charter_date_to IS NOT NULL AND charter_date_to <= $2
		ORDER BY charter_date_to;
	`
	rows, err := r.q(ctx).Query(ctx, query, string(domain.RecognitionPending), asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list due recognitions", err)
	}
	defer rows.Close()
	return collectRecognitions(rows)
}

// ListRecognitionsByCompany retrieves rows for a company filtered by status;
// an empty status means all.
func (r *PgxRecognitionRepository) ListRecognitionsByCompany(ctx context.Context, companyID string, status domain.RecognitionStatus, limit, offset int) ([]domain.RevenueRecognition, error) {
	query := `
		SELECT ` + recognitionColumns + `
		FROM revenue_recognitions
		WHERE company_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.q(ctx).Query(ctx, query, companyID, string(status), limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list recognitions for company "+companyID, err)
	}
	defer rows.Close()
	return collectRecognitions(rows)
}

func scanRecognition(row pgx.Row) (models.RevenueRecognition, error) {
	var m models.RevenueRecognition
	err := row.Scan(
		&m.RecognitionID,
		&m.CompanyID,
		&m.ProjectID,
		&m.ReceiptID,
		&m.ReceiptLineID,
		&m.CharterDateFrom,
		&m.CharterDateTo,
		&m.Status,
		&m.Amount,
		&m.CurrencyCode,
		&m.DeferredRevenueAccount,
		&m.RevenueAccount,
		&m.RecognitionDate,
		&m.RecognitionTrigger,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectRecognitions(rows pgx.Rows) ([]domain.RevenueRecognition, error) {
	var recs []domain.RevenueRecognition
	for rows.Next() {
		m, err := scanRecognition(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan recognition row", err)
		}
		recs = append(recs, mapping.ToDomainRecognition(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate recognition rows", err)
	}
	return recs, nil
}

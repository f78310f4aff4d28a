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

// PgxAccountRepository is the read-only chart-of-accounts lookup. The chart
// itself is maintained by the surrounding application.
type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new chart-of-accounts lookup.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_code, name, account_type, is_active, created_at, created_by, last_updated_at, last_updated_by`

// FindAccountByCode retrieves an account's name and type by code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, accountCode string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_code = $1;`
	m, err := scanAccount(r.q(ctx).QueryRow(ctx, query, accountCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("account " + accountCode + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find account "+accountCode, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// FindAccountsByCodes retrieves multiple accounts keyed by code. Codes with
// no matching row are simply absent from the map.
func (r *PgxAccountRepository) FindAccountsByCodes(ctx context.Context, accountCodes []string) (map[string]domain.Account, error) {
	accounts := make(map[string]domain.Account, len(accountCodes))
	if len(accountCodes) == 0 {
		return accounts, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_code = ANY($1);`
	rows, err := r.q(ctx).Query(ctx, query, accountCodes)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find accounts by codes", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts[m.AccountCode] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate account rows", err)
	}
	return accounts, nil
}

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountCode,
		&m.Name,
		&m.AccountType,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

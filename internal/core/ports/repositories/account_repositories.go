package repositories

import (
	"context"

	"github.com/harborops/charter_accounting_app/internal/core/domain"
)

// AccountReader is the chart-of-accounts lookup consumed by the pipeline and
// the year-end close. The chart itself is maintained elsewhere.
type AccountReader interface {
	// FindAccountByCode retrieves an account's name and type by code.
	FindAccountByCode(ctx context.Context, accountCode string) (*domain.Account, error)

	// FindAccountsByCodes retrieves multiple accounts keyed by code.
	FindAccountsByCodes(ctx context.Context, accountCodes []string) (map[string]domain.Account, error)
}

// AccountRepositoryFacade is the account lookup facade.
type AccountRepositoryFacade interface {
	AccountReader
}

package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/harborops/charter_accounting_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository against one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		EventRepo:       newPgxEventRepository(pool),
		JournalRepo:     newPgxJournalRepository(pool),
		SettingRepo:     newPgxSettingRepository(pool),
		RecognitionRepo: newPgxRecognitionRepository(pool),
		AccountRepo:     newPgxAccountRepository(pool),
		PeriodRepo:      newPgxPeriodRepository(pool),
		UnitOfWork:      NewPgxUnitOfWork(pool),
	}
}

package pgsql

import (
	portsrepo "github.com/finbook-app/finbook_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx-backed repositories over a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(pool),
		JournalRepo:   newPgxJournalRepository(pool),
		LedgerRepo:    newPgxLedgerRepository(pool),
		ReportingRepo: newPgxReportingRepository(pool),
	}
}

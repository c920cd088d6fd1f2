// Package repositories defines the persistence ports the core services
// depend on. Context is included on every method for cancellation and
// timeouts; all data is tenant-scoped.
package repositories

import (
	"context"
	"time"

	"github.com/finbook-app/finbook_backend/internal/core/domain"
)

// AccountRepositoryFacade defines the persistence operations for the chart of accounts.
type AccountRepositoryFacade interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error)
	FindAccountByCode(ctx context.Context, tenantID, code string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, tenantID string, activeOnly bool) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeactivateAccount(ctx context.Context, tenantID, accountID, userID string, now time.Time) error
	// CountLedgerReferences counts journal entry lines plus legacy
	// transactions that reference the account. Deletion is only legal when
	// this is zero.
	CountLedgerReferences(ctx context.Context, tenantID, accountID string) (int64, error)
	// DeleteAccount hard-deletes an unreferenced account. The reference
	// check and the delete run in one transaction; a referenced account
	// fails with apperrors.ErrReferencedByLedger.
	DeleteAccount(ctx context.Context, tenantID, accountID string) error
}

// JournalRepositoryFacade defines the persistence operations for journal
// entries and their lines. Saving an entry persists its lines atomically.
type JournalRepositoryFacade interface {
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine) error
	FindEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error)
	ListEntries(ctx context.Context, tenantID string, limit, offset int) ([]domain.JournalEntry, error)
	// MarkEntryPosted flips a draft entry to posted. The update is
	// conditional on the current status being DRAFT.
	MarkEntryPosted(ctx context.Context, tenantID, entryID, userID string, now time.Time) error
	// VoidEntry flips a posted entry to voided, recording the timestamp and
	// reason. The update is conditional on the current status being POSTED;
	// zero rows affected means the entry was voided concurrently.
	VoidEntry(ctx context.Context, tenantID, entryID, reason, userID string, now time.Time) error
	// VoidEntriesBySource voids every posted entry originated by the given
	// source record in a single statement, skipping entries that are already
	// voided. It returns the number of entries actually voided.
	VoidEntriesBySource(ctx context.Context, tenantID, source, sourceID, reason, userID string, now time.Time) (int64, error)
}

// LedgerRepositoryFacade is the read model the balance calculator folds over.
// Both queries merge posted journal entry lines with legacy transaction
// halves into the normalized domain.LedgerLine representation.
type LedgerRepositoryFacade interface {
	// GetAccountRawBalance returns the raw debit-minus-credit figure for an
	// account from activity dated on or before asOf.
	GetAccountRawBalance(ctx context.Context, tenantID, accountID string, asOf time.Time) (domain.AccountBalanceData, error)
	// ListAccountActivity returns the contributing lines within
	// [start, end] inclusive, ordered by date ascending then entry id
	// ascending.
	ListAccountActivity(ctx context.Context, tenantID, accountID string, start, end time.Time) ([]domain.LedgerLine, error)
}

// ReportingRepositoryFacade serves the aggregated reads behind the report
// generator. Multi-query reads run at a repeatable-read snapshot so a
// concurrent post cannot split a report across two ledger states.
type ReportingRepositoryFacade interface {
	// GetAccountBalancesAsOf returns one row per account (including
	// zero-activity accounts) with raw debit and credit totals as of the
	// given date.
	GetAccountBalancesAsOf(ctx context.Context, tenantID string, asOf time.Time) ([]domain.AccountBalanceData, error)
	// GetGeneralLedgerData reads opening totals, in-range activity and
	// closing totals at one snapshot. accountID narrows the report to a
	// single account when non-empty.
	GetGeneralLedgerData(ctx context.Context, tenantID, accountID string, start, end time.Time) (*domain.GeneralLedgerData, error)
}

// RepositoryProvider bundles the concrete repositories for wiring.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryFacade
	JournalRepo   JournalRepositoryFacade
	LedgerRepo    LedgerRepositoryFacade
	ReportingRepo ReportingRepositoryFacade
}

package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finbook-app/finbook_backend/internal/apperrors"
	"github.com/finbook-app/finbook_backend/internal/core/domain"
	portsrepo "github.com/finbook-app/finbook_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// PgxAccountRepository persists the chart of accounts.
type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, tenant_id, code, name, account_type, description, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.AccountID,
		&a.TenantID,
		&a.Code,
		&a.Name,
		&a.AccountType,
		&a.Description,
		&a.IsActive,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	return a, err
}

// SaveAccount inserts a new account. A (tenant_id, code) unique index maps
// concurrent duplicate codes onto apperrors.ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		account.AccountID,
		account.TenantID,
		account.Code,
		account.Name,
		account.AccountType,
		account.Description,
		account.IsActive,
		account.CreatedAt,
		account.CreatedBy,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, account.Code)
		}
		return apperrors.NewAppError(500, "failed to save account "+account.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account scoped to the tenant.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE tenant_id = $1 AND account_id = $2;`
	account, err := scanAccount(r.Pool.QueryRow(ctx, query, tenantID, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by ID "+accountID, err)
	}
	return &account, nil
}

// FindAccountByCode retrieves an account by its tenant-unique code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, tenantID, code string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE tenant_id = $1 AND code = $2;`
	account, err := scanAccount(r.Pool.QueryRow(ctx, query, tenantID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by code "+code, err)
	}
	return &account, nil
}

// FindAccountsByIDs retrieves a batch of accounts keyed by id. Missing ids
// are simply absent from the map; callers decide whether that is an error.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE tenant_id = $1 AND account_id = ANY($2);`
	rows, err := r.Pool.Query(ctx, query, tenantID, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts by IDs", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts[account.AccountID] = account
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return accounts, nil
}

// ListAccounts lists the tenant's accounts ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, tenantID string, activeOnly bool) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE tenant_id = $1`
	if activeOnly {
		query += ` AND is_active`
	}
	query += ` ORDER BY code;`

	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list accounts for tenant "+tenantID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return accounts, nil
}

// UpdateAccount updates the mutable account fields.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $3,
		    account_type = $4,
		    description = $5,
		    last_updated_at = $6,
		    last_updated_by = $7
		WHERE tenant_id = $1 AND account_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		account.TenantID,
		account.AccountID,
		account.Name,
		account.AccountType,
		account.Description,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update account "+account.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account " + account.AccountID + " not found for update")
	}
	return nil
}

// DeactivateAccount flips the account inactive without touching its history.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, tenantID, accountID, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = FALSE,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE tenant_id = $1 AND account_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, tenantID, accountID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate account "+accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account " + accountID + " not found for deactivation")
	}
	return nil
}

const countReferencesQuery = `
	SELECT
		(SELECT COUNT(*)
		 FROM journal_entry_lines l
		 JOIN journal_entries e ON l.entry_id = e.entry_id
		 WHERE e.tenant_id = $1 AND l.account_id = $2)
		+
		(SELECT COUNT(*)
		 FROM legacy_transactions t
		 WHERE t.tenant_id = $1 AND (t.debit_account_id = $2 OR t.credit_account_id = $2));
`

// CountLedgerReferences counts entry lines and legacy transactions that
// reference the account. Lines on voided entries still count: voiding keeps
// the audit trail, so the account stays undeletable.
func (r *PgxAccountRepository) CountLedgerReferences(ctx context.Context, tenantID, accountID string) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, countReferencesQuery, tenantID, accountID).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count ledger references for account "+accountID, err)
	}
	return count, nil
}

// DeleteAccount removes an unreferenced account. The reference count and the
// delete run in one transaction; a concurrent post still hits the foreign keys.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, tenantID, accountID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var count int64
	if err := tx.QueryRow(ctx, countReferencesQuery, tenantID, accountID).Scan(&count); err != nil {
		return apperrors.NewAppError(500, "failed to count ledger references for account "+accountID, err)
	}
	if count > 0 {
		return fmt.Errorf("%w: account %s has %d referencing ledger rows", apperrors.ErrReferencedByLedger, accountID, count)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM accounts WHERE tenant_id = $1 AND account_id = $2;`, tenantID, accountID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return fmt.Errorf("%w: account %s", apperrors.ErrReferencedByLedger, accountID)
		}
		return apperrors.NewAppError(500, "failed to delete account "+accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account " + accountID + " not found for deletion")
	}

	return r.Commit(ctx, tx)
}

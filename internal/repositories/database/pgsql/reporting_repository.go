package pgsql

import (
	"context"
	"time"

	"github.com/finbook-app/finbook_backend/internal/apperrors"
	"github.com/finbook-app/finbook_backend/internal/core/domain"
	portsrepo "github.com/finbook-app/finbook_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// tenantMovements is the tenant-wide union of posted entry lines and legacy
// halves, keyed by account: $1 tenant.
const tenantMovements = `
	SELECT l.account_id, l.line_id, e.entry_id, e.entry_date AS movement_date, l.direction, l.amount,
	       e.description, 'JOURNAL_ENTRY' AS source_kind
	FROM journal_entry_lines l
	JOIN journal_entries e ON l.entry_id = e.entry_id
	WHERE e.tenant_id = $1 AND e.status = 'POSTED'
	UNION ALL
	SELECT t.debit_account_id, t.transaction_id, t.transaction_id, t.transaction_date, 'DEBIT', t.amount,
	       t.description, 'LEGACY_TRANSACTION'
	FROM legacy_transactions t
	WHERE t.tenant_id = $1
	UNION ALL
	SELECT t.credit_account_id, t.transaction_id, t.transaction_id, t.transaction_date, 'CREDIT', t.amount,
	       t.description, 'LEGACY_TRANSACTION'
	FROM legacy_transactions t
	WHERE t.tenant_id = $1
`

const accountBalancesQuery = `
	SELECT a.account_id, a.code, a.name, a.account_type, a.is_active,
		COALESCE(SUM(CASE WHEN m.direction = 'DEBIT' THEN m.amount ELSE 0 END), 0) AS total_debit,
		COALESCE(SUM(CASE WHEN m.direction = 'CREDIT' THEN m.amount ELSE 0 END), 0) AS total_credit
	FROM accounts a
	LEFT JOIN (` + tenantMovements + `) m
		ON m.account_id = a.account_id AND m.movement_date <= $2
	WHERE a.tenant_id = $1
	GROUP BY a.account_id, a.code, a.name, a.account_type, a.is_active
	ORDER BY a.code;
`

// GetAccountBalancesAsOf returns one row per account in the tenant's chart,
// with debit and credit totals up to asOf. Accounts with no movements come
// back with zero totals, not missing rows.
func (r *PgxReportingRepository) GetAccountBalancesAsOf(ctx context.Context, tenantID string, asOf time.Time) ([]domain.AccountBalanceData, error) {
	rows, err := r.Pool.Query(ctx, accountBalancesQuery, tenantID, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account balances", err)
	}
	defer rows.Close()

	balances := []domain.AccountBalanceData{}
	for rows.Next() {
		var b domain.AccountBalanceData
		err := rows.Scan(
			&b.AccountID,
			&b.AccountCode,
			&b.AccountName,
			&b.AccountType,
			&b.IsActive,
			&b.TotalDebit,
			&b.TotalCredit,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account balance row", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account balance rows", err)
	}
	return balances, nil
}

const accountAggregateQuery = `
	SELECT m.account_id,
		COALESCE(SUM(CASE WHEN m.direction = 'DEBIT' THEN m.amount ELSE -m.amount END), 0) AS raw_balance
	FROM (` + tenantMovements + `) m
	WHERE m.movement_date <= $2
	GROUP BY m.account_id;
`

const accountActivityQuery = `
	SELECT m.account_id, m.line_id, m.entry_id, m.movement_date, m.direction, m.amount, m.description, m.source_kind
	FROM (` + tenantMovements + `) m
	WHERE m.movement_date >= $2 AND m.movement_date <= $3
	ORDER BY m.account_id, m.movement_date, m.entry_id, m.line_id;
`

// GetGeneralLedgerData gathers everything the general ledger report needs in
// one repeatable-read snapshot: the account list, opening raw balances as of
// the day before start, the activity lines in range, and closing raw balances
// as of end. accountID narrows the report to a single account when non-empty.
func (r *PgxReportingRepository) GetGeneralLedgerData(ctx context.Context, tenantID, accountID string, start, end time.Time) (*domain.GeneralLedgerData, error) {
	data := &domain.GeneralLedgerData{
		Opening: map[string]decimal.Decimal{},
		Closing: map[string]decimal.Decimal{},
		Lines:   map[string][]domain.LedgerLine{},
	}

	tx, err := r.BeginSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	accounts, err := r.listAccountsInTx(ctx, tx, tenantID, accountID)
	if err != nil {
		return nil, err
	}
	data.Accounts = accounts

	data.Opening, err = r.rawBalancesInTx(ctx, tx, tenantID, start.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}
	data.Closing, err = r.rawBalancesInTx(ctx, tx, tenantID, end)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, accountActivityQuery, tenantID, start, end)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger activity", err)
	}
	defer rows.Close()
	for rows.Next() {
		var l domain.LedgerLine
		err := rows.Scan(
			&l.AccountID,
			&l.LineID,
			&l.EntryID,
			&l.Date,
			&l.Direction,
			&l.Amount,
			&l.Description,
			&l.SourceKind,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger activity row", err)
		}
		data.Lines[l.AccountID] = append(data.Lines[l.AccountID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger activity rows", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return data, nil
}

func (r *PgxReportingRepository) listAccountsInTx(ctx context.Context, tx pgx.Tx, tenantID, accountID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE tenant_id = $1 ORDER BY code;`
	args := []any{tenantID}
	if accountID != "" {
		query = `SELECT ` + accountColumns + ` FROM accounts WHERE tenant_id = $1 AND account_id = $2 ORDER BY code;`
		args = append(args, accountID)
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts for ledger", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acct, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acct)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	if accountID != "" && len(accounts) == 0 {
		return nil, apperrors.NewNotFoundError("account not found: " + accountID)
	}
	return accounts, nil
}

func (r *PgxReportingRepository) rawBalancesInTx(ctx context.Context, tx pgx.Tx, tenantID string, asOf time.Time) (map[string]decimal.Decimal, error) {
	rows, err := tx.Query(ctx, accountAggregateQuery, tenantID, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query raw balances", err)
	}
	defer rows.Close()

	balances := map[string]decimal.Decimal{}
	for rows.Next() {
		var acctID string
		var raw decimal.Decimal
		if err := rows.Scan(&acctID, &raw); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan raw balance row", err)
		}
		balances[acctID] = raw
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating raw balance rows", err)
	}
	return balances, nil
}

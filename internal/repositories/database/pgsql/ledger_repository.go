package pgsql

import (
	"context"
	"time"

	"github.com/finbook-app/finbook_backend/internal/apperrors"
	"github.com/finbook-app/finbook_backend/internal/core/domain"
	portsrepo "github.com/finbook-app/finbook_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLedgerRepository is the read model behind the balance calculator. All
// of its queries merge posted journal entry lines with legacy transaction
// halves into one line-oriented shape, so the two models fold identically.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// accountMovements is the per-account union of posted entry lines and legacy
// halves: $1 tenant, $2 account. Each legacy transaction contributes its
// debit half and its credit half as separate rows.
const accountMovements = `
	SELECT l.line_id, e.entry_id, e.entry_date AS movement_date, l.direction, l.amount,
	       e.description, 'JOURNAL_ENTRY' AS source_kind
	FROM journal_entry_lines l
	JOIN journal_entries e ON l.entry_id = e.entry_id
	WHERE e.tenant_id = $1 AND l.account_id = $2 AND e.status = 'POSTED'
	UNION ALL
	SELECT t.transaction_id, t.transaction_id, t.transaction_date, 'DEBIT', t.amount,
	       t.description, 'LEGACY_TRANSACTION'
	FROM legacy_transactions t
	WHERE t.tenant_id = $1 AND t.debit_account_id = $2
	UNION ALL
	SELECT t.transaction_id, t.transaction_id, t.transaction_date, 'CREDIT', t.amount,
	       t.description, 'LEGACY_TRANSACTION'
	FROM legacy_transactions t
	WHERE t.tenant_id = $1 AND t.credit_account_id = $2
`

// GetAccountRawBalance aggregates debit and credit totals from movements
// dated on or before asOf. Summation happens in numeric, not floating point.
func (r *PgxLedgerRepository) GetAccountRawBalance(ctx context.Context, tenantID, accountID string, asOf time.Time) (domain.AccountBalanceData, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN m.direction = 'DEBIT' THEN m.amount ELSE 0 END), 0) AS total_debit,
			COALESCE(SUM(CASE WHEN m.direction = 'CREDIT' THEN m.amount ELSE 0 END), 0) AS total_credit
		FROM (` + accountMovements + `) m
		WHERE m.movement_date <= $3;
	`
	data := domain.AccountBalanceData{AccountID: accountID}
	err := r.Pool.QueryRow(ctx, query, tenantID, accountID, asOf).Scan(&data.TotalDebit, &data.TotalCredit)
	if err != nil {
		return data, apperrors.NewAppError(500, "failed to aggregate balance for account "+accountID, err)
	}
	return data, nil
}

// ListAccountActivity returns the movements within [start, end] inclusive,
// ordered by date then entry id then line id for a stable, deterministic feed
// into the general ledger.
func (r *PgxLedgerRepository) ListAccountActivity(ctx context.Context, tenantID, accountID string, start, end time.Time) ([]domain.LedgerLine, error) {
	query := `
		SELECT m.line_id, m.entry_id, m.movement_date, m.direction, m.amount, m.description, m.source_kind
		FROM (` + accountMovements + `) m
		WHERE m.movement_date >= $3 AND m.movement_date <= $4
		ORDER BY m.movement_date, m.entry_id, m.line_id;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, accountID, start, end)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query activity for account "+accountID, err)
	}
	defer rows.Close()

	return scanLedgerLines(rows, accountID)
}

func scanLedgerLines(rows pgx.Rows, accountID string) ([]domain.LedgerLine, error) {
	lines := []domain.LedgerLine{}
	for rows.Next() {
		var l domain.LedgerLine
		l.AccountID = accountID
		err := rows.Scan(
			&l.LineID,
			&l.EntryID,
			&l.Date,
			&l.Direction,
			&l.Amount,
			&l.Description,
			&l.SourceKind,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger line row", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger line rows", err)
	}
	return lines, nil
}

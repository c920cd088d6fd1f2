package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/finbook-app/finbook_backend/internal/apperrors"
	"github.com/finbook-app/finbook_backend/internal/core/domain"
	portsrepo "github.com/finbook-app/finbook_backend/internal/core/ports/repositories"
	"github.com/finbook-app/finbook_backend/internal/utils/accounting"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxJournalRepository persists journal entries and their lines.
type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveEntry writes the entry row and all of its lines in one database
// transaction: either the whole balanced entry lands or nothing does.
// A POSTED entry that fails the line invariants never reaches the tables.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine) error {
	if entry.Status == domain.Posted {
		if err := accounting.ValidateEntryBalance(lines); err != nil {
			return fmt.Errorf("%w: entry %s: %v", apperrors.ErrUnbalanced, entry.EntryID, err)
		}
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	entryQuery := `
		INSERT INTO journal_entries (
			entry_id, tenant_id, entry_date, description, status, source, source_id,
			voided_at, void_reason,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, entryQuery,
		entry.EntryID,
		entry.TenantID,
		entry.EntryDate,
		entry.Description,
		entry.Status,
		entry.Source,
		entry.SourceID,
		entry.VoidedAt,
		nullIfEmpty(entry.VoidReason),
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry "+entry.EntryID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_entry_lines (
			line_id, entry_id, account_id, direction, amount,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, line := range lines {
		batch.Queue(lineQuery,
			line.LineID,
			entry.EntryID,
			line.AccountID,
			line.Direction,
			line.Amount,
			line.CreatedAt,
			line.CreatedBy,
			line.LastUpdatedAt,
			line.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for entry "+entry.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

const entryColumns = `entry_id, tenant_id, entry_date, description, status, source, source_id,
	voided_at, void_reason, created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row pgx.Row) (domain.JournalEntry, error) {
	var e domain.JournalEntry
	var sourceID sql.NullString
	var voidedAt sql.NullTime
	var voidReason sql.NullString

	err := row.Scan(
		&e.EntryID,
		&e.TenantID,
		&e.EntryDate,
		&e.Description,
		&e.Status,
		&e.Source,
		&sourceID,
		&voidedAt,
		&voidReason,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		return e, err
	}

	if sourceID.Valid {
		e.SourceID = &sourceID.String
	}
	if voidedAt.Valid {
		t := voidedAt.Time
		e.VoidedAt = &t
	}
	if voidReason.Valid {
		e.VoidReason = voidReason.String
	}
	return e, nil
}

// FindEntryByID retrieves an entry scoped to the tenant, without its lines.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE tenant_id = $1 AND entry_id = $2;`
	entry, err := scanEntry(r.Pool.QueryRow(ctx, query, tenantID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry "+entryID, err)
	}
	return &entry, nil
}

// FindLinesByEntryID retrieves the entry's lines in their stored order.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error) {
	query := `
		SELECT line_id, entry_id, account_id, direction, amount,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journal_entry_lines
		WHERE entry_id = $1
		ORDER BY created_at, line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	lines := []domain.JournalEntryLine{}
	for rows.Next() {
		var l domain.JournalEntryLine
		err := rows.Scan(
			&l.LineID,
			&l.EntryID,
			&l.AccountID,
			&l.Direction,
			&l.Amount,
			&l.CreatedAt,
			&l.CreatedBy,
			&l.LastUpdatedAt,
			&l.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for entry "+entryID, err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for entry "+entryID, err)
	}
	return lines, nil
}

// ListEntries retrieves a page of entries, newest first.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, tenantID string, limit, offset int) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE tenant_id = $1
		ORDER BY entry_date DESC, created_at DESC, entry_id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list entries for tenant "+tenantID, err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry row", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry rows", err)
	}
	return entries, nil
}

// MarkEntryPosted flips a draft to POSTED. The status predicate makes the
// transition race-safe: whoever loses the race sees zero rows affected.
func (r *PgxJournalRepository) MarkEntryPosted(ctx context.Context, tenantID, entryID, userID string, now time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE tenant_id = $1 AND entry_id = $2 AND status = $6;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, tenantID, entryID, domain.Posted, now, userID, domain.Draft)
	if err != nil {
		return apperrors.NewAppError(500, "failed to post draft entry "+entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: entry %s is not a draft", apperrors.ErrConflict, entryID)
	}
	return nil
}

// VoidEntry flips a posted entry to VOIDED with its timestamp and reason.
// Lines are deliberately untouched; the audit trail survives the void.
func (r *PgxJournalRepository) VoidEntry(ctx context.Context, tenantID, entryID, reason, userID string, now time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = $3,
		    voided_at = $4,
		    void_reason = $5,
		    last_updated_at = $4,
		    last_updated_by = $6
		WHERE tenant_id = $1 AND entry_id = $2 AND status = $7;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, tenantID, entryID, domain.Voided, now, reason, userID, domain.Posted)
	if err != nil {
		return apperrors.NewAppError(500, "failed to void entry "+entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: entry %s", apperrors.ErrAlreadyVoided, entryID)
	}
	return nil
}

// VoidEntriesBySource voids every posted entry for the originating record in
// a single statement. Already-voided entries fall outside the predicate and
// are skipped; one statement means the cascade can never half-complete.
func (r *PgxJournalRepository) VoidEntriesBySource(ctx context.Context, tenantID, source, sourceID, reason, userID string, now time.Time) (int64, error) {
	query := `
		UPDATE journal_entries
		SET status = $4,
		    voided_at = $5,
		    void_reason = $6,
		    last_updated_at = $5,
		    last_updated_by = $7
		WHERE tenant_id = $1 AND source = $2 AND source_id = $3 AND status = $8;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, tenantID, source, sourceID, domain.Voided, now, reason, userID, domain.Posted)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to void entries for source "+source+"/"+sourceID, err)
	}
	return cmdTag.RowsAffected(), nil
}

// nullIfEmpty maps "" to NULL for nullable text columns.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

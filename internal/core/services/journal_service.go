package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbook-app/finbook_backend/internal/apperrors"
	"github.com/finbook-app/finbook_backend/internal/core/domain"
	portsrepo "github.com/finbook-app/finbook_backend/internal/core/ports/repositories"
	portssvc "github.com/finbook-app/finbook_backend/internal/core/ports/services"
	"github.com/finbook-app/finbook_backend/internal/dto"
	"github.com/finbook-app/finbook_backend/internal/utils/accounting"
)

// journalService provides journal entry creation, posting and voiding.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountSvcFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// buildLines converts request lines into domain lines, checking the local
// line invariants (positive amount, minor-unit precision, known direction).
func buildLines(entryID string, req dto.CreateEntryRequest, now time.Time, userID string) ([]domain.JournalEntryLine, error) {
	if len(req.Lines) < 2 {
		return nil, fmt.Errorf("%w: entry must have at least two lines", apperrors.ErrInvalidLine)
	}

	lines := make([]domain.JournalEntryLine, len(req.Lines))
	for i, lineReq := range req.Lines {
		if lineReq.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: line amount must be positive for account %s", apperrors.ErrValidation, lineReq.AccountID)
		}
		if lineReq.Amount.Exponent() < -2 {
			return nil, fmt.Errorf("%w: line amount for account %s exceeds two decimal places", apperrors.ErrValidation, lineReq.AccountID)
		}
		if lineReq.Direction != domain.Debit && lineReq.Direction != domain.Credit {
			return nil, fmt.Errorf("%w: unknown direction %q", apperrors.ErrValidation, lineReq.Direction)
		}
		lines[i] = domain.JournalEntryLine{
			LineID:    uuid.NewString(),
			EntryID:   entryID,
			AccountID: lineReq.AccountID,
			Direction: lineReq.Direction,
			Amount:    lineReq.Amount,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}
	return lines, nil
}

// validateAccounts checks every line against the tenant's chart of accounts:
// the account must exist, belong to this tenant and be active.
func (s *journalService) validateAccounts(ctx context.Context, tenantID string, lines []domain.JournalEntryLine) error {
	accountIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		accountIDs = append(accountIDs, line.AccountID)
	}
	uniqueIDs := uniqueStrings(accountIDs)

	accountsMap, err := s.accountSvc.GetAccountsByIDs(ctx, tenantID, uniqueIDs)
	if err != nil {
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}

	for _, id := range uniqueIDs {
		acc, found := accountsMap[id]
		if !found {
			return fmt.Errorf("%w: account %s not found in tenant", apperrors.ErrInvalidLine, id)
		}
		if !acc.IsActive {
			return fmt.Errorf("%w: account %s is inactive", apperrors.ErrInvalidLine, id)
		}
	}
	return nil
}

// validateBalance enforces the core accounting law: the debit sum must equal
// the credit sum exactly, to the currency's minor-unit precision.
func validateBalance(lines []domain.JournalEntryLine) error {
	debits, credits := accounting.SumByDirection(lines)
	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits sum is %s and credits sum is %s",
			apperrors.ErrUnbalanced, debits.String(), credits.String())
	}
	return nil
}

// createEntry runs the full validation pipeline and persists the entry with
// its lines in the requested status. Nothing is written on any failure.
func (s *journalService) createEntry(ctx context.Context, tenantID string, req dto.CreateEntryRequest, status domain.EntryStatus, creatorUserID string) (*domain.JournalEntry, error) {
	entryDate, err := req.EntryDate()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid entry date: %v", apperrors.ErrValidation, err)
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()

	lines, err := buildLines(entryID, req, now, creatorUserID)
	if err != nil {
		return nil, err
	}
	if err := s.validateAccounts(ctx, tenantID, lines); err != nil {
		return nil, err
	}
	if err := validateBalance(lines); err != nil {
		return nil, err
	}

	entry := domain.JournalEntry{
		EntryID:     entryID,
		TenantID:    tenantID,
		EntryDate:   entryDate,
		Description: req.Description,
		Status:      status,
		Source:      req.Source,
		SourceID:    req.SourceID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, lines); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("tenant_id", tenantID), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.String("entry_id", entryID),
		slog.String("tenant_id", tenantID),
		slog.String("status", string(status)),
		slog.String("source", req.Source),
		slog.Int("line_count", len(lines)))

	entry.Lines = lines
	return &entry, nil
}

// PostEntry validates and persists a balanced entry directly in POSTED status.
func (s *journalService) PostEntry(ctx context.Context, tenantID string, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	return s.createEntry(ctx, tenantID, req, domain.Posted, creatorUserID)
}

// CreateDraftEntry persists an entry in DRAFT status. Drafts pass the same
// validation as posted entries so that posting later is a pure status flip,
// re-checked at posting time in case an account was deactivated meanwhile.
func (s *journalService) CreateDraftEntry(ctx context.Context, tenantID string, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	return s.createEntry(ctx, tenantID, req, domain.Draft, creatorUserID)
}

// PostDraftEntry transitions a draft to POSTED after re-validation.
func (s *journalService) PostDraftEntry(ctx context.Context, tenantID, entryID, userID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, tenantID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.Draft {
		return nil, fmt.Errorf("%w: entry status is %s, expected DRAFT", apperrors.ErrConflict, entry.Status)
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch lines for draft posting", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to fetch entry lines: %w", err)
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: entry must have at least two lines", apperrors.ErrInvalidLine)
	}
	if err := s.validateAccounts(ctx, tenantID, lines); err != nil {
		return nil, err
	}
	if err := validateBalance(lines); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.journalRepo.MarkEntryPosted(ctx, tenantID, entryID, userID, now); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to post draft entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Draft entry posted", slog.String("entry_id", entryID), slog.String("tenant_id", tenantID))

	entry.Status = domain.Posted
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID
	entry.Lines = lines
	return entry, nil
}

// GetEntryByID retrieves an entry together with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, tenantID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch entry lines", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to fetch entry lines: %w", err)
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries retrieves a page of the tenant's journal entries.
func (s *journalService) ListEntries(ctx context.Context, tenantID string, limit, offset int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	entries, err := s.journalRepo.ListEntries(ctx, tenantID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

// VoidEntry marks a posted entry voided. The original lines are retained
// unchanged for the audit trail; a second void of the same entry fails.
func (s *journalService) VoidEntry(ctx context.Context, tenantID, entryID, reason, userID string) (*domain.JournalEntry, error) {
	if reason == "" {
		return nil, fmt.Errorf("%w: void reason is required", apperrors.ErrValidation)
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, tenantID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry for voiding", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	if entry.Status != domain.Posted {
		return nil, fmt.Errorf("%w: entry status is %s", apperrors.ErrAlreadyVoided, entry.Status)
	}

	now := time.Now().UTC()
	if err := s.journalRepo.VoidEntry(ctx, tenantID, entryID, reason, userID, now); err != nil {
		// A concurrent void between our read and the conditional update
		// surfaces here as AlreadyVoided, same as the pre-check.
		if !errors.Is(err, apperrors.ErrAlreadyVoided) {
			s.LogError(ctx, err, "Failed to void journal entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry voided", slog.String("entry_id", entryID), slog.String("tenant_id", tenantID), slog.String("reason", reason))

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch lines after voiding", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to fetch entry lines: %w", err)
	}

	entry.Status = domain.Voided
	entry.VoidedAt = &now
	entry.VoidReason = reason
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID
	entry.Lines = lines
	return entry, nil
}

// VoidEntriesBySource voids every posted entry originated by the given source
// record. Already-voided entries are skipped rather than failing the cascade,
// so callers can safely run this ahead of deleting the originating record.
func (s *journalService) VoidEntriesBySource(ctx context.Context, tenantID, source, sourceID, userID string) (int64, error) {
	if source == "" || sourceID == "" {
		return 0, fmt.Errorf("%w: source and sourceID are required", apperrors.ErrValidation)
	}

	reason := fmt.Sprintf("source record deleted: %s/%s", source, sourceID)
	now := time.Now().UTC()

	count, err := s.journalRepo.VoidEntriesBySource(ctx, tenantID, source, sourceID, reason, userID, now)
	if err != nil {
		s.LogError(ctx, err, "Cascade void failed",
			slog.String("tenant_id", tenantID),
			slog.String("source", source),
			slog.String("source_id", sourceID))
		return 0, fmt.Errorf("failed to void entries for %s/%s: %w", source, sourceID, err)
	}

	s.LogInfo(ctx, "Cascade void completed",
		slog.String("tenant_id", tenantID),
		slog.String("source", source),
		slog.String("source_id", sourceID),
		slog.Int64("voided_count", count))
	return count, nil
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}

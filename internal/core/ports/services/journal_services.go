package services

import (
	"context"

	"github.com/finbook-app/finbook_backend/internal/core/domain"
	"github.com/finbook-app/finbook_backend/internal/dto"
)

// JournalSvcFacade defines the journal entry store operations.
type JournalSvcFacade interface {
	// PostEntry validates and persists a balanced entry directly in POSTED
	// status. Nothing is written on validation failure.
	PostEntry(ctx context.Context, tenantID string, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error)
	// CreateDraftEntry persists an entry in DRAFT status. Drafts never
	// contribute to balances; they are re-validated when posted.
	CreateDraftEntry(ctx context.Context, tenantID string, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error)
	// PostDraftEntry transitions a draft to POSTED after full validation.
	PostDraftEntry(ctx context.Context, tenantID, entryID, userID string) (*domain.JournalEntry, error)
	GetEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, tenantID string, limit, offset int) ([]domain.JournalEntry, error)
	// VoidEntry marks a posted entry voided with a mandatory reason. Lines
	// are retained unchanged; no compensating entry is generated.
	VoidEntry(ctx context.Context, tenantID, entryID, reason, userID string) (*domain.JournalEntry, error)
	// VoidEntriesBySource voids every posted entry created by the given
	// originating record, skipping already-voided ones, and returns the
	// count voided. Callers run this before deleting the originating record.
	VoidEntriesBySource(ctx context.Context, tenantID, source, sourceID, userID string) (int64, error)
}

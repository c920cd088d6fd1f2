package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	Draft  EntryStatus = "DRAFT"
	Posted EntryStatus = "POSTED"
	Voided EntryStatus = "VOIDED"
)

// LineDirection indicates whether a journal entry line is a debit or a credit.
type LineDirection string

const (
	Debit  LineDirection = "DEBIT"
	Credit LineDirection = "CREDIT"
)

// JournalEntry represents a single, balanced financial event composed of
// multiple lines. Only POSTED entries contribute to balances and reports.
// A posted entry transitions to VOIDED exactly once; its lines are retained
// unchanged for the audit trail.
type JournalEntry struct {
	EntryID     string      `json:"entryID"`
	TenantID    string      `json:"tenantID"`
	EntryDate   time.Time   `json:"entryDate"` // calendar date, midnight UTC
	Description string      `json:"description"`
	Status      EntryStatus `json:"status"`
	Source      string      `json:"source"`             // originating subsystem tag, e.g. "payroll", "expense", "manual"
	SourceID    *string     `json:"sourceID,omitempty"` // id of the originating record, for cascade void
	VoidedAt    *time.Time  `json:"voidedAt,omitempty"`
	VoidReason  string      `json:"voidReason,omitempty"`
	AuditFields
	Lines []JournalEntryLine `json:"lines,omitempty"` // often loaded separately
}

// JournalEntryLine is a single line within a journal entry, affecting one
// account. It is owned exclusively by its entry and has no independent
// lifecycle. Amounts are always positive; the direction carries the sign.
type JournalEntryLine struct {
	LineID    string          `json:"lineID"`
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Direction LineDirection   `json:"direction"`
	Amount    decimal.Decimal `json:"amount"`
	AuditFields
}

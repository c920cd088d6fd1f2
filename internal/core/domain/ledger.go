package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerSourceKind tags which model a ledger line was read from.
type LedgerSourceKind string

const (
	SourceJournalEntry LedgerSourceKind = "JOURNAL_ENTRY"
	SourceLegacy       LedgerSourceKind = "LEGACY_TRANSACTION"
)

// LedgerLine is the single line-oriented representation the balance
// calculator folds over. Journal entry lines map onto it directly; each
// legacy transaction contributes two of them (its debit half and its credit
// half). Normalizing at read time keeps the folding logic in one place.
type LedgerLine struct {
	SourceKind  LedgerSourceKind `json:"sourceKind"`
	EntryID     string           `json:"entryID"` // journal entry id or legacy transaction id
	LineID      string           `json:"lineID"`
	AccountID   string           `json:"accountID"`
	Date        time.Time        `json:"date"`
	Direction   LineDirection    `json:"direction"`
	Amount      decimal.Decimal  `json:"amount"` // positive; direction carries the sign
	Description string           `json:"description"`
}

// ActivityRow is one balance-affecting event for an account within a date
// range, tagged with its raw signed amount (debit minus credit, before
// normal-balance adjustment). Rows are ordered by date ascending, then entry
// id ascending for a deterministic general ledger.
type ActivityRow struct {
	SourceKind   LedgerSourceKind `json:"sourceKind"`
	EntryID      string           `json:"entryID"`
	Date         time.Time        `json:"date"`
	Description  string           `json:"description"`
	Direction    LineDirection    `json:"direction"`
	Amount       decimal.Decimal  `json:"amount"`
	SignedAmount decimal.Decimal  `json:"signedAmount"` // sign-adjusted by the account's normal balance
}

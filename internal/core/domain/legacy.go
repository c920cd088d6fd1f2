package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LegacyTransaction is the simplified two-account record that predates the
// journal entry model: a single amount debited to one account and credited to
// another. It is read-only compatibility data; the write path going forward
// is the multi-line journal entry. For balance computation it is treated as a
// degenerate one-pair entry.
type LegacyTransaction struct {
	TransactionID   string          `json:"transactionID"`
	TenantID        string          `json:"tenantID"`
	DebitAccountID  string          `json:"debitAccountID"`
	CreditAccountID string          `json:"creditAccountID"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate"`
	Description     string          `json:"description"`
	AuditFields
}

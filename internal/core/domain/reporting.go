package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single account row in a trial balance report.
// Exactly one of Debit and Credit is non-zero for an account with activity.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceReport lists every active account's balance as of a date. The
// grand totals of the debit and credit columns must agree; a mismatch means
// the ledger itself is corrupt and is surfaced as ErrLedgerInconsistency.
type TrialBalanceReport struct {
	AsOf        time.Time         `json:"asOf"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// AccountAmount represents an account with its net amount for financial reports.
type AccountAmount struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	Name        string          `json:"name"`
	NetAmount   decimal.Decimal `json:"netAmount"`
}

// BalanceSheetReport groups account balances by type. The fundamental
// accounting identity (assets == liabilities + equity) is verified when the
// report is generated, not assumed.
type BalanceSheetReport struct {
	AsOf             time.Time       `json:"asOf"`
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}

// GeneralLedgerRow is one activity row with its running total.
type GeneralLedgerRow struct {
	ActivityRow
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// GeneralLedgerAccount is the running-balance detail for one account over a
// date range. ClosingBalance equals the final running total and is
// cross-checked against an independently computed balance as of the end date.
type GeneralLedgerAccount struct {
	AccountID      string             `json:"accountID"`
	AccountCode    string             `json:"accountCode"`
	AccountName    string             `json:"accountName"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
	Rows           []GeneralLedgerRow `json:"rows"`
	ClosingBalance decimal.Decimal    `json:"closingBalance"`
}

// GeneralLedgerReport covers one account, or every account with activity when
// no account filter was given.
type GeneralLedgerReport struct {
	StartDate time.Time              `json:"startDate"`
	EndDate   time.Time              `json:"endDate"`
	Accounts  []GeneralLedgerAccount `json:"accounts"`
}

package domain

import "github.com/shopspring/decimal"

// AccountBalanceData is the raw per-account aggregation the report queries
// return: total debits and total credits from posted entry lines and legacy
// transaction halves, before any normal-balance sign adjustment.
type AccountBalanceData struct {
	AccountID   string
	AccountCode string
	AccountName string
	AccountType AccountType
	IsActive    bool
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// GeneralLedgerData is everything the general ledger needs for a set of
// accounts, read at a single snapshot: raw opening totals as of the day
// before the range, in-range activity lines, and independently aggregated
// raw closing totals as of the range end. Opening and Closing are raw
// debit-minus-credit figures keyed by account id.
type GeneralLedgerData struct {
	Accounts []Account
	Opening  map[string]decimal.Decimal
	Closing  map[string]decimal.Decimal
	Lines    map[string][]LedgerLine
}

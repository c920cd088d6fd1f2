package dto

import (
	"time"

	"github.com/finbook-app/finbook_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceResponse is a single account balance as of a date.
type BalanceResponse struct {
	AccountID string          `json:"accountID"`
	AsOf      string          `json:"asOf"`
	Balance   decimal.Decimal `json:"balance"`
}

// ActivityRowResponse is one balance-affecting event for an account.
type ActivityRowResponse struct {
	EntryID      string               `json:"entryID"`
	SourceKind   string               `json:"sourceKind"`
	Date         string               `json:"date"`
	Description  string               `json:"description,omitempty"`
	Direction    domain.LineDirection `json:"direction"`
	Amount       decimal.Decimal      `json:"amount"`
	SignedAmount decimal.Decimal      `json:"signedAmount"`
}

// ActivityResponse is the ordered activity for an account in a date range.
type ActivityResponse struct {
	AccountID string                `json:"accountID"`
	StartDate string                `json:"startDate"`
	EndDate   string                `json:"endDate"`
	Rows      []ActivityRowResponse `json:"rows"`
}

// ToActivityRowResponses converts domain activity rows to their responses.
func ToActivityRowResponses(rows []domain.ActivityRow) []ActivityRowResponse {
	out := make([]ActivityRowResponse, len(rows))
	for i, row := range rows {
		out[i] = ActivityRowResponse{
			EntryID:      row.EntryID,
			SourceKind:   string(row.SourceKind),
			Date:         row.Date.Format(time.DateOnly),
			Description:  row.Description,
			Direction:    row.Direction,
			Amount:       row.Amount,
			SignedAmount: row.SignedAmount,
		}
	}
	return out
}

// TrialBalanceRowResponse is one account row of a trial balance.
type TrialBalanceRowResponse struct {
	AccountID   string             `json:"accountID"`
	AccountCode string             `json:"accountCode"`
	AccountName string             `json:"accountName"`
	AccountType domain.AccountType `json:"accountType"`
	Debit       decimal.Decimal    `json:"debit"`
	Credit      decimal.Decimal    `json:"credit"`
}

// TrialBalanceResponse is the full trial balance with its grand totals.
type TrialBalanceResponse struct {
	AsOf        string                    `json:"asOf"`
	Rows        []TrialBalanceRowResponse `json:"rows"`
	TotalDebit  decimal.Decimal           `json:"totalDebit"`
	TotalCredit decimal.Decimal           `json:"totalCredit"`
}

// ToTrialBalanceResponse converts a domain report to its response.
func ToTrialBalanceResponse(r *domain.TrialBalanceReport) TrialBalanceResponse {
	rows := make([]TrialBalanceRowResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: row.AccountType,
			Debit:       row.Debit,
			Credit:      row.Credit,
		}
	}
	return TrialBalanceResponse{
		AsOf:        r.AsOf.Format(time.DateOnly),
		Rows:        rows,
		TotalDebit:  r.TotalDebit,
		TotalCredit: r.TotalCredit,
	}
}

// AccountAmountResponse is an account with its net amount in a report group.
type AccountAmountResponse struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	Name        string          `json:"name"`
	NetAmount   decimal.Decimal `json:"netAmount"`
}

// BalanceSheetResponse groups balances into assets, liabilities and equity.
type BalanceSheetResponse struct {
	AsOf             string                  `json:"asOf"`
	Assets           []AccountAmountResponse `json:"assets"`
	Liabilities      []AccountAmountResponse `json:"liabilities"`
	Equity           []AccountAmountResponse `json:"equity"`
	TotalAssets      decimal.Decimal         `json:"totalAssets"`
	TotalLiabilities decimal.Decimal         `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal         `json:"totalEquity"`
}

func toAccountAmountResponses(items []domain.AccountAmount) []AccountAmountResponse {
	out := make([]AccountAmountResponse, len(items))
	for i, item := range items {
		out[i] = AccountAmountResponse{
			AccountID:   item.AccountID,
			AccountCode: item.AccountCode,
			Name:        item.Name,
			NetAmount:   item.NetAmount,
		}
	}
	return out
}

// ToBalanceSheetResponse converts a domain report to its response.
func ToBalanceSheetResponse(r *domain.BalanceSheetReport) BalanceSheetResponse {
	return BalanceSheetResponse{
		AsOf:             r.AsOf.Format(time.DateOnly),
		Assets:           toAccountAmountResponses(r.Assets),
		Liabilities:      toAccountAmountResponses(r.Liabilities),
		Equity:           toAccountAmountResponses(r.Equity),
		TotalAssets:      r.TotalAssets,
		TotalLiabilities: r.TotalLiabilities,
		TotalEquity:      r.TotalEquity,
	}
}

// GeneralLedgerRowResponse is one activity row with its running total.
type GeneralLedgerRowResponse struct {
	ActivityRowResponse
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// GeneralLedgerAccountResponse is the running-balance detail for one account.
type GeneralLedgerAccountResponse struct {
	AccountID      string                     `json:"accountID"`
	AccountCode    string                     `json:"accountCode"`
	AccountName    string                     `json:"accountName"`
	OpeningBalance decimal.Decimal            `json:"openingBalance"`
	Rows           []GeneralLedgerRowResponse `json:"rows"`
	ClosingBalance decimal.Decimal            `json:"closingBalance"`
}

// GeneralLedgerResponse is the general ledger report over a date range.
type GeneralLedgerResponse struct {
	StartDate string                         `json:"startDate"`
	EndDate   string                         `json:"endDate"`
	Accounts  []GeneralLedgerAccountResponse `json:"accounts"`
}

// ToGeneralLedgerResponse converts a domain report to its response.
func ToGeneralLedgerResponse(r *domain.GeneralLedgerReport) GeneralLedgerResponse {
	accounts := make([]GeneralLedgerAccountResponse, len(r.Accounts))
	for i, acc := range r.Accounts {
		rows := make([]GeneralLedgerRowResponse, len(acc.Rows))
		for j, row := range acc.Rows {
			rows[j] = GeneralLedgerRowResponse{
				ActivityRowResponse: ActivityRowResponse{
					EntryID:      row.EntryID,
					SourceKind:   string(row.SourceKind),
					Date:         row.Date.Format(time.DateOnly),
					Description:  row.Description,
					Direction:    row.Direction,
					Amount:       row.Amount,
					SignedAmount: row.SignedAmount,
				},
				RunningBalance: row.RunningBalance,
			}
		}
		accounts[i] = GeneralLedgerAccountResponse{
			AccountID:      acc.AccountID,
			AccountCode:    acc.AccountCode,
			AccountName:    acc.AccountName,
			OpeningBalance: acc.OpeningBalance,
			Rows:           rows,
			ClosingBalance: acc.ClosingBalance,
		}
	}
	return GeneralLedgerResponse{
		StartDate: r.StartDate.Format(time.DateOnly),
		EndDate:   r.EndDate.Format(time.DateOnly),
		Accounts:  accounts,
	}
}

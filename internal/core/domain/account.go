package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether the account type is one of the five known types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// NormalBalance is the side (debit or credit) on which an account type
// ordinarily carries its balance.
type NormalBalance string

const (
	DebitNormal  NormalBalance = "DEBIT"
	CreditNormal NormalBalance = "CREDIT"
)

// NormalBalanceFor derives the normal balance from the account type.
// Asset and expense accounts are debit-normal; liability, equity and revenue
// accounts are credit-normal.
func NormalBalanceFor(t AccountType) NormalBalance {
	if t == Asset || t == Expense {
		return DebitNormal
	}
	return CreditNormal
}

// Account represents a financial account in a tenant's chart of accounts.
// Accounts are never hard-deleted once referenced by ledger activity; they
// are deactivated instead.
type Account struct {
	AccountID   string      `json:"accountID"`
	TenantID    string      `json:"tenantID"`
	Code        string      `json:"code"` // unique within the tenant
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	Description string      `json:"description"`
	IsActive    bool        `json:"isActive"`
	AuditFields
}

// NormalBalance returns the side on which this account ordinarily carries its balance.
func (a Account) NormalBalance() NormalBalance {
	return NormalBalanceFor(a.AccountType)
}

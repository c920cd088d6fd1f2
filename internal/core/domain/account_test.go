package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finbook-app/finbook_backend/internal/core/domain"
)

func TestAccountTypeIsValid(t *testing.T) {
	for _, valid := range []domain.AccountType{
		domain.Asset, domain.Liability, domain.Equity, domain.Revenue, domain.Expense,
	} {
		assert.True(t, valid.IsValid(), "%s should be valid", valid)
	}

	assert.False(t, domain.AccountType("CONTRA").IsValid())
	assert.False(t, domain.AccountType("asset").IsValid())
	assert.False(t, domain.AccountType("").IsValid())
}

func TestNormalBalanceFor(t *testing.T) {
	testCases := []struct {
		accountType domain.AccountType
		expected    domain.NormalBalance
	}{
		{domain.Asset, domain.DebitNormal},
		{domain.Expense, domain.DebitNormal},
		{domain.Liability, domain.CreditNormal},
		{domain.Equity, domain.CreditNormal},
		{domain.Revenue, domain.CreditNormal},
	}

	for _, tc := range testCases {
		t.Run(string(tc.accountType), func(t *testing.T) {
			assert.Equal(t, tc.expected, domain.NormalBalanceFor(tc.accountType))
		})
	}
}

func TestAccountNormalBalance(t *testing.T) {
	cash := domain.Account{Code: "1000", Name: "Cash", AccountType: domain.Asset}
	revenue := domain.Account{Code: "4000", Name: "Sales Revenue", AccountType: domain.Revenue}

	assert.Equal(t, domain.DebitNormal, cash.NormalBalance())
	assert.Equal(t, domain.CreditNormal, revenue.NormalBalance())
}

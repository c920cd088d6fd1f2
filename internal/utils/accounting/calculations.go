// Package accounting holds the signed-amount arithmetic shared by the journal
// service, the balance calculator and the report generator, so the accounting
// convention lives in exactly one place.
package accounting

import (
	"fmt"

	"github.com/finbook-app/finbook_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RawSignedAmount returns the line amount signed by direction only:
// debits positive, credits negative. This is the raw debit-minus-credit
// convention the balance fold uses before any normal-balance adjustment.
func RawSignedAmount(direction domain.LineDirection, amount decimal.Decimal) decimal.Decimal {
	if direction == domain.Debit {
		return amount
	}
	return amount.Neg()
}

// NormalSignedAmount applies the account's normal balance to a line amount:
// a debit to a debit-normal account increases its reported balance, a credit
// to a credit-normal account increases its reported balance.
func NormalSignedAmount(direction domain.LineDirection, amount decimal.Decimal, normal domain.NormalBalance) decimal.Decimal {
	raw := RawSignedAmount(direction, amount)
	if normal == domain.CreditNormal {
		return raw.Neg()
	}
	return raw
}

// AdjustForNormalBalance converts a raw debit-minus-credit figure into the
// balance reported for the account: debit-normal accounts report the raw
// figure, credit-normal accounts report its negation so that a balance on the
// account's normal side shows as a non-negative number.
func AdjustForNormalBalance(raw decimal.Decimal, normal domain.NormalBalance) decimal.Decimal {
	if normal == domain.CreditNormal {
		return raw.Neg()
	}
	return raw
}

// SumByDirection totals the debit lines and the credit lines separately.
func SumByDirection(lines []domain.JournalEntryLine) (debits, credits decimal.Decimal) {
	debits = decimal.Zero
	credits = decimal.Zero
	for _, line := range lines {
		if line.Direction == domain.Debit {
			debits = debits.Add(line.Amount)
		} else {
			credits = credits.Add(line.Amount)
		}
	}
	return debits, credits
}

// ValidateEntryBalance checks the line-level invariants for a postable entry:
// at least two lines, every amount strictly positive with at most two decimal
// places, and the debit sum exactly equal to the credit sum.
func ValidateEntryBalance(lines []domain.JournalEntryLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("entry must have at least two lines, got %d", len(lines))
	}

	for _, line := range lines {
		if line.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("line amount must be positive for account %s, got %s", line.AccountID, line.Amount.String())
		}
		if line.Amount.Exponent() < -2 {
			return fmt.Errorf("line amount for account %s has more than two decimal places: %s", line.AccountID, line.Amount.String())
		}
		if line.Direction != domain.Debit && line.Direction != domain.Credit {
			return fmt.Errorf("unknown line direction %q for account %s", line.Direction, line.AccountID)
		}
	}

	debits, credits := SumByDirection(lines)
	if !debits.Equal(credits) {
		return fmt.Errorf("debits sum is %s and credits sum is %s", debits.String(), credits.String())
	}
	return nil
}

// FoldLedgerLines folds normalized ledger lines into a raw debit-minus-credit
// total. Summation is exact decimal arithmetic; no floating point is involved.
func FoldLedgerLines(lines []domain.LedgerLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(RawSignedAmount(line.Direction, line.Amount))
	}
	return total
}

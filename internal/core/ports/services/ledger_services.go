package services

import (
	"context"
	"time"

	"github.com/finbook-app/finbook_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade is the balance calculator: point-in-time balances and
// date-ranged activity derived by folding posted entry lines and legacy
// transactions. Balances are always computed, never stored.
type LedgerSvcFacade interface {
	// BalanceAsOf returns the account balance from activity dated on or
	// before asOf, sign-adjusted by the account's normal balance.
	BalanceAsOf(ctx context.Context, tenantID, accountID string, asOf time.Time) (decimal.Decimal, error)
	// ActivityInRange returns the contributing rows within [start, end]
	// inclusive, ordered by date ascending then entry id ascending.
	ActivityInRange(ctx context.Context, tenantID, accountID string, start, end time.Time) ([]domain.ActivityRow, error)
}

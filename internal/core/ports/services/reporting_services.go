package services

import (
	"context"
	"time"

	"github.com/finbook-app/finbook_backend/internal/core/domain"
)

// ReportingSvcFacade composes balance calculator output into financial
// reports. Each report re-verifies its own invariant and fails with
// apperrors.ErrLedgerInconsistency on a mismatch.
type ReportingSvcFacade interface {
	TrialBalance(ctx context.Context, tenantID string, asOf time.Time) (*domain.TrialBalanceReport, error)
	BalanceSheet(ctx context.Context, tenantID string, asOf time.Time) (*domain.BalanceSheetReport, error)
	// GeneralLedger reports one account when accountID is non-empty,
	// otherwise every account with activity in the range.
	GeneralLedger(ctx context.Context, tenantID, accountID string, start, end time.Time) (*domain.GeneralLedgerReport, error)
}

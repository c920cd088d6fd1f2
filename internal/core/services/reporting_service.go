package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbook-app/finbook_backend/internal/apperrors"
	"github.com/finbook-app/finbook_backend/internal/core/domain"
	portsrepo "github.com/finbook-app/finbook_backend/internal/core/ports/repositories"
	portssvc "github.com/finbook-app/finbook_backend/internal/core/ports/services"
	"github.com/finbook-app/finbook_backend/internal/utils/accounting"
)

// reportingService composes aggregated ledger reads into financial reports.
// Every report re-verifies its own invariant before it is returned; a
// mismatch means prior writes already corrupted the ledger and is surfaced
// as ErrLedgerInconsistency rather than silently reported.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// TrialBalance lists every active account's balance as of a date, split into
// a debit or credit column by the sign of the raw debit-minus-credit figure.
// The two column totals must agree; that equality is the whole-ledger
// restatement of the per-entry balance invariant.
func (s *reportingService) TrialBalance(ctx context.Context, tenantID string, asOf time.Time) (*domain.TrialBalanceReport, error) {
	balances, err := s.reportingRepo.GetAccountBalancesAsOf(ctx, tenantID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data",
			slog.String("tenant_id", tenantID),
			slog.String("as_of", asOf.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	report := &domain.TrialBalanceReport{
		AsOf:        asOf,
		Rows:        make([]domain.TrialBalanceRow, 0, len(balances)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	for _, b := range balances {
		raw := b.TotalDebit.Sub(b.TotalCredit)
		// Inactive accounts appear only while they still carry a balance;
		// dropping such a row would fake a totals mismatch.
		if !b.IsActive && raw.IsZero() {
			continue
		}
		row := domain.TrialBalanceRow{
			AccountID:   b.AccountID,
			AccountCode: b.AccountCode,
			AccountName: b.AccountName,
			AccountType: b.AccountType,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		switch {
		case raw.IsPositive():
			row.Debit = raw
		case raw.IsNegative():
			row.Credit = raw.Neg()
		}
		report.TotalDebit = report.TotalDebit.Add(row.Debit)
		report.TotalCredit = report.TotalCredit.Add(row.Credit)
		report.Rows = append(report.Rows, row)
	}

	if !report.TotalDebit.Equal(report.TotalCredit) {
		s.LogError(ctx, apperrors.ErrLedgerInconsistency, "Trial balance grand totals diverge",
			slog.String("tenant_id", tenantID),
			slog.String("as_of", asOf.Format(time.DateOnly)),
			slog.String("total_debit", report.TotalDebit.String()),
			slog.String("total_credit", report.TotalCredit.String()))
		return nil, fmt.Errorf("%w: trial balance totals debit=%s credit=%s",
			apperrors.ErrLedgerInconsistency, report.TotalDebit.String(), report.TotalCredit.String())
	}

	s.LogInfo(ctx, "Trial balance generated",
		slog.String("tenant_id", tenantID),
		slog.String("as_of", asOf.Format(time.DateOnly)),
		slog.Int("row_count", len(report.Rows)))
	return report, nil
}

// BalanceSheet groups balances by type into assets, liabilities and equity.
// Net earnings from revenue and expense accounts are rolled into equity as a
// current-earnings line, after which assets must equal liabilities plus
// equity. The identity is verified before the report is returned.
func (s *reportingService) BalanceSheet(ctx context.Context, tenantID string, asOf time.Time) (*domain.BalanceSheetReport, error) {
	balances, err := s.reportingRepo.GetAccountBalancesAsOf(ctx, tenantID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve balance sheet data",
			slog.String("tenant_id", tenantID),
			slog.String("as_of", asOf.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to retrieve balance sheet data: %w", err)
	}

	report := &domain.BalanceSheetReport{
		AsOf:             asOf,
		Assets:           []domain.AccountAmount{},
		Liabilities:      []domain.AccountAmount{},
		Equity:           []domain.AccountAmount{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}

	currentEarnings := decimal.Zero
	for _, b := range balances {
		raw := b.TotalDebit.Sub(b.TotalCredit)
		net := accounting.AdjustForNormalBalance(raw, domain.NormalBalanceFor(b.AccountType))
		item := domain.AccountAmount{
			AccountID:   b.AccountID,
			AccountCode: b.AccountCode,
			Name:        b.AccountName,
			NetAmount:   net,
		}

		switch b.AccountType {
		case domain.Asset:
			report.Assets = append(report.Assets, item)
			report.TotalAssets = report.TotalAssets.Add(net)
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, item)
			report.TotalLiabilities = report.TotalLiabilities.Add(net)
		case domain.Equity:
			report.Equity = append(report.Equity, item)
			report.TotalEquity = report.TotalEquity.Add(net)
		case domain.Revenue:
			currentEarnings = currentEarnings.Add(net)
		case domain.Expense:
			currentEarnings = currentEarnings.Sub(net)
		}
	}

	if !currentEarnings.IsZero() {
		report.Equity = append(report.Equity, domain.AccountAmount{
			Name:      "Current period earnings",
			NetAmount: currentEarnings,
		})
		report.TotalEquity = report.TotalEquity.Add(currentEarnings)
	}

	if !report.TotalAssets.Equal(report.TotalLiabilities.Add(report.TotalEquity)) {
		s.LogError(ctx, apperrors.ErrLedgerInconsistency, "Accounting identity violated",
			slog.String("tenant_id", tenantID),
			slog.String("as_of", asOf.Format(time.DateOnly)),
			slog.String("total_assets", report.TotalAssets.String()),
			slog.String("total_liabilities", report.TotalLiabilities.String()),
			slog.String("total_equity", report.TotalEquity.String()))
		return nil, fmt.Errorf("%w: assets=%s liabilities=%s equity=%s",
			apperrors.ErrLedgerInconsistency,
			report.TotalAssets.String(), report.TotalLiabilities.String(), report.TotalEquity.String())
	}

	s.LogInfo(ctx, "Balance sheet generated",
		slog.String("tenant_id", tenantID),
		slog.String("as_of", asOf.Format(time.DateOnly)))
	return report, nil
}

// GeneralLedger produces running-balance detail for one account, or for all
// accounts when accountID is empty. The closing balance of each account is
// cross-checked against an independently aggregated balance read at the same
// snapshot.
func (s *reportingService) GeneralLedger(ctx context.Context, tenantID, accountID string, start, end time.Time) (*domain.GeneralLedgerReport, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}

	data, err := s.reportingRepo.GetGeneralLedgerData(ctx, tenantID, accountID, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve general ledger data",
			slog.String("tenant_id", tenantID),
			slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to retrieve general ledger data: %w", err)
	}

	report := &domain.GeneralLedgerReport{
		StartDate: start,
		EndDate:   end,
		Accounts:  make([]domain.GeneralLedgerAccount, 0, len(data.Accounts)),
	}

	for _, acc := range data.Accounts {
		normal := acc.NormalBalance()
		opening := accounting.AdjustForNormalBalance(data.Opening[acc.AccountID], normal)

		activity := toActivityRows(data.Lines[acc.AccountID], normal)
		rows := make([]domain.GeneralLedgerRow, len(activity))
		running := opening
		for i, row := range activity {
			running = running.Add(row.SignedAmount)
			rows[i] = domain.GeneralLedgerRow{ActivityRow: row, RunningBalance: running}
		}

		expected := accounting.AdjustForNormalBalance(data.Closing[acc.AccountID], normal)
		if !running.Equal(expected) {
			s.LogError(ctx, apperrors.ErrLedgerInconsistency, "General ledger running balance diverges from aggregate",
				slog.String("tenant_id", tenantID),
				slog.String("account_id", acc.AccountID),
				slog.String("running", running.String()),
				slog.String("aggregate", expected.String()))
			return nil, fmt.Errorf("%w: account %s running balance %s != aggregate %s",
				apperrors.ErrLedgerInconsistency, acc.AccountID, running.String(), expected.String())
		}

		report.Accounts = append(report.Accounts, domain.GeneralLedgerAccount{
			AccountID:      acc.AccountID,
			AccountCode:    acc.Code,
			AccountName:    acc.Name,
			OpeningBalance: opening,
			Rows:           rows,
			ClosingBalance: running,
		})
	}

	s.LogInfo(ctx, "General ledger generated",
		slog.String("tenant_id", tenantID),
		slog.String("account_id", accountID),
		slog.Int("account_count", len(report.Accounts)))
	return report, nil
}

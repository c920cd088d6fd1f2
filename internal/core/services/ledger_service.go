package services

import (
	"context"
	"errors"
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

// ledgerService derives balances and activity by folding posted entry lines
// and legacy transactions. Balances are never stored; every figure is
// computed from the entry history at read time.
type ledgerService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewLedgerService creates a new balance calculator service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// BalanceAsOf computes the account's signed balance from activity dated on or
// before asOf: raw debits minus credits, then sign-adjusted by the account's
// normal balance so an ordinary balance reads as a non-negative figure.
func (s *ledgerService) BalanceAsOf(ctx context.Context, tenantID, accountID string, asOf time.Time) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for balance", slog.String("account_id", accountID))
		}
		return decimal.Zero, err
	}

	data, err := s.ledgerRepo.GetAccountRawBalance(ctx, tenantID, accountID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate account balance",
			slog.String("account_id", accountID),
			slog.String("as_of", asOf.Format(time.DateOnly)))
		return decimal.Zero, fmt.Errorf("failed to compute balance for account %s: %w", accountID, err)
	}

	raw := data.TotalDebit.Sub(data.TotalCredit)
	return accounting.AdjustForNormalBalance(raw, account.NormalBalance()), nil
}

// ActivityInRange returns the contributing rows within [start, end]
// inclusive, each tagged with its normal-balance-signed amount, ordered by
// date ascending then entry id ascending for deterministic output.
func (s *ledgerService) ActivityInRange(ctx context.Context, tenantID, accountID string, start, end time.Time) ([]domain.ActivityRow, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for activity", slog.String("account_id", accountID))
		}
		return nil, err
	}

	lines, err := s.ledgerRepo.ListAccountActivity(ctx, tenantID, accountID, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch account activity", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to fetch activity for account %s: %w", accountID, err)
	}

	return toActivityRows(lines, account.NormalBalance()), nil
}

// toActivityRows maps normalized ledger lines to activity rows with the
// account-normal signed amount attached.
func toActivityRows(lines []domain.LedgerLine, normal domain.NormalBalance) []domain.ActivityRow {
	rows := make([]domain.ActivityRow, len(lines))
	for i, line := range lines {
		rows[i] = domain.ActivityRow{
			SourceKind:   line.SourceKind,
			EntryID:      line.EntryID,
			Date:         line.Date,
			Description:  line.Description,
			Direction:    line.Direction,
			Amount:       line.Amount,
			SignedAmount: accounting.NormalSignedAmount(line.Direction, line.Amount, normal),
		}
	}
	return rows
}

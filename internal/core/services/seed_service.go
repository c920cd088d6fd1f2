package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finbook-app/finbook_backend/internal/apperrors"
	"github.com/finbook-app/finbook_backend/internal/core/domain"
	portsrepo "github.com/finbook-app/finbook_backend/internal/core/ports/repositories"
	portssvc "github.com/finbook-app/finbook_backend/internal/core/ports/services"
)

// seedAccount is one template row of the standard chart of accounts.
type seedAccount struct {
	Code        string
	Name        string
	AccountType domain.AccountType
}

// standardChart is the default chart of accounts a new tenant starts from,
// covering the cash, receivable, payroll liability, equity, revenue and
// expense accounts the payroll flows post against.
var standardChart = []seedAccount{
	{Code: "1000", Name: "Cash", AccountType: domain.Asset},
	{Code: "1100", Name: "Bank Account", AccountType: domain.Asset},
	{Code: "1200", Name: "Accounts Receivable", AccountType: domain.Asset},
	{Code: "2000", Name: "Accounts Payable", AccountType: domain.Liability},
	{Code: "2100", Name: "Wages Payable", AccountType: domain.Liability},
	{Code: "2200", Name: "Payroll Taxes Payable", AccountType: domain.Liability},
	{Code: "2300", Name: "VAT Payable", AccountType: domain.Liability},
	{Code: "3000", Name: "Owner's Equity", AccountType: domain.Equity},
	{Code: "3100", Name: "Retained Earnings", AccountType: domain.Equity},
	{Code: "4000", Name: "Sales Revenue", AccountType: domain.Revenue},
	{Code: "4100", Name: "Other Income", AccountType: domain.Revenue},
	{Code: "5000", Name: "Salaries Expense", AccountType: domain.Expense},
	{Code: "5100", Name: "Payroll Tax Expense", AccountType: domain.Expense},
	{Code: "5200", Name: "Rent Expense", AccountType: domain.Expense},
	{Code: "5300", Name: "Office Expense", AccountType: domain.Expense},
	{Code: "5900", Name: "Miscellaneous Expense", AccountType: domain.Expense},
}

// seedService populates a tenant's initial chart of accounts.
type seedService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewSeedService creates a new seeding service.
func NewSeedService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.SeedSvcFacade {
	return &seedService{accountRepo: accountRepo}
}

var _ portssvc.SeedSvcFacade = (*seedService)(nil)

// SeedChartOfAccounts inserts the standard template, skipping codes the
// tenant already has. Re-running it is safe and reports only what it added.
func (s *seedService) SeedChartOfAccounts(ctx context.Context, tenantID, userID string) (int, error) {
	existing, err := s.accountRepo.ListAccounts(ctx, tenantID, false)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for seeding", slog.String("tenant_id", tenantID))
		return 0, fmt.Errorf("failed to list existing accounts: %w", err)
	}

	existingCodes := make(map[string]struct{}, len(existing))
	for _, acc := range existing {
		existingCodes[acc.Code] = struct{}{}
	}

	now := time.Now().UTC()
	created := 0
	for _, tmpl := range standardChart {
		if _, ok := existingCodes[tmpl.Code]; ok {
			continue
		}
		account := domain.Account{
			AccountID:   uuid.NewString(),
			TenantID:    tenantID,
			Code:        tmpl.Code,
			Name:        tmpl.Name,
			AccountType: tmpl.AccountType,
			IsActive:    true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
			// A concurrent seed may have inserted the same code; skip it.
			if errors.Is(err, apperrors.ErrDuplicate) {
				continue
			}
			s.LogError(ctx, err, "Failed to seed account", slog.String("tenant_id", tenantID), slog.String("code", tmpl.Code))
			return created, fmt.Errorf("failed to seed account %s: %w", tmpl.Code, err)
		}
		created++
	}

	s.LogInfo(ctx, "Chart of accounts seeded", slog.String("tenant_id", tenantID), slog.Int("created", created))
	return created, nil
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/finbook-app/finbook_backend/internal/apperrors"
	"github.com/finbook-app/finbook_backend/internal/core/domain"
	portssvc "github.com/finbook-app/finbook_backend/internal/core/ports/services"
	"github.com/finbook-app/finbook_backend/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingSvcFacade
	tenantID          string
	asOf              time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo)
	suite.tenantID = uuid.NewString()
	suite.asOf = time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
}

func balanceRow(code, name string, accType domain.AccountType, debit, credit string) domain.AccountBalanceData {
	return domain.AccountBalanceData{
		AccountID:   uuid.NewString(),
		AccountCode: code,
		AccountName: name,
		AccountType: accType,
		IsActive:    true,
		TotalDebit:  mustDecimal(debit),
		TotalCredit: mustDecimal(credit),
	}
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_Balanced() {
	ctx := context.Background()
	balances := []domain.AccountBalanceData{
		balanceRow("1000", "Cash", domain.Asset, "500.00", "0"),
		balanceRow("4000", "Sales Revenue", domain.Revenue, "0", "500.00"),
	}

	suite.mockReportingRepo.On("GetAccountBalancesAsOf", ctx, suite.tenantID, suite.asOf).
		Return(balances, nil).Once()

	report, err := suite.service.TrialBalance(ctx, suite.tenantID, suite.asOf)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 2)
	suite.True(report.Rows[0].Debit.Equal(mustDecimal("500.00")))
	suite.True(report.Rows[0].Credit.IsZero())
	suite.True(report.Rows[1].Credit.Equal(mustDecimal("500.00")))
	suite.True(report.TotalDebit.Equal(report.TotalCredit))
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_InactiveZeroBalanceSkipped() {
	ctx := context.Background()
	inactive := balanceRow("5900", "Miscellaneous Expense", domain.Expense, "0", "0")
	inactive.IsActive = false
	inactiveWithBalance := balanceRow("5200", "Rent Expense", domain.Expense, "100.00", "0")
	inactiveWithBalance.IsActive = false

	balances := []domain.AccountBalanceData{
		balanceRow("1000", "Cash", domain.Asset, "0", "100.00"),
		inactive,
		inactiveWithBalance,
	}

	suite.mockReportingRepo.On("GetAccountBalancesAsOf", ctx, suite.tenantID, suite.asOf).
		Return(balances, nil).Once()

	report, err := suite.service.TrialBalance(ctx, suite.tenantID, suite.asOf)

	suite.Require().NoError(err)
	// Zero-balance inactive account drops out; the one still carrying a
	// balance must stay or the totals would no longer agree.
	suite.Require().Len(report.Rows, 2)
	suite.Equal("1000", report.Rows[0].AccountCode)
	suite.Equal("5200", report.Rows[1].AccountCode)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_TotalsMismatch() {
	ctx := context.Background()
	balances := []domain.AccountBalanceData{
		balanceRow("1000", "Cash", domain.Asset, "500.00", "0"),
		balanceRow("4000", "Sales Revenue", domain.Revenue, "0", "499.00"),
	}

	suite.mockReportingRepo.On("GetAccountBalancesAsOf", ctx, suite.tenantID, suite.asOf).
		Return(balances, nil).Once()

	_, err := suite.service.TrialBalance(ctx, suite.tenantID, suite.asOf)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrLedgerInconsistency)
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_IdentityHolds() {
	ctx := context.Background()
	balances := []domain.AccountBalanceData{
		balanceRow("1000", "Cash", domain.Asset, "1500.00", "200.00"),
		balanceRow("2000", "Accounts Payable", domain.Liability, "0", "300.00"),
		balanceRow("3000", "Owner's Equity", domain.Equity, "0", "500.00"),
		balanceRow("4000", "Sales Revenue", domain.Revenue, "0", "800.00"),
		balanceRow("5000", "Salaries Expense", domain.Expense, "300.00", "0"),
	}

	suite.mockReportingRepo.On("GetAccountBalancesAsOf", ctx, suite.tenantID, suite.asOf).
		Return(balances, nil).Once()

	report, err := suite.service.BalanceSheet(ctx, suite.tenantID, suite.asOf)

	suite.Require().NoError(err)
	suite.True(report.TotalAssets.Equal(mustDecimal("1300.00")))
	suite.True(report.TotalLiabilities.Equal(mustDecimal("300.00")))
	// Equity 500 plus current period earnings 800 - 300 = 500.
	suite.True(report.TotalEquity.Equal(mustDecimal("1000.00")))
	suite.Require().Len(report.Equity, 2)
	suite.Equal("Current period earnings", report.Equity[1].Name)
	suite.True(report.TotalAssets.Equal(report.TotalLiabilities.Add(report.TotalEquity)))
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_IdentityViolated() {
	ctx := context.Background()
	balances := []domain.AccountBalanceData{
		balanceRow("1000", "Cash", domain.Asset, "1000.00", "0"),
		balanceRow("3000", "Owner's Equity", domain.Equity, "0", "400.00"),
	}

	suite.mockReportingRepo.On("GetAccountBalancesAsOf", ctx, suite.tenantID, suite.asOf).
		Return(balances, nil).Once()

	_, err := suite.service.BalanceSheet(ctx, suite.tenantID, suite.asOf)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrLedgerInconsistency)
}

func (suite *ReportingServiceTestSuite) TestGeneralLedger_RunningBalances() {
	ctx := context.Background()
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	cash := domain.Account{
		AccountID:   uuid.NewString(),
		TenantID:    suite.tenantID,
		Code:        "1000",
		Name:        "Cash",
		AccountType: domain.Asset,
		IsActive:    true,
	}

	data := &domain.GeneralLedgerData{
		Accounts: []domain.Account{cash},
		Opening:  map[string]decimal.Decimal{cash.AccountID: mustDecimal("100.00")},
		Closing:  map[string]decimal.Decimal{cash.AccountID: mustDecimal("220.00")},
		Lines: map[string][]domain.LedgerLine{
			cash.AccountID: {
				{
					SourceKind: domain.SourceJournalEntry,
					EntryID:    uuid.NewString(),
					AccountID:  cash.AccountID,
					Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
					Direction:  domain.Debit,
					Amount:     mustDecimal("200.00"),
				},
				{
					SourceKind: domain.SourceJournalEntry,
					EntryID:    uuid.NewString(),
					AccountID:  cash.AccountID,
					Date:       time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
					Direction:  domain.Credit,
					Amount:     mustDecimal("80.00"),
				},
			},
		},
	}

	suite.mockReportingRepo.On("GetGeneralLedgerData", ctx, suite.tenantID, "", start, end).
		Return(data, nil).Once()

	report, err := suite.service.GeneralLedger(ctx, suite.tenantID, "", start, end)

	suite.Require().NoError(err)
	suite.Require().Len(report.Accounts, 1)
	acct := report.Accounts[0]
	suite.True(acct.OpeningBalance.Equal(mustDecimal("100.00")))
	suite.Require().Len(acct.Rows, 2)
	suite.True(acct.Rows[0].RunningBalance.Equal(mustDecimal("300.00")))
	suite.True(acct.Rows[1].RunningBalance.Equal(mustDecimal("220.00")))
	suite.True(acct.ClosingBalance.Equal(mustDecimal("220.00")))
}

func (suite *ReportingServiceTestSuite) TestGeneralLedger_ClosingMismatch() {
	ctx := context.Background()
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	cash := domain.Account{
		AccountID:   uuid.NewString(),
		TenantID:    suite.tenantID,
		Code:        "1000",
		Name:        "Cash",
		AccountType: domain.Asset,
	}

	data := &domain.GeneralLedgerData{
		Accounts: []domain.Account{cash},
		Opening:  map[string]decimal.Decimal{cash.AccountID: mustDecimal("0")},
		// Aggregate disagrees with the lines; the cross-check must trip.
		Closing: map[string]decimal.Decimal{cash.AccountID: mustDecimal("999.00")},
		Lines: map[string][]domain.LedgerLine{
			cash.AccountID: {
				{
					SourceKind: domain.SourceJournalEntry,
					EntryID:    uuid.NewString(),
					AccountID:  cash.AccountID,
					Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
					Direction:  domain.Debit,
					Amount:     mustDecimal("10.00"),
				},
			},
		},
	}

	suite.mockReportingRepo.On("GetGeneralLedgerData", ctx, suite.tenantID, "", start, end).
		Return(data, nil).Once()

	_, err := suite.service.GeneralLedger(ctx, suite.tenantID, "", start, end)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrLedgerInconsistency)
}

func (suite *ReportingServiceTestSuite) TestGeneralLedger_EndBeforeStart() {
	ctx := context.Background()
	start := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := suite.service.GeneralLedger(ctx, suite.tenantID, "", start, end)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

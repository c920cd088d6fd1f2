package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/finbook-app/finbook_backend/internal/apperrors"
	"github.com/finbook-app/finbook_backend/internal/core/domain"
	portssvc "github.com/finbook-app/finbook_backend/internal/core/ports/services"
	"github.com/finbook-app/finbook_backend/internal/core/services"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo  *MockLedgerRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.LedgerSvcFacade
	tenantID        string
	cashAccount     domain.Account
	revenueAccount  domain.Account
	asOf            time.Time
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo, suite.mockAccountRepo)

	suite.tenantID = uuid.NewString()
	suite.asOf = time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	suite.cashAccount = domain.Account{
		AccountID:   uuid.NewString(),
		TenantID:    suite.tenantID,
		Code:        "1000",
		AccountType: domain.Asset,
		IsActive:    true,
	}
	suite.revenueAccount = domain.Account{
		AccountID:   uuid.NewString(),
		TenantID:    suite.tenantID,
		Code:        "4000",
		AccountType: domain.Revenue,
		IsActive:    true,
	}
}

func (suite *LedgerServiceTestSuite) TestBalanceAsOf_DebitNormalAccount() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.tenantID, suite.cashAccount.AccountID).
		Return(&suite.cashAccount, nil).Once()
	suite.mockLedgerRepo.On("GetAccountRawBalance", ctx, suite.tenantID, suite.cashAccount.AccountID, suite.asOf).
		Return(domain.AccountBalanceData{
			AccountID:   suite.cashAccount.AccountID,
			TotalDebit:  mustDecimal("500.00"),
			TotalCredit: mustDecimal("0"),
		}, nil).Once()

	balance, err := suite.service.BalanceAsOf(ctx, suite.tenantID, suite.cashAccount.AccountID, suite.asOf)

	suite.Require().NoError(err)
	suite.True(balance.Equal(mustDecimal("500.00")), "got %s", balance)
}

func (suite *LedgerServiceTestSuite) TestBalanceAsOf_CreditNormalAccount() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.tenantID, suite.revenueAccount.AccountID).
		Return(&suite.revenueAccount, nil).Once()
	suite.mockLedgerRepo.On("GetAccountRawBalance", ctx, suite.tenantID, suite.revenueAccount.AccountID, suite.asOf).
		Return(domain.AccountBalanceData{
			AccountID:   suite.revenueAccount.AccountID,
			TotalDebit:  mustDecimal("0"),
			TotalCredit: mustDecimal("500.00"),
		}, nil).Once()

	balance, err := suite.service.BalanceAsOf(ctx, suite.tenantID, suite.revenueAccount.AccountID, suite.asOf)

	suite.Require().NoError(err)
	// Raw figure is -500.00; the credit-normal adjustment reports 500.00.
	suite.True(balance.Equal(mustDecimal("500.00")), "got %s", balance)
}

func (suite *LedgerServiceTestSuite) TestBalanceAsOf_NoActivity() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.tenantID, suite.cashAccount.AccountID).
		Return(&suite.cashAccount, nil).Once()
	suite.mockLedgerRepo.On("GetAccountRawBalance", ctx, suite.tenantID, suite.cashAccount.AccountID, suite.asOf).
		Return(domain.AccountBalanceData{
			AccountID:   suite.cashAccount.AccountID,
			TotalDebit:  mustDecimal("0"),
			TotalCredit: mustDecimal("0"),
		}, nil).Once()

	balance, err := suite.service.BalanceAsOf(ctx, suite.tenantID, suite.cashAccount.AccountID, suite.asOf)

	suite.Require().NoError(err)
	suite.True(balance.IsZero())
}

func (suite *LedgerServiceTestSuite) TestBalanceAsOf_AccountNotFound() {
	ctx := context.Background()
	unknownID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.tenantID, unknownID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.BalanceAsOf(ctx, suite.tenantID, unknownID, suite.asOf)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestActivityInRange_SignedAmounts() {
	ctx := context.Background()
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	lines := []domain.LedgerLine{
		{
			SourceKind: domain.SourceJournalEntry,
			EntryID:    uuid.NewString(),
			AccountID:  suite.cashAccount.AccountID,
			Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			Direction:  domain.Debit,
			Amount:     mustDecimal("200.00"),
		},
		{
			SourceKind: domain.SourceLegacy,
			EntryID:    uuid.NewString(),
			AccountID:  suite.cashAccount.AccountID,
			Date:       time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
			Direction:  domain.Credit,
			Amount:     mustDecimal("80.00"),
		},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.tenantID, suite.cashAccount.AccountID).
		Return(&suite.cashAccount, nil).Once()
	suite.mockLedgerRepo.On("ListAccountActivity", ctx, suite.tenantID, suite.cashAccount.AccountID, start, end).
		Return(lines, nil).Once()

	rows, err := suite.service.ActivityInRange(ctx, suite.tenantID, suite.cashAccount.AccountID, start, end)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.True(rows[0].SignedAmount.Equal(mustDecimal("200.00")))
	suite.True(rows[1].SignedAmount.Equal(mustDecimal("-80.00")))
	suite.Equal(domain.SourceLegacy, rows[1].SourceKind)
}

func (suite *LedgerServiceTestSuite) TestActivityInRange_EndBeforeStart() {
	ctx := context.Background()
	start := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := suite.service.ActivityInRange(ctx, suite.tenantID, suite.cashAccount.AccountID, start, end)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

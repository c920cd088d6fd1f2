package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finbook-app/finbook_backend/internal/apperrors"
	"github.com/finbook-app/finbook_backend/internal/core/domain"
	portssvc "github.com/finbook-app/finbook_backend/internal/core/ports/services"
	"github.com/finbook-app/finbook_backend/internal/core/services"
	"github.com/finbook-app/finbook_backend/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
	tenantID        string
	userID          string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "1000",
		Name:        "Cash",
		AccountType: domain.Asset,
	}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.tenantID, "1000").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.Equal(suite.tenantID, account.TenantID)
	suite.Equal("1000", account.Code)
	suite.Equal(domain.Asset, account.AccountType)
	suite.Equal(domain.DebitNormal, account.NormalBalance())
	suite.True(account.IsActive)
	suite.Equal(suite.userID, account.CreatedBy)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "1000",
		Name:        "Cash again",
		AccountType: domain.Asset,
	}
	existing := &domain.Account{AccountID: uuid.NewString(), TenantID: suite.tenantID, Code: "1000"}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.tenantID, "1000").
		Return(existing, nil).Once()

	_, err := suite.service.CreateAccount(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateRace() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "2000",
		Name:        "Accounts Payable",
		AccountType: domain.Liability,
	}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.tenantID, "2000").
		Return(nil, apperrors.ErrNotFound).Once()
	// A concurrent create wins the race; the unique index reports it.
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.Anything).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateAccount(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidType() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "9999",
		Name:        "Mystery",
		AccountType: domain.AccountType("CONTRA"),
	}

	_, err := suite.service.CreateAccount(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByCode", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialUpdate() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{
		AccountID:   accountID,
		TenantID:    suite.tenantID,
		Code:        "5200",
		Name:        "Rent",
		AccountType: domain.Expense,
		IsActive:    true,
	}
	newName := "Rent Expense"
	req := dto.UpdateAccountRequest{Name: &newName}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.tenantID, accountID).
		Return(existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(nil).Once()

	account, err := suite.service.UpdateAccount(ctx, suite.tenantID, accountID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Rent Expense", account.Name)
	suite.Equal(domain.Expense, account.AccountType)
	suite.Equal(suite.userID, account.LastUpdatedBy)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NoChanges() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{AccountID: accountID, TenantID: suite.tenantID, Name: "Cash"}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.tenantID, accountID).
		Return(existing, nil).Once()

	account, err := suite.service.UpdateAccount(ctx, suite.tenantID, accountID, dto.UpdateAccountRequest{}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Cash", account.Name)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("DeactivateAccount", ctx, suite.tenantID, accountID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, suite.tenantID, accountID, suite.userID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Referenced() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("CountLedgerReferences", ctx, suite.tenantID, accountID).
		Return(int64(4), nil).Once()

	err := suite.service.DeleteAccount(ctx, suite.tenantID, accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrReferencedByLedger)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("CountLedgerReferences", ctx, suite.tenantID, accountID).
		Return(int64(0), nil).Once()
	suite.mockAccountRepo.On("DeleteAccount", ctx, suite.tenantID, accountID).
		Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, suite.tenantID, accountID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.tenantID, accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAccountByID(ctx, suite.tenantID, accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

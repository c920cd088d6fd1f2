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
)

type SeedServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.SeedSvcFacade
	tenantID        string
	userID          string
}

func (suite *SeedServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewSeedService(suite.mockAccountRepo)
	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *SeedServiceTestSuite) TestSeedChartOfAccounts_FreshTenant() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.tenantID, false).
		Return([]domain.Account{}, nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(nil).Times(16)

	created, err := suite.service.SeedChartOfAccounts(ctx, suite.tenantID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(16, created)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *SeedServiceTestSuite) TestSeedChartOfAccounts_SkipsExistingCodes() {
	ctx := context.Background()
	existing := []domain.Account{
		{AccountID: uuid.NewString(), TenantID: suite.tenantID, Code: "1000", Name: "Cash"},
		{AccountID: uuid.NewString(), TenantID: suite.tenantID, Code: "4000", Name: "Sales Revenue"},
	}

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.tenantID, false).
		Return(existing, nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(nil).Times(14)

	created, err := suite.service.SeedChartOfAccounts(ctx, suite.tenantID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(14, created)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *SeedServiceTestSuite) TestSeedChartOfAccounts_ConcurrentDuplicateSkipped() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.tenantID, false).
		Return([]domain.Account{}, nil).Once()
	// The first insert loses a race with a concurrent seed; the rest go in.
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(apperrors.ErrDuplicate).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(nil).Times(15)

	created, err := suite.service.SeedChartOfAccounts(ctx, suite.tenantID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(15, created)
}

func (suite *SeedServiceTestSuite) TestSeedChartOfAccounts_Rerun() {
	ctx := context.Background()
	all := make([]domain.Account, 0, 16)
	for _, code := range []string{"1000", "1100", "1200", "2000", "2100", "2200", "2300", "3000", "3100", "4000", "4100", "5000", "5100", "5200", "5300", "5900"} {
		all = append(all, domain.Account{AccountID: uuid.NewString(), TenantID: suite.tenantID, Code: code})
	}

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.tenantID, false).
		Return(all, nil).Once()

	created, err := suite.service.SeedChartOfAccounts(ctx, suite.tenantID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(0, created)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *SeedServiceTestSuite) TestSeedChartOfAccounts_ListFails() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.tenantID, false).
		Return(nil, apperrors.ErrInternal).Once()

	created, err := suite.service.SeedChartOfAccounts(ctx, suite.tenantID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInternal)
	suite.Equal(0, created)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func TestSeedServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SeedServiceTestSuite))
}

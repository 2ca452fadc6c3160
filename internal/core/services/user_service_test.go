package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/centsible/centsible_backend/internal/apperrors"
	"github.com/centsible/centsible_backend/internal/core/domain"
	portssvc "github.com/centsible/centsible_backend/internal/core/ports/services"
	"github.com/centsible/centsible_backend/internal/core/services"
	"github.com/centsible/centsible_backend/internal/dto"
	"github.com/centsible/centsible_backend/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestRegister() {
	var saved domain.User
	suite.mockUserRepo.On("SaveUser", suite.ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.User)
		}).
		Return(nil).Once()

	user, err := suite.service.Register(suite.ctx, dto.RegisterRequest{
		Username: "jordan",
		Password: "correct-horse-battery",
		Name:     "Jordan",
	})

	suite.Require().NoError(err)
	suite.Equal("jordan", user.Username)
	suite.NotEmpty(user.UserID)
	suite.NotEqual("correct-horse-battery", saved.PasswordHash)
	suite.True(utils.CheckPasswordHash("correct-horse-battery", saved.PasswordHash))
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateUsername() {
	suite.mockUserRepo.On("SaveUser", suite.ctx, mock.AnythingOfType("domain.User")).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.Register(suite.ctx, dto.RegisterRequest{
		Username: "jordan",
		Password: "correct-horse-battery",
		Name:     "Jordan",
	})
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticate() {
	hash, err := utils.HashPassword("correct-horse-battery")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "user-1", Username: "jordan", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "jordan").Return(stored, nil).Twice()

	user, err := suite.service.Authenticate(suite.ctx, "jordan", "correct-horse-battery")
	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)

	_, err = suite.service.Authenticate(suite.ctx, "jordan", "wrong-password")
	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUser() {
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Authenticate(suite.ctx, "ghost", "whatever")
	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	v1 "connect-account-service/api/account/v1"
	"connect-account-service/api/account/v1/accountv1connect"
	v1check "connect-account-service/api/check/v1"
	"connect-account-service/api/check/v1/checkv1connect"
	"connect-account-service/internal/biz/model"
	conf "connect-account-service/internal/conf/v1"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MockAccountUseCase 是 AccountUseCase 的模拟实现
type MockAccountUseCase struct {
	mock.Mock
}

func (m *MockAccountUseCase) Register(ctx context.Context, req *model.RegisterRequest) (model.Result, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.Result), args.Error(1)
}

func (m *MockAccountUseCase) Login(ctx context.Context, req *model.LoginRequest, isAdmin bool) (*model.LoginUserInfo, error) {
	args := m.Called(ctx, req, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginUserInfo), args.Error(1)
}

func (m *MockAccountUseCase) FindByID(ctx context.Context, id int64, isAdmin bool) (*model.UserInfo, error) {
	args := m.Called(ctx, id, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserInfo), args.Error(1)
}

func (m *MockAccountUseCase) FindDetailByID(ctx context.Context, id int64) (*model.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountUseCase) UpdatePassword(ctx context.Context, id int64, req *model.UpdatePasswordRequest) (model.Result, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(model.Result), args.Error(1)
}

func (m *MockAccountUseCase) UpdateProfile(ctx context.Context, id int64, req *model.UpdateProfileRequest) (model.Result, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(model.Result), args.Error(1)
}

// MockCheckUseCase 是 CheckUseCase 的模拟实现
type MockCheckUseCase struct {
	mock.Mock
}

func (m *MockCheckUseCase) Ready(ctx context.Context, req model.HealthCheckReq) (model.HealthCheckReply, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.HealthCheckReply), args.Error(1)
}

// AccountServiceTestSuite 是 AccountService 的测试套件
type AccountServiceTestSuite struct {
	suite.Suite
	useCase *MockAccountUseCase
	service accountv1connect.AccountServiceHandler
	authed  context.Context
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.useCase = new(MockAccountUseCase)
	suite.service = NewAccountService(suite.useCase)
	suite.authed = model.NewPrincipalContext(context.Background(), &model.Principal{UserID: 7})
}

func (suite *AccountServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := connect.NewRequest(&v1.RegisterRequest{
		Username: "alice",
		Password: "secret",
		NickName: "Alice",
		Email:    "alice@example.com",
		Captcha:  "123456",
	})

	suite.useCase.On("Register", ctx, &model.RegisterRequest{
		Username: "alice",
		Password: "secret",
		NickName: "Alice",
		Email:    "alice@example.com",
		Captcha:  "123456",
	}).Return(model.Succeeded("register success"), nil)

	resp, err := suite.service.Register(ctx, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int32(200), resp.Msg.Status)
	assert.Equal(suite.T(), "register success", resp.Msg.Message)
}

func (suite *AccountServiceTestSuite) TestRegister_SoftFailure() {
	ctx := context.Background()
	suite.useCase.On("Register", ctx, mock.Anything).Return(model.Failed("register failed"), nil)

	resp, err := suite.service.Register(ctx, connect.NewRequest(&v1.RegisterRequest{}))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int32(401), resp.Msg.Status)
}

func (suite *AccountServiceTestSuite) TestRegister_Error() {
	ctx := context.Background()
	expectedError := connect.NewError(connect.CodeInvalidArgument, model.ErrChallengeExpired)
	suite.useCase.On("Register", ctx, mock.Anything).Return(model.Result{}, expectedError)

	resp, err := suite.service.Register(ctx, connect.NewRequest(&v1.RegisterRequest{}))

	assert.Nil(suite.T(), resp)
	assert.Equal(suite.T(), expectedError, err)
}

func (suite *AccountServiceTestSuite) TestLogin_And_AdminLogin() {
	ctx := context.Background()
	info := &model.LoginUserInfo{
		ID:          1,
		Username:    "alice",
		Email:       "alice@example.com",
		CreateTime:  1714550400000,
		Roles:       []string{"admin"},
		Permissions: []string{"ddd"},
	}
	login := &model.LoginRequest{Username: "alice", Password: "secret"}
	suite.useCase.On("Login", ctx, login, false).Return(info, nil)
	suite.useCase.On("Login", ctx, login, true).Return(nil, connect.NewError(connect.CodeNotFound, model.ErrAccountNotFound))

	resp, err := suite.service.Login(ctx, connect.NewRequest(&v1.LoginRequest{Username: "alice", Password: "secret"}))
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.Msg.Id)
	assert.Equal(suite.T(), int64(1714550400000), resp.Msg.CreateTime)
	assert.Equal(suite.T(), []string{"admin"}, resp.Msg.Roles)
	assert.Equal(suite.T(), []string{"ddd"}, resp.Msg.Permissions)

	_, err = suite.service.AdminLogin(ctx, connect.NewRequest(&v1.LoginRequest{Username: "alice", Password: "secret"}))
	assert.Equal(suite.T(), connect.CodeNotFound, connect.CodeOf(err))
}

func (suite *AccountServiceTestSuite) TestInfo() {
	suite.useCase.On("FindByID", suite.authed, int64(7), false).Return(&model.UserInfo{
		ID:          7,
		Username:    "alice",
		Roles:       []string{"admin", "editor"},
		Permissions: []string{"ddd", "ccc", "eee"},
	}, nil)

	resp, err := suite.service.Info(suite.authed, connect.NewRequest(&v1.InfoRequest{}))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(7), resp.Msg.Id)
	assert.Equal(suite.T(), []string{"ddd", "ccc", "eee"}, resp.Msg.Permissions)
}

func (suite *AccountServiceTestSuite) TestInfo_Anonymous() {
	resp, err := suite.service.Info(context.Background(), connect.NewRequest(&v1.InfoRequest{}))

	assert.Nil(suite.T(), resp)
	assert.Equal(suite.T(), connect.CodeUnauthenticated, connect.CodeOf(err))
	suite.useCase.AssertNotCalled(suite.T(), "FindByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDetail() {
	created := time.UnixMilli(1714550400000)
	suite.useCase.On("FindDetailByID", suite.authed, int64(7)).Return(&model.Account{
		ID:           7,
		Username:     "alice",
		PasswordHash: "e10adc3949ba59abbe56e057f20f883e",
		Phone:        "13800000000",
		CreateTime:   created,
	}, nil)

	resp, err := suite.service.Detail(suite.authed, connect.NewRequest(&v1.DetailRequest{}))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "alice", resp.Msg.Username)
	assert.Equal(suite.T(), "13800000000", resp.Msg.Phone)
	assert.Equal(suite.T(), created.UnixMilli(), resp.Msg.CreateTime)
}

func (suite *AccountServiceTestSuite) TestAdminDetail_Absent() {
	ctx := context.Background()
	suite.useCase.On("FindDetailByID", ctx, int64(42)).Return(nil, nil)

	resp, err := suite.service.AdminDetail(ctx, connect.NewRequest(&v1.AdminDetailRequest{Id: 42}))

	assert.Nil(suite.T(), resp)
	assert.Equal(suite.T(), connect.CodeNotFound, connect.CodeOf(err))
	assert.ErrorIs(suite.T(), err, model.ErrAccountNotFound)
}

func (suite *AccountServiceTestSuite) TestUpdatePassword() {
	suite.useCase.On("UpdatePassword", suite.authed, int64(7), &model.UpdatePasswordRequest{
		Password: "new",
		Email:    "alice@example.com",
		Captcha:  "111111",
	}).Return(model.Succeeded("password updated"), nil)

	resp, err := suite.service.UpdatePassword(suite.authed, connect.NewRequest(&v1.UpdatePasswordRequest{
		Password: "new",
		Email:    "alice@example.com",
		Captcha:  "111111",
	}))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int32(200), resp.Msg.Status)
}

func (suite *AccountServiceTestSuite) TestUpdateProfile() {
	suite.useCase.On("UpdateProfile", suite.authed, int64(7), &model.UpdateProfileRequest{
		NickName: "New",
		Email:    "alice@example.com",
		Captcha:  "222222",
	}).Return(model.Failed("profile update failed"), nil)

	resp, err := suite.service.UpdateProfile(suite.authed, connect.NewRequest(&v1.UpdateProfileRequest{
		NickName: "New",
		Email:    "alice@example.com",
		Captcha:  "222222",
	}))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int32(401), resp.Msg.Status)
	assert.Equal(suite.T(), "profile update failed", resp.Msg.Message)
}

func (suite *AccountServiceTestSuite) TestUpdateProfile_Error() {
	expectedError := connect.NewError(connect.CodeInvalidArgument, model.ErrChallengeMismatch)
	suite.useCase.On("UpdateProfile", suite.authed, int64(7), mock.Anything).Return(model.Result{}, expectedError)

	resp, err := suite.service.UpdateProfile(suite.authed, connect.NewRequest(&v1.UpdateProfileRequest{}))

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, model.ErrChallengeMismatch)
}

// CheckServiceTestSuite 是 CheckService 的测试套件
type CheckServiceTestSuite struct {
	suite.Suite
	checkUseCase *MockCheckUseCase
	checkService checkv1connect.CheckServiceHandler
}

func (suite *CheckServiceTestSuite) SetupTest() {
	suite.checkUseCase = new(MockCheckUseCase)
	suite.checkService = NewCheckService(suite.checkUseCase)
}

func (suite *CheckServiceTestSuite) TestReady_Success() {
	ctx := context.Background()
	req := connect.NewRequest(&v1check.ReadyCheckReq{})

	expectedReply := model.HealthCheckReply{
		Status:  "Ready",
		Details: nil,
	}
	suite.checkUseCase.On("Ready", ctx, model.HealthCheckReq{}).Return(expectedReply, nil)

	resp, err := suite.checkService.Ready(ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), "Ready", resp.Msg.GetFields()["status"].GetStringValue())
	assert.NotContains(suite.T(), resp.Msg.GetFields(), "details")
}

func (suite *CheckServiceTestSuite) TestReady_Error() {
	ctx := context.Background()
	req := connect.NewRequest(&v1check.ReadyCheckReq{})

	expectedError := errors.New("service unavailable")
	suite.checkUseCase.On("Ready", ctx, model.HealthCheckReq{}).Return(model.HealthCheckReply{}, expectedError)

	resp, err := suite.checkService.Ready(ctx, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Equal(suite.T(), expectedError, err)
}

// 运行测试套件
func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func TestCheckServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CheckServiceTestSuite))
}

func TestNewRules(t *testing.T) {
	rules := NewRules(&conf.Bootstrap{})

	assert.Equal(t, model.Requirement{}, rules.Lookup(accountv1connect.AccountServiceRegisterProcedure))
	assert.Equal(t, model.Requirement{}, rules.Lookup(accountv1connect.AccountServiceLoginProcedure))
	assert.True(t, rules.Lookup(accountv1connect.AccountServiceInfoProcedure).RequireLogin)
	assert.Equal(t, []string{PermissionUserRead}, rules.Lookup(accountv1connect.AccountServiceAdminDetailProcedure).RequirePermissions)
}

func TestNewRules_ConfigOverlay(t *testing.T) {
	rules := NewRules(&conf.Bootstrap{
		Guard: &conf.Guard{
			Rules: []*conf.Guard_Rule{
				{Procedure: accountv1connect.AccountServiceRegisterProcedure, RequirePermissions: []string{"user:create"}},
				{Procedure: accountv1connect.AccountServiceAdminDetailProcedure, RequireLogin: true, RequirePermissions: []string{"ddd", "ccc"}},
				nil,
				{RequireLogin: true},
			},
		},
	})

	assert.Equal(t, []string{"user:create"}, rules.Lookup(accountv1connect.AccountServiceRegisterProcedure).RequirePermissions)
	assert.Equal(t, []string{"ddd", "ccc"}, rules.Lookup(accountv1connect.AccountServiceAdminDetailProcedure).RequirePermissions)
	assert.NotContains(t, rules, "")
}

func TestNewAccountService(t *testing.T) {
	service := NewAccountService(new(MockAccountUseCase))

	assert.NotNil(t, service)
	assert.IsType(t, &AccountService{}, service)
}

func TestNewCheckService(t *testing.T) {
	service := NewCheckService(new(MockCheckUseCase))

	assert.NotNil(t, service)
	assert.IsType(t, &CheckService{}, service)
}

package service

import (
	"context"

	v1 "connect-account-service/api/account/v1"
	"connect-account-service/api/account/v1/accountv1connect"
	"connect-account-service/internal/biz/model"

	"connectrpc.com/connect"
)

// 显式接口检查
var _ accountv1connect.AccountServiceHandler = (*AccountService)(nil)

// AccountService 实现账户 Connect 服务
type AccountService struct {
	uc model.AccountUseCase
}

func NewAccountService(uc model.AccountUseCase) accountv1connect.AccountServiceHandler {
	return &AccountService{
		uc: uc,
	}
}

func (s *AccountService) Register(ctx context.Context, req *connect.Request[v1.RegisterRequest]) (*connect.Response[v1.ResultReply], error) {
	result, err := s.uc.Register(ctx, &model.RegisterRequest{
		Username: req.Msg.Username,
		Password: req.Msg.Password,
		NickName: req.Msg.NickName,
		Email:    req.Msg.Email,
		Captcha:  req.Msg.Captcha,
	})
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(toResultReply(result)), nil
}

func (s *AccountService) Login(ctx context.Context, req *connect.Request[v1.LoginRequest]) (*connect.Response[v1.LoginReply], error) {
	return s.login(ctx, req.Msg, false)
}

func (s *AccountService) AdminLogin(ctx context.Context, req *connect.Request[v1.LoginRequest]) (*connect.Response[v1.LoginReply], error) {
	return s.login(ctx, req.Msg, true)
}

func (s *AccountService) login(ctx context.Context, msg *v1.LoginRequest, isAdmin bool) (*connect.Response[v1.LoginReply], error) {
	info, err := s.uc.Login(ctx, &model.LoginRequest{
		Username: msg.Username,
		Password: msg.Password,
	}, isAdmin)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&v1.LoginReply{
		Id:          info.ID,
		Username:    info.Username,
		NickName:    info.NickName,
		Avatar:      info.Avatar,
		Email:       info.Email,
		IsAdmin:     info.IsAdmin,
		Phone:       info.Phone,
		IsFrozen:    info.IsFrozen,
		CreateTime:  info.CreateTime,
		Roles:       info.Roles,
		Permissions: info.Permissions,
	}), nil
}

func (s *AccountService) Info(ctx context.Context, _ *connect.Request[v1.InfoRequest]) (*connect.Response[v1.InfoReply], error) {
	principal, err := principalOf(ctx)
	if err != nil {
		return nil, err
	}

	info, err := s.uc.FindByID(ctx, principal.UserID, principal.IsAdmin)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&v1.InfoReply{
		Id:          info.ID,
		Username:    info.Username,
		NickName:    info.NickName,
		Avatar:      info.Avatar,
		IsAdmin:     info.IsAdmin,
		Roles:       info.Roles,
		Permissions: info.Permissions,
	}), nil
}

func (s *AccountService) Detail(ctx context.Context, _ *connect.Request[v1.DetailRequest]) (*connect.Response[v1.DetailReply], error) {
	principal, err := principalOf(ctx)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, principal.UserID)
}

func (s *AccountService) AdminDetail(ctx context.Context, req *connect.Request[v1.AdminDetailRequest]) (*connect.Response[v1.DetailReply], error) {
	return s.detail(ctx, req.Msg.Id)
}

func (s *AccountService) detail(ctx context.Context, id int64) (*connect.Response[v1.DetailReply], error) {
	account, err := s.uc.FindDetailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, connect.NewError(connect.CodeNotFound, model.ErrAccountNotFound)
	}

	return connect.NewResponse(&v1.DetailReply{
		Id:         account.ID,
		Username:   account.Username,
		NickName:   account.NickName,
		Email:      account.Email,
		Avatar:     account.Avatar,
		Phone:      account.Phone,
		IsAdmin:    account.IsAdmin,
		IsFrozen:   account.IsFrozen,
		CreateTime: account.CreateTime.UnixMilli(),
	}), nil
}

func (s *AccountService) UpdatePassword(ctx context.Context, req *connect.Request[v1.UpdatePasswordRequest]) (*connect.Response[v1.ResultReply], error) {
	principal, err := principalOf(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.uc.UpdatePassword(ctx, principal.UserID, &model.UpdatePasswordRequest{
		Password: req.Msg.Password,
		Email:    req.Msg.Email,
		Captcha:  req.Msg.Captcha,
	})
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(toResultReply(result)), nil
}

func (s *AccountService) UpdateProfile(ctx context.Context, req *connect.Request[v1.UpdateProfileRequest]) (*connect.Response[v1.ResultReply], error) {
	principal, err := principalOf(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.uc.UpdateProfile(ctx, principal.UserID, &model.UpdateProfileRequest{
		NickName: req.Msg.NickName,
		Avatar:   req.Msg.Avatar,
		Email:    req.Msg.Email,
		Captcha:  req.Msg.Captcha,
	})
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(toResultReply(result)), nil
}

// principalOf 读取拦截器放入的身份; 正常情况下 Guard 已经拦截了匿名请求
func principalOf(ctx context.Context) (*model.Principal, error) {
	principal, ok := model.PrincipalFromContext(ctx)
	if !ok {
		return nil, connect.NewError(connect.CodeUnauthenticated, model.ErrUnauthenticated)
	}
	return principal, nil
}

func toResultReply(r model.Result) *v1.ResultReply {
	return &v1.ResultReply{
		Status:  int32(r.Status),
		Message: r.Message,
	}
}

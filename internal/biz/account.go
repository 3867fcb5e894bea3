package biz

import (
	"context"
	"errors"
	"fmt"

	"connect-account-service/internal/biz/model"
	conf "connect-account-service/internal/conf/v1"
	"connect-account-service/internal/data"
	"connect-account-service/internal/pkg/hash"

	"connectrpc.com/connect"
	"go.uber.org/zap"
)

const (
	msgRegisterSuccess      = "register success"
	msgRegisterFailed       = "register failed"
	msgPasswordUpdated      = "password updated"
	msgPasswordUpdateFailed = "password update failed"
	msgProfileUpdated       = "profile updated"
	msgProfileUpdateFailed  = "profile update failed"
)

type AccountUseCase struct {
	repo    data.AccountRepo
	captcha data.CaptchaStore
	hasher  hash.Hasher
	prefix  *conf.Auth_Captcha
	l       *zap.Logger
}

func NewAccountUseCase(repo data.AccountRepo, captcha data.CaptchaStore, cfg *conf.Bootstrap, logger *zap.Logger) (model.AccountUseCase, error) {
	if cfg.Auth == nil || cfg.Auth.Captcha == nil {
		return nil, fmt.Errorf("auth.captcha configuration is required")
	}
	hasher, err := hash.New(cfg.Auth.PasswordHasher, cfg.Auth.PasswordPepper)
	if err != nil {
		return nil, err
	}
	return newAccountUseCase(repo, captcha, hasher, cfg.Auth.Captcha, logger), nil
}

func newAccountUseCase(repo data.AccountRepo, captcha data.CaptchaStore, hasher hash.Hasher, prefix *conf.Auth_Captcha, logger *zap.Logger) *AccountUseCase {
	return &AccountUseCase{
		repo:    repo,
		captcha: captcha,
		hasher:  hasher,
		prefix:  prefix,
		l:       logger,
	}
}

func (uc *AccountUseCase) Register(ctx context.Context, req *model.RegisterRequest) (model.Result, error) {
	if err := uc.verifyCaptcha(ctx, uc.prefix.RegisterPrefix, req.Email, req.Captcha); err != nil {
		return model.Result{}, err
	}

	// 预检查只是快速失败, 并发注册由唯一约束兜底
	_, err := uc.repo.FindOne(ctx, model.AccountFilter{Username: &req.Username}, model.FindOptions{})
	switch {
	case err == nil:
		return model.Result{}, connect.NewError(connect.CodeAlreadyExists, model.ErrDuplicateUsername)
	case !errors.Is(err, model.ErrNotFound):
		return model.Result{}, lookupError(err)
	}

	account := &model.Account{
		Username:     req.Username,
		PasswordHash: uc.hasher.Digest(req.Password),
		NickName:     req.NickName,
		Email:        req.Email,
	}
	if _, err := uc.repo.Save(ctx, account); err != nil {
		if errors.Is(err, model.ErrUserAlreadyExists) {
			return model.Result{}, connect.NewError(connect.CodeAlreadyExists, model.ErrDuplicateUsername)
		}
		if cerr := contextError(err); cerr != nil {
			return model.Result{}, cerr
		}
		uc.l.Error("Register failed", zap.String("username", req.Username), zap.Error(err))
		return model.Failed(msgRegisterFailed), nil
	}

	return model.Succeeded(msgRegisterSuccess), nil
}

func (uc *AccountUseCase) Login(ctx context.Context, req *model.LoginRequest, isAdmin bool) (*model.LoginUserInfo, error) {
	account, err := uc.repo.FindOne(ctx,
		model.AccountFilter{Username: &req.Username, IsAdmin: &isAdmin},
		model.WithRolePermissions(),
	)
	if err != nil {
		return nil, notFoundOr(err)
	}

	if !hash.Equal(account.PasswordHash, uc.hasher.Digest(req.Password)) {
		return nil, connect.NewError(connect.CodeUnauthenticated, model.ErrInvalidCredentials)
	}

	return &model.LoginUserInfo{
		ID:          account.ID,
		Username:    account.Username,
		NickName:    account.NickName,
		Avatar:      account.Avatar,
		Email:       account.Email,
		IsAdmin:     account.IsAdmin,
		Phone:       account.Phone,
		IsFrozen:    account.IsFrozen,
		CreateTime:  account.CreateTime.UnixMilli(),
		Roles:       RoleNames(account.Roles),
		Permissions: EffectivePermissions(account.Roles),
	}, nil
}

func (uc *AccountUseCase) FindByID(ctx context.Context, id int64, isAdmin bool) (*model.UserInfo, error) {
	account, err := uc.repo.FindOne(ctx,
		model.AccountFilter{ID: &id, IsAdmin: &isAdmin},
		model.WithRolePermissions(),
	)
	if err != nil {
		return nil, notFoundOr(err)
	}

	return &model.UserInfo{
		ID:          account.ID,
		Username:    account.Username,
		NickName:    account.NickName,
		Avatar:      account.Avatar,
		IsAdmin:     account.IsAdmin,
		Roles:       RoleNames(account.Roles),
		Permissions: EffectivePermissions(account.Roles),
	}, nil
}

// FindDetailByID 不加载角色; 账户不存在时返回 nil, nil
func (uc *AccountUseCase) FindDetailByID(ctx context.Context, id int64) (*model.Account, error) {
	account, err := uc.repo.FindOne(ctx, model.AccountFilter{ID: &id}, model.FindOptions{})
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, lookupError(err)
	}
	return account, nil
}

func (uc *AccountUseCase) UpdatePassword(ctx context.Context, id int64, req *model.UpdatePasswordRequest) (model.Result, error) {
	if err := uc.verifyCaptcha(ctx, uc.prefix.UpdatePasswordPrefix, req.Email, req.Captcha); err != nil {
		return model.Result{}, err
	}

	account, err := uc.repo.FindOne(ctx, model.AccountFilter{ID: &id}, model.FindOptions{})
	if err != nil {
		return model.Result{}, notFoundOr(err)
	}

	account.PasswordHash = uc.hasher.Digest(req.Password)

	return uc.save(ctx, account, msgPasswordUpdated, msgPasswordUpdateFailed)
}

func (uc *AccountUseCase) UpdateProfile(ctx context.Context, id int64, req *model.UpdateProfileRequest) (model.Result, error) {
	if err := uc.verifyCaptcha(ctx, uc.prefix.UpdateProfilePrefix, req.Email, req.Captcha); err != nil {
		return model.Result{}, err
	}

	account, err := uc.repo.FindOne(ctx, model.AccountFilter{ID: &id}, model.FindOptions{})
	if err != nil {
		return model.Result{}, notFoundOr(err)
	}

	if req.NickName != "" {
		account.NickName = req.NickName
	}
	if req.Avatar != "" {
		account.Avatar = req.Avatar
	}

	return uc.save(ctx, account, msgProfileUpdated, msgProfileUpdateFailed)
}

// save 保存失败降级为软失败结果, 只有上下文取消会作为 error 返回
func (uc *AccountUseCase) save(ctx context.Context, account *model.Account, okMsg, failMsg string) (model.Result, error) {
	if _, err := uc.repo.Save(ctx, account); err != nil {
		if cerr := contextError(err); cerr != nil {
			return model.Result{}, cerr
		}
		uc.l.Error(failMsg, zap.Int64("account_id", account.ID), zap.Error(err))
		return model.Failed(failMsg), nil
	}
	return model.Succeeded(okMsg), nil
}

func (uc *AccountUseCase) verifyCaptcha(ctx context.Context, prefix, email, supplied string) error {
	code, ok, err := uc.captcha.Get(ctx, data.CaptchaKey(prefix, email))
	if err != nil {
		if cerr := contextError(err); cerr != nil {
			return cerr
		}
		return connect.NewError(connect.CodeUnavailable, err)
	}
	// 空验证码视同已失效
	if !ok || code == "" {
		return connect.NewError(connect.CodeInvalidArgument, model.ErrChallengeExpired)
	}
	if code != supplied {
		return connect.NewError(connect.CodeInvalidArgument, model.ErrChallengeMismatch)
	}
	return nil
}

func notFoundOr(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, model.ErrAccountNotFound)
	}
	return lookupError(err)
}

func lookupError(err error) error {
	if cerr := contextError(err); cerr != nil {
		return cerr
	}
	return connect.NewError(connect.CodeInternal, err)
}

func contextError(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}
	return nil
}

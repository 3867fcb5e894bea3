package service

import (
	"connect-account-service/api/account/v1/accountv1connect"
	"connect-account-service/internal/biz/model"
	conf "connect-account-service/internal/conf/v1"
)

// PermissionUserRead 查看任意账户详情
const PermissionUserRead = "user:read"

// NewRules 返回账户服务各操作的访问要求. 注册, 登录与健康检查未声明, 即公开.
// guard.rules 中的同名操作会覆盖静态声明.
func NewRules(cfg *conf.Bootstrap) model.Rules {
	rules := model.Rules{
		accountv1connect.AccountServiceInfoProcedure:           {RequireLogin: true},
		accountv1connect.AccountServiceDetailProcedure:         {RequireLogin: true},
		accountv1connect.AccountServiceUpdatePasswordProcedure: {RequireLogin: true},
		accountv1connect.AccountServiceUpdateProfileProcedure:  {RequireLogin: true},
		accountv1connect.AccountServiceAdminDetailProcedure: {
			RequireLogin:       true,
			RequirePermissions: []string{PermissionUserRead},
		},
	}

	if cfg.Guard == nil {
		return rules
	}
	for _, r := range cfg.Guard.Rules {
		if r == nil || r.Procedure == "" {
			continue
		}
		rules[r.Procedure] = model.Requirement{
			RequireLogin:       r.RequireLogin,
			RequirePermissions: r.RequirePermissions,
		}
	}
	return rules
}

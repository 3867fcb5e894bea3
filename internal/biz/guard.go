package biz

import (
	"context"
	"errors"

	"connect-account-service/internal/biz/model"

	"connectrpc.com/connect"
	"go.uber.org/zap"
)

// Guard 根据操作声明的访问要求放行或拒绝请求
type Guard struct {
	rules    model.Rules
	accounts model.AccountUseCase
	l        *zap.Logger
}

func NewGuard(rules model.Rules, accounts model.AccountUseCase, logger *zap.Logger) *Guard {
	return &Guard{
		rules:    rules,
		accounts: accounts,
		l:        logger,
	}
}

// Authorize 检查 ctx 中的 Principal 是否满足 procedure 的访问要求.
// 未声明的操作视为公开.
func (g *Guard) Authorize(ctx context.Context, procedure string) error {
	req := g.rules.Lookup(procedure)
	principal, authenticated := model.PrincipalFromContext(ctx)

	if req.RequireLogin && !authenticated {
		return connect.NewError(connect.CodeUnauthenticated, model.ErrUnauthenticated)
	}
	if len(req.RequirePermissions) == 0 {
		return nil
	}

	var granted []string
	if authenticated {
		info, err := g.accounts.FindByID(ctx, principal.UserID, principal.IsAdmin)
		if err != nil {
			if errors.Is(err, model.ErrAccountNotFound) {
				return connect.NewError(connect.CodeUnauthenticated, model.ErrUnauthenticated)
			}
			return err
		}
		granted = info.Permissions
	}

	if !ContainsAll(granted, req.RequirePermissions) {
		g.l.Debug("Permission denied",
			zap.String("procedure", procedure),
			zap.Strings("required", req.RequirePermissions),
			zap.Strings("granted", granted),
		)
		return connect.NewError(connect.CodePermissionDenied, model.ErrForbidden)
	}
	return nil
}

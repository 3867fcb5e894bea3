package model

import "context"

// Principal 上游认证后得到的请求身份
type Principal struct {
	UserID  int64
	IsAdmin bool
}

type principalKey struct{}

func NewPrincipalContext(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext 未认证的请求返回 nil, false
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}

// Requirement 某个操作声明的访问要求, 零值表示公开
type Requirement struct {
	RequireLogin       bool
	RequirePermissions []string
}

// Rules 按操作标识 (connect procedure) 索引的访问要求表
type Rules map[string]Requirement

// Lookup 未声明的操作返回零值 Requirement
func (r Rules) Lookup(procedure string) Requirement {
	if req, ok := r[procedure]; ok {
		return req
	}
	return Requirement{}
}

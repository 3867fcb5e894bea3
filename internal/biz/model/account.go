package model

import (
	"context"
	"time"
)

// Permission 权限点, Code 为权限标识 (例如 "user:read")
type Permission struct {
	ID          int64
	Code        string
	Description string
}

// Role 角色, Permissions 保持分配顺序
type Role struct {
	ID          int64
	Name        string
	Permissions []Permission
}

// Account 账户记录
type Account struct {
	ID           int64
	Username     string
	PasswordHash string
	NickName     string
	Email        string
	Avatar       string
	Phone        string
	IsAdmin      bool
	IsFrozen     bool
	CreateTime   time.Time
	// Roles 仅在查询时 Include 了 RelationRoles 才会加载
	Roles []Role
}

// Relation 查询时需要预加载的关联
type Relation string

const (
	RelationRoles           Relation = "roles"
	RelationRolePermissions Relation = "roles.permissions"
)

// AccountFilter 查询条件, nil 字段不参与过滤, 多个字段取 AND
type AccountFilter struct {
	ID       *int64
	Username *string
	IsAdmin  *bool
}

// FindOptions 查询选项
type FindOptions struct {
	Include []Relation
}

// Includes 报告是否需要加载 rel; roles.permissions 隐含 roles
func (o FindOptions) Includes(rel Relation) bool {
	for _, r := range o.Include {
		if r == rel || (rel == RelationRoles && r == RelationRolePermissions) {
			return true
		}
	}
	return false
}

// WithRolePermissions 预加载 roles 与 roles.permissions
func WithRolePermissions() FindOptions {
	return FindOptions{Include: []Relation{RelationRoles, RelationRolePermissions}}
}

type RegisterRequest struct {
	Username string
	Password string
	NickName string
	Email    string
	Captcha  string
}

type LoginRequest struct {
	Username string
	Password string
}

type UpdatePasswordRequest struct {
	Password string
	Email    string
	Captcha  string
}

// UpdateProfileRequest 空字符串表示不修改该字段
type UpdateProfileRequest struct {
	NickName string
	Avatar   string
	Email    string
	Captcha  string
}

// LoginUserInfo 登录返回的用户视图
type LoginUserInfo struct {
	ID          int64
	Username    string
	NickName    string
	Avatar      string
	Email       string
	IsAdmin     bool
	Phone       string
	IsFrozen    bool
	CreateTime  int64 // epoch 毫秒
	Roles       []string
	Permissions []string
}

// UserInfo FindByID 返回的精简视图
type UserInfo struct {
	ID          int64
	Username    string
	NickName    string
	Avatar      string
	IsAdmin     bool
	Roles       []string
	Permissions []string
}

// AccountUseCase 账户用例接口
type AccountUseCase interface {
	Register(ctx context.Context, req *RegisterRequest) (Result, error)
	Login(ctx context.Context, req *LoginRequest, isAdmin bool) (*LoginUserInfo, error)
	FindByID(ctx context.Context, id int64, isAdmin bool) (*UserInfo, error)
	FindDetailByID(ctx context.Context, id int64) (*Account, error)
	UpdatePassword(ctx context.Context, id int64, req *UpdatePasswordRequest) (Result, error)
	UpdateProfile(ctx context.Context, id int64, req *UpdateProfileRequest) (Result, error)
}

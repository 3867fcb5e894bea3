package model

import "errors"

// 硬失败, 由 biz 层包装为 connect.Error 返回
var (
	ErrChallengeExpired   = errors.New("captcha expired")
	ErrChallengeMismatch  = errors.New("captcha mismatch")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("login required")
	ErrForbidden          = errors.New("permission denied")
)

// ErrUserAlreadyExists 数据层唯一约束冲突
var ErrUserAlreadyExists = errors.New("user already exists")

// ErrNotFound 数据层查询无结果
var ErrNotFound = errors.New("record not found")

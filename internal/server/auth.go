package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"connect-account-service/internal/biz"
	"connect-account-service/internal/biz/model"
	conf "connect-account-service/internal/conf/v1"

	"connectrpc.com/connect"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

const (
	claimSubject = "sub"
	claimAdmin   = "adm"
)

// AuthInterceptor 从 Authorization 头解析 Principal, 再交给 Guard 判定
type AuthInterceptor struct {
	secret []byte
	guard  *biz.Guard
	l      *zap.Logger
}

func NewAuthInterceptor(cfg *conf.Bootstrap, guard *biz.Guard, logger *zap.Logger) *AuthInterceptor {
	var secret []byte
	if cfg.Auth != nil && cfg.Auth.JwtSecret != "" {
		secret = []byte(cfg.Auth.JwtSecret)
	} else {
		logger.Warn("auth.jwt_secret is empty, every request is treated as anonymous")
	}
	return &AuthInterceptor{
		secret: secret,
		guard:  guard,
		l:      logger,
	}
}

func (a *AuthInterceptor) Unary() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if p := a.principal(req.Header()); p != nil {
				ctx = model.NewPrincipalContext(ctx, p)
			}
			if err := a.guard.Authorize(ctx, req.Spec().Procedure); err != nil {
				return nil, err
			}
			return next(ctx, req)
		}
	}
}

// principal 令牌缺失或无效时返回 nil
func (a *AuthInterceptor) principal(h http.Header) *model.Principal {
	if a.secret == nil {
		return nil
	}
	raw, ok := strings.CutPrefix(h.Get("Authorization"), bearerPrefix)
	if !ok || raw == "" {
		return nil
	}

	p, err := a.parse(raw)
	if err != nil {
		a.l.Debug("Rejected bearer token", zap.Error(err))
		return nil
	}
	return p
}

// parse 校验 HS256 签名与 exp. sub 为账户 ID, 上游可能签成数字或字符串.
func (a *AuthInterceptor) parse(raw string) (*model.Principal, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithJSONNumber(),
	)
	if err != nil {
		return nil, err
	}

	id, err := subjectID(claims[claimSubject])
	if err != nil {
		return nil, err
	}
	admin, _ := claims[claimAdmin].(bool)
	return &model.Principal{UserID: id, IsAdmin: admin}, nil
}

func subjectID(sub any) (int64, error) {
	switch v := sub.(type) {
	case nil:
		return 0, errors.New("token has no subject")
	case json.Number:
		return v.Int64()
	case string:
		if v == "" {
			return 0, errors.New("token has no subject")
		}
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unsupported subject type %T", sub)
	}
}

package data

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CaptchaStore 只读访问外部下发的邮箱验证码.
// 验证码由其他渠道写入并依靠 TTL 过期, 这里从不写入或删除.
type CaptchaStore interface {
	// Get 返回 key 对应的验证码; 不存在或已过期时 ok 为 false
	Get(ctx context.Context, key string) (code string, ok bool, err error)
}

type captchaStore struct {
	rdb redis.Cmdable
	l   *zap.Logger
}

func NewCaptchaStore(data *Data, logger *zap.Logger) CaptchaStore {
	return newCaptchaStore(data.rdb, logger)
}

func newCaptchaStore(rdb redis.Cmdable, logger *zap.Logger) *captchaStore {
	return &captchaStore{
		rdb: rdb,
		l:   logger,
	}
}

func (s *captchaStore) Get(ctx context.Context, key string) (string, bool, error) {
	code, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		s.l.Error("Failed to read captcha", zap.String("key", key), zap.Error(err))
		return "", false, fmt.Errorf("get captcha %s: %w", key, err)
	}
	return code, true, nil
}

// CaptchaKey 组装缓存 key: <purpose>_<email>
func CaptchaKey(prefix, email string) string {
	return prefix + "_" + email
}

package data

import (
	"context"

	"connect-account-service/internal/biz/model"

	"connectrpc.com/connect"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

type cachePinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type checkRepo struct {
	db  dbPinger
	rdb cachePinger
	l   *zap.Logger
}

type CheckRepo interface {
	Ready(context.Context, model.HealthCheckReq) (model.HealthCheckReply, error)
}

func NewCheckRepo(data *Data, l *zap.Logger) CheckRepo {
	return newCheckRepo(data.db, data.rdb, l)
}

func newCheckRepo(db dbPinger, rdb cachePinger, l *zap.Logger) *checkRepo {
	return &checkRepo{
		db:  db,
		rdb: rdb,
		l:   l,
	}
}

func (c *checkRepo) Ready(ctx context.Context, _ model.HealthCheckReq) (model.HealthCheckReply, error) {
	if err := c.db.Ping(ctx); err != nil {
		c.l.Warn("Database not ready", zap.Error(err))
		return model.HealthCheckReply{
			Status: "Unhealthy",
			Details: map[string]string{
				"Components": "Postgres",
				"Message":    err.Error(),
			},
		}, connect.NewError(connect.CodeUnavailable, err)
	}
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		c.l.Warn("Redis not ready", zap.Error(err))
		return model.HealthCheckReply{
			Status: "Unhealthy",
			Details: map[string]string{
				"Components": "Redis",
				"Message":    err.Error(),
			},
		}, connect.NewError(connect.CodeUnavailable, err)
	}
	return model.HealthCheckReply{
		Status:  "Ready",
		Details: nil,
	}, nil
}

package data

import (
	"context"
	"embed"
	"fmt"
	"time"

	conf "connect-account-service/internal/conf/v1"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Module 导出给 FX 的 Provider
var Module = fx.Module("data",
	fx.Provide(
		NewData,
		NewDB,
		NewCache,
		NewAccountRepo,
		NewCaptchaStore,
		NewCheckRepo,
	),
)

// Data 包含所有数据源的客户端
type Data struct {
	db  *pgxpool.Pool
	rdb *redis.Client
}

// NewData 是 Data 的构造函数
func NewData(db *pgxpool.Pool, rdb *redis.Client) *Data {
	return &Data{
		db:  db,
		rdb: rdb,
	}
}

// NewDB 创建数据库连接池, 按配置执行迁移
func NewDB(lc fx.Lifecycle, cfg *conf.Bootstrap, logger *zap.Logger) (*pgxpool.Pool, error) {
	dbCfg := cfg.Data.Database

	connString := fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=%s&timezone=%s",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.DbName,
		dbCfg.SslMode,
		dbCfg.Timezone,
	)

	poolCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse database config failed: %w", err)
	}
	if dbCfg.MaxConns > 0 {
		poolCfg.MaxConns = dbCfg.MaxConns
	}
	if dbCfg.MinConns > 0 {
		poolCfg.MinConns = dbCfg.MinConns
	}

	// 链路追踪配置
	poolCfg.ConnConfig.Tracer = otelpgx.NewTracer()

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database failed: %w", err)
	}

	if err := otelpgx.RecordStats(pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to record database stats: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	logger.Info("Database connected",
		zap.String("host", dbCfg.Host),
		zap.Int32("port", dbCfg.Port),
		zap.String("db", dbCfg.DbName),
	)

	if dbCfg.Migrate {
		if err := Migrate(context.Background(), pool, logger); err != nil {
			pool.Close()
			return nil, err
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing database connection...")
			pool.Close()
			return nil
		},
	})

	return pool, nil
}

// Migrate 执行内嵌的 goose 迁移
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}
	logger.Info("Database migrated", zap.Int64("version", version))
	return nil
}

// NewCache 创建 Redis 客户端
func NewCache(lc fx.Lifecycle, cfg *conf.Bootstrap, logger *zap.Logger) (*redis.Client, error) {
	redisCfg := cfg.Data.Redis

	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisCfg.Host, redisCfg.Port),
		Username:     redisCfg.Username,
		Password:     redisCfg.Password,
		DB:           int(redisCfg.Db),
		DialTimeout:  time.Duration(redisCfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(redisCfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(redisCfg.WriteTimeout) * time.Second,
		PoolSize:     int(redisCfg.PoolSize),
		MinIdleConns: int(redisCfg.MinIdleConns),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		// 关闭连接以避免资源泄漏
		if closeErr := rdb.Close(); closeErr != nil {
			logger.Warn("Failed to close redis client", zap.Error(closeErr))
		}
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	logger.Info("Redis connected", zap.String("host", redisCfg.Host), zap.Int32("port", redisCfg.Port))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Redis connection...")
			return rdb.Close()
		},
	})

	return rdb, nil
}

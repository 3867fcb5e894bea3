package log

import (
	"context"
	"fmt"

	confv1 "connect-account-service/internal/conf/v1"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Module 提供全局 *zap.Logger
var Module = fx.Module("log",
	fx.Provide(NewLogger),
)

// NewLogger 根据 log 配置创建 zap logger, 进程退出时 Sync
func NewLogger(lc fx.Lifecycle, conf *confv1.Bootstrap) (*zap.Logger, error) {
	logger, err := Build(conf.Log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			_ = logger.Sync()
			return nil
		},
	})
	return logger, nil
}

// Build 不依赖 fx 的构造, 便于测试与命令行工具复用
func Build(c *confv1.Log) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	format := "json"
	if c != nil {
		if c.Level != "" {
			if err := level.Set(c.Level); err != nil {
				return nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
			}
		}
		if c.Format != "" {
			format = c.Format
		}
	}

	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

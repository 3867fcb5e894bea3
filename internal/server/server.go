package server

import (
	"context"
	"net/http"
	"time"

	"connect-account-service/api/account/v1/accountv1connect"
	"connect-account-service/api/check/v1/checkv1connect"
	conf "connect-account-service/internal/conf/v1"

	"connectrpc.com/connect"
	connectcors "connectrpc.com/cors"
	"connectrpc.com/otelconnect"
	"github.com/rs/cors"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

var Module = fx.Module("server",
	fx.Provide(
		NewHTTPServer,
		NewAuthInterceptor,
	),
)

func NewHTTPServer(
	lc fx.Lifecycle,
	cfg *conf.Bootstrap,
	accountv1Service accountv1connect.AccountServiceHandler,
	checkv1Service checkv1connect.CheckServiceHandler,
	logger *zap.Logger,
	monitoringMiddleware func(http.Handler) http.Handler,
	connectInterceptor connect.UnaryInterceptorFunc,
	auth *AuthInterceptor,
) *http.Server {
	// 1. 创建 OTel Connect 拦截器实例
	otelInterceptor, err := otelconnect.NewInterceptor(
		otelconnect.WithoutServerPeerAttributes(),
	)
	if err != nil {
		logger.Fatal("failed to create otel interceptor", zap.Error(err))
	}

	// 2. OTel -> 监控 -> 鉴权, 鉴权失败的请求同样会被记录
	interceptors := connect.WithInterceptors(otelInterceptor, connectInterceptor, auth.Unary())

	// 3. 将拦截器传递给 Service Handler
	accountv1connectPath, accountv1connectHandler := accountv1connect.NewAccountServiceHandler(
		accountv1Service,
		interceptors,
	)
	checkv1connectPath, checkv1connectHandler := checkv1connect.NewCheckServiceHandler(
		checkv1Service,
		interceptors,
	)

	mux := http.NewServeMux()
	mux.Handle(accountv1connectPath, accountv1connectHandler)
	mux.Handle(checkv1connectPath, checkv1connectHandler)

	// CORS 配置
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   connectcors.AllowedMethods(),
		AllowedHeaders:   append(connectcors.AllowedHeaders(), "Authorization"),
		ExposedHeaders:   connectcors.ExposedHeaders(),
		MaxAge:           7200,
		AllowCredentials: false,
	})

	// 创建处理器链：监控中间件 -> CORS -> HTTP/2
	handlerChain := monitoringMiddleware(corsHandler.Handler(mux))

	server := &http.Server{
		Addr:         cfg.Server.Http.Addr,
		Handler:      h2c.NewHandler(handlerChain, &http2.Server{}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	// 注册生命周期钩子
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("HTTP server starting", zap.String("addr", cfg.Server.Http.Addr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("HTTP server shutting down...")
			return server.Shutdown(ctx)
		},
	})

	return server
}

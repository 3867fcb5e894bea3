package service

import (
	"context"

	v1 "connect-account-service/api/check/v1"
	"connect-account-service/api/check/v1/checkv1connect"
	"connect-account-service/internal/biz/model"

	"connectrpc.com/connect"
)

var _ checkv1connect.CheckServiceHandler = (*CheckService)(nil)

type CheckService struct {
	uc model.CheckUseCase
}

func NewCheckService(uc model.CheckUseCase) checkv1connect.CheckServiceHandler {
	return &CheckService{
		uc: uc,
	}
}

func (c *CheckService) Ready(ctx context.Context, _ *connect.Request[v1.ReadyCheckReq]) (*connect.Response[v1.ReadyCheckReply], error) {
	ready, err := c.uc.Ready(ctx, model.HealthCheckReq{})
	if err != nil {
		return nil, err
	}
	reply, err := v1.NewReadyCheckReply(ready.Status, ready.Details)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(reply), nil
}

package checkv1connect

import (
	"context"
	"net/http"
	"strings"

	v1 "connect-account-service/api/check/v1"

	"connectrpc.com/connect"
)

// CheckServiceName is the fully-qualified name of the CheckService service.
const CheckServiceName = "check.v1.CheckService"

// CheckServiceReadyProcedure is the fully-qualified name of the CheckService's Ready RPC.
const CheckServiceReadyProcedure = "/check.v1.CheckService/Ready"

// CheckServiceClient is a client for the check.v1.CheckService service.
type CheckServiceClient interface {
	Ready(context.Context, *connect.Request[v1.ReadyCheckReq]) (*connect.Response[v1.ReadyCheckReply], error)
}

// NewCheckServiceClient constructs a client for the check.v1.CheckService service.
func NewCheckServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CheckServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	return &checkServiceClient{
		ready: connect.NewClient[v1.ReadyCheckReq, v1.ReadyCheckReply](
			httpClient,
			baseURL+CheckServiceReadyProcedure,
			opts...,
		),
	}
}

type checkServiceClient struct {
	ready *connect.Client[v1.ReadyCheckReq, v1.ReadyCheckReply]
}

func (c *checkServiceClient) Ready(ctx context.Context, req *connect.Request[v1.ReadyCheckReq]) (*connect.Response[v1.ReadyCheckReply], error) {
	return c.ready.CallUnary(ctx, req)
}

// CheckServiceHandler is an implementation of the check.v1.CheckService service.
type CheckServiceHandler interface {
	Ready(context.Context, *connect.Request[v1.ReadyCheckReq]) (*connect.Response[v1.ReadyCheckReply], error)
}

// NewCheckServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
func NewCheckServiceHandler(svc CheckServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	readyHandler := connect.NewUnaryHandler(
		CheckServiceReadyProcedure,
		svc.Ready,
		connect.WithIdempotency(connect.IdempotencyNoSideEffects),
		connect.WithHandlerOptions(opts...),
	)
	return "/check.v1.CheckService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CheckServiceReadyProcedure:
			readyHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

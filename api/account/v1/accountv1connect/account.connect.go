package accountv1connect

import (
	"context"
	"net/http"
	"strings"

	v1 "connect-account-service/api/account/v1"

	"connectrpc.com/connect"
)

// AccountServiceName is the fully-qualified name of the AccountService service.
const AccountServiceName = "account.v1.AccountService"

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
const (
	AccountServiceRegisterProcedure       = "/account.v1.AccountService/Register"
	AccountServiceLoginProcedure          = "/account.v1.AccountService/Login"
	AccountServiceAdminLoginProcedure     = "/account.v1.AccountService/AdminLogin"
	AccountServiceInfoProcedure           = "/account.v1.AccountService/Info"
	AccountServiceDetailProcedure         = "/account.v1.AccountService/Detail"
	AccountServiceAdminDetailProcedure    = "/account.v1.AccountService/AdminDetail"
	AccountServiceUpdatePasswordProcedure = "/account.v1.AccountService/UpdatePassword"
	AccountServiceUpdateProfileProcedure  = "/account.v1.AccountService/UpdateProfile"
)

// AccountServiceClient is a client for the account.v1.AccountService service.
type AccountServiceClient interface {
	Register(context.Context, *connect.Request[v1.RegisterRequest]) (*connect.Response[v1.ResultReply], error)
	Login(context.Context, *connect.Request[v1.LoginRequest]) (*connect.Response[v1.LoginReply], error)
	AdminLogin(context.Context, *connect.Request[v1.LoginRequest]) (*connect.Response[v1.LoginReply], error)
	Info(context.Context, *connect.Request[v1.InfoRequest]) (*connect.Response[v1.InfoReply], error)
	Detail(context.Context, *connect.Request[v1.DetailRequest]) (*connect.Response[v1.DetailReply], error)
	AdminDetail(context.Context, *connect.Request[v1.AdminDetailRequest]) (*connect.Response[v1.DetailReply], error)
	UpdatePassword(context.Context, *connect.Request[v1.UpdatePasswordRequest]) (*connect.Response[v1.ResultReply], error)
	UpdateProfile(context.Context, *connect.Request[v1.UpdateProfileRequest]) (*connect.Response[v1.ResultReply], error)
}

// NewAccountServiceClient constructs a client for the account.v1.AccountService service. The
// client always speaks JSON; the codec is installed ahead of opts.
func NewAccountServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AccountServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &accountServiceClient{
		register:       connect.NewClient[v1.RegisterRequest, v1.ResultReply](httpClient, baseURL+AccountServiceRegisterProcedure, opts...),
		login:          connect.NewClient[v1.LoginRequest, v1.LoginReply](httpClient, baseURL+AccountServiceLoginProcedure, opts...),
		adminLogin:     connect.NewClient[v1.LoginRequest, v1.LoginReply](httpClient, baseURL+AccountServiceAdminLoginProcedure, opts...),
		info:           connect.NewClient[v1.InfoRequest, v1.InfoReply](httpClient, baseURL+AccountServiceInfoProcedure, opts...),
		detail:         connect.NewClient[v1.DetailRequest, v1.DetailReply](httpClient, baseURL+AccountServiceDetailProcedure, opts...),
		adminDetail:    connect.NewClient[v1.AdminDetailRequest, v1.DetailReply](httpClient, baseURL+AccountServiceAdminDetailProcedure, opts...),
		updatePassword: connect.NewClient[v1.UpdatePasswordRequest, v1.ResultReply](httpClient, baseURL+AccountServiceUpdatePasswordProcedure, opts...),
		updateProfile:  connect.NewClient[v1.UpdateProfileRequest, v1.ResultReply](httpClient, baseURL+AccountServiceUpdateProfileProcedure, opts...),
	}
}

// accountServiceClient implements AccountServiceClient.
type accountServiceClient struct {
	register       *connect.Client[v1.RegisterRequest, v1.ResultReply]
	login          *connect.Client[v1.LoginRequest, v1.LoginReply]
	adminLogin     *connect.Client[v1.LoginRequest, v1.LoginReply]
	info           *connect.Client[v1.InfoRequest, v1.InfoReply]
	detail         *connect.Client[v1.DetailRequest, v1.DetailReply]
	adminDetail    *connect.Client[v1.AdminDetailRequest, v1.DetailReply]
	updatePassword *connect.Client[v1.UpdatePasswordRequest, v1.ResultReply]
	updateProfile  *connect.Client[v1.UpdateProfileRequest, v1.ResultReply]
}

func (c *accountServiceClient) Register(ctx context.Context, req *connect.Request[v1.RegisterRequest]) (*connect.Response[v1.ResultReply], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *accountServiceClient) Login(ctx context.Context, req *connect.Request[v1.LoginRequest]) (*connect.Response[v1.LoginReply], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *accountServiceClient) AdminLogin(ctx context.Context, req *connect.Request[v1.LoginRequest]) (*connect.Response[v1.LoginReply], error) {
	return c.adminLogin.CallUnary(ctx, req)
}

func (c *accountServiceClient) Info(ctx context.Context, req *connect.Request[v1.InfoRequest]) (*connect.Response[v1.InfoReply], error) {
	return c.info.CallUnary(ctx, req)
}

func (c *accountServiceClient) Detail(ctx context.Context, req *connect.Request[v1.DetailRequest]) (*connect.Response[v1.DetailReply], error) {
	return c.detail.CallUnary(ctx, req)
}

func (c *accountServiceClient) AdminDetail(ctx context.Context, req *connect.Request[v1.AdminDetailRequest]) (*connect.Response[v1.DetailReply], error) {
	return c.adminDetail.CallUnary(ctx, req)
}

func (c *accountServiceClient) UpdatePassword(ctx context.Context, req *connect.Request[v1.UpdatePasswordRequest]) (*connect.Response[v1.ResultReply], error) {
	return c.updatePassword.CallUnary(ctx, req)
}

func (c *accountServiceClient) UpdateProfile(ctx context.Context, req *connect.Request[v1.UpdateProfileRequest]) (*connect.Response[v1.ResultReply], error) {
	return c.updateProfile.CallUnary(ctx, req)
}

// AccountServiceHandler is an implementation of the account.v1.AccountService service.
type AccountServiceHandler interface {
	Register(context.Context, *connect.Request[v1.RegisterRequest]) (*connect.Response[v1.ResultReply], error)
	Login(context.Context, *connect.Request[v1.LoginRequest]) (*connect.Response[v1.LoginReply], error)
	AdminLogin(context.Context, *connect.Request[v1.LoginRequest]) (*connect.Response[v1.LoginReply], error)
	Info(context.Context, *connect.Request[v1.InfoRequest]) (*connect.Response[v1.InfoReply], error)
	Detail(context.Context, *connect.Request[v1.DetailRequest]) (*connect.Response[v1.DetailReply], error)
	AdminDetail(context.Context, *connect.Request[v1.AdminDetailRequest]) (*connect.Response[v1.DetailReply], error)
	UpdatePassword(context.Context, *connect.Request[v1.UpdatePasswordRequest]) (*connect.Response[v1.ResultReply], error)
	UpdateProfile(context.Context, *connect.Request[v1.UpdateProfileRequest]) (*connect.Response[v1.ResultReply], error)
}

// NewAccountServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
func NewAccountServiceHandler(svc AccountServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
	handlerOpts := connect.WithHandlerOptions(opts...)

	registerHandler := connect.NewUnaryHandler(AccountServiceRegisterProcedure, svc.Register, handlerOpts)
	loginHandler := connect.NewUnaryHandler(AccountServiceLoginProcedure, svc.Login, handlerOpts)
	adminLoginHandler := connect.NewUnaryHandler(AccountServiceAdminLoginProcedure, svc.AdminLogin, handlerOpts)
	infoHandler := connect.NewUnaryHandler(AccountServiceInfoProcedure, svc.Info, handlerOpts)
	detailHandler := connect.NewUnaryHandler(AccountServiceDetailProcedure, svc.Detail, handlerOpts)
	adminDetailHandler := connect.NewUnaryHandler(AccountServiceAdminDetailProcedure, svc.AdminDetail, handlerOpts)
	updatePasswordHandler := connect.NewUnaryHandler(AccountServiceUpdatePasswordProcedure, svc.UpdatePassword, handlerOpts)
	updateProfileHandler := connect.NewUnaryHandler(AccountServiceUpdateProfileProcedure, svc.UpdateProfile, handlerOpts)

	return "/account.v1.AccountService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AccountServiceRegisterProcedure:
			registerHandler.ServeHTTP(w, r)
		case AccountServiceLoginProcedure:
			loginHandler.ServeHTTP(w, r)
		case AccountServiceAdminLoginProcedure:
			adminLoginHandler.ServeHTTP(w, r)
		case AccountServiceInfoProcedure:
			infoHandler.ServeHTTP(w, r)
		case AccountServiceDetailProcedure:
			detailHandler.ServeHTTP(w, r)
		case AccountServiceAdminDetailProcedure:
			adminDetailHandler.ServeHTTP(w, r)
		case AccountServiceUpdatePasswordProcedure:
			updatePasswordHandler.ServeHTTP(w, r)
		case AccountServiceUpdateProfileProcedure:
			updateProfileHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

package handler

import (
	"net/http"

	"github.com/copo888/freekassapay/internal/svc"
	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/api/pay",
				Handler: PayOrderHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/pay-api",
				Handler: ApiPayOrderHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/pay-call-back",
				Handler: PayCallBackHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/pay-call-back",
				Handler: PayCallBackHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/pay-query",
				Handler: PayOrderQueryHandler(serverCtx),
			},
		},
	)
}

package main

import (
	"giftprice-backend/internal/app"
	"giftprice-backend/internal/components/serviceutil"
	"giftprice-backend/proto/giftprice/v1/giftpricev1connect"
	"giftprice-backend/services/giftprice"
	"net/http"

	"connectrpc.com/connect"
)

func newMux(a *app.App) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.Handle(giftpricev1connect.NewGiftPriceServiceHandler(
		giftprice.NewService(a),
		connect.WithInterceptors(
			serviceutil.NewConnectOtelInterceptor(),
			serviceutil.VerifyAccessTokenInterceptor(a.Config.Http.AccessToken),
		),
	))
	return mux
}

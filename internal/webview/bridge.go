package webview

import (
	"context"
	"fmt"
	"giftprice-backend/internal/components/assert"
	"giftprice-backend/internal/components/telemetry"
	"giftprice-backend/internal/marketplace"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const report_bridge_request_webview = "bridge.request-webview"

// BridgeSession asks a companion process that holds the authorized Telegram user session
// to open a WebView on its behalf.
type BridgeSession struct {
	http *resty.Client
	tel  telemetry.API
}

func NewBridgeSession(baseUrl, token string, tel telemetry.API) *BridgeSession {
	assert.NotNil(tel)
	assert.NotEmptyStr(baseUrl)

	tel = telemetry.NewScopedAPI("webview_bridge", tel)

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetTimeout(time.Second * 20)
	client.SetHeader("accept", "application/json")
	if token != "" {
		client.SetAuthToken(token)
	}
	telemetry.InstrumentResty(client, tel)

	return &BridgeSession{
		http: client,
		tel:  tel,
	}
}

type bridgeRequest struct {
	Bot      string `json:"bot"`
	Url      string `json:"url"`
	Platform string `json:"platform"`
}

type bridgeResponse struct {
	Url string `json:"url"`
}

func (s *BridgeSession) RequestWebView(ctx context.Context, req WebViewRequest) (string, error) {
	var out bridgeResponse
	res, err := s.http.R().
		SetContext(ctx).
		SetBody(bridgeRequest{
			Bot:      req.Bot,
			Url:      req.URL,
			Platform: req.Platform,
		}).
		SetResult(&out).
		Post("/webview")
	if err != nil {
		s.tel.ReportWarning(report_bridge_request_webview, err)
		return "", fmt.Errorf("request webview for %s: %w: %w", req.Bot, marketplace.ErrNetwork, err)
	}
	if res.StatusCode() == http.StatusUnauthorized {
		return "", fmt.Errorf("request webview for %s: session not authorized: %w", req.Bot, marketplace.ErrAuth)
	}
	if statusErr := marketplace.StatusError(res.StatusCode()); statusErr != nil {
		s.tel.ReportWarning(report_bridge_request_webview, statusErr)
		return "", fmt.Errorf("request webview for %s: %w", req.Bot, statusErr)
	}
	if out.Url == "" {
		return "", fmt.Errorf("request webview for %s: empty url: %w", req.Bot, marketplace.ErrAuth)
	}
	return out.Url, nil
}

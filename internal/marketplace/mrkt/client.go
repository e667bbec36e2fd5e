// Package mrkt talks to the MRKT marketplace (api.tgmrkt.io). A bearer JWT is obtained by
// exchanging WebView initData from the marketplace bot.
package mrkt

import (
	"context"
	"fmt"
	"giftprice-backend/internal/components/assert"
	"giftprice-backend/internal/components/chrono"
	"giftprice-backend/internal/components/telemetry"
	"giftprice-backend/internal/marketplace"
	"giftprice-backend/internal/webview"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	report_client_refresh       = "client.refresh"
	report_client_fetch_catalog = "client.fetch-catalog"
)

const (
	DefaultBaseUrl     = "https://api.tgmrkt.io"
	DefaultBot         = "main_mrkt_bot"
	DefaultAuthPath    = "/api/v1/auth"
	DefaultCatalogPath = "/api/v1/gifts/collections"
	DefaultTTL         = 45 * time.Second
)

type Options struct {
	BaseUrl     string
	Bot         string
	AuthPath    string
	CatalogPath string
	// WebAppUrl is the page the bot's WebView is opened on, defaults to BaseUrl+AuthPath.
	WebAppUrl string
	TTL       time.Duration
	Timeout   time.Duration
	// RequestsPerSecond bounds outgoing requests, defaults to 2.
	RequestsPerSecond float64
}

func (o Options) withDefaults() Options {
	if o.BaseUrl == "" {
		o.BaseUrl = DefaultBaseUrl
	}
	if o.Bot == "" {
		o.Bot = DefaultBot
	}
	if o.AuthPath == "" {
		o.AuthPath = DefaultAuthPath
	}
	if o.CatalogPath == "" {
		o.CatalogPath = DefaultCatalogPath
	}
	if o.WebAppUrl == "" {
		o.WebAppUrl = o.BaseUrl + o.AuthPath
	}
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	if o.Timeout <= 0 {
		o.Timeout = 20 * time.Second
	}
	if o.RequestsPerSecond <= 0 {
		o.RequestsPerSecond = 2
	}
	return o
}

type Client struct {
	opts    Options
	http    *resty.Client
	session webview.Session
	time    chrono.API
	tel     telemetry.API
}

func New(opts Options, session webview.Session, time chrono.API, tel telemetry.API) *Client {
	assert.NotNil(session)
	assert.NotNil(time)
	assert.NotNil(tel)

	opts = opts.withDefaults()
	tel = telemetry.NewScopedAPI("mrkt", tel)

	httpClient := resty.New()
	httpClient.SetBaseURL(opts.BaseUrl)
	httpClient.SetTimeout(opts.Timeout)
	httpClient.SetHeader("accept", "application/json")

	rateLimiter := rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 2)
	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return rateLimiter.Wait(req.Context())
	})

	telemetry.InstrumentResty(httpClient, tel)

	return &Client{
		opts:    opts,
		http:    httpClient,
		session: session,
		time:    time,
		tel:     tel,
	}
}

func (c *Client) ID() marketplace.ID {
	return marketplace.MRKT
}

func (c *Client) Refresh(ctx context.Context) (marketplace.Credential, error) {
	initData, err := webview.InitData(ctx, c.session, webview.WebViewRequest{
		Bot: c.opts.Bot,
		URL: c.opts.WebAppUrl,
	})
	if err != nil {
		c.tel.ReportWarning(report_client_refresh, err)
		return marketplace.Credential{}, fmt.Errorf("mrkt: get init data: %w", err)
	}

	token, err := marketplace.ExchangeInitData(ctx, c.http, c.opts.AuthPath, initData)
	if err != nil {
		c.tel.ReportWarning(report_client_refresh, err)
		return marketplace.Credential{}, fmt.Errorf("mrkt: %w", err)
	}

	return marketplace.Credential{
		Marketplace: marketplace.MRKT,
		Token:       token,
		ObtainedAt:  c.time.Now(),
		TTL:         c.opts.TTL,
	}, nil
}

type collection struct {
	// Name holds the gift's numeric id.
	Name                          string `json:"name"`
	Title                         string `json:"title"`
	FloorPriceNanoTons            int64  `json:"floorPriceNanoTons"`
	PreviousDayFloorPriceNanoTons *int64 `json:"previousDayFloorPriceNanoTons"`
	Supply                        *int64 `json:"supply"`
}

func (c *Client) FetchCatalog(ctx context.Context, cred marketplace.Credential) ([]marketplace.CatalogItem, error) {
	var collections []collection
	res, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(cred.Token).
		ForceContentType("application/json").
		SetResult(&collections).
		Get(c.opts.CatalogPath)
	if err != nil {
		c.tel.ReportWarning(report_client_fetch_catalog, err)
		return nil, fmt.Errorf("mrkt: fetch catalog: %w: %w", marketplace.ErrNetwork, err)
	}
	if statusErr := marketplace.StatusError(res.StatusCode()); statusErr != nil {
		return nil, fmt.Errorf("mrkt: fetch catalog: %w", statusErr)
	}

	items := make([]marketplace.CatalogItem, 0, len(collections))
	for _, col := range collections {
		if col.Name == "" {
			c.tel.ReportWarning(report_client_fetch_catalog, fmt.Errorf("collection without id"), "title", col.Title)
			continue
		}
		items = append(items, marketplace.CatalogItem{
			ExternalID:         col.Name,
			DisplayName:        col.Title,
			FloorMinor:         col.FloorPriceNanoTons,
			PreviousFloorMinor: col.PreviousDayFloorPriceNanoTons,
			Supply:             col.Supply,
		})
	}
	c.tel.ReportCount(report_client_fetch_catalog, int64(len(items)))
	return items, nil
}

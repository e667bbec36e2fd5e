// Package quant talks to the Quant marketplace (quant-marketplace.com). The site sits behind
// Cloudflare so every request goes out with a mobile browser fingerprint, and the raw
// WebView initData is used as the bearer token.
package quant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"giftprice-backend/internal/components/assert"
	"giftprice-backend/internal/components/chrono"
	"giftprice-backend/internal/components/telemetry"
	"giftprice-backend/internal/marketplace"
	"giftprice-backend/internal/webview"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

const (
	report_client_refresh       = "client.refresh"
	report_client_fetch_catalog = "client.fetch-catalog"
)

const (
	DefaultBaseUrl     = "https://quant-marketplace.com"
	DefaultBot         = "QuantMarketRobot"
	DefaultCatalogPath = "/api/gifts/gifts"
	DefaultTTL         = 300 * time.Second

	userAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
)

type Options struct {
	BaseUrl string
	Bot     string
	// AuthPath, when set, makes Refresh exchange initData for a token. Otherwise the initData
	// itself is the bearer.
	AuthPath    string
	CatalogPath string
	// WebAppUrl is the page the bot's WebView is opened on, defaults to BaseUrl.
	WebAppUrl string
	TTL       time.Duration
	Timeout   time.Duration
	// RequestsPerSecond bounds outgoing requests, defaults to 1.
	RequestsPerSecond float64
}

func (o Options) withDefaults() Options {
	if o.BaseUrl == "" {
		o.BaseUrl = DefaultBaseUrl
	}
	if o.Bot == "" {
		o.Bot = DefaultBot
	}
	if o.CatalogPath == "" {
		o.CatalogPath = DefaultCatalogPath
	}
	if o.WebAppUrl == "" {
		o.WebAppUrl = o.BaseUrl
	}
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	if o.Timeout <= 0 {
		o.Timeout = 20 * time.Second
	}
	if o.RequestsPerSecond <= 0 {
		o.RequestsPerSecond = 1
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

func New(opts Options, session webview.Session, time chrono.API, tel telemetry.API) (*Client, error) {
	assert.NotNil(session)
	assert.NotNil(time)
	assert.NotNil(tel)

	opts = opts.withDefaults()
	tel = telemetry.NewScopedAPI("quant", tel)

	parsedBaseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}
	origin := fmt.Sprintf("%s://%s", parsedBaseUrl.Scheme, parsedBaseUrl.Host)

	httpClient := resty.New()
	httpClient.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	httpClient.SetCookieJar(jar)
	httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)

	httpClient.SetHeader("user-agent", userAgent)
	httpClient.SetHeader("accept", "application/json, text/plain, */*")
	httpClient.SetHeader("accept-language", "en-US,en;q=0.9")
	httpClient.SetHeader("origin", origin)
	httpClient.SetHeader("referer", origin+"/")
	httpClient.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(parsedBaseUrl.Hostname()))
	httpClient.SetTimeout(opts.Timeout)

	// max burst >= 2 just means that no requests will be dropped
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
	}, nil
}

func (c *Client) ID() marketplace.ID {
	return marketplace.Quant
}

func (c *Client) Refresh(ctx context.Context) (marketplace.Credential, error) {
	initData, err := webview.InitData(ctx, c.session, webview.WebViewRequest{
		Bot: c.opts.Bot,
		URL: c.opts.WebAppUrl,
	})
	if err != nil {
		c.tel.ReportWarning(report_client_refresh, err)
		return marketplace.Credential{}, fmt.Errorf("quant: get init data: %w", err)
	}

	token := initData
	if c.opts.AuthPath != "" {
		token, err = marketplace.ExchangeInitData(ctx, c.http, c.opts.AuthPath, initData)
		if err != nil {
			c.tel.ReportWarning(report_client_refresh, err)
			return marketplace.Credential{}, fmt.Errorf("quant: %w", err)
		}
	}

	return marketplace.Credential{
		Marketplace: marketplace.Quant,
		Token:       token,
		ObtainedAt:  c.time.Now(),
		TTL:         c.opts.TTL,
	}, nil
}

func (c *Client) FetchCatalog(ctx context.Context, cred marketplace.Credential) ([]marketplace.CatalogItem, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(cred.Token).
		Get(c.opts.CatalogPath)
	if err != nil {
		c.tel.ReportWarning(report_client_fetch_catalog, err)
		return nil, fmt.Errorf("quant: fetch catalog: %w: %w", marketplace.ErrNetwork, err)
	}

	body := res.Body()
	if isChallengePage(res.Header().Get("content-type"), body) {
		c.tel.ReportWarning(report_client_fetch_catalog, fmt.Errorf("cloudflare challenge"), "status", res.StatusCode())
		return nil, fmt.Errorf("quant: fetch catalog: cloudflare challenge (status %d): %w", res.StatusCode(), marketplace.ErrNetwork)
	}
	if statusErr := marketplace.StatusError(res.StatusCode()); statusErr != nil {
		return nil, fmt.Errorf("quant: fetch catalog: %w", statusErr)
	}

	var gifts []gift
	err = json.Unmarshal(body, &gifts)
	if err != nil {
		c.tel.ReportBroken(report_client_fetch_catalog, fmt.Errorf("unmarshal gifts: %w", err))
		return nil, fmt.Errorf("quant: fetch catalog: decode: %w: %w", marketplace.ErrNetwork, err)
	}

	items := make([]marketplace.CatalogItem, 0, len(gifts))
	for _, g := range gifts {
		if g.Id == "" {
			continue
		}
		items = append(items, g.toItem())
	}
	c.tel.ReportCount(report_client_fetch_catalog, int64(len(items)))
	return items, nil
}

// isChallengePage reports whether a response is the Cloudflare interstitial instead of the
// API payload.
func isChallengePage(contentType string, body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	if !strings.Contains(contentType, "text/html") && !bytes.HasPrefix(trimmed, []byte("<")) {
		return false
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(trimmed))
	if err != nil {
		return false
	}
	title := strings.ToLower(doc.Find("title").Text())
	if strings.Contains(title, "just a moment") || strings.Contains(title, "attention required") {
		return true
	}
	return doc.Find("#challenge-form, #challenge-running, #cf-wrapper, [id^=cf-]").Length() > 0
}

type gift struct {
	Id         flexibleString `json:"id"`
	Name       string         `json:"name"`
	FloorPrice tonAmount      `json:"floor_price"`
	Supply     *int64         `json:"supply"`
}

func (g gift) toItem() marketplace.CatalogItem {
	return marketplace.CatalogItem{
		ExternalID:  string(g.Id),
		DisplayName: g.Name,
		FloorMinor:  marketplace.FromNative(decimal.Decimal(g.FloorPrice)),
		Supply:      g.Supply,
	}
}

// flexibleString accepts both JSON strings and numbers.
type flexibleString string

func (s *flexibleString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var value string
		err := json.Unmarshal(data, &value)
		if err != nil {
			return err
		}
		*s = flexibleString(value)
		return nil
	}
	var number json.Number
	err := json.Unmarshal(data, &number)
	if err != nil {
		return err
	}
	*s = flexibleString(number.String())
	return nil
}

// tonAmount is a TON amount sent either as a string or a number, unparsable values
// count as zero.
type tonAmount decimal.Decimal

func (a *tonAmount) UnmarshalJSON(data []byte) error {
	value := decimal.Zero
	err := value.UnmarshalJSON(data)
	if err != nil {
		value = decimal.Zero
	}
	*a = tonAmount(value)
	return nil
}

// Package tonrate provides the TON/USD exchange rate used to express gift prices in dollars.
package tonrate

import (
	"context"
	"fmt"
	"giftprice-backend/internal/components/assert"
	"giftprice-backend/internal/components/chrono"
	"giftprice-backend/internal/components/telemetry"
	"giftprice-backend/internal/marketplace"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"
)

const report_coingecko_usd = "coingecko.usd"

const (
	DefaultBaseUrl  = "https://api.coingecko.com/api/v3"
	DefaultFallback = 2.10
	DefaultTTL      = 5 * time.Minute
	DefaultBackoff  = 30 * time.Second
	coinId          = "the-open-network"
)

// Provider returns the current USD value of one TON. It never fails, a configured fallback
// is returned when the rate cannot be fetched.
//
// note: fault injection point
type Provider interface {
	USD(ctx context.Context) float64
}

// Fixed is a Provider that always returns the same rate.
type Fixed float64

func (f Fixed) USD(ctx context.Context) float64 {
	return float64(f)
}

type Options struct {
	BaseUrl  string
	Fallback float64
	TTL      time.Duration
	// Backoff is how long a failed fetch is remembered before the upstream is tried again.
	Backoff time.Duration
	Timeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.BaseUrl == "" {
		o.BaseUrl = DefaultBaseUrl
	}
	if o.Fallback <= 0 {
		o.Fallback = DefaultFallback
	}
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	if o.Backoff <= 0 {
		o.Backoff = DefaultBackoff
	}
	if o.Timeout <= 0 {
		o.Timeout = 10 * time.Second
	}
	return o
}

// CoinGecko reads the rate from the CoinGecko simple price endpoint and caches it.
// Concurrent misses share one request.
type CoinGecko struct {
	opts Options
	http *resty.Client
	time chrono.API
	tel  telemetry.API

	group singleflight.Group

	mu        sync.Mutex
	rate      float64
	fetchedAt time.Time
	failedAt  time.Time
}

func NewCoinGecko(opts Options, clock chrono.API, tel telemetry.API) *CoinGecko {
	assert.NotNil(clock)
	assert.NotNil(tel)

	opts = opts.withDefaults()
	tel = telemetry.NewScopedAPI("tonrate", tel)

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetTimeout(opts.Timeout)
	client.SetHeader("accept", "application/json")
	telemetry.InstrumentResty(client, tel)

	return &CoinGecko{
		opts: opts,
		http: client,
		time: clock,
		tel:  tel,
	}
}

// cached returns the rate to serve without a request: the fresh rate, or the last known
// rate (falling back to the configured one) while a recent failure is backing off.
func (c *CoinGecko) cached() (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.time.Now()
	if c.rate > 0 && now.Sub(c.fetchedAt) < c.opts.TTL {
		return c.rate, true
	}
	if !c.failedAt.IsZero() && now.Sub(c.failedAt) < c.opts.Backoff {
		return c.stale(), true
	}
	return 0, false
}

// stale must be called with mu held.
func (c *CoinGecko) stale() float64 {
	if c.rate > 0 {
		return c.rate
	}
	return c.opts.Fallback
}

func (c *CoinGecko) USD(ctx context.Context) float64 {
	if rate, ok := c.cached(); ok {
		return rate
	}

	ch := c.group.DoChan("usd", func() (any, error) {
		if rate, ok := c.cached(); ok {
			return rate, nil
		}

		rate, err := c.fetch(context.WithoutCancel(ctx))

		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			c.tel.ReportWarning(report_coingecko_usd, err)
			c.failedAt = c.time.Now()
			return c.stale(), nil
		}
		c.rate = rate
		c.fetchedAt = c.time.Now()
		c.failedAt = time.Time{}
		return rate, nil
	})

	select {
	case <-ctx.Done():
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.stale()
	case res := <-ch:
		return res.Val.(float64)
	}
}

func (c *CoinGecko) fetch(ctx context.Context) (float64, error) {
	var out map[string]map[string]float64
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ids":           coinId,
			"vs_currencies": "usd",
		}).
		ForceContentType("application/json").
		SetResult(&out).
		Get("/simple/price")
	if err != nil {
		return 0, fmt.Errorf("fetch ton rate: %w: %w", marketplace.ErrNetwork, err)
	}
	if statusErr := marketplace.StatusError(res.StatusCode()); statusErr != nil {
		return 0, fmt.Errorf("fetch ton rate: %w", statusErr)
	}
	rate := out[coinId]["usd"]
	if rate <= 0 {
		return 0, fmt.Errorf("fetch ton rate: no usd price in response")
	}
	return rate, nil
}

package tonrate

import (
	"context"
	"giftprice-backend/internal/components/chrono"
	"giftprice-backend/internal/components/telemetry"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCoinGeckoCachesRate(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, "/simple/price", r.URL.Path)
		require.Equal(t, "the-open-network", r.URL.Query().Get("ids"))
		w.Header().Set("content-type", "application/json")
		w.Write([]byte(`{"the-open-network":{"usd":5.25}}`))
	}))
	defer server.Close()

	clock := chrono.NewManual(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	provider := NewCoinGecko(Options{BaseUrl: server.URL}, clock, &telemetry.Recorder{})

	require.Equal(t, 5.25, provider.USD(context.Background()))
	clock.Advance(time.Minute)
	require.Equal(t, 5.25, provider.USD(context.Background()))
	require.Equal(t, int64(1), calls.Load())

	clock.Advance(5 * time.Minute)
	require.Equal(t, 5.25, provider.USD(context.Background()))
	require.Equal(t, int64(2), calls.Load())
}

func TestCoinGeckoFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	tel := &telemetry.Recorder{}
	clock := chrono.NewManual(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	provider := NewCoinGecko(Options{BaseUrl: server.URL}, clock, tel)

	require.Equal(t, DefaultFallback, provider.USD(context.Background()))
	require.NotEmpty(t, tel.Find("warning", report_coingecko_usd))

	provider = NewCoinGecko(Options{BaseUrl: server.URL, Fallback: 3}, clock, tel)
	require.Equal(t, 3.0, provider.USD(context.Background()))
}

func TestCoinGeckoOutageSharesOneRequest(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	clock := chrono.NewManual(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	provider := NewCoinGecko(Options{BaseUrl: server.URL}, clock, &telemetry.Recorder{})

	var wg sync.WaitGroup
	rates := make([]float64, 10)
	start := time.Now()
	for i := range rates {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rates[i] = provider.USD(context.Background())
		}()
	}
	wg.Wait()

	require.Less(t, time.Since(start), time.Second)
	require.Equal(t, int64(1), calls.Load())
	for _, rate := range rates {
		require.Equal(t, DefaultFallback, rate)
	}

	// the failure is remembered for the backoff window
	clock.Advance(DefaultBackoff / 2)
	require.Equal(t, DefaultFallback, provider.USD(context.Background()))
	require.Equal(t, int64(1), calls.Load())

	clock.Advance(DefaultBackoff)
	require.Equal(t, DefaultFallback, provider.USD(context.Background()))
	require.Equal(t, int64(2), calls.Load())
}

func TestCoinGeckoServesStaleRateOnFailure(t *testing.T) {
	var fail atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("content-type", "application/json")
		w.Write([]byte(`{"the-open-network":{"usd":4.5}}`))
	}))
	defer server.Close()

	clock := chrono.NewManual(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	provider := NewCoinGecko(Options{BaseUrl: server.URL}, clock, &telemetry.Recorder{})
	require.Equal(t, 4.5, provider.USD(context.Background()))

	fail.Store(true)
	clock.Advance(DefaultTTL)
	require.Equal(t, 4.5, provider.USD(context.Background()))
}

func TestFixed(t *testing.T) {
	require.Equal(t, 2.5, Fixed(2.5).USD(context.Background()))
}

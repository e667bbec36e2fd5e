package mrkt

import (
	"context"
	"encoding/json"
	"fmt"
	"giftprice-backend/internal/components/chrono"
	"giftprice-backend/internal/components/telemetry"
	"giftprice-backend/internal/credentials"
	"giftprice-backend/internal/marketplace"
	"giftprice-backend/internal/webview"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func newTestServer(t testing.TB) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Data string `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("content-type", "application/json")
		if body.Data != "query_id=AAE&hash=abc" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{}`))
			return
		}
		w.Write([]byte(`{"token":"jwt-token"}`))
	})
	mux.HandleFunc("/api/v1/gifts/collections", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer jwt-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("content-type", "application/json")
		w.Write([]byte(`[
			{"name":"6001425315291727333","title":"Durov's Coat","floorPriceNanoTons":2500000000,"previousDayFloorPriceNanoTons":2000000000},
			{"name":"5775955135867913556","title":"Gravestone","floorPriceNanoTons":0},
			{"name":"","title":"Broken"}
		]`))
	})
	return httptest.NewServer(mux)
}

func TestRefreshAndFetchCatalog(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := chrono.NewManual(now)
	session := webview.StaticSession{Url: "https://app.tgmrkt.io/#tgWebAppData=query_id%3DAAE%26hash%3Dabc&tgWebAppVersion=7.0"}
	client := New(Options{BaseUrl: server.URL}, session, clock, &telemetry.Recorder{})

	require.Equal(t, marketplace.MRKT, client.ID())

	cred, err := client.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, marketplace.Credential{
		Marketplace: marketplace.MRKT,
		Token:       "jwt-token",
		ObtainedAt:  now,
		TTL:         DefaultTTL,
	}, cred)
	require.True(t, cred.Fresh(clock.Now()))
	require.True(t, cred.ExpiresAt().After(clock.Now()))

	items, err := client.FetchCatalog(context.Background(), cred)
	require.NoError(t, err)

	expected := []marketplace.CatalogItem{
		{
			ExternalID:         "6001425315291727333",
			DisplayName:        "Durov's Coat",
			FloorMinor:         2_500_000_000,
			PreviousFloorMinor: ptr(int64(2_000_000_000)),
		},
		{
			ExternalID:  "5775955135867913556",
			DisplayName: "Gravestone",
		},
	}
	if diff := cmp.Diff(expected, items); diff != "" {
		t.Fatal(diff)
	}
}

func TestFetchCatalogUnauthorized(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	client := New(Options{BaseUrl: server.URL}, webview.StaticSession{}, chrono.NewManual(time.Now()), &telemetry.Recorder{})
	_, err := client.FetchCatalog(context.Background(), marketplace.Credential{Token: "stale"})
	require.ErrorIs(t, err, marketplace.ErrRateLimited)
}

func TestRefreshRejected(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	session := webview.StaticSession{Url: "https://app.tgmrkt.io/#tgWebAppData=query_id%3Dforged"}
	client := New(Options{BaseUrl: server.URL}, session, chrono.NewManual(time.Now()), &telemetry.Recorder{})
	_, err := client.Refresh(context.Background())
	require.ErrorIs(t, err, marketplace.ErrAuth)
}

func TestRefreshNoInitData(t *testing.T) {
	session := webview.StaticSession{Url: "https://app.tgmrkt.io/#tgWebAppVersion=7.0"}
	tel := &telemetry.Recorder{}
	client := New(Options{BaseUrl: "http://127.0.0.1:1"}, session, chrono.NewManual(time.Now()), tel)
	_, err := client.Refresh(context.Background())
	require.ErrorIs(t, err, marketplace.ErrAuth)
	require.NotEmpty(t, tel.Find("warning", report_client_refresh))
}

func TestStoreRetriesCatalogAfterUnauthorized(t *testing.T) {
	var logins, fetches atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth", func(w http.ResponseWriter, r *http.Request) {
		n := logins.Add(1)
		w.Header().Set("content-type", "application/json")
		fmt.Fprintf(w, `{"token":"jwt-%d"}`, n)
	})
	mux.HandleFunc("/api/v1/gifts/collections", func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		// the first token is revoked upstream before it expires
		if r.Header.Get("Authorization") != "Bearer jwt-2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("content-type", "application/json")
		w.Write([]byte(`[{"name":"6001425315291727333","title":"Durov's Coat","floorPriceNanoTons":2500000000}]`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	clock := chrono.NewManual(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	session := webview.StaticSession{Url: "https://app.tgmrkt.io/#tgWebAppData=query_id%3DAAE%26hash%3Dabc&tgWebAppVersion=7.0"}
	tel := &telemetry.Recorder{}
	client := New(Options{BaseUrl: server.URL, RequestsPerSecond: 100}, session, clock, tel)

	store, err := credentials.NewStore(clock, tel, client)
	require.NoError(t, err)

	var items []marketplace.CatalogItem
	var tokens []string
	err = store.Do(context.Background(), marketplace.MRKT, func(ctx context.Context, cred marketplace.Credential) error {
		tokens = append(tokens, cred.Token)
		fetched, err := client.FetchCatalog(ctx, cred)
		if err != nil {
			return err
		}
		items = fetched
		return nil
	})
	require.NoError(t, err)

	require.Equal(t, []string{"jwt-1", "jwt-2"}, tokens)
	require.EqualValues(t, 2, logins.Load())
	require.EqualValues(t, 2, fetches.Load())
	require.Len(t, items, 1)
	require.Equal(t, "Durov's Coat", items[0].DisplayName)

	cred, ok := store.Peek(marketplace.MRKT)
	require.True(t, ok)
	require.Equal(t, "jwt-2", cred.Token)
}

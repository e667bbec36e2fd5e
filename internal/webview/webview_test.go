package webview

import (
	"context"
	"encoding/json"
	"giftprice-backend/internal/components/telemetry"
	"giftprice-backend/internal/marketplace"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const initData = "query_id=AAE&user=%7B%22id%22%3A1%7D&auth_date=1700000000&hash=abc"

func TestExtractInitData(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		expected string
		err      error
	}{
		{
			name:     "fragment",
			url:      "https://app.tgmrkt.io/#tgWebAppData=query_id%3DAAE%26user%3D%257B%2522id%2522%253A1%257D%26auth_date%3D1700000000%26hash%3Dabc&tgWebAppVersion=7.0&tgWebAppPlatform=ios",
			expected: initData,
		},
		{
			name:     "query",
			url:      "https://quant-marketplace.com/?tgWebAppData=query_id%3DAAE%26user%3D%257B%2522id%2522%253A1%257D%26auth_date%3D1700000000%26hash%3Dabc",
			expected: initData,
		},
		{
			name:     "query wins over fragment",
			url:      "https://example.com/?tgWebAppData=from-query#tgWebAppData=from-fragment",
			expected: "from-query",
		},
		{
			name:     "fragment is last param",
			url:      "https://example.com/#tgWebAppVersion=7.0&tgWebAppData=only",
			expected: "only",
		},
		{
			name: "missing",
			url:  "https://example.com/#tgWebAppVersion=7.0",
			err:  marketplace.ErrAuth,
		},
		{
			name: "empty value",
			url:  "https://example.com/#tgWebAppData=&tgWebAppVersion=7.0",
			err:  marketplace.ErrAuth,
		},
		{
			name: "unparsable",
			url:  "://bad url",
			err:  marketplace.ErrAuth,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			value, err := ExtractInitData(test.url)
			if test.err != nil {
				require.ErrorIs(t, err, test.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.expected, value)
		})
	}
}

func TestStaticSession(t *testing.T) {
	value, err := InitData(context.Background(), StaticSession{Url: "https://example.com/#tgWebAppData=abc"}, WebViewRequest{Bot: "mrkt"})
	require.NoError(t, err)
	require.Equal(t, "abc", value)

	_, err = StaticSession{}.RequestWebView(context.Background(), WebViewRequest{Bot: "mrkt"})
	require.ErrorIs(t, err, marketplace.ErrAuth)
}

func TestBridgeSession(t *testing.T) {
	var received bridgeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/webview", r.URL.Path)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("content-type", "application/json")
		json.NewEncoder(w).Encode(bridgeResponse{Url: "https://app.tgmrkt.io/#tgWebAppData=abc%3D1"})
	}))
	defer server.Close()

	session := NewBridgeSession(server.URL, "secret", &telemetry.Recorder{})
	value, err := InitData(context.Background(), session, WebViewRequest{
		Bot: "mrkt",
		URL: "https://api.tgmrkt.io/api/v1/auth",
	})
	require.NoError(t, err)
	require.Equal(t, "abc=1", value)
	require.Equal(t, bridgeRequest{Bot: "mrkt", Url: "https://api.tgmrkt.io/api/v1/auth", Platform: "ios"}, received)
}

func TestBridgeSessionUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	session := NewBridgeSession(server.URL, "", &telemetry.Recorder{})
	_, err := session.RequestWebView(context.Background(), WebViewRequest{Bot: "mrkt"})
	require.ErrorIs(t, err, marketplace.ErrAuth)
}

func TestBridgeSessionServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	tel := &telemetry.Recorder{}
	session := NewBridgeSession(server.URL, "", tel)
	_, err := session.RequestWebView(context.Background(), WebViewRequest{Bot: "mrkt"})
	require.ErrorIs(t, err, marketplace.ErrNetwork)
	require.NotEmpty(t, tel.Find("warning", report_bridge_request_webview))
}

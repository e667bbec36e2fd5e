// Package webview obtains Telegram WebView launch URLs for marketplace bots and extracts
// the signed initData payload they carry.
package webview

import (
	"context"
	"fmt"
	"giftprice-backend/internal/marketplace"
	"net/url"
	"strings"
)

const initDataParam = "tgWebAppData"

type WebViewRequest struct {
	// Bot is the username of the bot that owns the mini app.
	Bot string
	// URL is the page the mini app is opened on.
	URL string
	// Platform is the client platform reported to Telegram, "ios" if empty.
	Platform string
}

// Session is an authorized messaging-platform user session that can open bot WebViews.
//
// note: fault injection point
type Session interface {
	RequestWebView(ctx context.Context, req WebViewRequest) (string, error)
}

// ExtractInitData returns the initData carried by a WebView URL, looking in the query
// string first and then in the fragment.
func ExtractInitData(webviewUrl string) (string, error) {
	parsed, err := url.Parse(webviewUrl)
	if err != nil {
		return "", fmt.Errorf("parse webview url: %w: %w", marketplace.ErrAuth, err)
	}

	if value := parsed.Query().Get(initDataParam); value != "" {
		return value, nil
	}

	fragment := parsed.EscapedFragment()
	_, encoded, found := strings.Cut(fragment, initDataParam+"=")
	if found {
		encoded, _, _ = strings.Cut(encoded, "&")
		value, err := url.PathUnescape(encoded)
		if err != nil {
			return "", fmt.Errorf("unescape %s: %w: %w", initDataParam, marketplace.ErrAuth, err)
		}
		if value != "" {
			return value, nil
		}
	}

	return "", fmt.Errorf("no %s in webview url: %w", initDataParam, marketplace.ErrAuth)
}

// InitData requests a WebView from `session` and extracts its initData.
func InitData(ctx context.Context, session Session, req WebViewRequest) (string, error) {
	if req.Platform == "" {
		req.Platform = "ios"
	}
	webviewUrl, err := session.RequestWebView(ctx, req)
	if err != nil {
		return "", err
	}
	return ExtractInitData(webviewUrl)
}

// StaticSession always returns the same pre-captured WebView URL.
type StaticSession struct {
	Url string
}

func (s StaticSession) RequestWebView(ctx context.Context, req WebViewRequest) (string, error) {
	if s.Url == "" {
		return "", fmt.Errorf("static session for %s: no webview url configured: %w", req.Bot, marketplace.ErrAuth)
	}
	return s.Url, nil
}

package marketplace

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

type exchangeRequest struct {
	Data string `json:"data"`
}

type exchangeResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
}

// ExchangeInitData trades a WebView initData payload for a bearer token by POSTing
// {"data": payload} to `path`. The response may carry the token as `token` or `accessToken`.
func ExchangeInitData(ctx context.Context, client *resty.Client, path, initData string) (string, error) {
	if initData == "" {
		return "", fmt.Errorf("exchange init data: empty payload: %w", ErrAuth)
	}

	var out exchangeResponse
	res, err := client.R().
		SetContext(ctx).
		SetBody(exchangeRequest{Data: initData}).
		ForceContentType("application/json").
		SetResult(&out).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("exchange init data: %w: %w", ErrNetwork, err)
	}
	if statusErr := StatusError(res.StatusCode()); statusErr != nil {
		if errors.Is(statusErr, ErrRateLimited) {
			return "", fmt.Errorf("exchange init data: rejected (%w): %w", statusErr, ErrAuth)
		}
		return "", fmt.Errorf("exchange init data: %w", statusErr)
	}

	token := out.Token
	if token == "" {
		token = out.AccessToken
	}
	if token == "" {
		return "", fmt.Errorf("exchange init data: no token in response: %w", ErrAuth)
	}
	return token, nil
}

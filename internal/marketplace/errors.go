package marketplace

import (
	"fmt"
	"net/http"
)

var (
	// ErrAuth means a credential could not be obtained: the messaging session is not
	// authorized, the WebView URL carried no initData or the marketplace rejected the exchange.
	ErrAuth = fmt.Errorf("authentication failed")
	// ErrNetwork covers transport failures, timeouts, challenge pages and unexpected statuses.
	ErrNetwork = fmt.Errorf("network failure")
	// ErrNotFound means the item is not present in the catalog being searched.
	ErrNotFound = fmt.Errorf("not found")
	// ErrRateLimited is returned for 401/403 responses, the credential in use should be refreshed.
	ErrRateLimited = fmt.Errorf("rate limited or unauthorized")
)

// StatusError maps a non-2xx HTTP status to one of the sentinel errors, it returns nil for 2xx.
func StatusError(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return fmt.Errorf("status %d: %w", status, ErrRateLimited)
	case status == http.StatusNotFound:
		return fmt.Errorf("status %d: %w", status, ErrNotFound)
	default:
		return fmt.Errorf("status %d: %w", status, ErrNetwork)
	}
}

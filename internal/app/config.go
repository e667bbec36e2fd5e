package app

import (
	"errors"
	"fmt"
	"giftprice-backend/internal/components/configutil"
	configlibsql "giftprice-backend/internal/components/configutil/libsql"
	"os"
	"time"
)

type SessionConfig struct {
	// BridgeUrl points at the process holding the authorized Telegram session.
	BridgeUrl   string `json:"bridge_url"`
	BridgeToken string `json:"bridge_token"`
	// WebviewUrls are pre-captured WebView URLs keyed by marketplace, used when no bridge
	// is configured.
	WebviewUrls map[string]string `json:"webview_urls"`
}

type MarketplaceConfig struct {
	Disabled               bool    `json:"disabled"`
	BaseUrl                string  `json:"base_url"`
	Bot                    string  `json:"bot"`
	AuthPath               string  `json:"auth_path"`
	CatalogPath            string  `json:"catalog_path"`
	WebAppUrl              string  `json:"webapp_url"`
	RefreshIntervalSeconds int     `json:"refresh_interval_seconds"`
	TimeoutSeconds         int     `json:"timeout_seconds"`
	RequestsPerSecond      float64 `json:"requests_per_second"`
}

func (c MarketplaceConfig) ttl() time.Duration {
	return time.Duration(c.RefreshIntervalSeconds) * time.Second
}

func (c MarketplaceConfig) timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type CacheConfig struct {
	RecordTtlSeconds  int `json:"record_ttl_seconds"`
	CatalogTtlSeconds int `json:"catalog_ttl_seconds"`
	// RedisUrl switches the price cache to redis when set.
	RedisUrl    string `json:"redis_url"`
	RedisPrefix string `json:"redis_prefix"`
}

type TonRateConfig struct {
	// Fixed disables fetching and always uses this rate when positive.
	Fixed      float64 `json:"fixed"`
	BaseUrl    string  `json:"base_url"`
	Fallback   float64 `json:"fallback"`
	TtlSeconds int     `json:"ttl_seconds"`
}

type HistoryConfig struct {
	Disabled      bool `json:"disabled"`
	RetentionDays int  `json:"retention_days"`
	configlibsql.Struct
}

type HttpConfig struct {
	Port int `json:"port"`
	// AccessToken is the bearer token clients must present, empty disables the check.
	AccessToken string `json:"access_token"`
}

type Config struct {
	Timezone    string            `json:"timezone"`
	Session     SessionConfig     `json:"session"`
	Mrkt        MarketplaceConfig `json:"mrkt"`
	Quant       MarketplaceConfig `json:"quant"`
	Cache       CacheConfig       `json:"cache"`
	TonRate     TonRateConfig     `json:"ton_rate"`
	History     HistoryConfig     `json:"history"`
	SnapshotDir string            `json:"snapshot_dir"`
	// GiftsFile overlays extra or corrected entries onto the built in gift registry.
	GiftsFile                string     `json:"gifts_file"`
	Workers                  int        `json:"workers"`
	SyncCron                 string     `json:"sync_cron"`
	CredentialRefreshSeconds int        `json:"credential_refresh_seconds"`
	Http                     HttpConfig `json:"http"`
}

// WithDefaults fills every unset field with its default.
func (c Config) WithDefaults() Config {
	if c.SnapshotDir == "" {
		c.SnapshotDir = "snapshots"
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.SyncCron == "" {
		c.SyncCron = "*/30 * * * *"
	}
	if c.CredentialRefreshSeconds <= 0 {
		c.CredentialRefreshSeconds = 30
	}
	if c.Cache.RedisPrefix == "" {
		c.Cache.RedisPrefix = "giftprice:price"
	}
	if c.History.File == "" && c.History.Url == "" {
		c.History.File = "history.db"
	}
	if c.History.RetentionDays <= 0 {
		c.History.RetentionDays = 90
	}
	if c.Http.Port <= 0 {
		c.Http.Port = 8090
	}
	return c
}

func (c Config) Validate() error {
	if c.Mrkt.Disabled && c.Quant.Disabled {
		return fmt.Errorf("config: every marketplace is disabled")
	}
	if c.TonRate.Fixed < 0 || c.TonRate.Fallback < 0 {
		return fmt.Errorf("config: ton_rate must not be negative")
	}
	return nil
}

// LoadConfig reads `path` (and its .local override) through configutil, a missing file
// yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg, err := configutil.ReadConfig[Config](path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}
	cfg = cfg.WithDefaults()
	return cfg, cfg.Validate()
}

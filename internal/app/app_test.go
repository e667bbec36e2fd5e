package app

import (
	"context"
	"giftprice-backend/internal/components/telemetry"
	"giftprice-backend/internal/marketplace"
	"giftprice-backend/internal/pricing"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func offlineConfig(t testing.TB) Config {
	dir := t.TempDir()
	cfg := Config{
		SnapshotDir: filepath.Join(dir, "snapshots"),
		TonRate:     TonRateConfig{Fixed: 2},
	}
	cfg.History.File = filepath.Join(dir, "history.db")
	return cfg
}

func TestNewResolvesOffline(t *testing.T) {
	ctx := context.Background()

	a, err := New(ctx, offlineConfig(t), &telemetry.Recorder{})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	// no webview is configured so both the live and snapshot tiers miss
	record, err := a.Resolver.Resolve(ctx, "durov's coat")
	require.NoError(t, err)
	require.Equal(t, pricing.SourceSynthetic, record.Source)
	require.Equal(t, "Durov's Coat", record.ItemName)
	require.Equal(t, marketplace.MRKT, record.Marketplace)
	require.Greater(t, record.PriceNative, 0.0)

	require.NotNil(t, a.History)
	records, err := a.History.Latest(ctx, "Durov's Coat", 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, pricing.SourceSynthetic, records[0].Source)

	_, err = a.Resolver.Resolve(ctx, "not a real gift")
	require.ErrorIs(t, err, marketplace.ErrNotFound)
}

func TestNewDisabledMarketplace(t *testing.T) {
	cfg := offlineConfig(t)
	cfg.Quant.Disabled = true
	cfg.History.Disabled = true

	a, err := New(context.Background(), cfg, &telemetry.Recorder{})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	require.Nil(t, a.History)
	_, err = a.Credentials.Client(marketplace.Quant)
	require.Error(t, err)
	_, err = a.Credentials.Client(marketplace.MRKT)
	require.NoError(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{}
	cfg.Mrkt.Disabled = true
	cfg.Quant.Disabled = true
	require.Error(t, cfg.WithDefaults().Validate())

	require.NoError(t, Config{}.WithDefaults().Validate())
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "missing.json5"))
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, 8090, cfg.Http.Port)

	path := filepath.Join(dir, "giftprice.json5")
	err = os.WriteFile(path, []byte(`{
		// comments are allowed
		workers: 8,
		ton_rate: { fixed: 3.5 },
		mrkt: { bot: "other_bot" },
	}`), 0644)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "giftprice.local.json5"), []byte(`{ workers: 2 }`), 0644)
	require.NoError(t, err)

	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Workers)
	require.Equal(t, 3.5, cfg.TonRate.Fixed)
	require.Equal(t, "other_bot", cfg.Mrkt.Bot)
	require.Equal(t, "history.db", cfg.History.File)
}

// Package app builds the price orchestrator out of a Config, it is shared by the CLI and
// the daemon.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"giftprice-backend/internal/components/chrono"
	"giftprice-backend/internal/components/telemetry"
	"giftprice-backend/internal/credentials"
	"giftprice-backend/internal/gifts"
	"giftprice-backend/internal/history"
	"giftprice-backend/internal/marketplace"
	"giftprice-backend/internal/marketplace/mrkt"
	"giftprice-backend/internal/marketplace/quant"
	"giftprice-backend/internal/pricecache"
	"giftprice-backend/internal/pricing"
	"giftprice-backend/internal/snapshot"
	"giftprice-backend/internal/syncer"
	"giftprice-backend/internal/tonrate"
	"giftprice-backend/internal/webview"
	"time"

	"github.com/redis/go-redis/v9"
)

type App struct {
	Config      Config
	Time        chrono.API
	Tel         telemetry.API
	Registry    *gifts.Registry
	Credentials *credentials.Store
	Snapshots   snapshot.Store
	Resolver    *pricing.Resolver
	Syncer      syncer.Syncer
	// History is nil when disabled in the config.
	History *history.History

	closers []func() error
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}

func newSession(cfg SessionConfig, id marketplace.ID, tel telemetry.API) webview.Session {
	if cfg.BridgeUrl != "" {
		return webview.NewBridgeSession(cfg.BridgeUrl, cfg.BridgeToken, tel)
	}
	return webview.StaticSession{Url: cfg.WebviewUrls[string(id)]}
}

func newClients(cfg Config, time chrono.API, tel telemetry.API) ([]marketplace.Client, error) {
	var clients []marketplace.Client
	if !cfg.Mrkt.Disabled {
		clients = append(clients, mrkt.New(
			mrkt.Options{
				BaseUrl:           cfg.Mrkt.BaseUrl,
				Bot:               cfg.Mrkt.Bot,
				AuthPath:          cfg.Mrkt.AuthPath,
				CatalogPath:       cfg.Mrkt.CatalogPath,
				WebAppUrl:         cfg.Mrkt.WebAppUrl,
				TTL:               cfg.Mrkt.ttl(),
				Timeout:           cfg.Mrkt.timeout(),
				RequestsPerSecond: cfg.Mrkt.RequestsPerSecond,
			},
			newSession(cfg.Session, marketplace.MRKT, tel),
			time,
			tel,
		))
	}
	if !cfg.Quant.Disabled {
		client, err := quant.New(
			quant.Options{
				BaseUrl:           cfg.Quant.BaseUrl,
				Bot:               cfg.Quant.Bot,
				AuthPath:          cfg.Quant.AuthPath,
				CatalogPath:       cfg.Quant.CatalogPath,
				WebAppUrl:         cfg.Quant.WebAppUrl,
				TTL:               cfg.Quant.ttl(),
				Timeout:           cfg.Quant.timeout(),
				RequestsPerSecond: cfg.Quant.RequestsPerSecond,
			},
			newSession(cfg.Session, marketplace.Quant, tel),
			time,
			tel,
		)
		if err != nil {
			return nil, fmt.Errorf("create quant client: %w", err)
		}
		clients = append(clients, client)
	}
	return clients, nil
}

func newRate(cfg TonRateConfig, time chrono.API, tel telemetry.API) tonrate.Provider {
	if cfg.Fixed > 0 {
		return tonrate.Fixed(cfg.Fixed)
	}
	return tonrate.NewCoinGecko(tonrate.Options{
		BaseUrl:  cfg.BaseUrl,
		Fallback: cfg.Fallback,
		TTL:      seconds(cfg.TtlSeconds),
	}, time, tel)
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

// New wires every component described by `cfg`. The returned App must be closed.
func New(ctx context.Context, cfg Config, tel telemetry.API) (*App, error) {
	cfg = cfg.WithDefaults()
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	clock, err := chrono.NewStandardImpl(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}

	a := &App{Config: cfg, Time: clock, Tel: tel}
	ok := false
	defer func() {
		if !ok {
			a.Close()
		}
	}()

	a.Registry, err = gifts.Default()
	if err != nil {
		return nil, err
	}
	if cfg.GiftsFile != "" {
		err = a.Registry.MergeFile(cfg.GiftsFile)
		if err != nil {
			return nil, fmt.Errorf("load gifts file: %w", err)
		}
	}

	clients, err := newClients(cfg, clock, tel)
	if err != nil {
		return nil, err
	}
	a.Credentials, err = credentials.NewStore(clock, tel, clients...)
	if err != nil {
		return nil, err
	}

	a.Snapshots = snapshot.NewStore(cfg.SnapshotDir, tel)

	var cache pricecache.Cache[pricing.PriceRecord]
	if cfg.Cache.RedisUrl != "" {
		var client *redis.Client
		client, err = pricecache.NewRedisClient(ctx, cfg.Cache.RedisUrl)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		cache = pricecache.NewRedis[pricing.PriceRecord](client, cfg.Cache.RedisPrefix)
	}

	a.Resolver = pricing.NewResolver(pricing.Dependencies{
		Registry:    a.Registry,
		Credentials: a.Credentials,
		Snapshots:   a.Snapshots,
		Rate:        newRate(cfg.TonRate, clock, tel),
		Cache:       cache,
		Time:        clock,
		Tel:         tel,
		RecordTTL:   seconds(cfg.Cache.RecordTtlSeconds),
		CatalogTTL:  seconds(cfg.Cache.CatalogTtlSeconds),
	})

	marketplaces := make([]marketplace.ID, 0, len(clients))
	for _, c := range clients {
		marketplaces = append(marketplaces, c.ID())
	}
	a.Syncer = syncer.NewSyncer(a.Resolver.Catalogs(), a.Snapshots, marketplaces, clock, tel)

	if !cfg.History.Disabled {
		var database *sql.DB
		database, err = cfg.History.OpenDB()
		if err != nil {
			return nil, fmt.Errorf("open history db: %w", err)
		}
		a.closers = append(a.closers, database.Close)

		var h history.History
		h, err = history.Open(ctx, database, clock, tel)
		if err != nil {
			return nil, err
		}
		a.History = &h
		a.Resolver.OnResolved(h.Observe)
	}

	ok = true
	return a, nil
}

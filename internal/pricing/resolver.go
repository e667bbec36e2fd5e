// Package pricing resolves the price of a gift through an ordered fallback chain: the live
// marketplace catalog, then the saved snapshot, then a synthetic estimate.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"giftprice-backend/internal/catalog"
	"giftprice-backend/internal/components/assert"
	"giftprice-backend/internal/components/chrono"
	"giftprice-backend/internal/components/telemetry"
	"giftprice-backend/internal/credentials"
	"giftprice-backend/internal/gifts"
	"giftprice-backend/internal/pricecache"
	"giftprice-backend/internal/tonrate"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("internal/pricing")

const (
	report_resolver_tier  = "resolver.tier"
	report_resolver_cache = "resolver.cache"
)

const (
	DefaultRecordTTL  = 60 * time.Second
	DefaultCatalogTTL = 60 * time.Second
)

type Dependencies struct {
	Registry    *gifts.Registry
	Credentials *credentials.Store
	Snapshots   SnapshotSource
	Rate        tonrate.Provider
	Cache       pricecache.Cache[PriceRecord]
	Time        chrono.API
	Tel         telemetry.API

	RecordTTL  time.Duration
	CatalogTTL time.Duration
}

type Resolver struct {
	registry    *gifts.Registry
	credentials *credentials.Store
	catalogs    *CatalogCache
	tiers       []Tier
	cache       pricecache.Cache[PriceRecord]
	recordTTL   time.Duration
	time        chrono.API
	tel         telemetry.API
	observers   []func(ctx context.Context, record PriceRecord)
}

func NewResolver(deps Dependencies) *Resolver {
	assert.NotNil(deps.Registry)
	assert.NotNil(deps.Credentials)
	assert.NotNil(deps.Snapshots)
	assert.NotNil(deps.Rate)
	assert.NotNil(deps.Time)
	assert.NotNil(deps.Tel)

	if deps.RecordTTL <= 0 {
		deps.RecordTTL = DefaultRecordTTL
	}
	if deps.CatalogTTL <= 0 {
		deps.CatalogTTL = DefaultCatalogTTL
	}
	if deps.Cache == nil {
		deps.Cache = pricecache.NewMemory[PriceRecord](deps.Time)
	}

	catalogs := NewCatalogCache(deps.Credentials, deps.Time, deps.CatalogTTL)
	return &Resolver{
		registry:    deps.Registry,
		credentials: deps.Credentials,
		catalogs:    catalogs,
		tiers: []Tier{
			liveTier{catalogs: catalogs, rate: deps.Rate},
			snapshotTier{snapshots: deps.Snapshots, rate: deps.Rate},
			syntheticTier{rate: deps.Rate},
		},
		cache:     deps.Cache,
		recordTTL: deps.RecordTTL,
		time:      deps.Time,
		tel:       telemetry.NewScopedAPI("pricing", deps.Tel),
	}
}

// Catalogs exposes the live catalog cache the resolver reads from.
func (r *Resolver) Catalogs() *CatalogCache {
	return r.catalogs
}

func (r *Resolver) Registry() *gifts.Registry {
	return r.registry
}

// OnResolved registers a callback invoked with every freshly resolved record, cache hits
// are not reported. It must be called before the resolver is shared.
func (r *Resolver) OnResolved(fn func(ctx context.Context, record PriceRecord)) {
	r.observers = append(r.observers, fn)
}

// Resolve returns the price of the gift named (or identified) by `name`. Only a gift
// missing from the registry or the failure of every tier is an error.
func (r *Resolver) Resolve(ctx context.Context, name string) (PriceRecord, error) {
	ctx, span := tracer.Start(ctx, "resolver:resolve")
	defer span.End()
	span.SetAttributes(attribute.String("query", name))

	entry, err := r.registry.Lookup(name)
	if err != nil {
		span.RecordError(err)
		return PriceRecord{}, fmt.Errorf("resolve %q: %w", name, err)
	}

	key := catalog.Normalize(entry.Name)
	cached, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		r.tel.ReportWarning(report_resolver_cache, err, "key", key)
	}
	if ok {
		return cached, nil
	}

	var errs []error
	for _, tier := range r.tiers {
		record, err := tier.Price(ctx, entry)
		if err != nil {
			r.tel.ReportWarning(report_resolver_tier, err, "tier", tier.Source(), "gift", entry.Name)
			errs = append(errs, fmt.Errorf("%s: %w", tier.Source(), err))
			continue
		}
		record.ResolvedAt = r.time.Now()
		span.SetAttributes(attribute.String("source", string(record.Source)))

		err = r.cache.Set(ctx, key, record, r.recordTTL)
		if err != nil {
			r.tel.ReportWarning(report_resolver_cache, err, "key", key)
		}
		for _, observe := range r.observers {
			observe(ctx, record)
		}
		return record, nil
	}

	err = fmt.Errorf("resolve %s: every source failed: %w", entry.Name, errors.Join(errs...))
	span.RecordError(err)
	span.SetStatus(codes.Error, "every source failed")
	return PriceRecord{}, err
}

// ClearCache drops every cached price record.
func (r *Resolver) ClearCache(ctx context.Context) error {
	return r.cache.Clear(ctx)
}

// ClearAll drops cached records, cached catalogs and stored credentials.
func (r *Resolver) ClearAll(ctx context.Context) error {
	r.catalogs.Clear()
	r.credentials.Clear()
	return r.ClearCache(ctx)
}

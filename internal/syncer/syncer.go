// Package syncer refreshes the snapshot files from the live marketplace catalogs.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"giftprice-backend/internal/components/assert"
	"giftprice-backend/internal/components/chrono"
	"giftprice-backend/internal/components/telemetry"
	"giftprice-backend/internal/marketplace"
	"giftprice-backend/internal/snapshot"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("internal/syncer")

const report_syncer_sync = "syncer.sync"

// Fetcher returns a fresh live catalog, it is satisfied by *pricing.CatalogCache.
type Fetcher interface {
	Fetch(ctx context.Context, id marketplace.ID) ([]marketplace.CatalogItem, error)
}

// Saver persists a catalog, it is satisfied by snapshot.Store.
type Saver interface {
	Save(id marketplace.ID, catalog snapshot.Catalog) error
}

type Result struct {
	Marketplace marketplace.ID
	Items       int
	Err         error
}

type Syncer struct {
	fetcher      Fetcher
	saver        Saver
	marketplaces []marketplace.ID
	time         chrono.API
	tel          telemetry.API
}

func NewSyncer(fetcher Fetcher, saver Saver, marketplaces []marketplace.ID, time chrono.API, tel telemetry.API) Syncer {
	assert.NotNil(fetcher)
	assert.NotNil(saver)
	assert.NotNil(time)
	assert.NotNil(tel)

	return Syncer{
		fetcher:      fetcher,
		saver:        saver,
		marketplaces: marketplaces,
		time:         time,
		tel:          telemetry.NewScopedAPI("syncer", tel),
	}
}

// Sync writes a snapshot for every marketplace. A marketplace that cannot be fetched keeps
// its previous snapshot, an empty catalog is never written over an existing one.
func (s Syncer) Sync(ctx context.Context) ([]Result, error) {
	ctx, span := tracer.Start(ctx, "syncer:sync")
	defer span.End()

	var errs []error
	results := make([]Result, 0, len(s.marketplaces))
	for _, id := range s.marketplaces {
		count, err := s.syncOne(ctx, id)
		results = append(results, Result{Marketplace: id, Items: count, Err: err})
		if err != nil {
			span.RecordError(err)
			s.tel.ReportWarning(report_syncer_sync, err, "marketplace", id)
			errs = append(errs, err)
			continue
		}
		span.SetAttributes(attribute.Int(string(id)+".items", count))
		s.tel.ReportCount(report_syncer_sync, int64(count))
	}

	err := errors.Join(errs...)
	if err != nil {
		span.SetStatus(codes.Error, "some marketplaces failed to sync")
	}
	return results, err
}

func (s Syncer) syncOne(ctx context.Context, id marketplace.ID) (int, error) {
	items, err := s.fetcher.Fetch(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("sync %s: %w", id, err)
	}
	if len(items) == 0 {
		return 0, fmt.Errorf("sync %s: empty catalog: %w", id, marketplace.ErrNotFound)
	}
	err = s.saver.Save(id, snapshot.Catalog{
		Items:   items,
		SavedAt: s.time.Now(),
	})
	if err != nil {
		return 0, fmt.Errorf("sync %s: %w", id, err)
	}
	return len(items), nil
}

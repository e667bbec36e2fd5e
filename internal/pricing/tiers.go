package pricing

import (
	"context"
	"fmt"
	"giftprice-backend/internal/catalog"
	"giftprice-backend/internal/gifts"
	"giftprice-backend/internal/marketplace"
	"giftprice-backend/internal/snapshot"
	"giftprice-backend/internal/synthetic"
	"giftprice-backend/internal/tonrate"
	"math"
)

// Tier is one step of the fallback chain.
type Tier interface {
	Source() Source
	Price(ctx context.Context, entry gifts.Entry) (PriceRecord, error)
}

// SnapshotSource reads saved catalogs, it is satisfied by snapshot.Store.
type SnapshotSource interface {
	Load(id marketplace.ID) (snapshot.Catalog, error)
}

func query(entry gifts.Entry) catalog.Query {
	return catalog.Query{ID: entry.ID, Name: entry.Name}
}

// fromItem prices a catalog item, an item without a floor price has no listings and is a miss.
func fromItem(entry gifts.Entry, item marketplace.CatalogItem, rate float64, source Source) (PriceRecord, error) {
	if item.FloorMinor <= 0 {
		return PriceRecord{}, fmt.Errorf("%s has no listings: %w", entry.Name, marketplace.ErrNotFound)
	}
	supply := item.Supply
	if supply == nil {
		supply = entry.Supply
	}
	native := marketplace.ToNative(item.FloorMinor)
	return PriceRecord{
		ItemName:      entry.Name,
		ItemID:        entry.ID,
		Marketplace:   entry.Marketplace,
		PriceNative:   native,
		PriceUSD:      math.Round(native*rate*100) / 100,
		ChangePercent: marketplace.ChangePercent(item.FloorMinor, item.PreviousFloorMinor),
		Supply:        supply,
		Source:        source,
	}, nil
}

type liveTier struct {
	catalogs *CatalogCache
	rate     tonrate.Provider
}

func (t liveTier) Source() Source {
	return SourceLive
}

func (t liveTier) Price(ctx context.Context, entry gifts.Entry) (PriceRecord, error) {
	items, err := t.catalogs.Get(ctx, entry.Marketplace)
	if err != nil {
		return PriceRecord{}, err
	}
	item, err := catalog.Find(items, query(entry))
	if err != nil {
		return PriceRecord{}, err
	}
	return fromItem(entry, item, t.rate.USD(ctx), SourceLive)
}

type snapshotTier struct {
	snapshots SnapshotSource
	rate      tonrate.Provider
}

func (t snapshotTier) Source() Source {
	return SourceSnapshot
}

func (t snapshotTier) Price(ctx context.Context, entry gifts.Entry) (PriceRecord, error) {
	saved, err := t.snapshots.Load(entry.Marketplace)
	if err != nil {
		return PriceRecord{}, err
	}
	item, err := catalog.Find(saved.Items, query(entry))
	if err != nil {
		return PriceRecord{}, err
	}
	return fromItem(entry, item, t.rate.USD(ctx), SourceSnapshot)
}

type syntheticTier struct {
	rate tonrate.Provider
}

func (t syntheticTier) Source() Source {
	return SourceSynthetic
}

func (t syntheticTier) Price(ctx context.Context, entry gifts.Entry) (PriceRecord, error) {
	estimate, err := synthetic.Compute(entry, t.rate.USD(ctx))
	if err != nil {
		return PriceRecord{}, err
	}
	return PriceRecord{
		ItemName:    entry.Name,
		ItemID:      entry.ID,
		Marketplace: entry.Marketplace,
		PriceNative: estimate.PriceNative,
		PriceUSD:    estimate.PriceUSD,
		Supply:      entry.Supply,
		Source:      SourceSynthetic,
	}, nil
}

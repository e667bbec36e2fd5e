package pricing

import (
	"context"
	"fmt"
	"giftprice-backend/internal/components/chrono"
	"giftprice-backend/internal/components/telemetry"
	"giftprice-backend/internal/credentials"
	"giftprice-backend/internal/gifts"
	"giftprice-backend/internal/marketplace"
	"giftprice-backend/internal/snapshot"
	"giftprice-backend/internal/tonrate"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

type fakeClient struct {
	id        marketplace.ID
	clock     chrono.API
	items     []marketplace.CatalogItem
	err       error
	refreshes atomic.Int64
	fetches   atomic.Int64
}

func (c *fakeClient) ID() marketplace.ID {
	return c.id
}

func (c *fakeClient) Refresh(ctx context.Context) (marketplace.Credential, error) {
	n := c.refreshes.Add(1)
	return marketplace.Credential{
		Marketplace: c.id,
		Token:       fmt.Sprintf("token-%d", n),
		ObtainedAt:  c.clock.Now(),
		TTL:         45 * time.Second,
	}, nil
}

func (c *fakeClient) FetchCatalog(ctx context.Context, cred marketplace.Credential) ([]marketplace.CatalogItem, error) {
	c.fetches.Add(1)
	if c.err != nil {
		return nil, c.err
	}
	return c.items, nil
}

type fakeSnapshots struct {
	catalogs map[marketplace.ID][]marketplace.CatalogItem
}

func (f fakeSnapshots) Load(id marketplace.ID) (snapshot.Catalog, error) {
	items, ok := f.catalogs[id]
	if !ok {
		return snapshot.Catalog{}, fmt.Errorf("snapshot %s: %w", id, marketplace.ErrNotFound)
	}
	return snapshot.Catalog{Items: items}, nil
}

type fixture struct {
	resolver *Resolver
	clock    *chrono.Manual
	mrkt     *fakeClient
	quant    *fakeClient
	tel      *telemetry.Recorder
}

var start = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newFixture(t testing.TB, mrkt, quant *fakeClient, snapshots fakeSnapshots) fixture {
	clock := chrono.NewManual(start)
	tel := &telemetry.Recorder{}
	mrkt.clock = clock
	quant.clock = clock

	store, err := credentials.NewStore(clock, tel, mrkt, quant)
	require.NoError(t, err)
	registry, err := gifts.Default()
	require.NoError(t, err)

	resolver := NewResolver(Dependencies{
		Registry:    registry,
		Credentials: store,
		Snapshots:   snapshots,
		Rate:        tonrate.Fixed(2.0),
		Time:        clock,
		Tel:         tel,
	})
	return fixture{resolver: resolver, clock: clock, mrkt: mrkt, quant: quant, tel: tel}
}

var coatItem = marketplace.CatalogItem{
	ExternalID:         "6001425315291727333",
	DisplayName:        "Durov's Coat",
	FloorMinor:         2_500_000_000,
	PreviousFloorMinor: ptr(int64(2_000_000_000)),
}

func TestResolveLive(t *testing.T) {
	f := newFixture(t,
		&fakeClient{id: marketplace.MRKT, items: []marketplace.CatalogItem{coatItem}},
		&fakeClient{id: marketplace.Quant},
		fakeSnapshots{},
	)

	record, err := f.resolver.Resolve(context.Background(), "Durov's Coat")
	require.NoError(t, err)

	expected := PriceRecord{
		ItemName:      "Durov's Coat",
		ItemID:        "6001425315291727333",
		Marketplace:   marketplace.MRKT,
		PriceNative:   2.5,
		PriceUSD:      5,
		ChangePercent: 25,
		Supply:        ptr(int64(50)),
		Source:        SourceLive,
		ResolvedAt:    start,
	}
	if diff := cmp.Diff(expected, record); diff != "" {
		t.Fatal(diff)
	}
	require.Equal(t, int64(0), f.quant.fetches.Load())
}

func TestResolveFallsBackToSnapshot(t *testing.T) {
	snapshots := fakeSnapshots{catalogs: map[marketplace.ID][]marketplace.CatalogItem{
		marketplace.Quant: {
			{ExternalID: "5963238670868677492", DisplayName: "Money Pot", FloorMinor: 3_750_000_000, Supply: ptr(int64(119000))},
		},
	}}
	f := newFixture(t,
		&fakeClient{id: marketplace.MRKT},
		&fakeClient{id: marketplace.Quant, err: fmt.Errorf("challenge: %w", marketplace.ErrNetwork)},
		snapshots,
	)

	record, err := f.resolver.Resolve(context.Background(), "money pot")
	require.NoError(t, err)
	require.Equal(t, SourceSnapshot, record.Source)
	require.Equal(t, 3.75, record.PriceNative)
	require.Equal(t, 7.5, record.PriceUSD)
	require.Equal(t, int64(119000), *record.Supply)
	require.Equal(t, 0.0, record.ChangePercent)
	require.NotEmpty(t, f.tel.Find("warning", report_resolver_tier))
}

func TestResolveZeroFloorIsAMiss(t *testing.T) {
	zero := coatItem
	zero.FloorMinor = 0
	snapshots := fakeSnapshots{catalogs: map[marketplace.ID][]marketplace.CatalogItem{
		marketplace.MRKT: {{ExternalID: coatItem.ExternalID, DisplayName: coatItem.DisplayName, FloorMinor: 1_000_000_000}},
	}}
	f := newFixture(t,
		&fakeClient{id: marketplace.MRKT, items: []marketplace.CatalogItem{zero}},
		&fakeClient{id: marketplace.Quant},
		snapshots,
	)

	record, err := f.resolver.Resolve(context.Background(), "Durov's Coat")
	require.NoError(t, err)
	require.Equal(t, SourceSnapshot, record.Source)
	require.Equal(t, 1.0, record.PriceNative)
}

func TestResolveSynthetic(t *testing.T) {
	f := newFixture(t,
		&fakeClient{id: marketplace.MRKT, err: fmt.Errorf("down: %w", marketplace.ErrNetwork)},
		&fakeClient{id: marketplace.Quant},
		fakeSnapshots{},
	)

	record, err := f.resolver.Resolve(context.Background(), "Durov's Coat")
	require.NoError(t, err)
	require.Equal(t, SourceSynthetic, record.Source)
	require.Greater(t, record.PriceNative, 0.0)
	require.Greater(t, record.PriceUSD, 0.0)
	require.Equal(t, int64(50), *record.Supply)
}

func TestResolveEveryTierFails(t *testing.T) {
	f := newFixture(t,
		&fakeClient{id: marketplace.MRKT, err: fmt.Errorf("down: %w", marketplace.ErrNetwork)},
		&fakeClient{id: marketplace.Quant},
		fakeSnapshots{},
	)

	_, err := f.resolver.Resolve(context.Background(), "Gravestone")
	require.Error(t, err)
	require.ErrorIs(t, err, marketplace.ErrNetwork)
	require.ErrorIs(t, err, marketplace.ErrNotFound)
	require.Contains(t, err.Error(), "live")
	require.Contains(t, err.Error(), "snapshot")
	require.Contains(t, err.Error(), "synthetic")
}

func TestResolveUnknownGift(t *testing.T) {
	f := newFixture(t,
		&fakeClient{id: marketplace.MRKT},
		&fakeClient{id: marketplace.Quant},
		fakeSnapshots{},
	)

	_, err := f.resolver.Resolve(context.Background(), "Plush Pepe")
	require.ErrorIs(t, err, marketplace.ErrNotFound)
	require.Equal(t, int64(0), f.mrkt.fetches.Load())
	require.Equal(t, int64(0), f.quant.fetches.Load())
}

func TestResolveCaches(t *testing.T) {
	f := newFixture(t,
		&fakeClient{id: marketplace.MRKT, items: []marketplace.CatalogItem{coatItem}},
		&fakeClient{id: marketplace.Quant},
		fakeSnapshots{},
	)
	var observed atomic.Int64
	f.resolver.OnResolved(func(ctx context.Context, record PriceRecord) {
		observed.Add(1)
	})

	first, err := f.resolver.Resolve(context.Background(), "Durov's Coat")
	require.NoError(t, err)

	f.clock.Advance(30 * time.Second)
	second, err := f.resolver.Resolve(context.Background(), "durovs coat")
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, int64(1), f.mrkt.fetches.Load())
	require.Equal(t, int64(1), observed.Load())

	f.clock.Advance(31 * time.Second)
	third, err := f.resolver.Resolve(context.Background(), "Durov's Coat")
	require.NoError(t, err)
	require.Equal(t, start.Add(61*time.Second), third.ResolvedAt)
	require.Equal(t, int64(2), f.mrkt.fetches.Load())
	require.Equal(t, int64(2), observed.Load())
}

func TestClearCacheAndClearAll(t *testing.T) {
	f := newFixture(t,
		&fakeClient{id: marketplace.MRKT, items: []marketplace.CatalogItem{coatItem}},
		&fakeClient{id: marketplace.Quant},
		fakeSnapshots{},
	)
	ctx := context.Background()

	_, err := f.resolver.Resolve(ctx, "Durov's Coat")
	require.NoError(t, err)

	require.NoError(t, f.resolver.ClearCache(ctx))
	_, err = f.resolver.Resolve(ctx, "Durov's Coat")
	require.NoError(t, err)
	// the catalog is still cached
	require.Equal(t, int64(1), f.mrkt.fetches.Load())
	require.Equal(t, int64(1), f.mrkt.refreshes.Load())

	require.NoError(t, f.resolver.ClearAll(ctx))
	_, err = f.resolver.Resolve(ctx, "Durov's Coat")
	require.NoError(t, err)
	require.Equal(t, int64(2), f.mrkt.fetches.Load())
	require.Equal(t, int64(2), f.mrkt.refreshes.Load())
}

func TestResolveRetriesAfterRateLimit(t *testing.T) {
	client := &rateLimitedOnce{fakeClient: fakeClient{id: marketplace.MRKT, items: []marketplace.CatalogItem{coatItem}}}
	clock := chrono.NewManual(start)
	client.clock = clock
	quant := &fakeClient{id: marketplace.Quant, clock: clock}

	store, err := credentials.NewStore(clock, &telemetry.Recorder{}, client, quant)
	require.NoError(t, err)
	registry, err := gifts.Default()
	require.NoError(t, err)
	resolver := NewResolver(Dependencies{
		Registry:    registry,
		Credentials: store,
		Snapshots:   fakeSnapshots{},
		Rate:        tonrate.Fixed(2.0),
		Time:        clock,
		Tel:         &telemetry.Recorder{},
	})

	record, err := resolver.Resolve(context.Background(), "Durov's Coat")
	require.NoError(t, err)
	require.Equal(t, SourceLive, record.Source)
	require.Equal(t, int64(2), client.refreshes.Load())
}

type rateLimitedOnce struct {
	fakeClient
	once sync.Once
}

func (c *rateLimitedOnce) FetchCatalog(ctx context.Context, cred marketplace.Credential) ([]marketplace.CatalogItem, error) {
	var err error
	c.once.Do(func() {
		err = fmt.Errorf("status 401: %w", marketplace.ErrRateLimited)
	})
	if err != nil {
		return nil, err
	}
	return c.fakeClient.FetchCatalog(ctx, cred)
}

func TestConcurrentResolveRefreshesOnce(t *testing.T) {
	f := newFixture(t,
		&fakeClient{id: marketplace.MRKT, items: []marketplace.CatalogItem{coatItem}},
		&fakeClient{id: marketplace.Quant},
		fakeSnapshots{},
	)

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.resolver.Resolve(context.Background(), "Durov's Coat")
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, int64(1), f.mrkt.refreshes.Load())
}

package pricing

import (
	"context"
	"giftprice-backend/internal/components/chrono"
	"giftprice-backend/internal/components/telemetry"
	"giftprice-backend/internal/credentials"
	"giftprice-backend/internal/marketplace"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// blockingClient holds its first catalog request until release is closed and answers it
// with the stale item, later requests get the current item.
type blockingClient struct {
	fakeClient
	started chan struct{}
	release chan struct{}
}

func (c *blockingClient) FetchCatalog(ctx context.Context, cred marketplace.Credential) ([]marketplace.CatalogItem, error) {
	if c.fetches.Add(1) == 1 {
		close(c.started)
		<-c.release
		return []marketplace.CatalogItem{{ExternalID: "1", DisplayName: "stale", FloorMinor: 1}}, nil
	}
	return []marketplace.CatalogItem{{ExternalID: "1", DisplayName: "current", FloorMinor: 2}}, nil
}

func newCatalogCache(t testing.TB, client marketplace.Client, clock chrono.API) *CatalogCache {
	store, err := credentials.NewStore(clock, &telemetry.Recorder{}, client)
	require.NoError(t, err)
	return NewCatalogCache(store, clock, time.Minute)
}

func TestFetchDoesNotJoinPendingGet(t *testing.T) {
	clock := chrono.NewManual(start)
	client := &blockingClient{
		fakeClient: fakeClient{id: marketplace.MRKT, clock: clock},
		started:    make(chan struct{}),
		release:    make(chan struct{}),
	}
	cache := newCatalogCache(t, client, clock)

	var pending []marketplace.CatalogItem
	done := make(chan error, 1)
	go func() {
		var err error
		pending, err = cache.Get(context.Background(), marketplace.MRKT)
		done <- err
	}()
	<-client.started

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	items, err := cache.Fetch(ctx, marketplace.MRKT)
	require.NoError(t, err)
	require.Equal(t, "current", items[0].DisplayName)

	close(client.release)
	require.NoError(t, <-done)
	require.Equal(t, "stale", pending[0].DisplayName)
	require.EqualValues(t, 2, client.fetches.Load())
}

func TestFetchBypassesFreshCache(t *testing.T) {
	clock := chrono.NewManual(start)
	client := &fakeClient{
		id:    marketplace.MRKT,
		clock: clock,
		items: []marketplace.CatalogItem{coatItem},
	}
	cache := newCatalogCache(t, client, clock)
	ctx := context.Background()

	_, err := cache.Get(ctx, marketplace.MRKT)
	require.NoError(t, err)
	_, err = cache.Get(ctx, marketplace.MRKT)
	require.NoError(t, err)
	require.EqualValues(t, 1, client.fetches.Load())

	_, err = cache.Fetch(ctx, marketplace.MRKT)
	require.NoError(t, err)
	require.EqualValues(t, 2, client.fetches.Load())

	clock.Advance(61 * time.Second)
	_, err = cache.Get(ctx, marketplace.MRKT)
	require.NoError(t, err)
	require.EqualValues(t, 3, client.fetches.Load())
}

package pricing

import (
	"context"
	"giftprice-backend/internal/components/assert"
	"giftprice-backend/internal/components/chrono"
	"giftprice-backend/internal/credentials"
	"giftprice-backend/internal/marketplace"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type cachedCatalog struct {
	items     []marketplace.CatalogItem
	fetchedAt time.Time
}

// CatalogCache keeps the last live catalog of each marketplace for a short time. Concurrent
// fetches of the same marketplace share one request.
type CatalogCache struct {
	credentials *credentials.Store
	time        chrono.API
	ttl         time.Duration

	mu       sync.Mutex
	catalogs map[marketplace.ID]cachedCatalog
	group    singleflight.Group
}

func NewCatalogCache(store *credentials.Store, time chrono.API, ttl time.Duration) *CatalogCache {
	assert.NotNil(store)
	assert.NotNil(time)
	return &CatalogCache{
		credentials: store,
		time:        time,
		ttl:         ttl,
		catalogs:    make(map[marketplace.ID]cachedCatalog),
	}
}

func (c *CatalogCache) cached(id marketplace.ID) ([]marketplace.CatalogItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.catalogs[id]
	if !ok || c.time.Now().Sub(entry.fetchedAt) >= c.ttl {
		return nil, false
	}
	return entry.items, true
}

// Get returns the cached catalog of `id` or fetches it.
func (c *CatalogCache) Get(ctx context.Context, id marketplace.ID) ([]marketplace.CatalogItem, error) {
	if items, ok := c.cached(id); ok {
		return items, nil
	}
	return c.fetch(ctx, id, true)
}

// Fetch always requests a new catalog and stores it.
func (c *CatalogCache) Fetch(ctx context.Context, id marketplace.ID) ([]marketplace.CatalogItem, error) {
	return c.fetch(ctx, id, false)
}

func (c *CatalogCache) fetch(ctx context.Context, id marketplace.ID, allowCached bool) ([]marketplace.CatalogItem, error) {
	// a forced fetch must not join a flight that may answer from the cache
	key := string(id)
	if !allowCached {
		key += ":force"
	}
	flightCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		if allowCached {
			if items, ok := c.cached(id); ok {
				return items, nil
			}
		}
		client, err := c.credentials.Client(id)
		if err != nil {
			return nil, err
		}

		var items []marketplace.CatalogItem
		err = c.credentials.Do(flightCtx, id, func(ctx context.Context, cred marketplace.Credential) error {
			var err error
			items, err = client.FetchCatalog(ctx, cred)
			return err
		})
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.catalogs[id] = cachedCatalog{items: items, fetchedAt: c.time.Now()}
		c.mu.Unlock()
		return items, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]marketplace.CatalogItem), nil
	}
}

func (c *CatalogCache) Clear() {
	c.mu.Lock()
	c.catalogs = make(map[marketplace.ID]cachedCatalog)
	c.mu.Unlock()
}

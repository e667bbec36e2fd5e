package pricecache

import (
	"context"
	"fmt"
	"giftprice-backend/internal/components/chrono"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type record struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func exercise(t *testing.T, cache Cache[record], advance func(time.Duration)) {
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "coat")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, cache.Set(ctx, "coat", record{Name: "Durov's Coat", Price: 2.5}, time.Minute))
	require.NoError(t, cache.Set(ctx, "pot", record{Name: "Money Pot", Price: 3.75}, time.Minute))

	value, ok, err := cache.Get(ctx, "coat")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, record{Name: "Durov's Coat", Price: 2.5}, value)

	require.NoError(t, cache.Delete(ctx, "pot"))
	_, ok, err = cache.Get(ctx, "pot")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, cache.Clear(ctx))
	_, ok, err = cache.Get(ctx, "coat")
	require.NoError(t, err)
	require.False(t, ok)

	if advance != nil {
		require.NoError(t, cache.Set(ctx, "coat", record{Name: "Durov's Coat"}, time.Minute))
		advance(time.Minute)
		_, ok, err = cache.Get(ctx, "coat")
		require.NoError(t, err)
		require.False(t, ok)
	}
}

func TestMemory(t *testing.T) {
	clock := chrono.NewManual(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	cache := NewMemory[record](clock)
	exercise(t, cache, clock.Advance)
	require.Equal(t, 0, cache.Len())
}

func TestMemoryExpiry(t *testing.T) {
	clock := chrono.NewManual(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	cache := NewMemory[int](clock)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", 1, 60*time.Second))
	clock.Advance(59 * time.Second)
	value, ok, err := cache.Get(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, value)

	clock.Advance(time.Second)
	_, ok, err = cache.Get(ctx, "a")
	require.NoError(t, err)
	require.False(t, ok)
}

// redisUrl returns REDIS_URL or the address of a redis container started for the test.
func redisUrl(t *testing.T) string {
	if addr := os.Getenv("REDIS_URL"); addr != "" {
		return addr
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	// suppress logging
	testcontainers.Logger = log.New(io.Discard, "", 0)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(
		ctx,
		testcontainers.GenericContainerRequest{
			Started: true,
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{"6379/tcp"},
				WaitingFor:   wait.ForLog("Ready to accept connections"),
			},
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		err := container.Terminate(context.Background())
		if err != nil {
			t.Fatal(err)
		}
	})

	endpoint, err := container.PortEndpoint(ctx, "6379/tcp", "redis")
	if err != nil {
		t.Fatal(err)
	}
	return endpoint
}

func TestRedis(t *testing.T) {
	client, err := NewRedisClient(context.Background(), redisUrl(t))
	require.NoError(t, err)
	defer client.Close()

	cache := NewRedis[record](client, fmt.Sprintf("giftprice-test-%d", time.Now().UnixNano()))
	exercise(t, cache, nil)

	// entries expire on the server
	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "coat", record{Name: "Durov's Coat"}, time.Second))
	require.Eventually(t, func() bool {
		_, ok, err := cache.Get(ctx, "coat")
		return err == nil && !ok
	}, 5*time.Second, 100*time.Millisecond)
}

func TestNewRedisClientBadUrl(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "redis://:bad@host:notaport/x")
	require.Error(t, err)
}

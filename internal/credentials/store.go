// Package credentials keeps one bearer credential per marketplace in memory and refreshes
// it on demand. Concurrent refreshes for the same marketplace collapse into one.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"giftprice-backend/internal/components/assert"
	"giftprice-backend/internal/components/chrono"
	"giftprice-backend/internal/components/telemetry"
	"giftprice-backend/internal/marketplace"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/singleflight"
)

var (
	tracer = otel.Tracer("internal/credentials")
	meter  = otel.Meter("internal/credentials")
)

const (
	report_store_refresh = "store.refresh"
	report_store_retry   = "store.retry"
	report_store_daemon  = "store.daemon"
)

var ErrUnknownMarketplace = errors.New("unknown marketplace")

type Store struct {
	clients map[marketplace.ID]marketplace.Client
	time    chrono.API
	tel     telemetry.API

	mu    sync.Mutex
	slots map[marketplace.ID]marketplace.Credential

	group          singleflight.Group
	refreshCounter metric.Int64Counter
}

func NewStore(time chrono.API, tel telemetry.API, clients ...marketplace.Client) (*Store, error) {
	assert.NotNil(time)
	assert.NotNil(tel)

	refreshCounter, err := meter.Int64Counter(
		"credential_refresh_total",
		metric.WithDescription("The total amount of times a marketplace credential has been refreshed."),
	)
	if err != nil {
		return nil, err
	}

	byId := make(map[marketplace.ID]marketplace.Client, len(clients))
	for _, c := range clients {
		assert.NotNil(c)
		byId[c.ID()] = c
	}

	return &Store{
		clients:        byId,
		time:           time,
		tel:            telemetry.NewScopedAPI("credentials", tel),
		slots:          make(map[marketplace.ID]marketplace.Credential),
		refreshCounter: refreshCounter,
	}, nil
}

// Client returns the marketplace client the store refreshes credentials with.
func (s *Store) Client(id marketplace.ID) (marketplace.Client, error) {
	c, ok := s.clients[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMarketplace, id)
	}
	return c, nil
}

func (s *Store) cached(id marketplace.ID) (marketplace.Credential, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cred, ok := s.slots[id]
	if !ok || !cred.Fresh(s.time.Now()) {
		return marketplace.Credential{}, false
	}
	return cred, true
}

// Get returns the stored credential for `id` while it is fresh, otherwise it refreshes it.
func (s *Store) Get(ctx context.Context, id marketplace.ID) (marketplace.Credential, error) {
	if cred, ok := s.cached(id); ok {
		return cred, nil
	}
	return s.refresh(ctx, id, func(cred marketplace.Credential) bool {
		return cred.Fresh(s.time.Now())
	})
}

// refresh obtains a new credential unless the stored one satisfies `usable` by the time
// the in-flight refresh starts.
func (s *Store) refresh(ctx context.Context, id marketplace.ID, usable func(marketplace.Credential) bool) (marketplace.Credential, error) {
	client, err := s.Client(id)
	if err != nil {
		return marketplace.Credential{}, err
	}

	// the refresh outlives any single caller, every waiter still honours its own ctx
	flightCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(string(id), func() (any, error) {
		if cred, ok := s.Peek(id); ok && usable(cred) {
			return cred, nil
		}
		return s.doRefresh(flightCtx, client)
	})

	select {
	case <-ctx.Done():
		return marketplace.Credential{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return marketplace.Credential{}, res.Err
		}
		return res.Val.(marketplace.Credential), nil
	}
}

func (s *Store) doRefresh(ctx context.Context, client marketplace.Client) (marketplace.Credential, error) {
	ctx, span := tracer.Start(ctx, "store:refresh")
	defer span.End()
	span.SetAttributes(attribute.String("marketplace", string(client.ID())))

	cred, err := client.Refresh(ctx)
	if err == nil && cred.Token == "" {
		err = fmt.Errorf("empty token")
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to refresh credential")
		s.tel.ReportWarning(report_store_refresh, err, "marketplace", client.ID())
		if !errors.Is(err, marketplace.ErrAuth) {
			err = fmt.Errorf("%w: %w", marketplace.ErrAuth, err)
		}
		return marketplace.Credential{}, fmt.Errorf("refresh %s credential: %w", client.ID(), err)
	}

	s.mu.Lock()
	s.slots[client.ID()] = cred
	s.mu.Unlock()

	s.refreshCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("marketplace", string(client.ID()))))
	s.tel.ReportDebug("refreshed credential", "marketplace", client.ID(), "expires_at", cred.ExpiresAt())
	return cred, nil
}

// Do runs `fn` with a fresh credential. If `fn` fails with marketplace.ErrRateLimited the
// credential is dropped and `fn` is retried exactly once with a new one.
func (s *Store) Do(ctx context.Context, id marketplace.ID, fn func(ctx context.Context, cred marketplace.Credential) error) error {
	cred, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	err = fn(ctx, cred)
	if !errors.Is(err, marketplace.ErrRateLimited) {
		return err
	}

	s.tel.ReportDebug(report_store_retry, "marketplace", id, "err", err)
	s.invalidateToken(id, cred.Token)

	cred, err = s.Get(ctx, id)
	if err != nil {
		return err
	}
	return fn(ctx, cred)
}

// invalidateToken drops the slot only if it still holds `token`, so a credential refreshed
// by another caller in the meantime survives.
func (s *Store) invalidateToken(id marketplace.ID, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.slots[id]; ok && current.Token == token {
		delete(s.slots, id)
	}
}

func (s *Store) Invalidate(id marketplace.ID) {
	s.mu.Lock()
	delete(s.slots, id)
	s.mu.Unlock()
}

func (s *Store) Clear() {
	s.mu.Lock()
	s.slots = make(map[marketplace.ID]marketplace.Credential)
	s.mu.Unlock()
}

// Peek returns the stored credential without refreshing it, fresh or not.
func (s *Store) Peek(id marketplace.ID) (marketplace.Credential, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cred, ok := s.slots[id]
	return cred, ok
}

// RefreshExpiring refreshes every marketplace whose credential is missing or will expire
// within `window`.
func (s *Store) RefreshExpiring(ctx context.Context, window time.Duration) {
	ctx, span := tracer.Start(ctx, "store:refreshExpiring")
	defer span.End()

	deadline := s.time.Now().Add(window)
	lasts := func(cred marketplace.Credential) bool {
		return cred.Token != "" && cred.ExpiresAt().After(deadline)
	}
	for id := range s.clients {
		cred, ok := s.Peek(id)
		if ok && lasts(cred) {
			continue
		}
		_, err := s.refresh(ctx, id, lasts)
		if err != nil {
			s.tel.ReportWarning(report_store_daemon, err, "marketplace", id)
		}
	}
}

// StartRefreshDaemon keeps credentials warm by refreshing the ones about to expire every
// `interval` until ctx is done.
func (s *Store) StartRefreshDaemon(ctx context.Context, interval time.Duration) {
	assert.Positive(int64(interval))
	go func() {
		ticker := time.NewTicker(interval)
		s.RefreshExpiring(ctx, interval)
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-ticker.C:
				s.RefreshExpiring(ctx, interval)
			}
		}
	}()
}

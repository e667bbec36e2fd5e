// Package batch prices many gifts at once on a bounded number of workers.
package batch

import (
	"context"
	"giftprice-backend/internal/pricing"

	"golang.org/x/sync/errgroup"
)

const DefaultWorkers = 4

// Resolver is satisfied by *pricing.Resolver.
type Resolver interface {
	Resolve(ctx context.Context, name string) (pricing.PriceRecord, error)
}

// Result is the outcome for one requested name, exactly one of Record and Err is set.
type Result struct {
	Name   string
	Record pricing.PriceRecord
	Err    error
}

// Resolve prices every name with at most `workers` concurrent resolutions. Results keep the
// order of `names`, a failing name does not stop the others.
func Resolve(ctx context.Context, resolver Resolver, names []string, workers int) []Result {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make([]Result, len(names))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, name := range names {
		group.Go(func() error {
			record, err := resolver.Resolve(ctx, name)
			results[i] = Result{Name: name, Record: record, Err: err}
			return nil
		})
	}
	group.Wait()
	return results
}

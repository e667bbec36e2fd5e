// Package synthetic produces a deterministic price estimate for a gift from its reference
// figures when neither a live nor a saved market price exists.
package synthetic

import (
	"fmt"
	"giftprice-backend/internal/gifts"
	"giftprice-backend/internal/marketplace"
	"hash/fnv"
	"math/rand"

	"github.com/shopspring/decimal"
)

// StarUSD is the USD value of one Telegram Star.
const StarUSD = 0.016

type tier struct {
	// below is the exclusive supply bound of the tier, 0 means unbounded.
	below    int64
	min, max float64
}

// rarer gifts (lower supply) get a higher multiplier on their first sale price
var tiers = []tier{
	{below: 10_000, min: 1.5, max: 3.0},
	{below: 50_000, min: 1.2, max: 2.0},
	{below: 200_000, min: 0.8, max: 1.5},
	{below: 0, min: 0.5, max: 1.2},
}

type Estimate struct {
	PriceNative float64
	PriceUSD    float64
}

// Multiplier returns the rarity multiplier of a gift. It is drawn from the supply tier's
// range with a generator seeded by the gift id, so a gift always gets the same value.
func Multiplier(giftId string, supply int64) float64 {
	t := tiers[len(tiers)-1]
	for _, candidate := range tiers {
		if candidate.below == 0 || supply < candidate.below {
			t = candidate
			break
		}
	}
	rndm := rand.New(rand.NewSource(seed(giftId)))
	return t.min + rndm.Float64()*(t.max-t.min)
}

func seed(giftId string) int64 {
	h := fnv.New64a()
	h.Write([]byte(giftId))
	return int64(h.Sum64())
}

// Compute estimates the price of `entry` with `tonUSD` dollars per TON.
//
// With both supply and first sale price the estimate is the first sale price in USD times the
// rarity multiplier. With only the supply it is max(0.1, 1e6/supply) TON. Otherwise there is
// nothing to estimate from and marketplace.ErrNotFound is returned.
func Compute(entry gifts.Entry, tonUSD float64) (Estimate, error) {
	if tonUSD <= 0 {
		return Estimate{}, fmt.Errorf("synthetic estimate for %s: invalid TON/USD rate %v", entry.Name, tonUSD)
	}
	rate := decimal.NewFromFloat(tonUSD)

	var native decimal.Decimal
	switch {
	case entry.Supply != nil && *entry.Supply > 0 && entry.FirstSalePriceStars != nil && *entry.FirstSalePriceStars > 0:
		base := decimal.NewFromInt(*entry.FirstSalePriceStars).Mul(decimal.NewFromFloat(StarUSD))
		usd := base.Mul(decimal.NewFromFloat(Multiplier(entry.ID, *entry.Supply)))
		native = usd.Div(rate).Round(2)
	case entry.Supply != nil && *entry.Supply > 0:
		native = decimal.Max(
			decimal.NewFromFloat(0.1),
			decimal.NewFromInt(1_000_000).Div(decimal.NewFromInt(*entry.Supply)),
		).Round(2)
	default:
		return Estimate{}, fmt.Errorf("synthetic estimate for %s: no supply or first sale price: %w", entry.Name, marketplace.ErrNotFound)
	}

	if native.LessThanOrEqual(decimal.Zero) {
		native = decimal.NewFromFloat(0.01)
	}

	return Estimate{
		PriceNative: native.InexactFloat64(),
		PriceUSD:    native.Mul(rate).Round(2).InexactFloat64(),
	}, nil
}

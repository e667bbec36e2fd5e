package pricing

import (
	"giftprice-backend/internal/marketplace"
	"time"
)

// Source tells which tier of the fallback chain produced a price.
type Source string

const (
	SourceLive      Source = "live"
	SourceSnapshot  Source = "snapshot"
	SourceSynthetic Source = "synthetic"
)

// PriceRecord is the resolved price of one gift. It is built once per resolution and never
// modified afterwards.
type PriceRecord struct {
	ItemName      string         `json:"item_name"`
	ItemID        string         `json:"item_id"`
	Marketplace   marketplace.ID `json:"marketplace"`
	PriceNative   float64        `json:"price_native"`
	PriceUSD      float64        `json:"price_usd"`
	ChangePercent float64        `json:"change_percent"`
	Supply        *int64         `json:"supply,omitempty"`
	Source        Source         `json:"source"`
	ResolvedAt    time.Time      `json:"resolved_at"`
}

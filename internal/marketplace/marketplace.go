package marketplace

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ID names a marketplace, it is also the basename of the marketplace's snapshot file.
type ID string

const (
	MRKT  ID = "mrkt"
	Quant ID = "quant"
)

func ParseID(value string) (ID, error) {
	switch ID(strings.ToLower(strings.TrimSpace(value))) {
	case MRKT:
		return MRKT, nil
	case Quant:
		return Quant, nil
	}
	return "", fmt.Errorf("unknown marketplace %q", value)
}

// Credential is a bearer token for one marketplace. A credential older than its TTL must
// not be used for a new request.
type Credential struct {
	Marketplace ID
	Token       string
	ObtainedAt  time.Time
	TTL         time.Duration
}

func (c Credential) ExpiresAt() time.Time {
	return c.ObtainedAt.Add(c.TTL)
}

func (c Credential) Fresh(now time.Time) bool {
	return c.Token != "" && now.Sub(c.ObtainedAt) < c.TTL
}

// CatalogItem is one gift collection as listed by a marketplace. Prices are in minor
// units (nano-TON).
type CatalogItem struct {
	ExternalID         string
	DisplayName        string
	FloorMinor         int64
	PreviousFloorMinor *int64
	Supply             *int64
}

// Client is a single marketplace: how to obtain a credential and how to list its catalog.
type Client interface {
	ID() ID
	// Refresh runs the credential protocol and returns a brand new credential.
	Refresh(ctx context.Context) (Credential, error)
	// FetchCatalog makes one authenticated request for the marketplace's listing.
	FetchCatalog(ctx context.Context, cred Credential) ([]CatalogItem, error)
}

const minorExponent = -9

// ToNative converts minor units to TON, 2_500_000_000 becomes exactly 2.5.
func ToNative(minor int64) float64 {
	return decimal.New(minor, minorExponent).InexactFloat64()
}

// FromNative converts a TON amount to minor units, rounding to the nearest unit.
func FromNative(native decimal.Decimal) int64 {
	return native.Shift(-minorExponent).Round(0).IntPart()
}

// ChangePercent is the relative change of `floor` against `previous`, it is zero
// when there is no usable previous floor.
func ChangePercent(floor int64, previous *int64) float64 {
	if previous == nil || *previous == 0 {
		return 0
	}
	prev := decimal.NewFromInt(*previous)
	change := decimal.NewFromInt(floor).Sub(prev).Div(prev).Mul(decimal.NewFromInt(100))
	return change.Round(2).InexactFloat64()
}

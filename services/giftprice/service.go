// Package giftprice serves price resolution over connect.
package giftprice

import (
	"context"
	"errors"
	"fmt"
	"giftprice-backend/internal/app"
	"giftprice-backend/internal/batch"
	"giftprice-backend/internal/gifts"
	"giftprice-backend/internal/pricing"
	giftpricev1 "giftprice-backend/proto/giftprice/v1"
	"giftprice-backend/proto/giftprice/v1/giftpricev1connect"

	"connectrpc.com/connect"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("giftprice-backend/services/giftprice")

const (
	MaxBatchNames       = 100
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 1000
)

type Service struct {
	app *app.App
}

func NewService(a *app.App) giftpricev1connect.GiftPriceServiceClient {
	return giftpricev1connect.NewInstrumentedGiftPriceServiceClient(Service{app: a})
}

func toProto(record pricing.PriceRecord) *giftpricev1.PriceRecord {
	out := &giftpricev1.PriceRecord{
		ItemName:      record.ItemName,
		ItemId:        record.ItemID,
		Marketplace:   string(record.Marketplace),
		PriceNative:   record.PriceNative,
		PriceUsd:      record.PriceUSD,
		ChangePercent: record.ChangePercent,
		Source:        string(record.Source),
		ResolvedAt:    record.ResolvedAt.Unix(),
	}
	if record.Supply != nil {
		out.Supply = *record.Supply
	}
	return out
}

// lookupError tells a malformed query apart from a gift missing from the registry.
func lookupError(err error) error {
	if errors.Is(err, gifts.ErrInvalidQuery) {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return connect.NewError(connect.CodeNotFound, err)
}

func resolveError(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}
	return connect.NewError(connect.CodeUnavailable, err)
}

func (s Service) GetPrice(ctx context.Context, req *connect.Request[giftpricev1.GetPriceRequest]) (*connect.Response[giftpricev1.GetPriceResponse], error) {
	_, err := s.app.Registry.Lookup(req.Msg.GetName())
	if err != nil {
		return nil, lookupError(err)
	}
	record, err := s.app.Resolver.Resolve(ctx, req.Msg.GetName())
	if err != nil {
		return nil, resolveError(err)
	}
	return &connect.Response[giftpricev1.GetPriceResponse]{
		Msg: &giftpricev1.GetPriceResponse{
			Record: toProto(record),
		},
	}, nil
}

func (s Service) GetPrices(ctx context.Context, req *connect.Request[giftpricev1.GetPricesRequest]) (*connect.Response[giftpricev1.GetPricesResponse], error) {
	ctx, span := tracer.Start(ctx, "GetPrices:resolve")
	defer span.End()

	names := req.Msg.GetNames()
	if len(names) == 0 || len(names) > MaxBatchNames {
		return nil, connect.NewError(
			connect.CodeInvalidArgument,
			fmt.Errorf("expected between 1 and %d names, got %d", MaxBatchNames, len(names)),
		)
	}

	results := batch.Resolve(ctx, s.app.Resolver, names, s.app.Config.Workers)
	out := make([]*giftpricev1.PriceResult, len(results))
	for i, res := range results {
		out[i] = &giftpricev1.PriceResult{Name: res.Name}
		if res.Err != nil {
			out[i].Error = res.Err.Error()
			continue
		}
		out[i].Record = toProto(res.Record)
	}
	return &connect.Response[giftpricev1.GetPricesResponse]{
		Msg: &giftpricev1.GetPricesResponse{
			Results: out,
		},
	}, nil
}

func (s Service) GetHistory(ctx context.Context, req *connect.Request[giftpricev1.GetHistoryRequest]) (*connect.Response[giftpricev1.GetHistoryResponse], error) {
	if s.app.History == nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, fmt.Errorf("price history is disabled"))
	}
	limit := int(req.Msg.GetLimit())
	switch {
	case limit == 0:
		limit = DefaultHistoryLimit
	case limit < 0 || limit > MaxHistoryLimit:
		return nil, connect.NewError(
			connect.CodeInvalidArgument,
			fmt.Errorf("limit must be between 1 and %d, got %d", MaxHistoryLimit, limit),
		)
	}

	entry, err := s.app.Registry.Lookup(req.Msg.GetName())
	if err != nil {
		return nil, lookupError(err)
	}
	records, err := s.app.History.Latest(ctx, entry.Name, limit)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]*giftpricev1.PriceRecord, len(records))
	for i, r := range records {
		out[i] = toProto(r)
	}
	return &connect.Response[giftpricev1.GetHistoryResponse]{
		Msg: &giftpricev1.GetHistoryResponse{
			Records: out,
		},
	}, nil
}

func (s Service) ClearCache(ctx context.Context, req *connect.Request[giftpricev1.ClearCacheRequest]) (*connect.Response[giftpricev1.ClearCacheResponse], error) {
	var err error
	if req.Msg.GetAll() {
		err = s.app.Resolver.ClearAll(ctx)
	} else {
		err = s.app.Resolver.ClearCache(ctx)
	}
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return &connect.Response[giftpricev1.ClearCacheResponse]{
		Msg: &giftpricev1.ClearCacheResponse{},
	}, nil
}

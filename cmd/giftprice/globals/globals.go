package globals

import (
	"context"
	"giftprice-backend/internal/app"
)

type key struct{}

type Value struct {
	App *app.App
}

func Set(ctx context.Context, value *Value) context.Context {
	return context.WithValue(ctx, key{}, value)
}

func Get(ctx context.Context) *Value {
	return ctx.Value(key{}).(*Value)
}

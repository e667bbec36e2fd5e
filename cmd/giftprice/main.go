package main

import (
	"context"
	"giftprice-backend/cmd/giftprice/commands"
	"giftprice-backend/internal/components/telemetry"
	"log/slog"
)

func main() {
	ctx := context.Background()

	otel, err := telemetry.SetupFromEnv(ctx, "giftprice")
	if err != nil {
		slog.Warn("failed to setup telemetry", "err", err)
	}
	defer otel.Shutdown(ctx)

	commands.ExecuteContext(ctx)
}

package main

import (
	"context"
	"flag"
	"giftprice-backend/internal/app"
	"giftprice-backend/internal/components/chrono"
	"giftprice-backend/internal/components/serviceutil"
	"giftprice-backend/internal/components/telemetry"
	"log/slog"
	"time"
)

func main() {
	configPath := flag.String("config", "config.json5", "The config file, config.local.json5 next to it overrides it.")
	verbose := flag.Bool("v", false, "Enable verbose logging.")
	initialSync := flag.Bool("sync", false, "Sync the snapshots immediately on start.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	telemetry.InitSlog(*verbose)
	otel, err := telemetry.SetupFromEnv(ctx, "giftpriced")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	defer otel.Shutdown(context.Background())

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	a, err := app.New(ctx, cfg, telemetry.SlogAPI{})
	if err != nil {
		serviceutil.Fatal("init app", err)
	}
	defer a.Close()

	cron := chrono.NewStandardCron(a.Time, a.Tel)
	err = scheduleJobs(ctx, a, cron)
	if err != nil {
		serviceutil.Fatal("schedule jobs", err)
	}
	defer cron.Stop()

	a.Credentials.StartRefreshDaemon(ctx, time.Duration(cfg.CredentialRefreshSeconds)*time.Second)
	if *initialSync {
		go runSync(ctx, a)
	}

	err = serviceutil.StartHttpServer(ctx, cfg.Http.Port, newMux(a))
	if err != nil {
		slog.Error("http server stopped", "err", err)
	}
}

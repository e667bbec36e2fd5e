package main

import (
	"context"
	"giftprice-backend/internal/app"
	"giftprice-backend/internal/components/chrono"
	"time"
)

const (
	report_job_sync  = "job.sync"
	report_job_prune = "job.prune"
)

// scheduleJobs registers the snapshot sync and the history prune on `cron`.
func scheduleJobs(ctx context.Context, a *app.App, cron chrono.CronAPI) error {
	err := cron.Cron(a.Config.SyncCron, func() {
		runSync(ctx, a)
	})
	if err != nil {
		return err
	}

	if a.History == nil {
		return nil
	}
	retention := time.Duration(a.Config.History.RetentionDays) * 24 * time.Hour
	return cron.Cron("@daily", func() {
		removed, err := a.History.Prune(ctx, retention)
		if err != nil {
			a.Tel.ReportBroken(report_job_prune, err)
			return
		}
		a.Tel.ReportDebug("pruned price history", "removed", removed)
	})
}

func runSync(ctx context.Context, a *app.App) {
	results, err := a.Syncer.Sync(ctx)
	if err != nil {
		a.Tel.ReportWarning(report_job_sync, err)
	}
	for _, res := range results {
		if res.Err == nil {
			a.Tel.ReportDebug("synced snapshot", "marketplace", res.Marketplace, "items", res.Items)
		}
	}
}

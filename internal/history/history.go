// Package history appends every resolved price to a sqlite or libsql table so price
// movements can be inspected later.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"giftprice-backend/internal/components/assert"
	"giftprice-backend/internal/components/chrono"
	"giftprice-backend/internal/components/telemetry"
	"giftprice-backend/internal/history/db"
	"giftprice-backend/internal/marketplace"
	"giftprice-backend/internal/pricing"
	"time"
)

const (
	report_db_query       = "db.query"
	report_history_record = "history.record"
)

type History struct {
	qry    *db.Queries
	makeTx db.MakeTx
	time   chrono.API
	tel    telemetry.API
}

// Open applies the schema to `database` and returns a History backed by it.
func Open(ctx context.Context, database *sql.DB, time chrono.API, tel telemetry.API) (History, error) {
	_, err := database.ExecContext(ctx, db.Schema)
	if err != nil {
		return History{}, fmt.Errorf("apply history schema: %w", err)
	}
	return NewHistory(db.New(database), db.NewMakeTx(database), time, tel), nil
}

func NewHistory(qry *db.Queries, makeTx db.MakeTx, time chrono.API, tel telemetry.API) History {
	assert.NotNil(qry)
	assert.NotNil(makeTx)
	assert.NotNil(time)
	assert.NotNil(tel)

	return History{
		qry:    qry,
		makeTx: makeTx,
		time:   time,
		tel:    telemetry.NewScopedAPI("history", tel),
	}
}

func toParams(record pricing.PriceRecord) db.InsertPriceParams {
	supply := sql.NullInt64{}
	if record.Supply != nil {
		supply = sql.NullInt64{Int64: *record.Supply, Valid: true}
	}
	return db.InsertPriceParams{
		ItemName:      record.ItemName,
		ItemID:        record.ItemID,
		Marketplace:   string(record.Marketplace),
		PriceNative:   record.PriceNative,
		PriceUsd:      record.PriceUSD,
		ChangePercent: record.ChangePercent,
		Supply:        supply,
		Source:        string(record.Source),
		ResolvedAt:    record.ResolvedAt.Unix(),
	}
}

func fromRow(row db.PriceHistory) pricing.PriceRecord {
	var supply *int64
	if row.Supply.Valid {
		value := row.Supply.Int64
		supply = &value
	}
	return pricing.PriceRecord{
		ItemName:      row.ItemName,
		ItemID:        row.ItemID,
		Marketplace:   marketplace.ID(row.Marketplace),
		PriceNative:   row.PriceNative,
		PriceUSD:      row.PriceUsd,
		ChangePercent: row.ChangePercent,
		Supply:        supply,
		Source:        pricing.Source(row.Source),
		ResolvedAt:    time.Unix(row.ResolvedAt, 0),
	}
}

func (h History) Record(ctx context.Context, record pricing.PriceRecord) error {
	err := h.qry.InsertPrice(ctx, toParams(record))
	if err != nil {
		h.tel.ReportBroken(report_db_query, err, "InsertPrice", record.ItemName)
		return err
	}
	return nil
}

// RecordAll inserts every record in a single transaction.
func (h History) RecordAll(ctx context.Context, records []pricing.PriceRecord) error {
	tx, discard, commit, err := h.makeTx()
	if err != nil {
		h.tel.ReportBroken(report_history_record, fmt.Errorf("make tx: %w", err))
		return err
	}
	defer discard()

	for _, record := range records {
		err = tx.InsertPrice(ctx, toParams(record))
		if err != nil {
			h.tel.ReportBroken(report_db_query, err, "InsertPrice", record.ItemName)
			return err
		}
	}
	err = commit()
	if err != nil {
		h.tel.ReportBroken(report_history_record, fmt.Errorf("commit: %w", err))
		return err
	}
	return nil
}

// Observe is a pricing.Resolver callback that records each resolved price, failures are
// only reported.
func (h History) Observe(ctx context.Context, record pricing.PriceRecord) {
	_ = h.Record(ctx, record)
}

// Latest returns up to `n` records of `itemName`, newest first.
func (h History) Latest(ctx context.Context, itemName string, n int) ([]pricing.PriceRecord, error) {
	rows, err := h.qry.GetLatestPrices(ctx, db.GetLatestPricesParams{
		ItemName: itemName,
		Limit:    int64(n),
	})
	if err != nil {
		h.tel.ReportBroken(report_db_query, err, "GetLatestPrices", itemName)
		return nil, err
	}
	out := make([]pricing.PriceRecord, len(rows))
	for i, row := range rows {
		out[i] = fromRow(row)
	}
	return out, nil
}

// Prune deletes records resolved more than `retention` ago.
func (h History) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := h.time.Now().Add(-retention).Unix()
	deleted, err := h.qry.DeletePricesBefore(ctx, cutoff)
	if err != nil {
		h.tel.ReportBroken(report_db_query, err, "DeletePricesBefore", cutoff)
		return 0, err
	}
	return deleted, nil
}

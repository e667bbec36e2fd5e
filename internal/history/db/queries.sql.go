package db

import (
	"context"
	"database/sql"
)

const insertPrice = `
insert into price_history (
    item_name, item_id, marketplace, price_native, price_usd,
    change_percent, supply, source, resolved_at
) values (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type InsertPriceParams struct {
	ItemName      string
	ItemID        string
	Marketplace   string
	PriceNative   float64
	PriceUsd      float64
	ChangePercent float64
	Supply        sql.NullInt64
	Source        string
	ResolvedAt    int64
}

func (q *Queries) InsertPrice(ctx context.Context, arg InsertPriceParams) error {
	_, err := q.db.ExecContext(ctx, insertPrice,
		arg.ItemName,
		arg.ItemID,
		arg.Marketplace,
		arg.PriceNative,
		arg.PriceUsd,
		arg.ChangePercent,
		arg.Supply,
		arg.Source,
		arg.ResolvedAt,
	)
	return err
}

const getLatestPrices = `
select id, item_name, item_id, marketplace, price_native, price_usd,
    change_percent, supply, source, resolved_at
from price_history
where item_name = ?
order by resolved_at desc, id desc
limit ?
`

type GetLatestPricesParams struct {
	ItemName string
	Limit    int64
}

func (q *Queries) GetLatestPrices(ctx context.Context, arg GetLatestPricesParams) ([]PriceHistory, error) {
	rows, err := q.db.QueryContext(ctx, getLatestPrices, arg.ItemName, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PriceHistory
	for rows.Next() {
		var i PriceHistory
		if err := rows.Scan(
			&i.ID,
			&i.ItemName,
			&i.ItemID,
			&i.Marketplace,
			&i.PriceNative,
			&i.PriceUsd,
			&i.ChangePercent,
			&i.Supply,
			&i.Source,
			&i.ResolvedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deletePricesBefore = `
delete from price_history where resolved_at < ?
`

func (q *Queries) DeletePricesBefore(ctx context.Context, resolvedAt int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deletePricesBefore, resolvedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

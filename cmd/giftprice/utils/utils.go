package utils

import (
	"fmt"
	"giftprice-backend/internal/pricing"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func NewTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

// NewPriceTable returns a table with the columns filled by AppendRecord.
func NewPriceTable() table.Writer {
	t := NewTable()
	t.AppendHeader(table.Row{"Gift", "Marketplace", "TON", "USD", "24h", "Supply", "Source", "Resolved"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	return t
}

func AppendRecord(t table.Writer, record pricing.PriceRecord) {
	supply := "-"
	if record.Supply != nil {
		supply = fmt.Sprint(*record.Supply)
	}
	t.AppendRow(table.Row{
		record.ItemName,
		record.Marketplace,
		fmt.Sprintf("%.2f", record.PriceNative),
		fmt.Sprintf("$%.2f", record.PriceUSD),
		fmt.Sprintf("%+.2f%%", record.ChangePercent),
		supply,
		record.Source,
		record.ResolvedAt.Format(time.DateTime),
	})
}

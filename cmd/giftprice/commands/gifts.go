package commands

import (
	"fmt"
	"giftprice-backend/cmd/giftprice/globals"
	"giftprice-backend/cmd/giftprice/utils"
	"giftprice-backend/internal/gifts"
	"giftprice-backend/internal/marketplace"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var giftsMarketplace *string

func init() {
	giftsMarketplace = giftsCmd.Flags().StringP("marketplace", "m", "", "Only list the gifts routed to this marketplace.")
	rootCmd.AddCommand(giftsCmd)
}

// registryEntries returns the registry filtered by the marketplace name `mp`, an empty name
// returns every entry.
func registryEntries(registry *gifts.Registry, mp string) ([]gifts.Entry, error) {
	if mp == "" {
		return registry.Entries(), nil
	}
	id, err := marketplace.ParseID(mp)
	if err != nil {
		return nil, err
	}
	return registry.ByMarketplace(id), nil
}

func optional(value *int64) string {
	if value == nil {
		return "-"
	}
	return fmt.Sprint(*value)
}

var giftsCmd = &cobra.Command{
	Use:   "gifts [--marketplace <mrkt|quant>]",
	Short: "Lists the gifts known to the registry and where they are priced.",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := globals.Get(cmd.Context()).App

		entries, err := registryEntries(app.Registry, *giftsMarketplace)
		if err != nil {
			return err
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"ID", "Name", "Marketplace", "Supply", "First sale (stars)"})
		for _, e := range entries {
			t.AppendRow(table.Row{e.ID, e.Name, e.Marketplace, optional(e.Supply), optional(e.FirstSalePriceStars)})
		}
		t.Render()
		return nil
	},
}

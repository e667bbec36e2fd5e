package commands

import (
	"fmt"
	"giftprice-backend/cmd/giftprice/globals"
	"giftprice-backend/cmd/giftprice/utils"
	"giftprice-backend/internal/catalog"
	"giftprice-backend/internal/marketplace"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	catalogSearch   *string
	catalogSnapshot *bool
	catalogLimit    *int
)

func init() {
	catalogSearch = catalogCmd.Flags().StringP("search", "s", "", "Rank items by their similarity to this name.")
	catalogSnapshot = catalogCmd.Flags().Bool("snapshot", false, "Read the saved snapshot instead of the live catalog.")
	catalogLimit = catalogCmd.Flags().IntP("limit", "n", 0, "Print at most this many items.")
	rootCmd.AddCommand(catalogCmd)
}

type scoredItem struct {
	item  marketplace.CatalogItem
	score int
}

var catalogCmd = &cobra.Command{
	Use:   "catalog <mrkt|quant>",
	Short: "Lists the catalog of a marketplace.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := globals.Get(cmd.Context()).App

		id, err := marketplace.ParseID(args[0])
		if err != nil {
			return err
		}

		var items []marketplace.CatalogItem
		if *catalogSnapshot {
			saved, err := app.Snapshots.Load(id)
			if err != nil {
				return err
			}
			items = saved.Items
		} else {
			items, err = app.Resolver.Catalogs().Fetch(cmd.Context(), id)
			if err != nil {
				return err
			}
		}

		scored := make([]scoredItem, len(items))
		for i, item := range items {
			scored[i] = scoredItem{item: item}
			if *catalogSearch != "" {
				scored[i].score = catalog.TokenSortRatio(*catalogSearch, item.DisplayName)
			}
		}
		sort.SliceStable(scored, func(i, j int) bool {
			if scored[i].score != scored[j].score {
				return scored[i].score > scored[j].score
			}
			return scored[i].item.DisplayName < scored[j].item.DisplayName
		})
		if *catalogLimit > 0 && len(scored) > *catalogLimit {
			scored = scored[:*catalogLimit]
		}

		t := utils.NewTable()
		header := table.Row{"ID", "Name", "Floor (TON)", "Previous", "Supply"}
		if *catalogSearch != "" {
			header = append(header, "Score")
		}
		t.AppendHeader(header)
		for _, s := range scored {
			previous := "-"
			if s.item.PreviousFloorMinor != nil {
				previous = fmt.Sprintf("%.2f", marketplace.ToNative(*s.item.PreviousFloorMinor))
			}
			supply := "-"
			if s.item.Supply != nil {
				supply = fmt.Sprint(*s.item.Supply)
			}
			row := table.Row{
				s.item.ExternalID,
				s.item.DisplayName,
				fmt.Sprintf("%.2f", marketplace.ToNative(s.item.FloorMinor)),
				previous,
				supply,
			}
			if *catalogSearch != "" {
				row = append(row, s.score)
			}
			t.AppendRow(row)
		}
		t.Render()
		return nil
	},
}

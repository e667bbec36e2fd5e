package commands

import (
	"giftprice-backend/cmd/giftprice/globals"
	"giftprice-backend/cmd/giftprice/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetches every enabled marketplace catalog and saves it as the fallback snapshot.",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := globals.Get(cmd.Context()).App

		results, err := app.Syncer.Sync(cmd.Context())

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Marketplace", "Items", "Snapshot", "Error"})
		for _, res := range results {
			msg := ""
			if res.Err != nil {
				msg = res.Err.Error()
			}
			t.AppendRow(table.Row{res.Marketplace, res.Items, app.Snapshots.Path(res.Marketplace), msg})
		}
		t.Render()

		return err
	},
}

package commands

import (
	"fmt"
	"giftprice-backend/cmd/giftprice/globals"
	"giftprice-backend/cmd/giftprice/utils"
	"strings"

	"github.com/spf13/cobra"
)

var historyLimit *int

func init() {
	historyLimit = historyCmd.Flags().IntP("limit", "n", 20, "The number of records to print.")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history <gift name or id>",
	Short: "Prints the most recently resolved prices of a gift, newest first.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := globals.Get(cmd.Context()).App
		if app.History == nil {
			return fmt.Errorf("price history is disabled in the config")
		}

		entry, err := app.Registry.Lookup(strings.Join(args, " "))
		if err != nil {
			return err
		}
		records, err := app.History.Latest(cmd.Context(), entry.Name, *historyLimit)
		if err != nil {
			return err
		}

		t := utils.NewPriceTable()
		for _, record := range records {
			utils.AppendRecord(t, record)
		}
		t.Render()
		return nil
	},
}

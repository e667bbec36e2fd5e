package commands

import (
	"encoding/json"
	"giftprice-backend/cmd/giftprice/globals"
	"giftprice-backend/cmd/giftprice/utils"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var priceJson *bool

func init() {
	priceJson = priceCmd.Flags().Bool("json", false, "Print the record as json instead of a table.")
	rootCmd.AddCommand(priceCmd)
}

var priceCmd = &cobra.Command{
	Use:   "price <gift name or id>",
	Short: "Resolves the price of a single gift, the arguments are joined into one name.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := globals.Get(cmd.Context()).App

		record, err := app.Resolver.Resolve(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		if *priceJson {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(record)
		}

		t := utils.NewPriceTable()
		utils.AppendRecord(t, record)
		t.Render()
		return nil
	},
}

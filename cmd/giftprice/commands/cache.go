package commands

import (
	"giftprice-backend/cmd/giftprice/globals"
	"log/slog"

	"github.com/spf13/cobra"
)

var cacheAll *bool

func init() {
	cacheAll = cacheClearCmd.Flags().Bool("all", false, "Also drop cached catalogs and credentials.")
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manages the price cache, only meaningful when it is backed by redis.",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [--all]",
	Short: "Drops every cached price record.",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := globals.Get(cmd.Context()).App
		var err error
		if *cacheAll {
			err = app.Resolver.ClearAll(cmd.Context())
		} else {
			err = app.Resolver.ClearCache(cmd.Context())
		}
		if err != nil {
			return err
		}
		slog.Info("cleared price cache", "all", *cacheAll)
		return nil
	},
}

package commands

import (
	"context"
	"fmt"
	"giftprice-backend/cmd/giftprice/globals"
	"giftprice-backend/internal/app"
	"giftprice-backend/internal/components/telemetry"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath *string
	verbose    *bool
)

// opened is the app built for the running command, it is closed by ExecuteContext whether
// or not the command failed.
var opened *app.App

var rootCmd = &cobra.Command{
	Use:   "giftprice",
	Short: "giftprice is an operator CLI for resolving Telegram gift prices.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(*verbose)

		cfg, err := app.LoadConfig(*configPath)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		a, err := app.New(cmd.Context(), cfg, telemetry.SlogAPI{})
		if err != nil {
			return err
		}
		opened = a
		cmd.SetContext(globals.Set(cmd.Context(), &globals.Value{App: a}))
		return nil
	},
}

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "config.json5", "The config file, config.local.json5 next to it overrides it.")
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug reports.")
}

// execute runs the command line `args` and releases the app it opened.
func execute(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if opened != nil {
		if closeErr := opened.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		opened = nil
	}
	return err
}

func ExecuteContext(ctx context.Context) {
	if err := execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package commands

import (
	"bufio"
	"fmt"
	"giftprice-backend/cmd/giftprice/globals"
	"giftprice-backend/cmd/giftprice/utils"
	"giftprice-backend/internal/batch"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	batchFile        *string
	batchWorkers     *int
	batchRegistry    *bool
	batchMarketplace *string
)

func init() {
	batchFile = batchCmd.Flags().StringP("file", "f", "", "A file with one gift name per line, '-' reads stdin.")
	batchWorkers = batchCmd.Flags().IntP("workers", "w", 0, "Concurrent resolutions, defaults to the configured worker count.")
	batchRegistry = batchCmd.Flags().Bool("registry", false, "Also price every gift in the registry.")
	batchMarketplace = batchCmd.Flags().StringP("marketplace", "m", "", "With --registry, only price the gifts routed to this marketplace.")
	rootCmd.AddCommand(batchCmd)
}

// readNames returns the non-empty lines of `r`, lines starting with # are skipped.
func readNames(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, scanner.Err()
}

var batchCmd = &cobra.Command{
	Use:   "batch [--file <names.txt>] [--registry [--marketplace <mrkt|quant>]] [names...]",
	Short: "Resolves many gifts concurrently, failures are listed after the table.",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := globals.Get(cmd.Context()).App

		names := args
		switch *batchFile {
		case "":
		case "-":
			fromFile, err := readNames(os.Stdin)
			if err != nil {
				return err
			}
			names = append(names, fromFile...)
		default:
			f, err := os.Open(*batchFile)
			if err != nil {
				return err
			}
			fromFile, err := readNames(f)
			f.Close()
			if err != nil {
				return err
			}
			names = append(names, fromFile...)
		}
		if *batchRegistry {
			entries, err := registryEntries(app.Registry, *batchMarketplace)
			if err != nil {
				return err
			}
			for _, e := range entries {
				names = append(names, e.Name)
			}
		}
		if len(names) == 0 {
			return fmt.Errorf("no gift names given")
		}

		workers := *batchWorkers
		if workers <= 0 {
			workers = app.Config.Workers
		}
		results := batch.Resolve(cmd.Context(), app.Resolver, names, workers)

		t := utils.NewPriceTable()
		var failed []batch.Result
		for _, res := range results {
			if res.Err != nil {
				failed = append(failed, res)
				continue
			}
			utils.AppendRecord(t, res.Record)
		}
		t.Render()

		for _, res := range failed {
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Name, res.Err)
		}
		if len(failed) == len(results) {
			return fmt.Errorf("every gift failed to resolve")
		}
		return nil
	},
}

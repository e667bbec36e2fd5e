package commands

import (
	"context"
	"errors"
	"giftprice-backend/cmd/giftprice/globals"
	"giftprice-backend/internal/app"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestExecuteClosesAppOnFailure(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "config.json5")
	err := os.WriteFile(config, []byte(`{
		snapshot_dir: "`+filepath.Join(dir, "snapshots")+`",
		ton_rate: { fixed: 2 },
		history: { file: "`+filepath.Join(dir, "history.db")+`" },
	}`), 0644)
	require.NoError(t, err)

	var used *app.App
	failing := &cobra.Command{
		Use: "failing",
		RunE: func(cmd *cobra.Command, args []string) error {
			used = globals.Get(cmd.Context()).App
			return errors.New("command failed")
		},
	}
	rootCmd.AddCommand(failing)
	t.Cleanup(func() { rootCmd.RemoveCommand(failing) })

	ctx := context.Background()
	err = execute(ctx, []string{"--config", config, "failing"})
	require.EqualError(t, err, "command failed")
	require.Nil(t, opened)

	require.NotNil(t, used)
	require.NotNil(t, used.History)
	_, err = used.History.Latest(ctx, "Durov's Coat", 1)
	require.Error(t, err, "history database should be closed")

	err = execute(ctx, []string{"--config", config, "gifts", "--marketplace", "quant"})
	require.NoError(t, err)
	require.Nil(t, opened)
}

package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string            `json:"name"`
	Workers int               `json:"workers"`
	Headers map[string]string `json:"headers"`
}

func TestReadConfigMergesLocal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json5"), []byte(`{
		// defaults
		name: "giftprice",
		workers: 4,
		headers: { a: "1" },
	}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.local.json5"), []byte(`{
		workers: 8,
	}`), 0644))

	config, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)

	expected := testConfig{
		Name:    "giftprice",
		Workers: 8,
		Headers: map[string]string{"a": "1"},
	}
	if diff := cmp.Diff(expected, config); diff != "" {
		t.Fatal(diff)
	}
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json5"), []byte(`{ name: `), 0644))
	_, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.Error(t, err)
	require.NotErrorIs(t, err, os.ErrNotExist)
}

func TestSplitExt(t *testing.T) {
	prefix, ext := splitExt("config.json5")
	require.Equal(t, "config", prefix)
	require.Equal(t, "json5", ext)

	prefix, ext = splitExt("noext")
	require.Equal(t, "noext", prefix)
	require.Equal(t, "", ext)
}

package gifts

import (
	"giftprice-backend/internal/marketplace"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	registry, err := Default()
	require.NoError(t, err)
	require.Len(t, registry.ByMarketplace(marketplace.MRKT), 6)
	require.Len(t, registry.ByMarketplace(marketplace.Quant), 3)

	coat, err := registry.Lookup("Durov's Coat")
	require.NoError(t, err)
	require.Equal(t, "6001425315291727333", coat.ID)
	require.Equal(t, marketplace.MRKT, coat.Marketplace)
	require.Equal(t, int64(50), *coat.Supply)
	require.Equal(t, int64(1000), *coat.FirstSalePriceStars)
}

func TestLookup(t *testing.T) {
	registry, err := Default()
	require.NoError(t, err)

	testCases := []struct {
		query    string
		expected string
	}{
		{query: "5963238670868677492", expected: "Money Pot"},
		{query: "money pot", expected: "Money Pot"},
		{query: "durovs coat", expected: "Durov's Coat"},
		{query: "Posy Pretty", expected: "Pretty Posy"},
	}
	for _, test := range testCases {
		entry, err := registry.Lookup(test.query)
		require.NoError(t, err, test.query)
		require.Equal(t, test.expected, entry.Name)
	}

	_, err = registry.Lookup("Plush Pepe")
	require.ErrorIs(t, err, marketplace.ErrNotFound)
}

func TestMergeFile(t *testing.T) {
	registry, err := Default()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "gifts.local.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{
		gifts: [
			{ id: "5775955135867913556", name: "Gravestone", marketplace: "MRKT", supply: 3000, first_sale_price_stars: 2000 },
			{ id: "1", name: "Lunar Snake", marketplace: "quant" },
		],
	}`), 0644))
	require.NoError(t, registry.MergeFile(path))

	gravestone, err := registry.Lookup("Gravestone")
	require.NoError(t, err)
	require.Equal(t, int64(3000), *gravestone.Supply)
	require.Equal(t, marketplace.MRKT, gravestone.Marketplace)

	snake, err := registry.Lookup("lunar snake")
	require.NoError(t, err)
	require.Equal(t, marketplace.Quant, snake.Marketplace)
	require.Len(t, registry.Entries(), 10)
}

func TestNewRejectsInvalidEntries(t *testing.T) {
	_, err := New([]Entry{{ID: "1", Name: "A", Marketplace: "fragment"}})
	require.Error(t, err)
	_, err = New([]Entry{{Name: "A", Marketplace: marketplace.MRKT}})
	require.Error(t, err)
}

func TestLookupRejectsInvalidQueries(t *testing.T) {
	registry, err := Default()
	require.NoError(t, err)

	_, err = registry.Lookup(strings.Repeat("durov's coat ", 100))
	require.ErrorIs(t, err, ErrInvalidQuery)
	_, err = registry.Lookup("   ")
	require.ErrorIs(t, err, ErrInvalidQuery)

	entry, err := registry.Lookup(strings.Repeat("x", MaxQueryLength-len("Coffin")) + "Coffin")
	require.ErrorIs(t, err, marketplace.ErrNotFound)
	require.Empty(t, entry.ID)
}

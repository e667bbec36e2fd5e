package catalog

import (
	"giftprice-backend/internal/marketplace"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var items = []marketplace.CatalogItem{
	{ExternalID: "6001425315291727333", DisplayName: "Durov's Coat", FloorMinor: 2_500_000_000},
	{ExternalID: "6001229799790478558", DisplayName: "Durov's Boots", FloorMinor: 1_000_000_000},
	{ExternalID: "5775955135867913556", DisplayName: "Gravestone", FloorMinor: 300_000_000},
	{ExternalID: "5902339509239940491", DisplayName: "Bling Binky", FloorMinor: 12_000_000_000},
	{ExternalID: "5963238670868677492", DisplayName: "Money Pot", FloorMinor: 4_000_000_000},
}

func TestFind(t *testing.T) {
	testCases := []struct {
		name     string
		query    Query
		expected string
	}{
		{name: "id", query: Query{ID: "5775955135867913556"}, expected: "5775955135867913556"},
		{name: "id wins over name", query: Query{ID: "5963238670868677492", Name: "Gravestone"}, expected: "5963238670868677492"},
		{name: "exact name", query: Query{Name: "Bling Binky"}, expected: "5902339509239940491"},
		{name: "case insensitive name", query: Query{Name: "  money POT "}, expected: "5963238670868677492"},
		{name: "unknown id falls back to name", query: Query{ID: "1", Name: "gravestone"}, expected: "5775955135867913556"},
		{name: "fuzzy word order", query: Query{Name: "Coat Durov"}, expected: "6001425315291727333"},
		{name: "fuzzy punctuation", query: Query{Name: "durovs coat"}, expected: "6001425315291727333"},
		{name: "fuzzy typo", query: Query{Name: "Bling Binki"}, expected: "5902339509239940491"},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			item, err := Find(items, test.query)
			require.NoError(t, err)
			require.Equal(t, test.expected, item.ExternalID)
		})
	}
}

func TestFindMiss(t *testing.T) {
	for _, query := range []Query{
		{Name: "Plush Pepe"},
		{ID: "42"},
		{},
	} {
		_, err := Find(items, query)
		require.ErrorIs(t, err, marketplace.ErrNotFound, query.String())
	}

	_, err := Find(nil, Query{Name: "Durov's Coat"})
	require.ErrorIs(t, err, marketplace.ErrNotFound)
}

func TestFindIsIdempotent(t *testing.T) {
	query := Query{Name: "durov coat"}
	first, err := Find(items, query)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Find(items, query)
		require.NoError(t, err)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatal(diff)
		}
	}
}

func TestFindTieBreak(t *testing.T) {
	tied := []marketplace.CatalogItem{
		{ExternalID: "b", DisplayName: "Lunar Snake"},
		{ExternalID: "a", DisplayName: "Lunar Snake"},
		{ExternalID: "c", DisplayName: "lunar snake"},
	}
	item, err := Find(tied, Query{Name: "Lunar Snake"})
	require.NoError(t, err)
	require.Equal(t, "a", item.ExternalID)

	item, err = Find(tied, Query{Name: "Snake Lunar!"})
	require.NoError(t, err)
	require.Equal(t, "a", item.ExternalID)
}

func TestTokenSortRatio(t *testing.T) {
	require.Equal(t, 100, TokenSortRatio("Durov's Coat", "coat durov s"))
	require.Equal(t, 100, TokenSortRatio("Money-Pot", "pot money"))
	require.Equal(t, 0, TokenSortRatio("", ""))
	require.Less(t, TokenSortRatio("Gravestone", "Bling Binky"), FuzzyThreshold+1)
	require.Greater(t, TokenSortRatio("Bling Binky", "Bling Binki"), FuzzyThreshold)
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "durov s coat", Normalize("  Durov's   Coat!"))
	require.Equal(t, "money pot", Normalize("Money_Pot"))
}

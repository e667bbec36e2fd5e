// Package gifts is the static registry of known gifts: which marketplace lists each one and
// the reference figures used when no market price is available.
package gifts

import (
	_ "embed"
	"errors"
	"fmt"
	"giftprice-backend/internal/catalog"
	"giftprice-backend/internal/marketplace"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/titanous/json5"
)

//go:embed gifts.json5
var defaultRegistry []byte

// MaxQueryLength bounds the runes of a lookup query, fuzzy matching costs grow with the
// product of query and name length.
const MaxQueryLength = 256

var ErrInvalidQuery = errors.New("invalid gift query")

type Entry struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Marketplace         marketplace.ID `json:"marketplace"`
	Supply              *int64         `json:"supply,omitempty"`
	FirstSalePriceStars *int64         `json:"first_sale_price_stars,omitempty"`
}

type file struct {
	Gifts []Entry `json:"gifts"`
}

type Registry struct {
	entries []Entry
	items   []marketplace.CatalogItem
	byId    map[string]int
}

// Default returns the registry compiled into the binary.
func Default() (*Registry, error) {
	return Parse(defaultRegistry)
}

func Parse(data []byte) (*Registry, error) {
	var f file
	err := json5.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("parse gift registry: %w", err)
	}
	return New(f.Gifts)
}

func New(entries []Entry) (*Registry, error) {
	r := &Registry{byId: make(map[string]int, len(entries))}
	for _, e := range entries {
		err := r.put(e)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) put(e Entry) error {
	if e.ID == "" || e.Name == "" {
		return fmt.Errorf("gift registry: entry %q needs both an id and a name", e.ID+e.Name)
	}
	mp, err := marketplace.ParseID(string(e.Marketplace))
	if err != nil {
		return fmt.Errorf("gift registry: %s: %w", e.Name, err)
	}
	e.Marketplace = mp

	item := marketplace.CatalogItem{
		ExternalID:  e.ID,
		DisplayName: e.Name,
		Supply:      e.Supply,
	}
	if idx, ok := r.byId[e.ID]; ok {
		r.entries[idx] = e
		r.items[idx] = item
		return nil
	}
	r.byId[e.ID] = len(r.entries)
	r.entries = append(r.entries, e)
	r.items = append(r.items, item)
	return nil
}

// MergeFile overlays the entries of a json5 registry file, entries sharing an id replace
// the existing ones.
func (r *Registry) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var f file
	err = json5.Unmarshal(data, &f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	for _, e := range f.Gifts {
		err = r.put(e)
		if err != nil {
			return err
		}
	}
	return nil
}

// Lookup resolves a gift id or display name, fuzzy names are accepted.
func (r *Registry) Lookup(query string) (Entry, error) {
	if strings.TrimSpace(query) == "" {
		return Entry{}, fmt.Errorf("empty query: %w", ErrInvalidQuery)
	}
	if utf8.RuneCountInString(query) > MaxQueryLength {
		return Entry{}, fmt.Errorf("query longer than %d characters: %w", MaxQueryLength, ErrInvalidQuery)
	}
	item, err := catalog.Find(r.items, catalog.Query{ID: query, Name: query})
	if err != nil {
		return Entry{}, fmt.Errorf("gift %q is not in the registry: %w", query, err)
	}
	return r.entries[r.byId[item.ExternalID]], nil
}

// Entries returns every entry sorted by name.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

func (r *Registry) ByMarketplace(id marketplace.ID) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if e.Marketplace == id {
			out = append(out, e)
		}
	}
	return out
}

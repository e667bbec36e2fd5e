// Package snapshot persists marketplace catalogs as JSON files, one per marketplace, so
// prices can still be served when the live API is unreachable.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"giftprice-backend/internal/components/assert"
	"giftprice-backend/internal/components/telemetry"
	"giftprice-backend/internal/marketplace"
	"os"
	"path/filepath"
	"time"
)

const (
	report_snapshot_load = "snapshot.load"
	report_snapshot_save = "snapshot.save"
)

type item struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	FloorMinor         int64  `json:"floor_price_minor_units"`
	PreviousFloorMinor *int64 `json:"previous_floor_price_minor_units,omitempty"`
	Supply             *int64 `json:"supply,omitempty"`
}

type file struct {
	Items   []item `json:"items"`
	SavedAt int64  `json:"saved_at"`
}

// Catalog is the content of one snapshot file.
type Catalog struct {
	Items   []marketplace.CatalogItem
	SavedAt time.Time
}

type Store struct {
	dir string
	tel telemetry.API
}

func NewStore(dir string, tel telemetry.API) Store {
	assert.NotEmptyStr(dir)
	assert.NotNil(tel)

	return Store{
		dir: dir,
		tel: telemetry.NewScopedAPI("snapshot", tel),
	}
}

func (s Store) Path(id marketplace.ID) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s.json", id))
}

// Load reads the snapshot of a marketplace, a missing file is marketplace.ErrNotFound.
func (s Store) Load(id marketplace.ID) (Catalog, error) {
	path := s.Path(id)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Catalog{}, fmt.Errorf("snapshot %s: %w", path, marketplace.ErrNotFound)
	}
	if err != nil {
		s.tel.ReportBroken(report_snapshot_load, err, "path", path)
		return Catalog{}, fmt.Errorf("snapshot %s: %w", path, err)
	}

	var f file
	err = json.Unmarshal(data, &f)
	if err != nil {
		s.tel.ReportBroken(report_snapshot_load, fmt.Errorf("unmarshal: %w", err), "path", path)
		return Catalog{}, fmt.Errorf("snapshot %s: %w", path, err)
	}

	items := make([]marketplace.CatalogItem, len(f.Items))
	for i, it := range f.Items {
		items[i] = marketplace.CatalogItem{
			ExternalID:         it.ID,
			DisplayName:        it.Name,
			FloorMinor:         it.FloorMinor,
			PreviousFloorMinor: it.PreviousFloorMinor,
			Supply:             it.Supply,
		}
	}
	return Catalog{
		Items:   items,
		SavedAt: time.Unix(f.SavedAt, 0),
	}, nil
}

// Save atomically replaces the snapshot of a marketplace.
func (s Store) Save(id marketplace.ID, catalog Catalog) error {
	f := file{
		Items:   make([]item, len(catalog.Items)),
		SavedAt: catalog.SavedAt.Unix(),
	}
	for i, it := range catalog.Items {
		f.Items[i] = item{
			ID:                 it.ExternalID,
			Name:               it.DisplayName,
			FloorMinor:         it.FloorMinor,
			PreviousFloorMinor: it.PreviousFloorMinor,
			Supply:             it.Supply,
		}
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}

	err = os.MkdirAll(s.dir, 0755)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, fmt.Sprintf(".%s-*.json", id))
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Sync()
	}
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), s.Path(id))
	}
	if err != nil {
		s.tel.ReportBroken(report_snapshot_save, err, "marketplace", id)
		return fmt.Errorf("save snapshot %s: %w", id, err)
	}
	return nil
}

package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "spots.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(store.Close)
	return store
}

func seedTestData(t *testing.T, store *SQLiteStore) {
	t.Helper()
	db := store.DB()

	locals := []struct {
		id                       int
		name                     string
		level, parent, coast     int
		lat, lon                 float64
		uf                       string
	}{
		{1, "America do Sul", 1, 0, 0, 0, 0, ""},
		{2, "Brasil", 2, 1, 0, 0, 0, ""},
		{3, "Santa Catarina", 3, 2, 0, 0, 0, "SC"},
		{4, "Florianopolis", 4, 3, 7, -27.59, -48.55, "SC"},
		{5, "Garopaba", 4, 3, 7, -28.02, -48.61, "SC"},
	}
	for _, l := range locals {
		_, err := db.Exec(
			`INSERT INTO locais (id, nome, nivel, pai, litoral_id, lat, lon, uf)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			l.id, l.name, l.level, l.parent, l.coast, l.lat, l.lon, l.uf)
		if err != nil {
			t.Fatalf("seed local %d: %v", l.id, err)
		}
	}

	beaches := []struct {
		id, local, coast int
		name, name2      string
		orientation      int
		lat, lon         float64
		active           int
		mapName, mapTS   string
	}{
		{100, 4, 7, "Joaquina", "", 120, -27.63, -48.45, 1, "floripa", "20260301"},
		{101, 4, 7, "Mole", "Praia Mole", 95, -27.60, -48.43, 1, "floripa", "20260301"},
		{102, 5, 7, "Silveira", "", 135, -28.03, -48.62, 1, "", ""},
		{103, 4, 7, "Desativada", "", 90, -27.70, -48.50, 0, "", ""},
	}
	for _, b := range beaches {
		_, err := db.Exec(
			`INSERT INTO praias (id, local_id, litoral_id, nome, nome_2, orientacao,
			                     lat, lon, uf, ativa, nome_do_mapa, dt_mapa_atualizado)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			b.id, b.local, b.coast, b.name, b.name2, b.orientation,
			b.lat, b.lon, "SC", b.active, b.mapName, b.mapTS)
		if err != nil {
			t.Fatalf("seed beach %d: %v", b.id, err)
		}
	}
}

func TestSurfSpot(t *testing.T) {
	store := openTestStore(t)
	seedTestData(t, store)
	ctx := context.Background()

	spot, err := store.SurfSpot(ctx, 100)
	if err != nil {
		t.Fatalf("SurfSpot(100) error = %v", err)
	}
	if spot.ID != 100 {
		t.Errorf("ID = %d, want 100", spot.ID)
	}
	if spot.Name != "Joaquina" {
		t.Errorf("Name = %q, want Joaquina", spot.Name)
	}
	if spot.RegionID != 7 {
		t.Errorf("RegionID = %d, want 7", spot.RegionID)
	}
	if spot.RegionName != "Florianopolis" {
		t.Errorf("RegionName = %q, want Florianopolis", spot.RegionName)
	}
	if spot.Orientation != 120 {
		t.Errorf("Orientation = %d, want 120", spot.Orientation)
	}
	if spot.MapName != "floripa" || spot.MapStamp != "20260301" {
		t.Errorf("map = %q/%q, want floripa/20260301", spot.MapName, spot.MapStamp)
	}
}

func TestSurfSpotDisplayNameFallback(t *testing.T) {
	store := openTestStore(t)
	seedTestData(t, store)

	// nome_2 wins over nome when present.
	spot, err := store.SurfSpot(context.Background(), 101)
	if err != nil {
		t.Fatalf("SurfSpot(101) error = %v", err)
	}
	if spot.Name != "Praia Mole" {
		t.Errorf("Name = %q, want Praia Mole", spot.Name)
	}
}

func TestSurfSpotNotFound(t *testing.T) {
	store := openTestStore(t)
	seedTestData(t, store)

	_, err := store.SurfSpot(context.Background(), 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("SurfSpot(9999) error = %v, want ErrNotFound", err)
	}
}

func TestCoastLocation(t *testing.T) {
	store := openTestStore(t)
	seedTestData(t, store)

	spot, err := store.CoastLocation(context.Background(), 7)
	if err != nil {
		t.Fatalf("CoastLocation(7) error = %v", err)
	}
	if spot.RegionID != 7 {
		t.Errorf("RegionID = %d, want 7", spot.RegionID)
	}
	if spot.Name == "" {
		t.Error("Name is empty")
	}

	if _, err := store.CoastLocation(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("CoastLocation(99) error = %v, want ErrNotFound", err)
	}
}

func TestSearchSpots(t *testing.T) {
	store := openTestStore(t)
	seedTestData(t, store)
	ctx := context.Background()

	spots, err := store.SearchSpots(ctx, "mole")
	if err != nil {
		t.Fatalf("SearchSpots() error = %v", err)
	}
	if len(spots) != 1 {
		t.Fatalf("got %d spots, want 1", len(spots))
	}
	if spots[0].ID != 101 {
		t.Errorf("ID = %d, want 101", spots[0].ID)
	}
	if spots[0].Name != "Praia Mole" {
		t.Errorf("Name = %q, want Praia Mole", spots[0].Name)
	}

	// Inactive beaches never match.
	spots, err = store.SearchSpots(ctx, "Desativada")
	if err != nil {
		t.Fatalf("SearchSpots() error = %v", err)
	}
	if len(spots) != 0 {
		t.Errorf("got %d spots for inactive beach, want 0", len(spots))
	}
}

func TestSearchSpotsQuotedInput(t *testing.T) {
	store := openTestStore(t)
	seedTestData(t, store)

	// Hostile input is plain data, not SQL.
	spots, err := store.SearchSpots(context.Background(), "'; DROP TABLE praias; --")
	if err != nil {
		t.Fatalf("SearchSpots() error = %v", err)
	}
	if len(spots) != 0 {
		t.Errorf("got %d spots, want 0", len(spots))
	}

	if _, err := store.SurfSpot(context.Background(), 100); err != nil {
		t.Errorf("praias table gone after hostile search: %v", err)
	}
}

func TestNearestSpots(t *testing.T) {
	store := openTestStore(t)
	seedTestData(t, store)

	// Origin near Florianopolis; Garopaba beach is ~45 km south.
	results, err := store.NearestSpots(context.Background(), -27.60, -48.45, 20)
	if err != nil {
		t.Fatalf("NearestSpots() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].ID != 101 {
		t.Errorf("nearest ID = %d, want 101", results[0].ID)
	}
	if results[0].DistanceKm > results[1].DistanceKm {
		t.Error("results not sorted nearest first")
	}
	for _, r := range results {
		if r.DistanceKm >= 20 {
			t.Errorf("spot %d at %.1f km, beyond range", r.ID, r.DistanceKm)
		}
	}
}

func TestNearestSpotsWiderRange(t *testing.T) {
	store := openTestStore(t)
	seedTestData(t, store)

	results, err := store.NearestSpots(context.Background(), -27.60, -48.45, 100)
	if err != nil {
		t.Fatalf("NearestSpots() error = %v", err)
	}
	// All three active beaches; the inactive one stays out.
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[2].ID != 102 {
		t.Errorf("farthest ID = %d, want 102 (Silveira)", results[2].ID)
	}
}

func TestLocationTree(t *testing.T) {
	store := openTestStore(t)
	seedTestData(t, store)

	roots, err := store.LocationTree(context.Background())
	if err != nil {
		t.Fatalf("LocationTree() error = %v", err)
	}
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}

	continent := roots[0]
	if continent.Name != "America do Sul" || continent.Type != "REGULAR_SPOT" {
		t.Errorf("root = %q/%q", continent.Name, continent.Type)
	}
	if len(continent.Children) != 1 {
		t.Fatalf("continent has %d children, want 1", len(continent.Children))
	}

	country := continent.Children[0]
	if country.Name != "Brasil" {
		t.Errorf("country = %q, want Brasil", country.Name)
	}
	if len(country.Children) != 1 {
		t.Fatalf("country has %d children, want 1", len(country.Children))
	}

	state := country.Children[0]
	if len(state.Children) != 2 {
		t.Fatalf("state has %d children, want 2 municipalities", len(state.Children))
	}

	var floripa *LocationNode
	for _, m := range state.Children {
		if m.Name == "Florianopolis" {
			floripa = m
		}
	}
	if floripa == nil {
		t.Fatal("Florianopolis not found in tree")
	}
	if floripa.Coordinates == nil {
		t.Fatal("Florianopolis has no coordinates")
	}

	// All beaches of the municipality, active or not, appear as SURF_SPOT
	// leaves.
	if len(floripa.Children) != 3 {
		t.Fatalf("Florianopolis has %d beaches, want 3", len(floripa.Children))
	}
	for _, b := range floripa.Children {
		if b.Type != "SURF_SPOT" {
			t.Errorf("beach %q type = %q, want SURF_SPOT", b.Name, b.Type)
		}
		if b.SpotID != b.ID {
			t.Errorf("beach %q SpotID = %d, want %d", b.Name, b.SpotID, b.ID)
		}
		if b.OceanicSpotID != 7 {
			t.Errorf("beach %q OceanicSpotID = %d, want 7", b.Name, b.OceanicSpotID)
		}
	}
}

func TestHaversineKm(t *testing.T) {
	// Same point.
	if d := haversineKm(-27.6, -48.5, -27.6, -48.5); d != 0 {
		t.Errorf("zero distance = %v", d)
	}

	// Florianopolis to Garopaba, roughly 48 km.
	d := haversineKm(-27.59, -48.55, -28.02, -48.61)
	if d < 40 || d > 55 {
		t.Errorf("Floripa-Garopaba = %.1f km, want ~48", d)
	}

	// One degree of latitude is ~111 km.
	d = haversineKm(0, 0, 1, 0)
	if d < 110 || d > 112 {
		t.Errorf("one degree latitude = %.1f km, want ~111", d)
	}
}

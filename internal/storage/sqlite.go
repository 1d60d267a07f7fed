package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore resolves spots against a local SQLite database. Used for
// development and tests; the schema is created on open.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates a SQLite database at the given path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL for concurrent readers.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	if err := createSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() {
	_ = s.db.Close()
}

// DB exposes the underlying handle for seeding in tests and tools.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

func createSchema(db *sql.DB) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS locais (
		id INTEGER PRIMARY KEY,
		nome TEXT NOT NULL,
		nivel INTEGER NOT NULL,
		pai INTEGER,
		litoral_id INTEGER,
		lat REAL,
		lon REAL,
		uf TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_locais_litoral ON locais(litoral_id);
	CREATE INDEX IF NOT EXISTS idx_locais_nivel ON locais(nivel);

	CREATE TABLE IF NOT EXISTS praias (
		id INTEGER PRIMARY KEY,
		local_id INTEGER REFERENCES locais(id),
		litoral_id INTEGER,
		nome TEXT NOT NULL,
		nome_2 TEXT,
		orientacao INTEGER,
		lat REAL,
		lon REAL,
		uf TEXT,
		ativa INTEGER NOT NULL DEFAULT 1,
		nome_do_mapa TEXT,
		dt_mapa_atualizado TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_praias_local ON praias(local_id);
	CREATE INDEX IF NOT EXISTS idx_praias_nome ON praias(nome);
	`
	_, err := db.Exec(schema)
	return err
}

func (s *SQLiteStore) SurfSpot(ctx context.Context, id int) (*Spot, error) {
	const q = `
	SELECT p.id, COALESCE(p.litoral_id, 0),
	       COALESCE(NULLIF(p.nome_2, ''), p.nome),
	       COALESCE(l.nome, ''),
	       COALESCE(p.orientacao, 0),
	       COALESCE(p.lat, 0), COALESCE(p.lon, 0), COALESCE(p.uf, ''),
	       COALESCE(p.nome_do_mapa, ''), COALESCE(p.dt_mapa_atualizado, '')
	FROM praias p
	LEFT JOIN locais l ON l.id = p.local_id
	WHERE p.id = ?`

	var spot Spot
	err := s.db.QueryRowContext(ctx, q, id).Scan(
		&spot.ID, &spot.RegionID, &spot.Name, &spot.RegionName,
		&spot.Orientation, &spot.Lat, &spot.Lon, &spot.UF,
		&spot.MapName, &spot.MapStamp)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("surf spot %d: %w", id, err)
	}
	return &spot, nil
}

func (s *SQLiteStore) CoastLocation(ctx context.Context, coastID int) (*Spot, error) {
	const q = `
	SELECT id, COALESCE(nome, ''), COALESCE(lat, 0), COALESCE(lon, 0), COALESCE(uf, '')
	FROM locais
	WHERE litoral_id = ?
	LIMIT 1`

	spot := Spot{RegionID: coastID}
	err := s.db.QueryRowContext(ctx, q, coastID).Scan(
		&spot.ID, &spot.Name, &spot.Lat, &spot.Lon, &spot.UF)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("coast location %d: %w", coastID, err)
	}
	return &spot, nil
}

func (s *SQLiteStore) LocationTree(ctx context.Context) ([]*LocationNode, error) {
	const locQ = `
	SELECT id, COALESCE(nome, ''), nivel, COALESCE(pai, 0),
	       COALESCE(litoral_id, 0), COALESCE(lat, 0), COALESCE(lon, 0)
	FROM locais
	WHERE nivel IN (1, 2, 3, 4)
	ORDER BY nivel, nome`

	rows, err := s.db.QueryContext(ctx, locQ)
	if err != nil {
		return nil, fmt.Errorf("locations: %w", err)
	}
	defer rows.Close()

	var locations []locationRow
	for rows.Next() {
		var l locationRow
		if err := rows.Scan(&l.ID, &l.Name, &l.Level, &l.Parent, &l.CoastID, &l.Lat, &l.Lon); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("locations: %w", err)
	}

	const beachQ = `
	SELECT p.id, COALESCE(p.local_id, 0),
	       COALESCE(NULLIF(p.nome_2, ''), p.nome),
	       COALESCE(p.litoral_id, 0), COALESCE(p.lat, 0), COALESCE(p.lon, 0)
	FROM praias p
	ORDER BY p.nome`

	brows, err := s.db.QueryContext(ctx, beachQ)
	if err != nil {
		return nil, fmt.Errorf("beaches: %w", err)
	}
	defer brows.Close()

	var beaches []beachRow
	for brows.Next() {
		var b beachRow
		if err := brows.Scan(&b.ID, &b.LocalID, &b.Name, &b.CoastID, &b.Lat, &b.Lon); err != nil {
			return nil, fmt.Errorf("scan beach: %w", err)
		}
		beaches = append(beaches, b)
	}
	if err := brows.Err(); err != nil {
		return nil, fmt.Errorf("beaches: %w", err)
	}

	return buildLocationTree(locations, beaches), nil
}

func (s *SQLiteStore) activeBeaches(ctx context.Context, name string) ([]Spot, error) {
	q := `
	SELECT p.id, COALESCE(p.litoral_id, 0),
	       COALESCE(NULLIF(p.nome_2, ''), p.nome),
	       COALESCE(p.orientacao, 0),
	       COALESCE(p.lat, 0), COALESCE(p.lon, 0), COALESCE(p.uf, '')
	FROM praias p
	WHERE p.ativa = 1`

	var args []any
	if name != "" {
		// SQLite LIKE is case-insensitive for ASCII.
		q += ` AND p.nome LIKE ?`
		args = append(args, "%"+name+"%")
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("active beaches: %w", err)
	}
	defer rows.Close()

	var spots []Spot
	for rows.Next() {
		var sp Spot
		if err := rows.Scan(&sp.ID, &sp.RegionID, &sp.Name, &sp.Orientation, &sp.Lat, &sp.Lon, &sp.UF); err != nil {
			return nil, fmt.Errorf("scan beach: %w", err)
		}
		spots = append(spots, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("active beaches: %w", err)
	}
	return spots, nil
}

func (s *SQLiteStore) NearestSpots(ctx context.Context, lat, lon, rangeKm float64) ([]SpotResult, error) {
	spots, err := s.activeBeaches(ctx, "")
	if err != nil {
		return nil, err
	}
	return nearestFrom(spots, lat, lon, rangeKm), nil
}

func (s *SQLiteStore) SearchSpots(ctx context.Context, name string) ([]Spot, error) {
	return s.activeBeaches(ctx, name)
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
}

// PostgresStore resolves spots against a PostgreSQL pool. The pool retires
// broken connections on error, so a failed query never poisons later ones.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres opens a connection pool to PostgreSQL.
func OpenPostgres(ctx context.Context, cfg PostgresConfig) (*PostgresStore, error) {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	poolCfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}

	poolCfg.MaxConns = 10
	poolCfg.MinConns = 2
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute
	poolCfg.ConnConfig.ConnectTimeout = 5 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) SurfSpot(ctx context.Context, id int) (*Spot, error) {
	const q = `
	SELECT p.id, COALESCE(p.litoral_id, 0),
	       COALESCE(NULLIF(p.nome_2, ''), p.nome),
	       COALESCE(l.nome, ''),
	       COALESCE(p.orientacao, 0),
	       COALESCE(p.lat, 0), COALESCE(p.lon, 0), COALESCE(p.uf, ''),
	       COALESCE(p.nome_do_mapa, ''), COALESCE(p.dt_mapa_atualizado, '')
	FROM praias p
	LEFT JOIN locais l ON l.id = p.local_id
	WHERE p.id = $1`

	var spot Spot
	err := s.pool.QueryRow(ctx, q, id).Scan(
		&spot.ID, &spot.RegionID, &spot.Name, &spot.RegionName,
		&spot.Orientation, &spot.Lat, &spot.Lon, &spot.UF,
		&spot.MapName, &spot.MapStamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("surf spot %d: %w", id, err)
	}
	return &spot, nil
}

func (s *PostgresStore) CoastLocation(ctx context.Context, coastID int) (*Spot, error) {
	const q = `
	SELECT id, COALESCE(nome, ''), COALESCE(lat, 0), COALESCE(lon, 0), COALESCE(uf, '')
	FROM locais
	WHERE litoral_id = $1
	LIMIT 1`

	spot := Spot{RegionID: coastID}
	err := s.pool.QueryRow(ctx, q, coastID).Scan(
		&spot.ID, &spot.Name, &spot.Lat, &spot.Lon, &spot.UF)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("coast location %d: %w", coastID, err)
	}
	return &spot, nil
}

func (s *PostgresStore) LocationTree(ctx context.Context) ([]*LocationNode, error) {
	const locQ = `
	SELECT id, COALESCE(nome, ''), nivel, COALESCE(pai, 0),
	       COALESCE(litoral_id, 0), COALESCE(lat, 0), COALESCE(lon, 0)
	FROM locais
	WHERE nivel IN (1, 2, 3, 4)
	ORDER BY nivel, nome`

	rows, err := s.pool.Query(ctx, locQ)
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

	brows, err := s.pool.Query(ctx, beachQ)
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

// activeBeaches feeds the geolocation endpoints; the name filter is
// optional.
func (s *PostgresStore) activeBeaches(ctx context.Context, name string) ([]Spot, error) {
	q := `
	SELECT p.id, COALESCE(p.litoral_id, 0),
	       COALESCE(NULLIF(p.nome_2, ''), p.nome),
	       COALESCE(p.orientacao, 0),
	       COALESCE(p.lat, 0), COALESCE(p.lon, 0), COALESCE(p.uf, '')
	FROM praias p
	WHERE p.ativa = 1`

	var args []any
	if name != "" {
		q += ` AND p.nome ILIKE $1`
		args = append(args, "%"+name+"%")
	}

	rows, err := s.pool.Query(ctx, q, args...)
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

func (s *PostgresStore) NearestSpots(ctx context.Context, lat, lon, rangeKm float64) ([]SpotResult, error) {
	spots, err := s.activeBeaches(ctx, "")
	if err != nil {
		return nil, err
	}
	return nearestFrom(spots, lat, lon, rangeKm), nil
}

func (s *PostgresStore) SearchSpots(ctx context.Context, name string) ([]Spot, error) {
	return s.activeBeaches(ctx, name)
}

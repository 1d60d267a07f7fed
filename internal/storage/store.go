// Package storage resolves spots and coastal locations from the relational
// store. Two backends exist: Postgres for deployments and SQLite for local
// development and tests.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a lookup matches no rows.
var ErrNotFound = errors.New("not found")

// Spot is the resolved metadata for a surf spot or a coastal location.
type Spot struct {
	ID          int
	RegionID    int // litoral id providing the regional blobs
	Name        string
	RegionName  string
	Orientation int // degrees the beach faces seaward; 0 when unknown
	Lat         float64
	Lon         float64
	UF          string
	MapName     string
	MapStamp    string
}

// Coordinates is a lat/long pair as the location tree emits it.
type Coordinates struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

// LocationNode is one node of the hierarchical location tree: continents
// down to municipalities, with surf spots as municipality children.
type LocationNode struct {
	ID            int             `json:"id"`
	Type          string          `json:"type"` // REGULAR_SPOT or SURF_SPOT
	Name          string          `json:"name"`
	ParentID      int             `json:"parentId,omitempty"`
	CoastID       int             `json:"coastId,omitempty"`
	SpotID        int             `json:"spotId,omitempty"`
	OceanicSpotID int             `json:"oceanicSpotId,omitempty"`
	Coordinates   *Coordinates    `json:"coordinates"`
	Children      []*LocationNode `json:"children"`
}

// SpotResult is a spot with its distance from a search origin.
type SpotResult struct {
	Spot
	DistanceKm float64
}

// SpotStore answers the relational lookups behind the API. Every query is
// parameterized; request input never reaches SQL text.
type SpotStore interface {
	// SurfSpot resolves a beach by id, with its region metadata.
	SurfSpot(ctx context.Context, id int) (*Spot, error)
	// CoastLocation resolves any location on the given coast (litoral) id.
	CoastLocation(ctx context.Context, coastID int) (*Spot, error)
	// LocationTree returns the full hierarchical location tree.
	LocationTree(ctx context.Context) ([]*LocationNode, error)
	// NearestSpots returns active beaches within rangeKm of a point,
	// nearest first.
	NearestSpots(ctx context.Context, lat, lon, rangeKm float64) ([]SpotResult, error)
	// SearchSpots returns active beaches whose name matches.
	SearchSpots(ctx context.Context, name string) ([]Spot, error)
	Close()
}

// Package api provides the REST endpoints serving assembled forecasts.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"surfcast/internal/blob"
	"surfcast/internal/forecast"
	"surfcast/internal/storage"
	"surfcast/internal/wire"
)

const defaultRangeKm = 50

// Server answers forecast, location and geolocation queries.
type Server struct {
	spots      storage.SpotStore
	blobs      blob.Store
	port       int
	region     string
	mapBaseURL string
}

// Config holds configuration for the forecast API server.
type Config struct {
	Port       int
	Region     string // Deployment region reported by /health.
	MapBaseURL string
}

// NewServer creates a new forecast API server.
func NewServer(spots storage.SpotStore, blobs blob.Store, cfg Config) *Server {
	return &Server{
		spots:      spots,
		blobs:      blobs,
		port:       cfg.Port,
		region:     cfg.Region,
		mapBaseURL: cfg.MapBaseURL,
	}
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := ":" + strconv.Itoa(s.port)
	log.Printf("Forecast API starting at http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Router())
}

// Router returns the configured chi router.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	// Standard middleware.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS for browser access.
	r.Use(corsMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/forecast", s.handleForecast)
	r.Get("/locations", s.handleLocations)
	r.Get("/geolocation/nearest-spots", s.handleNearestSpots)
	r.Get("/geolocation/search", s.handleSearch)

	return r
}

// corsMiddleware adds CORS headers for browser access.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"application": "forecast-api",
		"message":     "OK",
		"region":      s.region,
	})
}

// handleForecast dispatches on the query parameter: praia_id for a beach
// forecast, coastId for a regional oceanic one.
func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	if praiaID := r.URL.Query().Get("praia_id"); praiaID != "" {
		id, err := strconv.Atoi(praiaID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "praia_id must be an integer")
			return
		}
		s.surfForecast(w, r, id)
		return
	}

	if coastID := r.URL.Query().Get("coastId"); coastID != "" {
		id, err := strconv.Atoi(coastID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "coastId must be an integer")
			return
		}
		s.coastForecast(w, r, id)
		return
	}

	writeError(w, http.StatusBadRequest, "praia_id or coastId is required")
}

func (s *Server) surfForecast(w http.ResponseWriter, r *http.Request, id int) {
	ctx := r.Context()

	spot, err := s.spots.SurfSpot(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "surf spot not found")
		return
	}
	if err != nil {
		writeServerError(w, err)
		return
	}

	// The beach blob carries the oceanic rows and the overlay; the
	// atmospheric blob is regional. Fetch both concurrently.
	var atmos, ocean *wire.File
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		atmos, err = blob.FetchFile(gctx, s.blobs, blob.AtmosKey(spot.RegionID))
		return err
	})
	g.Go(func() error {
		var err error
		ocean, err = blob.FetchFile(gctx, s.blobs, blob.BeachKey(spot.ID))
		return err
	})
	if err := g.Wait(); err != nil {
		writeServerError(w, err)
		return
	}

	if ocean == nil {
		writeError(w, http.StatusNotFound, "forecast data not available for this spot")
		return
	}

	writeJSON(w, http.StatusOK, forecast.Assemble(forecast.Input{
		ID:          strconv.Itoa(spot.ID),
		Name:        spot.Name,
		Mode:        forecast.ModeSurf,
		Orientation: spot.Orientation,
		MapURL:      s.mapURL(spot),
		Atmos:       atmos,
		Ocean:       ocean,
	}))
}

func (s *Server) coastForecast(w http.ResponseWriter, r *http.Request, coastID int) {
	ctx := r.Context()

	loc, err := s.spots.CoastLocation(ctx, coastID)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "coast not found")
		return
	}
	if err != nil {
		writeServerError(w, err)
		return
	}

	var atmos, ocean *wire.File
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		atmos, err = blob.FetchFile(gctx, s.blobs, blob.AtmosKey(loc.RegionID))
		return err
	})
	g.Go(func() error {
		var err error
		ocean, err = blob.FetchFile(gctx, s.blobs, blob.OceanKey(loc.RegionID))
		return err
	})
	if err := g.Wait(); err != nil {
		writeServerError(w, err)
		return
	}

	if atmos == nil {
		writeError(w, http.StatusNotFound, "forecast data not available for this coast")
		return
	}

	writeJSON(w, http.StatusOK, forecast.Assemble(forecast.Input{
		ID:    strconv.Itoa(loc.RegionID),
		Name:  loc.Name,
		Mode:  forecast.ModeOceanic,
		Atmos: atmos,
		Ocean: ocean,
	}))
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	tree, err := s.spots.LocationTree(r.Context())
	if err != nil {
		writeServerError(w, err)
		return
	}
	if tree == nil {
		tree = []*storage.LocationNode{}
	}
	writeJSON(w, http.StatusOK, tree)
}

// SpotResponse is one geolocation result.
type SpotResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	CoastID     int     `json:"coastId"`
	Orientation int     `json:"orientation"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	UF          string  `json:"uf"`
	DistanceKm  float64 `json:"distanceKm,omitempty"`
}

func spotToResponse(sp storage.Spot, distanceKm float64) SpotResponse {
	return SpotResponse{
		ID:          sp.ID,
		Name:        sp.Name,
		CoastID:     sp.RegionID,
		Orientation: sp.Orientation,
		Latitude:    sp.Lat,
		Longitude:   sp.Lon,
		UF:          sp.UF,
		DistanceKm:  distanceKm,
	}
}

func (s *Server) handleNearestSpots(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := parseFloatParam(q.Get("lat"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "lat is required and must be a number")
		return
	}
	lon, err := parseFloatParam(q.Get("long"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "long is required and must be a number")
		return
	}

	rangeKm := float64(defaultRangeKm)
	if raw := q.Get("range"); raw != "" {
		rangeKm, err = parseFloatParam(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "range must be a number")
			return
		}
	}

	results, err := s.spots.NearestSpots(r.Context(), lat, lon, rangeKm)
	if err != nil {
		writeServerError(w, err)
		return
	}

	out := make([]SpotResponse, 0, len(results))
	for _, res := range results {
		out = append(out, spotToResponse(res.Spot, res.DistanceKm))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	spots, err := s.spots.SearchSpots(r.Context(), name)
	if err != nil {
		writeServerError(w, err)
		return
	}

	out := make([]SpotResponse, 0, len(spots))
	for _, sp := range spots {
		out = append(out, spotToResponse(sp, 0))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) mapURL(spot *storage.Spot) string {
	if spot.MapName == "" {
		return ""
	}
	return fmt.Sprintf("%s/mapas/%s%s.png", s.mapBaseURL, spot.MapName, spot.MapStamp)
}

func parseFloatParam(raw string) (float64, error) {
	if raw == "" {
		return 0, errors.New("missing")
	}
	return strconv.ParseFloat(raw, 64)
}

// Helper functions.

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	kind := "BadRequest"
	switch status {
	case http.StatusNotFound:
		kind = "NotFound"
	case http.StatusInternalServerError:
		kind = "ServerError"
	}
	writeJSON(w, status, map[string]string{"error": kind, "message": message})
}

func writeServerError(w http.ResponseWriter, err error) {
	log.Printf("request failed: %v", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

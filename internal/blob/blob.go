// Package blob fetches forecast day-blobs from object storage. Three
// backends exist: S3 for deployments, GCS, and a local directory for
// development and tests.
package blob

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"surfcast/internal/wire"
)

// ErrNotFound is returned when the requested object does not exist.
var ErrNotFound = errors.New("object not found")

// Store fetches raw objects by key.
type Store interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
	Close()
}

// AtmosKey is the object key for a region's atmospheric forecast.
func AtmosKey(regionID int) string {
	return fmt.Sprintf("atmos/atmos%dpro.json", regionID)
}

// OceanKey is the object key for a region's oceanic forecast.
func OceanKey(regionID int) string {
	return fmt.Sprintf("oceanos/oceano%d.json", regionID)
}

// BeachKey is the object key for a beach's oceanic overlay.
func BeachKey(spotID int) string {
	return fmt.Sprintf("oceanos/praia%d.json", spotID)
}

const fetchTimeout = 10 * time.Second

// FetchFile fetches and decodes one forecast file. A missing or empty
// object is not an error: the layer is simply absent and the caller
// decides whether that is fatal.
func FetchFile(ctx context.Context, store Store, key string) (*wire.File, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	body, err := store.Fetch(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", key, err)
	}
	if len(body) == 0 {
		return nil, nil
	}

	var f wire.File
	if err := json.Unmarshal(body, &f); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return &f, nil
}

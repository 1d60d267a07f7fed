package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSStore fetches objects from a Google Cloud Storage bucket.
type GCSStore struct {
	client *storage.Client
	bucket string
}

// OpenGCS builds a GCS client for the configured bucket. credentialsPath
// is optional; when empty the default credential chain applies.
func OpenGCS(ctx context.Context, bucket, credentialsPath string) (*GCSStore, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		creds, err := os.ReadFile(credentialsPath)
		if err != nil {
			return nil, fmt.Errorf("read gcs credentials: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(creds))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("open gcs client: %w", err)
	}

	return &GCSStore{client: client, bucket: bucket}, nil
}

func (g *GCSStore) Fetch(ctx context.Context, key string) ([]byte, error) {
	r, err := g.client.Bucket(g.bucket).Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get gs://%s/%s: %w", g.bucket, key, err)
	}
	defer r.Close()

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read gs://%s/%s: %w", g.bucket, key, err)
	}
	return body, nil
}

func (g *GCSStore) Close() {
	_ = g.client.Close()
}

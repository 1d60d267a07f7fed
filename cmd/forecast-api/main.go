// Package main provides the forecast-api server for surf and ocean
// forecasts.
//
// The server resolves spots against a relational store (PostgreSQL or
// SQLite), fetches the day-blobs produced by the forecast pipeline from
// object storage (S3, GCS or a local directory), and assembles the
// 15-day forecast documents consumed by the web and mobile clients.
//
// Usage:
//
//	forecast-api [options]
//
// Options:
//
//	-port N             HTTP port (default: 8080)
//	-region NAME        Deployment region reported by /health
//	-db BACKEND         Relational backend: postgres or sqlite (default: postgres)
//	-pg-host HOST       PostgreSQL host (default: localhost, env: POSTGRES_HOST)
//	-pg-port PORT       PostgreSQL port (default: 5432, env: POSTGRES_PORT)
//	-pg-database DB     PostgreSQL database (default: surfcast, env: POSTGRES_DATABASE)
//	-pg-user USER       PostgreSQL user (default: surfcast, env: POSTGRES_USER)
//	-pg-password PASS   PostgreSQL password (env: POSTGRES_PASSWORD)
//	-sqlite-path PATH   SQLite database path (default: surfcast.db)
//	-blob BACKEND       Blob backend: s3, gcs or dir (default: s3)
//	-bucket NAME        Bucket holding the forecast blobs (env: FORECAST_API_AWS_FORECAST_BUCKET)
//	-aws-region REGION  AWS region (default: us-east-1)
//	-gcs-credentials F  GCS service account JSON path (gcs backend)
//	-blob-dir PATH      Local blob directory (dir backend)
//	-map-base-url URL   Base URL for forecast map images
//
// API Endpoints:
//
//	GET /health
//	    Health check endpoint.
//
//	GET /forecast?praia_id={id}
//	    Full 15-day forecast for a surf spot.
//
//	GET /forecast?coastId={id}
//	    Regional oceanic forecast for a coast.
//
//	GET /locations
//	    Hierarchical location tree down to surf spots.
//
//	GET /geolocation/nearest-spots?lat={lat}&long={long}&range={km}
//	    Active spots within range of a point, nearest first.
//
//	GET /geolocation/search?name={name}
//	    Active spots matching a name.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"surfcast/internal/api"
	"surfcast/internal/blob"
	"surfcast/internal/storage"
)

func main() {
	// Relational store flags.
	dbBackend := flag.String("db", envOrDefault("FORECAST_API_DB", "postgres"), "Relational backend: postgres or sqlite")
	pgHost := flag.String("pg-host", envOrDefault("POSTGRES_HOST", "localhost"), "PostgreSQL host")
	pgPort := flag.Int("pg-port", envOrDefaultInt("POSTGRES_PORT", 5432), "PostgreSQL port")
	pgUser := flag.String("pg-user", envOrDefault("POSTGRES_USER", "surfcast"), "PostgreSQL user")
	pgPassword := flag.String("pg-password", envOrDefault("POSTGRES_PASSWORD", ""), "PostgreSQL password")
	pgDB := flag.String("pg-database", envOrDefault("POSTGRES_DATABASE", "surfcast"), "PostgreSQL database")
	sqlitePath := flag.String("sqlite-path", "surfcast.db", "SQLite database path")

	// Blob store flags.
	blobBackend := flag.String("blob", envOrDefault("FORECAST_API_BLOB", "s3"), "Blob backend: s3, gcs or dir")
	bucket := flag.String("bucket", envOrDefault("FORECAST_API_AWS_FORECAST_BUCKET", ""), "Bucket holding the forecast blobs")
	awsRegion := flag.String("aws-region", envOrDefault("AWS_REGION", "us-east-1"), "AWS region")
	gcsCredentials := flag.String("gcs-credentials", "", "GCS service account JSON path")
	blobDir := flag.String("blob-dir", "", "Local blob directory (dir backend)")

	// API server flags.
	port := flag.Int("port", envOrDefaultInt("FORECAST_API_PORT", 8080), "HTTP port for API server")
	region := flag.String("region", envOrDefault("FORECAST_API_REGION", ""), "Deployment region reported by /health")
	mapBaseURL := flag.String("map-base-url", envOrDefault("FORECAST_API_MAP_BASE_URL", "https://surfguru.space"), "Base URL for forecast map images")

	flag.Parse()

	ctx := context.Background()

	// Open the relational store.
	var spots storage.SpotStore
	switch *dbBackend {
	case "postgres":
		pg, err := storage.OpenPostgres(ctx, storage.PostgresConfig{
			Host:     *pgHost,
			Port:     *pgPort,
			Database: *pgDB,
			User:     *pgUser,
			Password: *pgPassword,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening PostgreSQL: %v\n", err)
			os.Exit(1)
		}
		spots = pg
	case "sqlite":
		db, err := storage.OpenSQLite(*sqlitePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening SQLite: %v\n", err)
			os.Exit(1)
		}
		spots = db
	default:
		fmt.Fprintf(os.Stderr, "Unknown db backend: %s\n", *dbBackend)
		os.Exit(1)
	}
	defer spots.Close()

	// Open the blob store.
	var blobs blob.Store
	switch *blobBackend {
	case "s3":
		s3Store, err := blob.OpenS3(ctx, blob.S3Config{
			Bucket:    *bucket,
			Region:    *awsRegion,
			AccessKey: os.Getenv("FORECAST_API_AWS_ACCESS_KEY_ID"),
			SecretKey: os.Getenv("FORECAST_API_AWS_SECRET_ACCESS_KEY"),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening S3: %v\n", err)
			os.Exit(1)
		}
		blobs = s3Store
	case "gcs":
		gcsStore, err := blob.OpenGCS(ctx, *bucket, *gcsCredentials)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening GCS: %v\n", err)
			os.Exit(1)
		}
		blobs = gcsStore
	case "dir":
		if *blobDir == "" {
			fmt.Fprintln(os.Stderr, "-blob-dir is required with the dir backend")
			os.Exit(1)
		}
		blobs = blob.OpenDir(*blobDir)
	default:
		fmt.Fprintf(os.Stderr, "Unknown blob backend: %s\n", *blobBackend)
		os.Exit(1)
	}
	defer blobs.Close()

	// Create and run server.
	server := api.NewServer(spots, blobs, api.Config{
		Port:       *port,
		Region:     *region,
		MapBaseURL: *mapBaseURL,
	})

	if err := server.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

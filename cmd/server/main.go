package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"
	"waypoint-tour-service/internal/adapters/cache"
	"waypoint-tour-service/internal/adapters/directions"
	"waypoint-tour-service/internal/adapters/distance"
	"waypoint-tour-service/internal/api"
	"waypoint-tour-service/internal/config"
	"waypoint-tour-service/internal/platform/db"
	"waypoint-tour-service/internal/platform/kv"
	"waypoint-tour-service/internal/ports"

	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (ORS, Redis, Postgres) behind ports and starts the HTTP server.
func main() {
	cfg := config.Load()
	ctx := context.Background()

	var (
		sqlDB       *sql.DB
		redisClient *redis.Client
		err         error
	)

	// Both cache layers are optional; the service runs without them.
	if cfg.DatabaseURL != "" {
		sqlDB, err = db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer sqlDB.Close()

		if err := cache.InitSchema(ctx, sqlDB); err != nil {
			log.Fatal(err)
		}
	}

	if cfg.RedisAddr != "" {
		redisClient, err = kv.Open(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal(err)
		}
		defer redisClient.Close()
	}

	provider, err := newDirectionsProvider(cfg, sqlDB, redisClient)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(api.RouterConfig{
		Metric:            distance.NewSpherical(),
		Provider:          provider,
		MaxWaypoints:      cfg.MaxWaypoints,
		MaxExactWaypoints: cfg.MaxExactWaypoints,
		LabelPrefix:       cfg.LabelPrefix,
	})

	// Timeouts allow for a cold-cache directions call (external API latency).
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// newDirectionsProvider returns nil (directions disabled) when no routing backend is configured.
func newDirectionsProvider(cfg config.Config, sqlDB *sql.DB, redisClient *redis.Client) (ports.DirectionsProvider, error) {
	if cfg.MockDirections {
		log.Println("Using mock directions provider")
		return &directions.MockProvider{}, nil
	}
	if cfg.ORSAPIKey == "" {
		log.Println("ORS_API_KEY not set; directions disabled")
		return nil, nil
	}

	var layers []ports.DirectionsCache
	if redisClient != nil {
		layers = append(layers, cache.NewRedisDirectionsCache(redisClient, cfg.DirectionsCacheTTL))
	}
	if sqlDB != nil {
		layers = append(layers, cache.NewSQLDirectionsCache(sqlDB))
	}

	opts := []directions.Option{
		directions.WithBaseURL(cfg.ORSBaseURL),
		directions.WithProfile(cfg.ORSProfile),
	}
	if len(layers) > 0 {
		opts = append(opts, directions.WithCache(cache.NewChainDirectionsCache(layers...)))
	}

	provider, err := directions.NewORSProvider(cfg.ORSAPIKey, opts...)
	if err != nil {
		return nil, err
	}
	log.Printf("Directions provider=ors profile=%s cache_layers=%d", provider.Profile(), len(layers))
	return provider, nil
}

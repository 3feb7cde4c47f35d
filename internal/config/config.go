package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	ORSAPIKey  string
	ORSBaseURL string
	ORSProfile string
	// Use the straight-line mock provider instead of ORS (local development).
	MockDirections bool

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	DirectionsCacheTTL time.Duration

	MaxWaypoints      int
	MaxExactWaypoints int
	LabelPrefix       string
}

// Load reads .env (when present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	return Config{
		Port:               Get("PORT", "8080"),
		ORSAPIKey:          strings.TrimSpace(os.Getenv("ORS_API_KEY")),
		ORSBaseURL:         Get("ORS_BASE_URL", "https://api.openrouteservice.org"),
		ORSProfile:         Get("ORS_PROFILE", "foot-walking"),
		MockDirections:     GetBool("MOCK_DIRECTIONS", false),
		DatabaseURL:        strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisAddr:          strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:            GetInt("REDIS_DB", 0),
		DirectionsCacheTTL: GetDuration("DIRECTIONS_CACHE_TTL", 24*time.Hour),
		MaxWaypoints:       GetInt("MAX_WAYPOINTS", 25),
		MaxExactWaypoints:  GetInt("MAX_EXACT_WAYPOINTS", 10),
		LabelPrefix:        Get("LABEL_PREFIX", "Point"),
	}
}

func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetInt falls back when the variable is unset or not an integer.
func GetInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		log.Printf("config: %s=%q is not an integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func GetBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		log.Printf("config: %s=%q is not a boolean, using %t", key, v, fallback)
		return fallback
	}
	return b
}

func GetDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		log.Printf("config: %s=%q is not a duration, using %s", key, v, fallback)
		return fallback
	}
	return d
}

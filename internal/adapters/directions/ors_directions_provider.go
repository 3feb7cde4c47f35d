package directions

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"
	"waypoint-tour-service/internal/domain"
	"waypoint-tour-service/internal/platform/obs"
	"waypoint-tour-service/internal/ports"
)

const (
	DefaultBaseURL = "https://api.openrouteservice.org"
	DefaultProfile = "foot-walking"
)

// ORSProvider implements DirectionsProvider using OpenRouteService.
//
// It coordinates:
//   - Closing the stop sequence back to home
//   - Persistent route caching
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type ORSProvider struct {
	session     *http.Client
	apiKey      string
	baseURL     string
	profile     string
	cache       ports.DirectionsCache
	maxAttempts int
	backoff     time.Duration
}

type Option func(*ORSProvider)

func WithBaseURL(u string) Option {
	return func(o *ORSProvider) {
		if u = strings.TrimRight(strings.TrimSpace(u), "/"); u != "" {
			o.baseURL = u
		}
	}
}

func WithProfile(p string) Option {
	return func(o *ORSProvider) {
		if p = strings.TrimSpace(p); p != "" {
			o.profile = p
		}
	}
}

// WithCache enables route caching. A nil cache leaves caching disabled.
func WithCache(c ports.DirectionsCache) Option {
	return func(o *ORSProvider) { o.cache = c }
}

func WithHTTPClient(c *http.Client) Option {
	return func(o *ORSProvider) {
		if c != nil {
			o.session = c
		}
	}
}

func WithRetry(maxAttempts int, backoff time.Duration) Option {
	return func(o *ORSProvider) {
		if maxAttempts > 0 {
			o.maxAttempts = maxAttempts
		}
		if backoff > 0 {
			o.backoff = backoff
		}
	}
}

func NewORSProvider(apiKey string, opts ...Option) (*ORSProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ORS api key is empty")
	}

	provider := &ORSProvider{
		session:     &http.Client{Timeout: 10 * time.Second},
		apiKey:      apiKey,
		baseURL:     DefaultBaseURL,
		profile:     DefaultProfile,
		maxAttempts: 4,
		backoff:     200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(provider)
	}

	return provider, nil
}

func (o *ORSProvider) Profile() string { return o.profile }

// GetDirections returns a closed route stops[0] → … → stops[0].
func (o *ORSProvider) GetDirections(
	ctx context.Context,
	stops []domain.Point,
) (_ *domain.Directions, err error) {
	defer obs.Time(ctx, "ors.GetDirections")(&err)

	if len(stops) < 2 {
		return nil, fmt.Errorf("get ORS directions: %w", domain.ErrInsufficientPoints)
	}

	closed := make([]domain.Point, 0, len(stops)+1)
	closed = append(closed, stops...)
	closed = append(closed, stops[0])

	key := CacheKey(o.profile, closed)

	// Check the route cache before issuing external API calls.
	if o.cache != nil {
		d, ok, err := o.cache.Get(ctx, key)
		if err != nil {
			log.Printf("directions cache read failed: %v", err)
		} else if ok {
			return d, nil
		}
	}

	d, err := o.fetchRoute(ctx, closed)
	if err != nil {
		return nil, fmt.Errorf("get ORS directions: %w", err)
	}

	if o.cache != nil {
		if err := o.cache.Put(ctx, key, d); err != nil {
			log.Printf("directions cache write failed: %v", err)
		}
	}

	return d, nil
}

// CacheKey derives a stable key from the profile and the ordered coordinates.
// Coordinates are rounded to 6 decimals (~0.1 m) so float noise does not split entries.
func CacheKey(profile string, coords []domain.Point) string {
	var b strings.Builder
	b.WriteString(profile)
	for _, c := range coords {
		b.WriteByte('|')
		b.WriteString(strconv.FormatFloat(c.Lng, 'f', 6, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(c.Lat, 'f', 6, 64))
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

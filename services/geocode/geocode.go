package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"hourlyride/utils"
)

// Service area bias: suggestions favor metro Atlanta and are clipped to Georgia.
const (
	proximityLng = -84.355350
	proximityLat = 33.812713
	georgiaBBox  = "-85.605165,32.839052,-83.109869,35.000771"

	requestTimeout = 5 * time.Second
	maxSuggestions = 5
)

// Suggestion is one address candidate for an autocomplete query.
type Suggestion struct {
	PlaceName string    `json:"place_name"`
	Center    []float64 `json:"center,omitempty"` // [lng, lat]
}

// Geocoder resolves partial addresses into suggestions.
type Geocoder interface {
	Suggest(ctx context.Context, query string) ([]Suggestion, error)
}

// MapboxGeocoder queries the Mapbox forward-geocoding API, caching results
// in Redis. Upstream failures degrade to an empty suggestion list so the
// caller can fall back to plain text input.
type MapboxGeocoder struct {
	Token  string
	Cache  *redis.Client
	Client *http.Client
	Logger *zap.Logger
}

// NewMapboxGeocoder returns a geocoder with a bounded request timeout.
func NewMapboxGeocoder(token string, cache *redis.Client, logger *zap.Logger) *MapboxGeocoder {
	return &MapboxGeocoder{
		Token:  token,
		Cache:  cache,
		Client: &http.Client{Timeout: requestTimeout},
		Logger: logger,
	}
}

type mapboxResponse struct {
	Features []struct {
		PlaceName string    `json:"place_name"`
		Center    []float64 `json:"center"`
	} `json:"features"`
}

func (g *MapboxGeocoder) Suggest(ctx context.Context, query string) ([]Suggestion, error) {
	if query == "" {
		return []Suggestion{}, nil
	}

	cacheKey := utils.GeocodeCachePrefix + query
	if cached, err := g.Cache.Get(ctx, cacheKey).Result(); err == nil {
		var suggestions []Suggestion
		if err := json.Unmarshal([]byte(cached), &suggestions); err == nil {
			return suggestions, nil
		}
	}

	endpoint := fmt.Sprintf(
		"https://api.mapbox.com/geocoding/v5/mapbox.places/%s.json?access_token=%s&proximity=%f,%f&bbox=%s&country=us&types=address,poi&limit=%d",
		url.PathEscape(query), url.QueryEscape(g.Token), proximityLng, proximityLat, georgiaBBox, maxSuggestions,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		g.Logger.Warn("geocode request failed, falling back to plain input", zap.Error(err))
		return []Suggestion{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.Logger.Warn("geocode upstream returned non-OK status", zap.Int("status", resp.StatusCode))
		return []Suggestion{}, nil
	}

	var payload mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		g.Logger.Warn("failed to decode geocode response", zap.Error(err))
		return []Suggestion{}, nil
	}

	suggestions := make([]Suggestion, 0, len(payload.Features))
	for _, feature := range payload.Features {
		suggestions = append(suggestions, Suggestion{
			PlaceName: feature.PlaceName,
			Center:    feature.Center,
		})
	}

	if data, err := json.Marshal(suggestions); err == nil {
		if err := g.Cache.Set(ctx, cacheKey, data, utils.GeocodeCacheTTL).Err(); err != nil {
			g.Logger.Warn("failed to cache geocode result", zap.Error(err))
		}
	}
	return suggestions, nil
}

// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"hourlyride/config"
)

// GeocodeCacheClient is the dedicated client for geocoding result caching.
var GeocodeCacheClient *redis.Client

// InitGeocodeCache initializes the Redis client used to cache Mapbox lookups.
func InitGeocodeCache() {
	GeocodeCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisGeocodeDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := GeocodeCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Geocode Cache): %v", err)
	}
}

// GetGeocodeCacheClient returns the geocode cache client.
func GetGeocodeCacheClient() *redis.Client {
	if GeocodeCacheClient == nil {
		InitGeocodeCache()
	}
	return GeocodeCacheClient
}

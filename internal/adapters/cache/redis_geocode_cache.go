package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"logistics-dashboard-service/internal/domain"
)

const redisKeyPrefix = "geocode:"

// RedisGeocodeCache is a Redis-backed cache mapping geocoding queries to
// resolved places. Entries expire after the configured TTL; a TTL of zero
// keeps them indefinitely.
type RedisGeocodeCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisGeocodeCache(rdb *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{rdb: rdb, ttl: ttl}
}

type cachedPlace struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Fetch the cached place for the given query.
func (c *RedisGeocodeCache) Get(ctx context.Context, query string) (domain.Place, bool, error) {
	if c.rdb == nil {
		return domain.Place{}, false, errors.New("geocode cache: redis client is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return domain.Place{}, false, errors.New("get geocode cache: query must not be empty")
	}

	raw, err := c.rdb.Get(ctx, redisKeyPrefix+query).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Place{}, false, nil
	}
	if err != nil {
		return domain.Place{}, false, fmt.Errorf("get geocode cache: redis get: %w", err)
	}

	var entry cachedPlace
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return domain.Place{}, false, fmt.Errorf("get geocode cache: decode entry: %w", err)
	}

	return domain.Place{
		Name:   entry.Name,
		Coords: domain.Coordinates{Lat: entry.Lat, Lon: entry.Lon},
	}, true, nil
}

// Store a query -> place mapping in the cache.
func (c *RedisGeocodeCache) Put(ctx context.Context, query string, place domain.Place) error {
	if c.rdb == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return errors.New("insert geocode cache: empty query key")
	}

	payload, err := json.Marshal(cachedPlace{
		Name: place.Name,
		Lat:  place.Coords.Lat,
		Lon:  place.Coords.Lon,
	})
	if err != nil {
		return fmt.Errorf("insert geocode cache: encode entry: %w", err)
	}

	if err := c.rdb.Set(ctx, redisKeyPrefix+query, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert geocode cache query=%q: %w", query, err)
	}

	return nil
}

// README: Preference memory store backed by Redis sets.
package preference

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	prefKeyPrefix = "preference:%s:%s"
	// Remembered tags expire after 90 days so stale interests age out.
	prefKeyTTL = 90 * 24 * time.Hour
)

// Store remembers preference tags from past trips keyed by destination and
// travel style, and serves them back to enrich later profiles.
type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// SimilarPreferences returns tags recorded for earlier trips to the same
// destination with the same style.
func (s *Store) SimilarPreferences(ctx context.Context, destination string, style TravelStyle) ([]string, error) {
	return s.redis.SMembers(ctx, prefKey(destination, style)).Result()
}

// RememberPreferences records the profile's tags for future enrichment.
func (s *Store) RememberPreferences(ctx context.Context, destination string, style TravelStyle, tags []string) error {
	if len(tags) == 0 {
		return nil
	}
	key := prefKey(destination, style)
	members := make([]interface{}, len(tags))
	for i, t := range tags {
		members[i] = t
	}
	pipe := s.redis.Pipeline()
	pipe.SAdd(ctx, key, members...)
	pipe.Expire(ctx, key, prefKeyTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func prefKey(destination string, style TravelStyle) string {
	return fmt.Sprintf(prefKeyPrefix, strings.ToLower(strings.TrimSpace(destination)), style)
}

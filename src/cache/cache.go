// backend/src/cache/cache.go
package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/username/finassist/backend/src/models"
)

// AnswerCache memoizes composed answers for deterministic queries. The
// key captures everything the answer depends on besides the stored
// records themselves; staleness after a data change is bounded by the
// TTL policy.
type AnswerCache struct {
	c   *gocache.Cache
	ttl time.Duration
}

// NewAnswerCache creates a cache with the given TTL and cleanup interval.
func NewAnswerCache(ttl, cleanupInterval time.Duration) *AnswerCache {
	return &AnswerCache{
		c:   gocache.New(ttl, cleanupInterval),
		ttl: ttl,
	}
}

// BuildKey derives the cache key for one user's query shape.
func BuildKey(userID int64, intent models.Intent, timeframe models.Timeframe, language, currency string) string {
	return fmt.Sprintf("answer_user_%d_%s_%s_%s_%s", userID, intent, timeframe, language, currency)
}

// Get returns a cached answer, if present and fresh.
func (a *AnswerCache) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	if cached, found := a.c.Get(key); found {
		if answer, ok := cached.(string); ok {
			return answer, true
		}
	}
	return "", false
}

// Set stores an answer under the default TTL.
func (a *AnswerCache) Set(key, answer string) {
	if a == nil {
		return
	}
	a.c.Set(key, answer, a.ttl)
}

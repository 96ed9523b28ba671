package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// Cache kinds. Tips and clarifications are independent caches, so the same
// query text under different kinds never shares an entry.
const (
	KindStudyTips     = "tips"
	KindClarification = "clarification"
)

// Generator produces fresh content for a query when the cache cannot serve it.
type Generator func(ctx context.Context, query string) (string, error)

// ResponseCacheService serves assistant responses from the store while they
// are fresh, and regenerates them once they age past the freshness window.
// Entries expire passively: a stale row is only ever overwritten on the next
// successful generation, never swept.
type ResponseCacheService struct {
	cacheDB   ResponseCacheDB
	freshness time.Duration
	flight    singleflight.Group
}

func NewResponseCacheService(cacheDB ResponseCacheDB, freshness time.Duration) *ResponseCacheService {
	return &ResponseCacheService{
		cacheDB:   cacheDB,
		freshness: freshness,
	}
}

// flightKey builds the singleflight key from the structured cache key. Each
// part is quoted so no combination of identity and query text can alias
// another key.
func flightKey(userID uuid.UUID, kind, query string) string {
	return fmt.Sprintf("%s/%s/%s", userID, kind, strconv.Quote(query))
}

// GetOrGenerate returns the cached content for (userID, kind, query) when an
// entry exists and is younger than the freshness window. Otherwise it invokes
// the generator, overwrites the entry with the new content, and returns it.
// Query text is matched exactly; no trimming or case folding is applied.
//
// Concurrent callers that miss on the same key share a single in-flight
// generation, so at most one upstream call is issued per key at a time.
func (rcs *ResponseCacheService) GetOrGenerate(ctx context.Context, userID uuid.UUID, kind, query string, generate Generator) (string, error) {
	cached, err := rcs.cacheDB.GetResponseDB(userID, kind, query)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to read response cache: %w", err)
	}
	if cached != nil && time.Since(cached.StoredAt) < rcs.freshness {
		return cached.Content, nil
	}

	content, err, _ := rcs.flight.Do(flightKey(userID, kind, query), func() (interface{}, error) {
		fresh, err := generate(ctx, query)
		if err != nil {
			// Generation failed: leave the cache untouched so a later
			// call still sees a miss (or the old stale entry).
			return "", err
		}
		storedAt := time.Now()
		if err := rcs.cacheDB.UpsertResponseDB(userID, kind, query, fresh, storedAt); err != nil {
			return "", fmt.Errorf("failed to write response cache: %w", err)
		}
		return fresh, nil
	})
	if err != nil {
		return "", err
	}
	return content.(string), nil
}

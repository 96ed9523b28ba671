package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CachedResponse stores one generated assistant answer per (user, kind, query).
// The composite unique index is the cache key; querying by columns keeps
// identities and query text from aliasing each other the way a concatenated
// string key could.
type CachedResponse struct {
	gorm.Model
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cache_key" json:"userId"`
	Kind     string    `gorm:"uniqueIndex:idx_cache_key" json:"kind"`
	Query    string    `gorm:"uniqueIndex:idx_cache_key" json:"query"`
	Content  string    `gorm:"not null" json:"content"`
	StoredAt time.Time `json:"storedAt"`
}

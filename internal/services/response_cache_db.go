package services

import (
	"time"

	"edutracker_go_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResponseCacheDB is the persistence interface for cached assistant responses.
// The cache key is the column triple (user_id, kind, query); lookups always
// match on all three columns so distinct users or kinds can never collide.
type ResponseCacheDB interface {
	GetResponseDB(userID uuid.UUID, kind, query string) (*models.CachedResponse, error)
	UpsertResponseDB(userID uuid.UUID, kind, query, content string, storedAt time.Time) error
}

type DefaultResponseCacheDB struct {
	db *gorm.DB
}

func NewResponseCacheDB(db *gorm.DB) ResponseCacheDB {
	return &DefaultResponseCacheDB{db: db}
}

func (s *DefaultResponseCacheDB) GetResponseDB(userID uuid.UUID, kind, query string) (*models.CachedResponse, error) {
	var cached models.CachedResponse
	err := s.db.Where("user_id = ? AND kind = ? AND query = ?", userID, kind, query).First(&cached).Error
	if err != nil {
		return nil, err
	}
	return &cached, nil
}

// UpsertResponseDB overwrites any prior entry for the key; exactly one row per
// (user, kind, query) ever exists.
func (s *DefaultResponseCacheDB) UpsertResponseDB(userID uuid.UUID, kind, query, content string, storedAt time.Time) error {
	entry := models.CachedResponse{
		UserID:   userID,
		Kind:     kind,
		Query:    query,
		Content:  content,
		StoredAt: storedAt,
	}
	result := s.db.Where(models.CachedResponse{UserID: userID, Kind: kind, Query: query}).
		Assign(map[string]interface{}{"content": content, "stored_at": storedAt}).
		FirstOrCreate(&entry)
	return result.Error
}

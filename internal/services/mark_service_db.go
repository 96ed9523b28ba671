package services

import (
	"edutracker_go_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MarkServiceDB defines the persistence interface for mark operations
type MarkServiceDB interface {
	CreateMarkDB(mark *models.Mark) error
	GetMarkDB(markID uint) (*models.Mark, error)
	GetMarksByUserIDFromDB(userID uuid.UUID) ([]models.Mark, error)
	DeleteMarkDB(markID uint) error
}

// DefaultMarkService implements MarkServiceDB
type DefaultMarkService struct {
	db *gorm.DB
}

func NewMarkServiceDB(db *gorm.DB) MarkServiceDB {
	return &DefaultMarkService{db: db}
}

func (s *DefaultMarkService) CreateMarkDB(mark *models.Mark) error {
	return s.db.Create(mark).Error
}

func (s *DefaultMarkService) GetMarkDB(markID uint) (*models.Mark, error) {
	var mark models.Mark
	if err := s.db.First(&mark, markID).Error; err != nil {
		return nil, err
	}
	return &mark, nil
}

func (s *DefaultMarkService) GetMarksByUserIDFromDB(userID uuid.UUID) ([]models.Mark, error) {
	var marks []models.Mark
	result := s.db.Where("user_id = ?", userID).Order("recorded_at asc").Find(&marks)
	if result.Error != nil {
		return nil, result.Error
	}
	return marks, nil
}

func (s *DefaultMarkService) DeleteMarkDB(markID uint) error {
	return s.db.Delete(&models.Mark{}, markID).Error
}

package services

import (
	"time"

	"edutracker_go_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudySessionServiceDB defines the persistence interface for study sessions
type StudySessionServiceDB interface {
	CreateStudySessionDB(session *models.StudySession) error
	GetStudySessionDB(sessionID uint) (*models.StudySession, error)
	GetStudySessionsByUserSinceFromDB(userID uuid.UUID, since time.Time) ([]models.StudySession, error)
	UpdateStudySessionMinutesDB(sessionID uint, minutes int) error
	DeleteStudySessionDB(sessionID uint) error
}

// DefaultStudySessionService implements StudySessionServiceDB
type DefaultStudySessionService struct {
	db *gorm.DB
}

func NewStudySessionServiceDB(db *gorm.DB) StudySessionServiceDB {
	return &DefaultStudySessionService{db: db}
}

func (s *DefaultStudySessionService) CreateStudySessionDB(session *models.StudySession) error {
	return s.db.Create(session).Error
}

func (s *DefaultStudySessionService) GetStudySessionDB(sessionID uint) (*models.StudySession, error) {
	var session models.StudySession
	if err := s.db.First(&session, sessionID).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// GetStudySessionsByUserSinceFromDB returns sessions ascending by occurrence time
func (s *DefaultStudySessionService) GetStudySessionsByUserSinceFromDB(userID uuid.UUID, since time.Time) ([]models.StudySession, error) {
	var sessions []models.StudySession
	result := s.db.Where("user_id = ? AND occurred_at >= ?", userID, since).
		Order("occurred_at asc").Find(&sessions)
	if result.Error != nil {
		return nil, result.Error
	}
	return sessions, nil
}

func (s *DefaultStudySessionService) UpdateStudySessionMinutesDB(sessionID uint, minutes int) error {
	return s.db.Model(&models.StudySession{}).Where("id = ?", sessionID).
		Update("minutes", minutes).Error
}

func (s *DefaultStudySessionService) DeleteStudySessionDB(sessionID uint) error {
	return s.db.Delete(&models.StudySession{}, sessionID).Error
}

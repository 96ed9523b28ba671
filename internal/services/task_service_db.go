package services

import (
	"time"

	"edutracker_go_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskServiceDB defines the persistence interface for task operations
type TaskServiceDB interface {
	CreateTaskDB(task *models.Task) error
	GetTaskDB(taskID uint) (*models.Task, error)
	GetOpenTasksByUserIDFromDB(userID uuid.UUID) ([]models.Task, error)
	CompleteTaskDB(taskID uint, completedAt time.Time) error
	DeleteTaskDB(taskID uint) error
}

// DefaultTaskService implements TaskServiceDB
type DefaultTaskService struct {
	db *gorm.DB
}

func NewTaskServiceDB(db *gorm.DB) TaskServiceDB {
	return &DefaultTaskService{db: db}
}

func (s *DefaultTaskService) CreateTaskDB(task *models.Task) error {
	return s.db.Create(task).Error
}

func (s *DefaultTaskService) GetTaskDB(taskID uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, taskID).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// GetOpenTasksByUserIDFromDB retrieves a user's uncompleted tasks ordered by due date
func (s *DefaultTaskService) GetOpenTasksByUserIDFromDB(userID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	result := s.db.Where("user_id = ? AND completed = ?", userID, false).
		Order("due_date asc").Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

func (s *DefaultTaskService) CompleteTaskDB(taskID uint, completedAt time.Time) error {
	return s.db.Model(&models.Task{}).Where("id = ?", taskID).
		Updates(map[string]interface{}{
			"completed":    true,
			"completed_at": completedAt,
		}).Error
}

func (s *DefaultTaskService) DeleteTaskDB(taskID uint) error {
	return s.db.Delete(&models.Task{}, taskID).Error
}

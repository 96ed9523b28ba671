package services

import (
	"fmt"
	"strings"
	"time"

	apperrors "edutracker_go_backend/internal/errors"
	"edutracker_go_backend/internal/models"
	"edutracker_go_backend/internal/utils/broker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskService owns task lifecycle: validation, persistence, and change
// notifications for live subscribers.
type TaskService struct {
	taskDB TaskServiceDB
	broker *broker.Broker
}

func NewTaskService(taskDB TaskServiceDB, messageBroker *broker.Broker) *TaskService {
	return &TaskService{
		taskDB: taskDB,
		broker: messageBroker,
	}
}

func (ts *TaskService) CreateTask(userID uuid.UUID, title string, dueDate time.Time) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.NewValidationError("Task title must not be empty")
	}
	if dueDate.IsZero() {
		return nil, apperrors.NewValidationError("Task due date is required")
	}

	task := &models.Task{
		UserID:  userID,
		Title:   title,
		DueDate: dueDate,
	}
	if err := ts.taskDB.CreateTaskDB(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	ts.broker.Publish(broker.Topic(broker.CollectionTasks, userID))
	return task, nil
}

func (ts *TaskService) ListOpenTasks(userID uuid.UUID) ([]models.Task, error) {
	return ts.taskDB.GetOpenTasksByUserIDFromDB(userID)
}

// CompleteTask marks a task done. Only the owner may complete it.
func (ts *TaskService) CompleteTask(userID uuid.UUID, taskID uint) error {
	task, err := ts.ownedTask(userID, taskID)
	if err != nil {
		return err
	}
	if err := ts.taskDB.CompleteTaskDB(task.ID, time.Now()); err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}
	ts.broker.Publish(broker.Topic(broker.CollectionTasks, userID))
	return nil
}

func (ts *TaskService) DeleteTask(userID uuid.UUID, taskID uint) error {
	task, err := ts.ownedTask(userID, taskID)
	if err != nil {
		return err
	}
	if err := ts.taskDB.DeleteTaskDB(task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	ts.broker.Publish(broker.Topic(broker.CollectionTasks, userID))
	return nil
}

func (ts *TaskService) ownedTask(userID uuid.UUID, taskID uint) (*models.Task, error) {
	task, err := ts.taskDB.GetTaskDB(taskID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("Task not found")
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task.UserID != userID {
		return nil, apperrors.NewForbiddenError()
	}
	return task, nil
}

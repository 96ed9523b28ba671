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

// MarkService records subject scores. Input is validated before any store
// write; an out-of-range score never reaches the database.
type MarkService struct {
	markDB MarkServiceDB
	broker *broker.Broker
}

func NewMarkService(markDB MarkServiceDB, messageBroker *broker.Broker) *MarkService {
	return &MarkService{
		markDB: markDB,
		broker: messageBroker,
	}
}

func (ms *MarkService) AddMark(userID uuid.UUID, subject string, score int) (*models.Mark, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, apperrors.NewValidationError("Subject must not be empty")
	}
	if score < 0 || score > 100 {
		return nil, apperrors.NewValidationError("Score must be between 0 and 100")
	}

	mark := &models.Mark{
		UserID:     userID,
		Subject:    subject,
		Score:      score,
		RecordedAt: time.Now(),
	}
	if err := ms.markDB.CreateMarkDB(mark); err != nil {
		return nil, fmt.Errorf("failed to create mark: %w", err)
	}
	ms.broker.Publish(broker.Topic(broker.CollectionMarks, userID))
	return mark, nil
}

func (ms *MarkService) ListMarks(userID uuid.UUID) ([]models.Mark, error) {
	return ms.markDB.GetMarksByUserIDFromDB(userID)
}

func (ms *MarkService) DeleteMark(userID uuid.UUID, markID uint) error {
	mark, err := ms.markDB.GetMarkDB(markID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.NewNotFoundError("Mark not found")
		}
		return fmt.Errorf("failed to get mark: %w", err)
	}
	if mark.UserID != userID {
		return apperrors.NewForbiddenError()
	}
	if err := ms.markDB.DeleteMarkDB(mark.ID); err != nil {
		return fmt.Errorf("failed to delete mark: %w", err)
	}
	ms.broker.Publish(broker.Topic(broker.CollectionMarks, userID))
	return nil
}

package services

import (
	"fmt"
	"time"

	apperrors "edutracker_go_backend/internal/errors"
	"edutracker_go_backend/internal/models"
	"edutracker_go_backend/internal/utils/broker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pomodoro mode durations in minutes. Only a completed focus interval counts
// as study time; breaks are acknowledged without recording a session.
var PomodoroDurations = map[string]int{
	"pomodoro":   25,
	"shortBreak": 5,
	"longBreak":  15,
}

// StudySessionService records and maintains study time, both hand-logged and
// from completed Pomodoro intervals.
type StudySessionService struct {
	sessionDB StudySessionServiceDB
	broker    *broker.Broker
}

func NewStudySessionService(sessionDB StudySessionServiceDB, messageBroker *broker.Broker) *StudySessionService {
	return &StudySessionService{
		sessionDB: sessionDB,
		broker:    messageBroker,
	}
}

// LogStudyTime records a manual study session. Minutes must be positive.
func (sss *StudySessionService) LogStudyTime(userID uuid.UUID, minutes int) (*models.StudySession, error) {
	return sss.log(userID, minutes, models.SourceManual)
}

// CompletePomodoro records study time for a finished timer interval. Break
// modes return no session.
func (sss *StudySessionService) CompletePomodoro(userID uuid.UUID, mode string) (*models.StudySession, error) {
	minutes, ok := PomodoroDurations[mode]
	if !ok {
		return nil, apperrors.NewValidationError("Unknown pomodoro mode")
	}
	if mode != "pomodoro" {
		return nil, nil
	}
	return sss.log(userID, minutes, models.SourcePomodoro)
}

func (sss *StudySessionService) log(userID uuid.UUID, minutes int, source string) (*models.StudySession, error) {
	if minutes <= 0 {
		return nil, apperrors.NewValidationError("Study time must be a positive number of minutes")
	}
	session := &models.StudySession{
		UserID:     userID,
		Minutes:    minutes,
		OccurredAt: time.Now(),
		Source:     source,
	}
	if err := sss.sessionDB.CreateStudySessionDB(session); err != nil {
		return nil, fmt.Errorf("failed to log study session: %w", err)
	}
	sss.broker.Publish(broker.Topic(broker.CollectionStudySessions, userID))
	return session, nil
}

// ListSessions returns the user's sessions inside the range window, ascending
// by occurrence time.
func (sss *StudySessionService) ListSessions(userID uuid.UUID, rng TimeRange) ([]models.StudySession, error) {
	return sss.sessionDB.GetStudySessionsByUserSinceFromDB(userID, WindowStart(rng, time.Now()))
}

// GetAnalytics aggregates the user's sessions into chart buckets for the range.
func (sss *StudySessionService) GetAnalytics(userID uuid.UUID, rng TimeRange) ([]Bucket, error) {
	now := time.Now()
	sessions, err := sss.sessionDB.GetStudySessionsByUserSinceFromDB(userID, WindowStart(rng, now))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch study sessions: %w", err)
	}
	return AggregateStudyTime(sessions, rng, now), nil
}

// UpdateStudyTime corrects the duration of a logged session.
func (sss *StudySessionService) UpdateStudyTime(userID uuid.UUID, sessionID uint, minutes int) error {
	if minutes <= 0 {
		return apperrors.NewValidationError("Study time must be a positive number of minutes")
	}
	if _, err := sss.ownedSession(userID, sessionID); err != nil {
		return err
	}
	if err := sss.sessionDB.UpdateStudySessionMinutesDB(sessionID, minutes); err != nil {
		return fmt.Errorf("failed to update study session: %w", err)
	}
	sss.broker.Publish(broker.Topic(broker.CollectionStudySessions, userID))
	return nil
}

func (sss *StudySessionService) DeleteStudySession(userID uuid.UUID, sessionID uint) error {
	if _, err := sss.ownedSession(userID, sessionID); err != nil {
		return err
	}
	if err := sss.sessionDB.DeleteStudySessionDB(sessionID); err != nil {
		return fmt.Errorf("failed to delete study session: %w", err)
	}
	sss.broker.Publish(broker.Topic(broker.CollectionStudySessions, userID))
	return nil
}

func (sss *StudySessionService) ownedSession(userID uuid.UUID, sessionID uint) (*models.StudySession, error) {
	session, err := sss.sessionDB.GetStudySessionDB(sessionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("Study session not found")
		}
		return nil, fmt.Errorf("failed to get study session: %w", err)
	}
	if session.UserID != userID {
		return nil, apperrors.NewForbiddenError()
	}
	return session, nil
}

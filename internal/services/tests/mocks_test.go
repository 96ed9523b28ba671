package services_test

import (
	"context"
	"time"

	"edutracker_go_backend/internal/models"

	"github.com/google/uuid"
	"github.com/openai/openai-go"
	"github.com/stretchr/testify/mock"
)

type MockResponseCacheDB struct {
	mock.Mock
}

func (m *MockResponseCacheDB) GetResponseDB(userID uuid.UUID, kind, query string) (*models.CachedResponse, error) {
	args := m.Called(userID, kind, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CachedResponse), args.Error(1)
}

func (m *MockResponseCacheDB) UpsertResponseDB(userID uuid.UUID, kind, query, content string, storedAt time.Time) error {
	args := m.Called(userID, kind, query, content, storedAt)
	return args.Error(0)
}

type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) NewCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*openai.ChatCompletion), args.Error(1)
}

type MockTaskServiceDB struct {
	mock.Mock
}

func (m *MockTaskServiceDB) CreateTaskDB(task *models.Task) error {
	args := m.Called(task)
	return args.Error(0)
}

func (m *MockTaskServiceDB) GetTaskDB(taskID uint) (*models.Task, error) {
	args := m.Called(taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskServiceDB) GetOpenTasksByUserIDFromDB(userID uuid.UUID) ([]models.Task, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskServiceDB) CompleteTaskDB(taskID uint, completedAt time.Time) error {
	args := m.Called(taskID, completedAt)
	return args.Error(0)
}

func (m *MockTaskServiceDB) DeleteTaskDB(taskID uint) error {
	args := m.Called(taskID)
	return args.Error(0)
}

type MockMarkServiceDB struct {
	mock.Mock
}

func (m *MockMarkServiceDB) CreateMarkDB(mark *models.Mark) error {
	args := m.Called(mark)
	return args.Error(0)
}

func (m *MockMarkServiceDB) GetMarkDB(markID uint) (*models.Mark, error) {
	args := m.Called(markID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mark), args.Error(1)
}

func (m *MockMarkServiceDB) GetMarksByUserIDFromDB(userID uuid.UUID) ([]models.Mark, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Mark), args.Error(1)
}

func (m *MockMarkServiceDB) DeleteMarkDB(markID uint) error {
	args := m.Called(markID)
	return args.Error(0)
}

type MockStudySessionServiceDB struct {
	mock.Mock
}

func (m *MockStudySessionServiceDB) CreateStudySessionDB(session *models.StudySession) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockStudySessionServiceDB) GetStudySessionDB(sessionID uint) (*models.StudySession, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudySession), args.Error(1)
}

func (m *MockStudySessionServiceDB) GetStudySessionsByUserSinceFromDB(userID uuid.UUID, since time.Time) ([]models.StudySession, error) {
	args := m.Called(userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudySession), args.Error(1)
}

func (m *MockStudySessionServiceDB) UpdateStudySessionMinutesDB(sessionID uint, minutes int) error {
	args := m.Called(sessionID, minutes)
	return args.Error(0)
}

func (m *MockStudySessionServiceDB) DeleteStudySessionDB(sessionID uint) error {
	args := m.Called(sessionID)
	return args.Error(0)
}

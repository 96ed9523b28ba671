package services_test

import (
	"context"
	"testing"
	"time"

	apperrors "edutracker_go_backend/internal/errors"
	"edutracker_go_backend/internal/models"
	"edutracker_go_backend/internal/services"

	"github.com/google/uuid"
	"github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCacheService(mockCacheDB *MockResponseCacheDB) *services.ResponseCacheService {
	return services.NewResponseCacheService(mockCacheDB, 24*time.Hour)
}

func completionWith(content string) *openai.ChatCompletion {
	return &openai.ChatCompletion{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestGetStudyTips(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("miss generates through the completion API", func(t *testing.T) {
		mockCacheDB := new(MockResponseCacheDB)
		mockClient := new(MockCompletionClient)
		assistant := services.NewAssistantService(mockClient, "llama3-70b-8192", newCacheService(mockCacheDB))

		mockCacheDB.On("GetResponseDB", userID, services.KindStudyTips, "Algebra").Return(nil, gorm.ErrRecordNotFound).Once()
		mockClient.On("NewCompletion", mock.Anything, mock.AnythingOfType("openai.ChatCompletionNewParams")).
			Return(completionWith("- tip one\n- tip two\n- tip three"), nil).Once()
		mockCacheDB.On("UpsertResponseDB", userID, services.KindStudyTips, "Algebra", "- tip one\n- tip two\n- tip three", mock.AnythingOfType("time.Time")).Return(nil).Once()

		tips, err := assistant.GetStudyTips(ctx, userID, "Algebra")
		require.NoError(t, err)
		assert.Equal(t, "- tip one\n- tip two\n- tip three", tips)

		mockClient.AssertExpectations(t)
		mockCacheDB.AssertExpectations(t)
	})

	t.Run("unconfigured assistant fails without a network call", func(t *testing.T) {
		mockCacheDB := new(MockResponseCacheDB)
		assistant := services.NewAssistantService(services.NewGroqClient("", "https://api.groq.com/openai/v1", 10*time.Second), "llama3-70b-8192", newCacheService(mockCacheDB))

		mockCacheDB.On("GetResponseDB", userID, services.KindStudyTips, "Algebra").Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := assistant.GetStudyTips(ctx, userID, "Algebra")
		require.Error(t, err)
		customErr, ok := err.(*apperrors.CustomError)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrorTypeNotConfigured, customErr.Type)
		mockCacheDB.AssertNotCalled(t, "UpsertResponseDB", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("blank subject rejected before cache or network", func(t *testing.T) {
		mockCacheDB := new(MockResponseCacheDB)
		mockClient := new(MockCompletionClient)
		assistant := services.NewAssistantService(mockClient, "llama3-70b-8192", newCacheService(mockCacheDB))

		_, err := assistant.GetStudyTips(ctx, userID, "  ")
		require.Error(t, err)
		mockCacheDB.AssertNotCalled(t, "GetResponseDB", mock.Anything, mock.Anything, mock.Anything)
		mockClient.AssertNotCalled(t, "NewCompletion", mock.Anything, mock.Anything)
	})
}

func TestGetDoubtClarification(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("empty completion surfaces an upstream error", func(t *testing.T) {
		mockCacheDB := new(MockResponseCacheDB)
		mockClient := new(MockCompletionClient)
		assistant := services.NewAssistantService(mockClient, "llama3-70b-8192", newCacheService(mockCacheDB))

		mockCacheDB.On("GetResponseDB", userID, services.KindClarification, "what is entropy").Return(nil, gorm.ErrRecordNotFound).Once()
		mockClient.On("NewCompletion", mock.Anything, mock.AnythingOfType("openai.ChatCompletionNewParams")).
			Return(&openai.ChatCompletion{}, nil).Once()

		_, err := assistant.GetDoubtClarification(ctx, userID, "what is entropy")
		require.Error(t, err)
		customErr, ok := err.(*apperrors.CustomError)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrorTypeUpstream, customErr.Type)

		// Failed generation leaves the cache untouched.
		mockCacheDB.AssertNotCalled(t, "UpsertResponseDB", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fresh cached clarification served without the API", func(t *testing.T) {
		mockCacheDB := new(MockResponseCacheDB)
		mockClient := new(MockCompletionClient)
		assistant := services.NewAssistantService(mockClient, "llama3-70b-8192", newCacheService(mockCacheDB))

		mockCacheDB.On("GetResponseDB", userID, services.KindClarification, "what is entropy").Return(&models.CachedResponse{
			Content:  "a measure of disorder",
			StoredAt: time.Now().Add(-time.Hour),
		}, nil).Once()

		clarification, err := assistant.GetDoubtClarification(ctx, userID, "what is entropy")
		require.NoError(t, err)
		assert.Equal(t, "a measure of disorder", clarification)
		mockClient.AssertNotCalled(t, "NewCompletion", mock.Anything, mock.Anything)
	})
}

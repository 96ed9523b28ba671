package services_test

import (
	"testing"
	"time"

	apperrors "edutracker_go_backend/internal/errors"
	"edutracker_go_backend/internal/models"
	"edutracker_go_backend/internal/services"
	"edutracker_go_backend/internal/utils/broker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateTask(t *testing.T) {
	userID := uuid.New()
	dueDate := time.Now().AddDate(0, 0, 3)

	t.Run("valid task is stored and announced", func(t *testing.T) {
		mockTaskDB := new(MockTaskServiceDB)
		messageBroker := broker.NewBroker()
		taskService := services.NewTaskService(mockTaskDB, messageBroker)

		changes := messageBroker.Subscribe(broker.Topic(broker.CollectionTasks, userID))
		defer messageBroker.Unsubscribe(broker.Topic(broker.CollectionTasks, userID), changes)

		mockTaskDB.On("CreateTaskDB", mock.AnythingOfType("*models.Task")).Return(nil).Once()

		task, err := taskService.CreateTask(userID, "Revise calculus", dueDate)
		require.NoError(t, err)
		assert.Equal(t, "Revise calculus", task.Title)
		assert.False(t, task.Completed)

		select {
		case <-changes:
		default:
			t.Fatal("expected a change signal for the tasks collection")
		}
		mockTaskDB.AssertExpectations(t)
	})

	t.Run("blank title rejected before any store write", func(t *testing.T) {
		mockTaskDB := new(MockTaskServiceDB)
		taskService := services.NewTaskService(mockTaskDB, broker.NewBroker())

		_, err := taskService.CreateTask(userID, "   ", dueDate)
		require.Error(t, err)
		customErr, ok := err.(*apperrors.CustomError)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrorTypeValidation, customErr.Type)
		mockTaskDB.AssertNotCalled(t, "CreateTaskDB", mock.Anything)
	})

	t.Run("missing due date rejected", func(t *testing.T) {
		mockTaskDB := new(MockTaskServiceDB)
		taskService := services.NewTaskService(mockTaskDB, broker.NewBroker())

		_, err := taskService.CreateTask(userID, "Revise calculus", time.Time{})
		assert.Error(t, err)
		mockTaskDB.AssertNotCalled(t, "CreateTaskDB", mock.Anything)
	})
}

func TestCompleteTask(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	t.Run("owner completes a task", func(t *testing.T) {
		mockTaskDB := new(MockTaskServiceDB)
		taskService := services.NewTaskService(mockTaskDB, broker.NewBroker())

		stored := &models.Task{UserID: owner, Title: "Revise calculus"}
		stored.ID = 11
		mockTaskDB.On("GetTaskDB", uint(11)).Return(stored, nil).Once()
		mockTaskDB.On("CompleteTaskDB", uint(11), mock.AnythingOfType("time.Time")).Return(nil).Once()

		require.NoError(t, taskService.CompleteTask(owner, 11))
		mockTaskDB.AssertExpectations(t)
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		mockTaskDB := new(MockTaskServiceDB)
		taskService := services.NewTaskService(mockTaskDB, broker.NewBroker())

		stored := &models.Task{UserID: owner, Title: "Revise calculus"}
		stored.ID = 11
		mockTaskDB.On("GetTaskDB", uint(11)).Return(stored, nil).Once()

		err := taskService.CompleteTask(stranger, 11)
		require.Error(t, err)
		mockTaskDB.AssertNotCalled(t, "CompleteTaskDB", mock.Anything, mock.Anything)
	})
}

package services_test

import (
	"testing"

	apperrors "edutracker_go_backend/internal/errors"
	"edutracker_go_backend/internal/models"
	"edutracker_go_backend/internal/services"
	"edutracker_go_backend/internal/utils/broker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddMark(t *testing.T) {
	userID := uuid.New()

	t.Run("valid mark is stored and announced", func(t *testing.T) {
		mockMarkDB := new(MockMarkServiceDB)
		messageBroker := broker.NewBroker()
		markService := services.NewMarkService(mockMarkDB, messageBroker)

		changes := messageBroker.Subscribe(broker.Topic(broker.CollectionMarks, userID))
		defer messageBroker.Unsubscribe(broker.Topic(broker.CollectionMarks, userID), changes)

		mockMarkDB.On("CreateMarkDB", mock.AnythingOfType("*models.Mark")).Return(nil).Once()

		mark, err := markService.AddMark(userID, "Mathematics", 87)
		require.NoError(t, err)
		assert.Equal(t, "Mathematics", mark.Subject)
		assert.Equal(t, 87, mark.Score)

		select {
		case <-changes:
		default:
			t.Fatal("expected a change signal for the marks collection")
		}
		mockMarkDB.AssertExpectations(t)
	})

	t.Run("out-of-range score rejected before any store write", func(t *testing.T) {
		mockMarkDB := new(MockMarkServiceDB)
		markService := services.NewMarkService(mockMarkDB, broker.NewBroker())

		_, err := markService.AddMark(userID, "Mathematics", 150)
		require.Error(t, err)
		customErr, ok := err.(*apperrors.CustomError)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrorTypeValidation, customErr.Type)

		mockMarkDB.AssertNotCalled(t, "CreateMarkDB", mock.Anything)
	})

	t.Run("negative score rejected", func(t *testing.T) {
		mockMarkDB := new(MockMarkServiceDB)
		markService := services.NewMarkService(mockMarkDB, broker.NewBroker())

		_, err := markService.AddMark(userID, "Mathematics", -1)
		assert.Error(t, err)
		mockMarkDB.AssertNotCalled(t, "CreateMarkDB", mock.Anything)
	})

	t.Run("blank subject rejected", func(t *testing.T) {
		mockMarkDB := new(MockMarkServiceDB)
		markService := services.NewMarkService(mockMarkDB, broker.NewBroker())

		_, err := markService.AddMark(userID, "   ", 50)
		assert.Error(t, err)
		mockMarkDB.AssertNotCalled(t, "CreateMarkDB", mock.Anything)
	})
}

func TestDeleteMark(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	t.Run("owner can delete", func(t *testing.T) {
		mockMarkDB := new(MockMarkServiceDB)
		markService := services.NewMarkService(mockMarkDB, broker.NewBroker())

		stored := &models.Mark{UserID: owner, Subject: "Physics", Score: 70}
		stored.ID = 42
		mockMarkDB.On("GetMarkDB", uint(42)).Return(stored, nil).Once()
		mockMarkDB.On("DeleteMarkDB", uint(42)).Return(nil).Once()

		require.NoError(t, markService.DeleteMark(owner, 42))
		mockMarkDB.AssertExpectations(t)
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		mockMarkDB := new(MockMarkServiceDB)
		markService := services.NewMarkService(mockMarkDB, broker.NewBroker())

		stored := &models.Mark{UserID: owner, Subject: "Physics", Score: 70}
		stored.ID = 42
		mockMarkDB.On("GetMarkDB", uint(42)).Return(stored, nil).Once()

		err := markService.DeleteMark(stranger, 42)
		require.Error(t, err)
		mockMarkDB.AssertNotCalled(t, "DeleteMarkDB", mock.Anything)
	})
}

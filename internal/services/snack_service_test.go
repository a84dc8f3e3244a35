package services_test

import (
	"testing"
	"time"

	"dailydiet/internal/models"
	"dailydiet/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSnackRepository is a mock implementation of repositories.SnackRepository
type MockSnackRepository struct {
	mock.Mock
}

func (m *MockSnackRepository) GetAllByUser(userID uint) ([]models.Snack, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Snack), args.Error(1)
}

func (m *MockSnackRepository) GetByID(id, userID uint) (*models.Snack, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Snack), args.Error(1)
}

func (m *MockSnackRepository) Create(snack *models.Snack) error {
	args := m.Called(snack)
	return args.Error(0)
}

func (m *MockSnackRepository) Update(snack *models.Snack) (bool, error) {
	args := m.Called(snack)
	return args.Bool(0), args.Error(1)
}

func (m *MockSnackRepository) Delete(id, userID uint) (bool, error) {
	args := m.Called(id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSnackRepository) Summary(userID uint) (*models.Summary, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Summary), args.Error(1)
}

func TestSnackService_CreateSnack(t *testing.T) {
	mockRepo := new(MockSnackRepository)
	service := services.NewSnackService(mockRepo, nil) // nil broker: publishing skipped

	snack := &models.Snack{
		Name:        "apple",
		Description: "fruit",
		CreatedAt:   time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		OnDiet:      true,
		UserID:      1,
	}

	mockRepo.On("Create", snack).Return(nil).Once().Run(func(args mock.Arguments) {
		args.Get(0).(*models.Snack).ID = 42
	})

	created, err := service.CreateSnack(snack)

	assert.NoError(t, err)
	assert.Equal(t, uint(42), created.ID)
	assert.Equal(t, "apple", created.Name)
	mockRepo.AssertExpectations(t)
}

func TestSnackService_UpdateSnack(t *testing.T) {
	mockRepo := new(MockSnackRepository)
	service := services.NewSnackService(mockRepo, nil)

	snack := &models.Snack{ID: 5, Name: "salad", UserID: 1}

	// A matched row echoes the snack back.
	mockRepo.On("Update", snack).Return(true, nil).Once()
	updated, err := service.UpdateSnack(snack)
	assert.NoError(t, err)
	assert.Equal(t, snack, updated)

	// An unmatched row (wrong owner or missing ID) yields nil, not an error.
	other := &models.Snack{ID: 5, Name: "salad", UserID: 2}
	mockRepo.On("Update", other).Return(false, nil).Once()
	updated, err = service.UpdateSnack(other)
	assert.NoError(t, err)
	assert.Nil(t, updated)

	mockRepo.AssertExpectations(t)
}

func TestSnackService_DeleteSnack(t *testing.T) {
	mockRepo := new(MockSnackRepository)
	service := services.NewSnackService(mockRepo, nil)

	mockRepo.On("Delete", uint(5), uint(1)).Return(true, nil).Once()
	deleted, err := service.DeleteSnack(5, 1)
	assert.NoError(t, err)
	assert.True(t, deleted)

	mockRepo.On("Delete", uint(5), uint(2)).Return(false, nil).Once()
	deleted, err = service.DeleteSnack(5, 2)
	assert.NoError(t, err)
	assert.False(t, deleted)

	mockRepo.AssertExpectations(t)
}

func TestSnackService_Summary(t *testing.T) {
	mockRepo := new(MockSnackRepository)
	service := services.NewSnackService(mockRepo, nil)

	expected := &models.Summary{Total: 7, OnDiet: 5, NotOnDiet: 2, BestSequence: 3}
	mockRepo.On("Summary", uint(1)).Return(expected, nil).Once()

	summary, err := service.Summary(1)
	assert.NoError(t, err)
	assert.Equal(t, expected, summary)
	assert.Equal(t, summary.Total, summary.OnDiet+summary.NotOnDiet)
	mockRepo.AssertExpectations(t)
}

package services_test

import (
	"testing"

	"dailydiet/internal/models"
	"dailydiet/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetBySessionID(sessionID string) (*models.User, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestUserService_RegisterNewUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("GetByUsername", "alice").Return(nil, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once().Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = 1
	})

	user, err := service.Register("alice")

	assert.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotNil(t, user.SessionID)
	// The session identifier must be a valid v4-style random token.
	_, parseErr := uuid.Parse(*user.SessionID)
	assert.NoError(t, parseErr)
	mockRepo.AssertExpectations(t)
}

func TestUserService_RegisterExistingUserIsIdempotent(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	sessionID := uuid.New().String()
	existing := &models.User{ID: 7, Username: "alice", SessionID: &sessionID}

	mockRepo.On("GetByUsername", "alice").Return(existing, nil).Twice()

	first, err := service.Register("alice")
	assert.NoError(t, err)
	second, err := service.Register("alice")
	assert.NoError(t, err)

	// Same row both times: no duplicate user, no session rotation.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, *first.SessionID, *second.SessionID)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestUserService_ResolveSession(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	sessionID := uuid.New().String()
	expected := &models.User{ID: 3, Username: "bob", SessionID: &sessionID}

	mockRepo.On("GetBySessionID", sessionID).Return(expected, nil).Once()
	user, err := service.ResolveSession(sessionID)
	assert.NoError(t, err)
	assert.Equal(t, expected, user)

	// Unknown sessions resolve to no user without an error.
	mockRepo.On("GetBySessionID", "unknown").Return(nil, nil).Once()
	user, err = service.ResolveSession("unknown")
	assert.NoError(t, err)
	assert.Nil(t, user)

	mockRepo.AssertExpectations(t)
}

package usecase

import (
	"testing"
	"time"

	"blog-backend/internal/entity"
	"blog-backend/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockNewsletterRepository is a mock implementation of persistent.NewsletterRepository
type MockNewsletterRepository struct {
	mock.Mock
}

func (m *MockNewsletterRepository) GetByEmail(email string) (*entity.NewsletterSubscription, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NewsletterSubscription), args.Error(1)
}

func (m *MockNewsletterRepository) Create(sub *entity.NewsletterSubscription) error {
	args := m.Called(sub)
	if args.Error(0) == nil {
		sub.ID = 1
	}
	return args.Error(0)
}

func (m *MockNewsletterRepository) Reactivate(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockNewsletterRepository) Deactivate(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

func (m *MockNewsletterRepository) ListActive() ([]*entity.NewsletterSubscription, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.NewsletterSubscription), args.Error(1)
}

var _ persistent.NewsletterRepository = (*MockNewsletterRepository)(nil)

func TestSubscribe_NewEmail(t *testing.T) {
	mockRepo := new(MockNewsletterRepository)
	uc := NewNewsletterUseCase(mockRepo)

	mockRepo.On("GetByEmail", "new@example.com").Return(nil, persistent.ErrNotFound)
	mockRepo.On("Create", mock.AnythingOfType("*entity.NewsletterSubscription")).Return(nil)

	sub, err := uc.Subscribe("new@example.com", "New Reader")

	assert.NoError(t, err)
	assert.True(t, sub.Active)
	assert.Equal(t, "new@example.com", sub.Email)
	mockRepo.AssertExpectations(t)
}

func TestSubscribe_AlreadyActive(t *testing.T) {
	mockRepo := new(MockNewsletterRepository)
	uc := NewNewsletterUseCase(mockRepo)

	existing := &entity.NewsletterSubscription{ID: 2, Email: "dup@example.com", Active: true}
	mockRepo.On("GetByEmail", "dup@example.com").Return(existing, nil)

	_, err := uc.Subscribe("dup@example.com", "")

	assert.ErrorIs(t, err, ErrAlreadySubscribed)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSubscribe_ReactivatesInactive(t *testing.T) {
	mockRepo := new(MockNewsletterRepository)
	uc := NewNewsletterUseCase(mockRepo)

	then := time.Now().Add(-24 * time.Hour)
	inactive := &entity.NewsletterSubscription{ID: 3, Email: "back@example.com", Active: false, UnsubscribedAt: &then}
	reactivated := &entity.NewsletterSubscription{ID: 3, Email: "back@example.com", Active: true}

	mockRepo.On("GetByEmail", "back@example.com").Return(inactive, nil).Once()
	mockRepo.On("Reactivate", int64(3)).Return(nil)
	mockRepo.On("GetByEmail", "back@example.com").Return(reactivated, nil)

	sub, err := uc.Subscribe("back@example.com", "")

	assert.NoError(t, err)
	assert.True(t, sub.Active)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestUnsubscribe_NotFound(t *testing.T) {
	mockRepo := new(MockNewsletterRepository)
	uc := NewNewsletterUseCase(mockRepo)

	mockRepo.On("Deactivate", "ghost@example.com").Return(persistent.ErrNotFound)

	err := uc.Unsubscribe("ghost@example.com")

	assert.ErrorIs(t, err, persistent.ErrNotFound)
}

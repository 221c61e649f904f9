package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "gymhub/internal/errors"
	"gymhub/internal/model"
)

// MockContactMessageRepository is a mock implementation of ContactMessageRepository.
type MockContactMessageRepository struct {
	mock.Mock
}

func (m *MockContactMessageRepository) Create(ctx context.Context, message *model.ContactMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockContactMessageRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContactMessage), args.Error(1)
}

// mockMailer records sends on a channel so tests can wait for the
// fire-and-forget goroutine.
type mockMailer struct {
	err  error
	sent chan string
}

func newMockMailer(err error) *mockMailer {
	return &mockMailer{err: err, sent: make(chan string, 1)}
}

func (m *mockMailer) Send(to, subject, body string) error {
	m.sent <- to
	return m.err
}

func (m *mockMailer) waitForSend(t *testing.T) string {
	t.Helper()
	select {
	case to := <-m.sent:
		return to
	case <-time.After(2 * time.Second):
		t.Fatal("expected a notification mail to be attempted")
		return ""
	}
}

func TestContactService_Submit(t *testing.T) {
	t.Run("empty message persists nothing and sends nothing", func(t *testing.T) {
		mockRepo := new(MockContactMessageRepository)
		mailer := newMockMailer(nil)

		service := NewContactService(mockRepo, mailer, "operator@gymhub.example.com")
		msg, err := service.Submit(context.Background(), "Jane", "jane@example.com", "")

		assert.Equal(t, apperrors.ErrEmptyMessage, err)
		assert.Nil(t, msg)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		assert.Empty(t, mailer.sent)
	})

	t.Run("non-empty message persists one row and notifies the operator", func(t *testing.T) {
		mockRepo := new(MockContactMessageRepository)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *model.ContactMessage) bool {
			return m.Name == "Jane" && m.Email == "jane@example.com" && m.Message == "What are your opening hours?"
		})).Return(nil).Once()

		mailer := newMockMailer(nil)

		service := NewContactService(mockRepo, mailer, "operator@gymhub.example.com")
		msg, err := service.Submit(context.Background(), "Jane", "jane@example.com", "What are your opening hours?")

		assert.NoError(t, err)
		assert.NotNil(t, msg)
		assert.Equal(t, "operator@gymhub.example.com", mailer.waitForSend(t))
		mockRepo.AssertExpectations(t)
	})

	t.Run("mail failure does not fail the confirmation", func(t *testing.T) {
		mockRepo := new(MockContactMessageRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ContactMessage")).Return(nil).Once()

		mailer := newMockMailer(assert.AnError)

		service := NewContactService(mockRepo, mailer, "operator@gymhub.example.com")
		msg, err := service.Submit(context.Background(), "Jane", "jane@example.com", "Hello")

		assert.NoError(t, err)
		assert.NotNil(t, msg)
		mailer.waitForSend(t)
		mockRepo.AssertExpectations(t)
	})
}

package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/teamnest/teamnest-backend/internal/common"
	"github.com/teamnest/teamnest-backend/internal/domain"
)

// MockMessageRepository is a mock implementation of MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(req *domain.SendMessageRequest) (*domain.MessageWithParticipants, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessageWithParticipants), args.Error(1)
}

func (m *MockMessageRepository) FindByID(id uint64) (*domain.MessageWithParticipants, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessageWithParticipants), args.Error(1)
}

func (m *MockMessageRepository) FindByReceiverID(userID string) ([]*domain.MessageWithParticipants, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MessageWithParticipants), args.Error(1)
}

func (m *MockMessageRepository) FindBySenderID(userID string) ([]*domain.MessageWithParticipants, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MessageWithParticipants), args.Error(1)
}

func (m *MockMessageRepository) MarkAsRead(id uint64, userID string) (*domain.Message, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *MockMessageRepository) Delete(id uint64, userID string) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func storedMessage(id uint64, sender, receiver string) *domain.MessageWithParticipants {
	return &domain.MessageWithParticipants{
		Message: domain.Message{
			ID:         id,
			Subject:    "Hi",
			Body:       "Hello",
			SenderID:   sender,
			ReceiverID: receiver,
		},
		Sender:   domain.Participant{ID: sender, Name: sender},
		Receiver: domain.Participant{ID: receiver, Name: receiver},
	}
}

func assertKind(t *testing.T, err error, kind common.Kind) *common.Error {
	t.Helper()
	appErr, ok := common.AsError(err)
	assert.True(t, ok, "expected typed error, got %v", err)
	assert.Equal(t, kind, appErr.Kind)
	return appErr
}

func TestSend_Success(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	req := &domain.SendMessageRequest{
		Subject:    "Hi",
		Body:       "Hello",
		SenderID:   "u1",
		ReceiverID: "u2",
	}
	created := storedMessage(1, "u1", "u2")
	repo.On("Create", req).Return(created, nil).Once()

	msg, err := svc.Send(req)

	assert.NoError(t, err)
	assert.Equal(t, created, msg)
	assert.False(t, msg.IsRead)
	repo.AssertExpectations(t)
}

func TestSend_InvalidInput_RepositoryNeverCalled(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	_, err := svc.Send(&domain.SendMessageRequest{
		SenderID:   "u1",
		ReceiverID: "u1",
	})

	appErr := assertKind(t, err, common.KindValidation)
	assert.Equal(t, 400, appErr.StatusHint())
	assert.Contains(t, appErr.Message, "subject required")
	assert.Contains(t, appErr.Message, "body required")
	assert.Contains(t, appErr.Message, "cannot message self")
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSend_RepositoryFailureWrapped(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	req := &domain.SendMessageRequest{
		Subject:    "Hi",
		Body:       "Hello",
		SenderID:   "u1",
		ReceiverID: "u2",
	}
	repo.On("Create", req).Return(nil, errors.New("duplicate entry")).Once()

	_, err := svc.Send(req)

	appErr := assertKind(t, err, common.KindDatabase)
	assert.Equal(t, "failed to send message", appErr.Message)
	repo.AssertExpectations(t)
}

func TestSend_TypedErrorPassesThrough(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	typed := common.NewNotFoundError("receiver not found")
	req := &domain.SendMessageRequest{
		Subject:    "Hi",
		Body:       "Hello",
		SenderID:   "u1",
		ReceiverID: "u2",
	}
	repo.On("Create", req).Return(nil, error(typed)).Once()

	_, err := svc.Send(req)

	appErr := assertKind(t, err, common.KindNotFound)
	assert.Equal(t, "receiver not found", appErr.Message)
}

func TestGetInbox_EmptyUserID(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	_, err := svc.GetInbox("  ")

	appErr := assertKind(t, err, common.KindValidation)
	assert.Equal(t, "user id required", appErr.Message)
	repo.AssertNotCalled(t, "FindByReceiverID", mock.Anything)
}

func TestGetInbox_EmptyResultIsNotAnError(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	repo.On("FindByReceiverID", "u2").Return([]*domain.MessageWithParticipants{}, nil).Once()

	messages, err := svc.GetInbox("u2")

	assert.NoError(t, err)
	assert.Empty(t, messages)
	repo.AssertExpectations(t)
}

func TestGetInbox_RepositoryFailureWrapped(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	repo.On("FindByReceiverID", "u2").Return(nil, errors.New("connection reset")).Once()

	_, err := svc.GetInbox("u2")

	appErr := assertKind(t, err, common.KindDatabase)
	assert.Equal(t, "failed to load inbox", appErr.Message)
}

func TestGetSent_Success(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	sent := []*domain.MessageWithParticipants{storedMessage(2, "u1", "u2")}
	repo.On("FindBySenderID", "u1").Return(sent, nil).Once()

	messages, err := svc.GetSent("u1")

	assert.NoError(t, err)
	assert.Equal(t, sent, messages)
	repo.AssertExpectations(t)
}

func TestGetSent_EmptyUserID(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	_, err := svc.GetSent("")

	assertKind(t, err, common.KindValidation)
	repo.AssertNotCalled(t, "FindBySenderID", mock.Anything)
}

func TestMarkAsRead_Success(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	repo.On("FindByID", uint64(1)).Return(storedMessage(1, "u1", "u2"), nil).Once()
	updated := &domain.Message{ID: 1, SenderID: "u1", ReceiverID: "u2", IsRead: true}
	repo.On("MarkAsRead", uint64(1), "u2").Return(updated, nil).Once()

	msg, err := svc.MarkAsRead(1, "u2")

	assert.NoError(t, err)
	assert.True(t, msg.IsRead)
	repo.AssertExpectations(t)
}

func TestMarkAsRead_NotFound_MutationNeverAttempted(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	repo.On("FindByID", uint64(99)).Return(nil, nil).Once()

	_, err := svc.MarkAsRead(99, "u2")

	appErr := assertKind(t, err, common.KindNotFound)
	assert.Equal(t, "message not found", appErr.Message)
	assert.Equal(t, 404, appErr.StatusHint())
	repo.AssertNotCalled(t, "MarkAsRead", mock.Anything, mock.Anything)
}

// the sender may not mark their own message as read
func TestMarkAsRead_BySender_Authorization(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	repo.On("FindByID", uint64(1)).Return(storedMessage(1, "u1", "u2"), nil).Once()

	_, err := svc.MarkAsRead(1, "u1")

	appErr := assertKind(t, err, common.KindAuthorization)
	assert.Equal(t, "not permitted to mark as read", appErr.Message)
	assert.Equal(t, 403, appErr.StatusHint())
	repo.AssertNotCalled(t, "MarkAsRead", mock.Anything, mock.Anything)
}

func TestMarkAsRead_UnrelatedUser_Authorization(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	repo.On("FindByID", uint64(1)).Return(storedMessage(1, "u1", "u2"), nil).Once()

	_, err := svc.MarkAsRead(1, "u3")

	assertKind(t, err, common.KindAuthorization)
	repo.AssertNotCalled(t, "MarkAsRead", mock.Anything, mock.Anything)
}

// a repository-detected NOT_FOUND (row deleted between fetch and mutate)
// is re-thrown unchanged, not wrapped as DATABASE_ERROR
func TestMarkAsRead_RaceNotFoundPassesThrough(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	repo.On("FindByID", uint64(1)).Return(storedMessage(1, "u1", "u2"), nil).Once()
	typed := common.NewNotFoundError("message not found")
	repo.On("MarkAsRead", uint64(1), "u2").Return(nil, error(typed)).Once()

	_, err := svc.MarkAsRead(1, "u2")

	appErr := assertKind(t, err, common.KindNotFound)
	assert.Equal(t, "message not found", appErr.Message)
}

func TestMarkAsRead_RepositoryFailureWrapped(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	repo.On("FindByID", uint64(1)).Return(nil, errors.New("lock wait timeout")).Once()

	_, err := svc.MarkAsRead(1, "u2")

	appErr := assertKind(t, err, common.KindDatabase)
	assert.Equal(t, "failed to mark message as read", appErr.Message)
}

func TestDelete_BySender(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	repo.On("FindByID", uint64(1)).Return(storedMessage(1, "u1", "u2"), nil).Once()
	repo.On("Delete", uint64(1), "u1").Return(nil).Once()

	assert.NoError(t, svc.Delete(1, "u1"))
	repo.AssertExpectations(t)
}

func TestDelete_ByReceiver(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	repo.On("FindByID", uint64(1)).Return(storedMessage(1, "u1", "u2"), nil).Once()
	repo.On("Delete", uint64(1), "u2").Return(nil).Once()

	assert.NoError(t, svc.Delete(1, "u2"))
	repo.AssertExpectations(t)
}

func TestDelete_UnrelatedUser_Authorization(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	repo.On("FindByID", uint64(1)).Return(storedMessage(1, "u1", "u2"), nil).Once()

	err := svc.Delete(1, "u3")

	appErr := assertKind(t, err, common.KindAuthorization)
	assert.Equal(t, "not permitted to delete message", appErr.Message)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_NotFound_MutationNeverAttempted(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	repo.On("FindByID", uint64(404)).Return(nil, nil).Once()

	err := svc.Delete(404, "u1")

	assertKind(t, err, common.KindNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_TypedErrorPassesThrough(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	repo.On("FindByID", uint64(1)).Return(storedMessage(1, "u1", "u2"), nil).Once()
	typed := common.NewNotFoundError("message not found")
	repo.On("Delete", uint64(1), "u1").Return(error(typed)).Once()

	err := svc.Delete(1, "u1")

	appErr := assertKind(t, err, common.KindNotFound)
	assert.Equal(t, "message not found", appErr.Message)
}

func TestDelete_RepositoryFailureWrapped(t *testing.T) {
	repo := new(MockMessageRepository)
	svc := NewMessageService(repo)

	repo.On("FindByID", uint64(1)).Return(storedMessage(1, "u1", "u2"), nil).Once()
	repo.On("Delete", uint64(1), "u1").Return(errors.New("deadlock")).Once()

	err := svc.Delete(1, "u1")

	appErr := assertKind(t, err, common.KindDatabase)
	assert.Equal(t, "failed to delete message", appErr.Message)
}

package service

import (
	"strings"

	"github.com/teamnest/teamnest-backend/internal/common"
	"github.com/teamnest/teamnest-backend/internal/domain"
	"github.com/teamnest/teamnest-backend/internal/repository"
	"github.com/teamnest/teamnest-backend/pkg/logger"
)

// MessageService business logic for private messages. Every operation
// returns either its result or a typed *common.Error; callers never see
// raw repository failures.
type MessageService interface {
	Send(req *domain.SendMessageRequest) (*domain.MessageWithParticipants, error)
	GetInbox(userID string) ([]*domain.MessageWithParticipants, error)
	GetSent(userID string) ([]*domain.MessageWithParticipants, error)
	MarkAsRead(id uint64, userID string) (*domain.Message, error)
	Delete(id uint64, userID string) error
}

type messageService struct {
	repo repository.MessageRepository
}

// NewMessageService creates a new MessageService
func NewMessageService(repo repository.MessageRepository) MessageService {
	return &messageService{repo: repo}
}

// Send validates and persists a new message. Validation reports every
// violated rule at once; the repository is not touched on invalid input.
func (s *messageService) Send(req *domain.SendMessageRequest) (*domain.MessageWithParticipants, error) {
	if errs := domain.ValidateNewMessage(req); len(errs) > 0 {
		return nil, common.NewValidationError(strings.Join(errs, ", "))
	}

	msg, err := s.repo.Create(req)
	if err != nil {
		s.logFailure("send", err)
		return nil, common.WrapDatabase(err, "failed to send message")
	}
	return msg, nil
}

// GetInbox returns messages received by userID, newest first. An empty
// inbox is a successful empty list.
func (s *messageService) GetInbox(userID string) ([]*domain.MessageWithParticipants, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, common.NewValidationError("user id required")
	}

	messages, err := s.repo.FindByReceiverID(userID)
	if err != nil {
		s.logFailure("inbox", err)
		return nil, common.WrapDatabase(err, "failed to load inbox")
	}
	return messages, nil
}

// GetSent returns messages sent by userID, newest first
func (s *messageService) GetSent(userID string) ([]*domain.MessageWithParticipants, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, common.NewValidationError("user id required")
	}

	messages, err := s.repo.FindBySenderID(userID)
	if err != nil {
		s.logFailure("sent", err)
		return nil, common.WrapDatabase(err, "failed to load sent messages")
	}
	return messages, nil
}

// MarkAsRead flips the message to read on behalf of its receiver. The
// existence check runs before the authorization check, which runs before
// the mutation, so callers can tell NOT_FOUND from AUTHORIZATION apart.
// Re-marking an already-read message succeeds as a no-op.
func (s *messageService) MarkAsRead(id uint64, userID string) (*domain.Message, error) {
	msg, err := s.repo.FindByID(id)
	if err != nil {
		s.logFailure("mark-read", err)
		return nil, common.WrapDatabase(err, "failed to mark message as read")
	}
	if msg == nil {
		return nil, common.NewNotFoundError("message not found")
	}

	if !msg.CanMarkAsRead(userID) {
		return nil, common.NewAuthorizationError("not permitted to mark as read")
	}

	updated, err := s.repo.MarkAsRead(id, userID)
	if err != nil {
		s.logFailure("mark-read", err)
		return nil, common.WrapDatabase(err, "failed to mark message as read")
	}
	return updated, nil
}

// Delete removes the caller's copy of the message. Sender and receiver
// may both delete; anyone else is rejected before the repository mutates.
func (s *messageService) Delete(id uint64, userID string) error {
	msg, err := s.repo.FindByID(id)
	if err != nil {
		s.logFailure("delete", err)
		return common.WrapDatabase(err, "failed to delete message")
	}
	if msg == nil {
		return common.NewNotFoundError("message not found")
	}

	if !msg.CanDelete(userID) {
		return common.NewAuthorizationError("not permitted to delete message")
	}

	if err := s.repo.Delete(id, userID); err != nil {
		s.logFailure("delete", err)
		return common.WrapDatabase(err, "failed to delete message")
	}
	return nil
}

// logFailure records the underlying repository error; only the generic
// wrapped message reaches callers. Typed errors pass through untouched
// and are not logged here.
func (s *messageService) logFailure(op string, err error) {
	if _, ok := common.AsError(err); ok {
		return
	}
	l := logger.WithComponent("message_service")
	l.Error().Str("op", op).Err(err).Msg("repository failure")
}

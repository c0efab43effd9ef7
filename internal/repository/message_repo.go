package repository

import (
	"errors"
	"time"

	"github.com/teamnest/teamnest-backend/internal/common"
	"github.com/teamnest/teamnest-backend/internal/domain"
	"gorm.io/gorm"
)

// MessageRepository message data access. Reads return newest-first by
// creation. FindByID returns (nil, nil) when no row matches; mutations on a
// since-deleted row return a typed NOT_FOUND.
type MessageRepository interface {
	Create(req *domain.SendMessageRequest) (*domain.MessageWithParticipants, error)
	FindByID(id uint64) (*domain.MessageWithParticipants, error)
	FindByReceiverID(userID string) ([]*domain.MessageWithParticipants, error)
	FindBySenderID(userID string) ([]*domain.MessageWithParticipants, error)
	MarkAsRead(id uint64, userID string) (*domain.Message, error)
	Delete(id uint64, userID string) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(req *domain.SendMessageRequest) (*domain.MessageWithParticipants, error) {
	msg := &domain.Message{
		Subject:    req.Subject,
		Body:       req.Body,
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
	}
	if err := r.db.Create(msg).Error; err != nil {
		return nil, err
	}
	enriched, err := r.withParticipants([]*domain.Message{msg})
	if err != nil {
		return nil, err
	}
	return enriched[0], nil
}

func (r *messageRepository) FindByID(id uint64) (*domain.MessageWithParticipants, error) {
	var msg domain.Message
	err := r.db.Where("id = ?", id).First(&msg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	enriched, err := r.withParticipants([]*domain.Message{&msg})
	if err != nil {
		return nil, err
	}
	return enriched[0], nil
}

func (r *messageRepository) FindByReceiverID(userID string) ([]*domain.MessageWithParticipants, error) {
	var messages []*domain.Message
	err := r.db.
		Where("receiver_id = ? AND deleted_by_receiver = false", userID).
		Order("created_at DESC, id DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return r.withParticipants(messages)
}

func (r *messageRepository) FindBySenderID(userID string) ([]*domain.MessageWithParticipants, error) {
	var messages []*domain.Message
	err := r.db.
		Where("sender_id = ? AND deleted_by_sender = false", userID).
		Order("created_at DESC, id DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return r.withParticipants(messages)
}

// MarkAsRead sets the read flag. Re-marking an already-read message is a
// no-op that still succeeds; the stored read_at is kept.
func (r *messageRepository) MarkAsRead(id uint64, userID string) (*domain.Message, error) {
	var msg domain.Message
	err := r.db.Where("id = ?", id).First(&msg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewNotFoundError("message not found")
	}
	if err != nil {
		return nil, err
	}

	if msg.IsRead {
		return &msg, nil
	}

	now := time.Now()
	err = r.db.Model(&domain.Message{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_read": true, "read_at": now}).Error
	if err != nil {
		return nil, err
	}

	msg.IsRead = true
	msg.ReadAt = &now
	return &msg, nil
}

// Delete hides the message for one side. The row is removed once both
// sides have deleted it.
func (r *messageRepository) Delete(id uint64, userID string) error {
	var msg domain.Message
	err := r.db.Where("id = ?", id).First(&msg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.NewNotFoundError("message not found")
	}
	if err != nil {
		return err
	}

	switch userID {
	case msg.SenderID:
		err = r.db.Model(&domain.Message{}).Where("id = ?", id).
			Update("deleted_by_sender", true).Error
	case msg.ReceiverID:
		err = r.db.Model(&domain.Message{}).Where("id = ?", id).
			Update("deleted_by_receiver", true).Error
	default:
		return common.NewNotFoundError("message not found")
	}
	if err != nil {
		return err
	}

	// the purge condition runs in SQL against current row state;
	// checking the pre-update snapshot would miss an opposite-side
	// delete that landed in between
	return r.db.
		Where("id = ? AND deleted_by_sender = true AND deleted_by_receiver = true", id).
		Delete(&domain.Message{}).Error
}

// withParticipants attaches sender/receiver display info in one user query
func (r *messageRepository) withParticipants(messages []*domain.Message) ([]*domain.MessageWithParticipants, error) {
	result := make([]*domain.MessageWithParticipants, 0, len(messages))
	if len(messages) == 0 {
		return result, nil
	}

	idSet := make(map[string]struct{}, len(messages)*2)
	for _, m := range messages {
		idSet[m.SenderID] = struct{}{}
		idSet[m.ReceiverID] = struct{}{}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	var users []domain.User
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	for _, m := range messages {
		result = append(result, &domain.MessageWithParticipants{
			Message:  *m,
			Sender:   participant(m.SenderID, names),
			Receiver: participant(m.ReceiverID, names),
		})
	}
	return result, nil
}

func participant(id string, names map[string]string) domain.Participant {
	name, ok := names[id]
	if !ok {
		// user row gone (account removal); fall back to the raw id
		name = id
	}
	return domain.Participant{ID: id, Name: name}
}

package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Message subject/body limits, counted in characters rather than bytes
// so multibyte text gets the full allowance.
const (
	MaxSubjectLength = 200
	MaxBodyLength    = 10000
)

// Message represents a private message between users
type Message struct {
	ID                uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Subject           string     `gorm:"column:subject;size:200" json:"subject"`
	Body              string     `gorm:"column:body;type:text" json:"body"`
	SenderID          string     `gorm:"column:sender_id;size:50;index" json:"sender_id"`
	ReceiverID        string     `gorm:"column:receiver_id;size:50;index" json:"receiver_id"`
	IsRead            bool       `gorm:"column:is_read;default:false" json:"is_read"`
	ReadAt            *time.Time `gorm:"column:read_at" json:"read_at,omitempty"`
	DeletedBySender   bool       `gorm:"column:deleted_by_sender;default:false" json:"-"`
	DeletedByReceiver bool       `gorm:"column:deleted_by_receiver;default:false" json:"-"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Message) TableName() string { return "messages" }

// Participant denormalized display info for one side of a message
type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MessageWithParticipants is a Message enriched with sender/receiver display
// info. The repository owns the join; callers treat it as a read-only view.
type MessageWithParticipants struct {
	Message
	Sender   Participant `json:"sender"`
	Receiver Participant `json:"receiver"`
}

// SendMessageRequest represents a send message request
type SendMessageRequest struct {
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	SenderID   string `json:"-"`
	ReceiverID string `json:"receiver_id"`
}

// ValidateNewMessage checks a candidate message against all rules and
// returns every violation, not just the first.
func ValidateNewMessage(req *SendMessageRequest) []string {
	var errs []string

	if strings.TrimSpace(req.Subject) == "" {
		errs = append(errs, "subject required")
	}
	if utf8.RuneCountInString(req.Subject) > MaxSubjectLength {
		errs = append(errs, "subject too long")
	}
	if strings.TrimSpace(req.Body) == "" {
		errs = append(errs, "body required")
	}
	if utf8.RuneCountInString(req.Body) > MaxBodyLength {
		errs = append(errs, "body too long")
	}
	if req.SenderID == "" {
		errs = append(errs, "sender required")
	}
	if req.ReceiverID == "" {
		errs = append(errs, "receiver required")
	}
	if req.SenderID != "" && req.SenderID == req.ReceiverID {
		errs = append(errs, "cannot message self")
	}

	return errs
}

// CanMarkAsRead reports whether userID may mark the message read.
// Only the receiver may; the read transition is one-directional.
func (m *Message) CanMarkAsRead(userID string) bool {
	return userID == m.ReceiverID
}

// CanDelete reports whether userID may delete the message.
// Both sender and receiver may delete their copy.
func (m *Message) CanDelete(userID string) bool {
	return userID == m.SenderID || userID == m.ReceiverID
}

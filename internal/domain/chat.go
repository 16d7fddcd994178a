package domain

import (
	"context"
	"time"
)

// ChatMessage is append-only except for the read flag, which only moves
// from false to true.
type ChatMessage struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"senderId"`
	ReceiverID int64     `json:"receiverId"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// ContactSummary describes one correspondent of a user.
// LastMessageTime is nil when no message with the peer remains.
type ContactSummary struct {
	User            User       `json:"user"`
	LastMessage     string     `json:"lastMessage"`
	LastMessageTime *time.Time `json:"lastMessageTime"`
	UnreadCount     int64      `json:"unreadCount"`
}

type ChatRepository interface {
	Create(ctx context.Context, msg *ChatMessage) error
	// GetConversation returns messages between a and b, oldest first.
	GetConversation(ctx context.Context, a, b int64) ([]ChatMessage, error)
	// FindContactIDs returns every peer that exchanged a message with userID,
	// ordered by their first message.
	FindContactIDs(ctx context.Context, userID int64) ([]int64, error)
	// GetLastMessage returns the newest message between a and b, or nil.
	GetLastMessage(ctx context.Context, a, b int64) (*ChatMessage, error)
	CountUnreadFrom(ctx context.Context, senderID, receiverID int64) (int64, error)
	GetUnread(ctx context.Context, receiverID int64) ([]ChatMessage, error)
	CountUnread(ctx context.Context, receiverID int64) (int64, error)
	MarkAsRead(ctx context.Context, senderID, receiverID int64) (int64, error)
}

// MessagePublisher pushes a stored message to its receiver's topic.
// Delivery is at most once; the message log is the durable record.
type MessagePublisher interface {
	Publish(ctx context.Context, msg *ChatMessage) error
}

type ChatUsecase interface {
	Send(ctx context.Context, msg *ChatMessage) error
	GetConversation(ctx context.Context, a, b int64) ([]ChatMessage, error)
	ListContacts(ctx context.Context, userID int64) ([]ContactSummary, error)
	MarkAsRead(ctx context.Context, senderID, receiverID int64) (int64, error)
	UnreadCount(ctx context.Context, userID int64) (int64, error)
	GetUnread(ctx context.Context, userID int64) ([]ChatMessage, error)
}

package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
	"go-marketplace-backend/pkg/logger"
)

const maxMessageLength = 4000

type chatUsecase struct {
	chatRepo  domain.ChatRepository
	userRepo  domain.UserRepository
	publisher domain.MessagePublisher
}

// NewChatUsecase creates the chat usecase. publisher may be nil, in which
// case messages are only stored.
func NewChatUsecase(chatRepo domain.ChatRepository, userRepo domain.UserRepository, publisher domain.MessagePublisher) domain.ChatUsecase {
	return &chatUsecase{chatRepo: chatRepo, userRepo: userRepo, publisher: publisher}
}

// Send stores the message then pushes it to the receiver's topic. A failed
// push is logged; the stored message is the durable record.
func (uc *chatUsecase) Send(ctx context.Context, msg *domain.ChatMessage) error {
	msg.Content = strings.TrimSpace(msg.Content)
	if msg.SenderID <= 0 || msg.ReceiverID <= 0 {
		return apperror.BadRequest("Sender and receiver are required")
	}
	if msg.Content == "" {
		return apperror.BadRequest("Message content is required")
	}
	if len(msg.Content) > maxMessageLength {
		return apperror.BadRequest("Message is too long")
	}

	if err := uc.chatRepo.Create(ctx, msg); err != nil {
		return apperror.Internal(err)
	}

	if uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, msg); err != nil {
			logger.Log.Warn("chat delivery failed",
				"message_id", msg.ID,
				"receiver_id", msg.ReceiverID,
				"error", err,
			)
		}
	}
	return nil
}

func (uc *chatUsecase) GetConversation(ctx context.Context, a, b int64) ([]domain.ChatMessage, error) {
	msgs, err := uc.chatRepo.GetConversation(ctx, a, b)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return msgs, nil
}

// ListContacts builds one summary per correspondent of userID, newest
// conversation first. Peers whose user record is gone are left out.
func (uc *chatUsecase) ListContacts(ctx context.Context, userID int64) ([]domain.ContactSummary, error) {
	peerIDs, err := uc.chatRepo.FindContactIDs(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	contacts := make([]domain.ContactSummary, 0, len(peerIDs))
	for _, peerID := range peerIDs {
		peer, err := uc.userRepo.GetByID(ctx, peerID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, apperror.Internal(err)
		}

		summary := domain.ContactSummary{User: *peer}

		last, err := uc.chatRepo.GetLastMessage(ctx, userID, peerID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if last != nil {
			ts := last.Timestamp
			summary.LastMessage = last.Content
			summary.LastMessageTime = &ts
		}

		summary.UnreadCount, err = uc.chatRepo.CountUnreadFrom(ctx, peerID, userID)
		if err != nil {
			return nil, apperror.Internal(err)
		}

		contacts = append(contacts, summary)
	}

	sortContacts(contacts)
	return contacts, nil
}

// sortContacts orders by last message time, newest first. Contacts without
// a time go last; ties keep their input order.
func sortContacts(contacts []domain.ContactSummary) {
	sort.SliceStable(contacts, func(i, j int) bool {
		a, b := contacts[i].LastMessageTime, contacts[j].LastMessageTime
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
}

// MarkAsRead marks every unread message from sender to receiver as read and
// returns how many changed
func (uc *chatUsecase) MarkAsRead(ctx context.Context, senderID, receiverID int64) (int64, error) {
	n, err := uc.chatRepo.MarkAsRead(ctx, senderID, receiverID)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return n, nil
}

func (uc *chatUsecase) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	n, err := uc.chatRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return n, nil
}

func (uc *chatUsecase) GetUnread(ctx context.Context, userID int64) ([]domain.ChatMessage, error) {
	msgs, err := uc.chatRepo.GetUnread(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return msgs, nil
}

package postgres

import (
	"context"
	"time"

	"go-marketplace-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const chatColumns = `id, sender_id, receiver_id, content, timestamp, is_read`

type chatRepo struct {
	db *pgxpool.Pool
}

func NewChatRepository(db *pgxpool.Pool) domain.ChatRepository {
	return &chatRepo{db: db}
}

func scanMessage(row pgx.Row) (*domain.ChatMessage, error) {
	var m domain.ChatMessage
	if err := row.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.Timestamp, &m.Read); err != nil {
		return nil, mapError(err)
	}
	return &m, nil
}

func (r *chatRepo) Create(ctx context.Context, msg *domain.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (sender_id, receiver_id, content, timestamp, is_read)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id`

	msg.Timestamp = time.Now()
	msg.Read = false
	return mapError(r.db.QueryRow(ctx, query, msg.SenderID, msg.ReceiverID, msg.Content, msg.Timestamp).Scan(&msg.ID))
}

func (r *chatRepo) GetConversation(ctx context.Context, a, b int64) ([]domain.ChatMessage, error) {
	query := `SELECT ` + chatColumns + ` FROM chat_messages
		WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY timestamp, id`
	return r.list(ctx, query, a, b)
}

// FindContactIDs derives peers from the message log in order of their first
// message with userID.
func (r *chatRepo) FindContactIDs(ctx context.Context, userID int64) ([]int64, error) {
	query := `
		SELECT peer FROM (
			SELECT CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END AS peer, id
			FROM chat_messages
			WHERE sender_id = $1 OR receiver_id = $1
		) m
		GROUP BY peer
		ORDER BY MIN(id)`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GetLastMessage returns nil, nil when the pair has no messages.
func (r *chatRepo) GetLastMessage(ctx context.Context, a, b int64) (*domain.ChatMessage, error) {
	query := `SELECT ` + chatColumns + ` FROM chat_messages
		WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY timestamp DESC, id DESC
		LIMIT 1`
	msg, err := scanMessage(r.db.QueryRow(ctx, query, a, b))
	if err == domain.ErrNotFound {
		return nil, nil
	}
	return msg, err
}

func (r *chatRepo) CountUnreadFrom(ctx context.Context, senderID, receiverID int64) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM chat_messages WHERE sender_id = $1 AND receiver_id = $2 AND is_read = FALSE`,
		senderID, receiverID,
	).Scan(&n)
	return n, err
}

func (r *chatRepo) GetUnread(ctx context.Context, receiverID int64) ([]domain.ChatMessage, error) {
	query := `SELECT ` + chatColumns + ` FROM chat_messages
		WHERE receiver_id = $1 AND is_read = FALSE
		ORDER BY timestamp, id`
	return r.list(ctx, query, receiverID)
}

func (r *chatRepo) CountUnread(ctx context.Context, receiverID int64) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM chat_messages WHERE receiver_id = $1 AND is_read = FALSE`,
		receiverID,
	).Scan(&n)
	return n, err
}

// MarkAsRead flips every unread message from sender to receiver. A second
// call affects zero rows.
func (r *chatRepo) MarkAsRead(ctx context.Context, senderID, receiverID int64) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE chat_messages SET is_read = TRUE WHERE sender_id = $1 AND receiver_id = $2 AND is_read = FALSE`,
		senderID, receiverID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *chatRepo) list(ctx context.Context, query string, args ...any) ([]domain.ChatMessage, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := []domain.ChatMessage{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, *m)
	}
	return msgs, rows.Err()
}

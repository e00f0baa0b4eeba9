package repositories

import (
	"context"

	"mumanager-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ConversationRepository struct {
	DB *pgxpool.Pool
}

func NewConversationRepository(db *pgxpool.Pool) *ConversationRepository {
	return &ConversationRepository{DB: db}
}

func (r *ConversationRepository) Create(ctx context.Context, conv *models.Conversation) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO conversations (user_id, title)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		conv.UserID, conv.Title,
	).Scan(&conv.ID, &conv.CreatedAt, &conv.UpdatedAt)
}

func (r *ConversationRepository) Get(ctx context.Context, id int) (*models.Conversation, error) {
	conv := &models.Conversation{}
	err := r.DB.QueryRow(ctx,
		`SELECT id, user_id, title, created_at, updated_at
		 FROM conversations WHERE id = $1`,
		id,
	).Scan(&conv.ID, &conv.UserID, &conv.Title, &conv.CreatedAt, &conv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// GetWithMessages loads a conversation together with its messages in
// position order.
func (r *ConversationRepository) GetWithMessages(ctx context.Context, id int) (*models.ConversationWithMessages, error) {
	conv, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx,
		`SELECT id, conversation_id, role, content, position, created_at
		 FROM conversation_messages
		 WHERE conversation_id = $1
		 ORDER BY position ASC`,
		id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := &models.ConversationWithMessages{Conversation: *conv}
	for rows.Next() {
		var msg models.ConversationMessage
		if err := rows.Scan(&msg.ID, &msg.ConversationID, &msg.Role, &msg.Content, &msg.Position, &msg.CreatedAt); err != nil {
			return nil, err
		}
		result.Messages = append(result.Messages, msg)
	}
	return result, rows.Err()
}

func (r *ConversationRepository) ListByUser(ctx context.Context, userID int) ([]*models.Conversation, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_id, title, created_at, updated_at
		 FROM conversations
		 WHERE user_id = $1
		 ORDER BY updated_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var convs []*models.Conversation
	for rows.Next() {
		conv := &models.Conversation{}
		if err := rows.Scan(&conv.ID, &conv.UserID, &conv.Title, &conv.CreatedAt, &conv.UpdatedAt); err != nil {
			return nil, err
		}
		convs = append(convs, conv)
	}
	return convs, rows.Err()
}

// AppendMessage stores one message at the next free position and bumps the
// conversation's updated_at.
func (r *ConversationRepository) AppendMessage(ctx context.Context, msg *models.ConversationMessage) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO conversation_messages (conversation_id, role, content, position)
		 VALUES ($1, $2, $3,
		         (SELECT COALESCE(MAX(position), 0) + 1
		          FROM conversation_messages WHERE conversation_id = $1))
		 RETURNING id, position, created_at`,
		msg.ConversationID, msg.Role, msg.Content,
	).Scan(&msg.ID, &msg.Position, &msg.CreatedAt)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE conversations SET updated_at = NOW() WHERE id = $1`,
		msg.ConversationID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes a conversation; messages go with it via ON DELETE CASCADE
func (r *ConversationRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM conversations WHERE id = $1`, id)
	return err
}

package repository

import (
	"context"
	"errors"

	errorvalues "github.com/limbo/snackcheck/internal/error_values"
	"github.com/limbo/snackcheck/pkg/entity"
)

type ChatRepository struct {
	conn PgConnection
}

func NewChatRepo(conn PgConnection) *ChatRepository {
	return &ChatRepository{
		conn: conn,
	}
}

func (cr *ChatRepository) Create(ctx context.Context, msg *entity.ChatMessage) error {
	if msg == nil {
		return errors.New("message is nil")
	}
	row := cr.conn.QueryRow(ctx, `INSERT INTO chat_messages (user_id, username, message, is_admin)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;`,
		msg.UserID, msg.Username, msg.Message, msg.IsAdmin,
	)
	if err := row.Scan(&msg.ID, &msg.CreatedAt); err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating chat message error: " + err.Error())
	}
	return nil
}

func (cr *ChatRepository) List(ctx context.Context, limit int) ([]*entity.ChatMessage, error) {
	rows, err := cr.conn.Query(ctx, `SELECT id, user_id, username, message, is_admin, created_at
		FROM chat_messages ORDER BY created_at DESC LIMIT $1;`, limit)
	if err != nil {
		return nil, errors.New("listing chat messages error: " + err.Error())
	}
	defer rows.Close()
	messages := make([]*entity.ChatMessage, 0)
	for rows.Next() {
		var m entity.ChatMessage
		if err = rows.Scan(&m.ID, &m.UserID, &m.Username, &m.Message, &m.IsAdmin, &m.CreatedAt); err != nil {
			return nil, errors.New("unmarshalling chat message error: " + err.Error())
		}
		messages = append(messages, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning chat messages: " + err.Error())
	}
	return messages, nil
}

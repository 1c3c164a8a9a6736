package repository

import (
	"context"
	"fmt"
	"strings"

	"studyplanner/internal/model"

	"github.com/jmoiron/sqlx"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *model.Message) error
	List(ctx context.Context, filter model.MessageFilter) ([]model.Message, error)
	Delete(ctx context.Context, id int64) error
}

type sqlMessageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &sqlMessageRepository{db: db}
}

func (r *sqlMessageRepository) Create(ctx context.Context, msg *model.Message) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO messages (sender_id, recipient_id, group_id, content, type, timestamp)
			VALUES (?, ?, ?, ?, ?, ?)
			RETURNING id
		`
		id, err := insertReturningID(ctx, tx, query,
			msg.SenderID, msg.RecipientID, msg.GroupID, msg.Content, msg.Type, msg.Timestamp)
		if err != nil {
			return fmt.Errorf("insert message: %w", err)
		}
		msg.ID = id
		return nil
	})
}

// List returns messages matching every supplied filter, newest first.
func (r *sqlMessageRepository) List(ctx context.Context, filter model.MessageFilter) ([]model.Message, error) {
	query := `SELECT id, sender_id, recipient_id, group_id, content, type, timestamp FROM messages`

	var where []string
	var args []any

	if filter.Type != nil {
		where = append(where, "type = ?")
		args = append(args, *filter.Type)
	}
	if filter.UserID != nil {
		where = append(where, "(sender_id = ? OR recipient_id = ?)")
		args = append(args, *filter.UserID, *filter.UserID)
	}
	if filter.GroupID != nil {
		where = append(where, "group_id = ?")
		args = append(args, *filter.GroupID)
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY timestamp DESC, id DESC"

	messages := []model.Message{}
	if err := r.db.SelectContext(ctx, &messages, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

func (r *sqlMessageRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "messages", id)
}

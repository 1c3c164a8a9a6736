package model

import "time"

const (
	MessageTypePublic  = "public"
	MessageTypePrivate = "private"
	MessageTypeGroup   = "group"
)

type Message struct {
	ID          int64     `db:"id" json:"id"`
	SenderID    int64     `db:"sender_id" json:"sender_id"`
	RecipientID *int64    `db:"recipient_id" json:"recipient_id"`
	GroupID     *int64    `db:"group_id" json:"group_id"`
	Content     string    `db:"content" json:"content"`
	Type        string    `db:"type" json:"type"`
	Timestamp   time.Time `db:"timestamp" json:"timestamp"`
}

type MessageInput struct {
	Content     string `json:"content" validate:"required"`
	Type        string `json:"type" validate:"omitempty,oneof=public private group"`
	RecipientID *int64 `json:"recipient_id,omitempty"`
	GroupID     *int64 `json:"group_id,omitempty"`
}

// MessageFilter narrows a listing; every non-nil field must match.
type MessageFilter struct {
	Type    *string `validate:"omitempty,oneof=public private group"`
	UserID  *int64
	GroupID *int64
}

package model

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

type User struct {
	ID       int64    `db:"id" json:"id"`
	Name     string   `db:"name" json:"name"`
	Email    string   `db:"email" json:"email"`
	Avatar   *string  `db:"avatar" json:"avatar"`
	Settings Settings `db:"settings" json:"settings"`
}

// Settings is a free-form preferences blob persisted as JSON text.
type Settings map[string]any

func (s Settings) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *Settings) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("settings: unsupported column type %T", src)
	}

	if len(raw) == 0 {
		*s = nil
		return nil
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return errors.Join(errors.New("settings: invalid json"), err)
	}
	*s = m
	return nil
}

type CreateUserInput struct {
	Name     string         `json:"name" validate:"required"`
	Email    string         `json:"email" validate:"required,email"`
	Avatar   *string        `json:"avatar,omitempty"`
	Settings map[string]any `json:"settings,omitempty"`
}

// UpdateUserInput is a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	Name     *string        `json:"name,omitempty" validate:"omitempty,min=1"`
	Email    *string        `json:"email,omitempty" validate:"omitempty,email"`
	Avatar   *string        `json:"avatar,omitempty"`
	Settings map[string]any `json:"settings,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (in UpdateUserInput) IsEmpty() bool {
	return in.Name == nil && in.Email == nil && in.Avatar == nil && in.Settings == nil
}

type AvatarUpload struct {
	UploadURL     string `json:"upload_url"`
	FinalImageURL string `json:"final_image_url"`
}

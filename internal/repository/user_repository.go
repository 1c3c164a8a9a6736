package repository

import (
	"context"
	"fmt"
	"strings"

	"studyplanner/internal/model"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, id int64, patch model.UpdateUserInput) (*model.User, error)
	GetSettings(ctx context.Context, id int64) (model.Settings, error)
	UpdateSettings(ctx context.Context, id int64, settings model.Settings) (model.Settings, error)
}

type sqlUserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &sqlUserRepository{db: db}
}

const userColumns = `id, name, email, avatar, settings`

func (r *sqlUserRepository) List(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *sqlUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return findUser(ctx, r.db, id)
}

func findUser(ctx context.Context, q sqlx.ExtContext, id int64) (*model.User, error) {
	var user model.User
	query := q.Rebind(`SELECT ` + userColumns + ` FROM users WHERE id = ?`)
	if err := sqlx.GetContext(ctx, q, &user, query, id); err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *sqlUserRepository) Create(ctx context.Context, user *model.User) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `INSERT INTO users (name, email, avatar, settings) VALUES (?, ?, ?, ?) RETURNING id`
		id, err := insertReturningID(ctx, tx, query, user.Name, user.Email, user.Avatar, user.Settings)
		if err != nil {
			return err
		}
		user.ID = id
		return nil
	})
}

func (r *sqlUserRepository) Update(ctx context.Context, id int64, patch model.UpdateUserInput) (*model.User, error) {
	var setClauses []string
	var args []any

	if patch.Name != nil {
		setClauses = append(setClauses, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Email != nil {
		setClauses = append(setClauses, "email = ?")
		args = append(args, *patch.Email)
	}
	if patch.Avatar != nil {
		setClauses = append(setClauses, "avatar = ?")
		args = append(args, *patch.Avatar)
	}
	if patch.Settings != nil {
		setClauses = append(setClauses, "settings = ?")
		args = append(args, model.Settings(patch.Settings))
	}

	var updated *model.User
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if len(setClauses) > 0 {
			query := fmt.Sprintf("UPDATE users SET %s WHERE id = ?", strings.Join(setClauses, ", "))
			res, err := tx.ExecContext(ctx, tx.Rebind(query), append(args, id)...)
			if err != nil {
				return translateError(err)
			}
			if n, err := res.RowsAffected(); err != nil {
				return err
			} else if n == 0 {
				return ErrNotFound
			}
		}

		user, err := findUser(ctx, tx, id)
		if err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *sqlUserRepository) GetSettings(ctx context.Context, id int64) (model.Settings, error) {
	var settings model.Settings
	query := r.db.Rebind(`SELECT settings FROM users WHERE id = ?`)
	if err := r.db.GetContext(ctx, &settings, query, id); err != nil {
		return nil, translateError(err)
	}
	return settings, nil
}

func (r *sqlUserRepository) UpdateSettings(ctx context.Context, id int64, settings model.Settings) (model.Settings, error) {
	var stored model.Settings
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, tx.Rebind(`UPDATE users SET settings = ? WHERE id = ?`), settings, id)
		if err != nil {
			return translateError(err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return ErrNotFound
		}

		return tx.GetContext(ctx, &stored, tx.Rebind(`SELECT settings FROM users WHERE id = ?`), id)
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

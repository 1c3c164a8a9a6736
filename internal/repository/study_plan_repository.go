package repository

import (
	"context"
	"fmt"

	"studyplanner/internal/model"

	"github.com/jmoiron/sqlx"
)

type StudyPlanRepository interface {
	Create(ctx context.Context, plan *model.StudyPlan) error
	List(ctx context.Context, skip, limit int) ([]model.StudyPlan, error)
	FindByID(ctx context.Context, id int64) (*model.StudyPlan, error)
	Update(ctx context.Context, plan *model.StudyPlan) error
	Delete(ctx context.Context, id int64) error
}

type sqlStudyPlanRepository struct {
	db *sqlx.DB
}

func NewStudyPlanRepository(db *sqlx.DB) StudyPlanRepository {
	return &sqlStudyPlanRepository{db: db}
}

func (r *sqlStudyPlanRepository) Create(ctx context.Context, plan *model.StudyPlan) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO study_plans (subject, exam_date, description, created_at)
			VALUES (?, ?, ?, ?)
			RETURNING id
		`
		id, err := insertReturningID(ctx, tx, query, plan.Subject, plan.ExamDate, plan.Description, plan.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert study plan: %w", err)
		}
		plan.ID = id
		return nil
	})
}

func (r *sqlStudyPlanRepository) List(ctx context.Context, skip, limit int) ([]model.StudyPlan, error) {
	plans := []model.StudyPlan{}
	query := r.db.Rebind(`
		SELECT id, subject, exam_date, description, created_at, updated_at
		FROM study_plans
		ORDER BY id
		LIMIT ? OFFSET ?
	`)
	if err := r.db.SelectContext(ctx, &plans, query, limit, skip); err != nil {
		return nil, fmt.Errorf("list study plans: %w", err)
	}
	return plans, nil
}

func (r *sqlStudyPlanRepository) FindByID(ctx context.Context, id int64) (*model.StudyPlan, error) {
	var plan model.StudyPlan
	query := r.db.Rebind(`SELECT id, subject, exam_date, description, created_at, updated_at FROM study_plans WHERE id = ?`)
	if err := r.db.GetContext(ctx, &plan, query, id); err != nil {
		return nil, translateError(err)
	}
	return &plan, nil
}

// Update replaces subject, exam_date, description and updated_at of an existing plan and
// reloads created_at from the store.
func (r *sqlStudyPlanRepository) Update(ctx context.Context, plan *model.StudyPlan) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := tx.Rebind(`
			UPDATE study_plans
			SET subject = ?, exam_date = ?, description = ?, updated_at = ?
			WHERE id = ?
		`)
		res, err := tx.ExecContext(ctx, query, plan.Subject, plan.ExamDate, plan.Description, plan.UpdatedAt, plan.ID)
		if err != nil {
			return fmt.Errorf("update study plan: %w", translateError(err))
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return ErrNotFound
		}

		return tx.GetContext(ctx, &plan.CreatedAt, tx.Rebind(`SELECT created_at FROM study_plans WHERE id = ?`), plan.ID)
	})
}

func (r *sqlStudyPlanRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "study_plans", id)
}

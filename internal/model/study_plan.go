package model

import "time"

type StudyPlan struct {
	ID          int64      `db:"id" json:"id"`
	Subject     string     `db:"subject" json:"subject"`
	ExamDate    string     `db:"exam_date" json:"exam_date"`
	Description *string    `db:"description" json:"description"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at"`
}

// StudyPlanInput is used for both create and full-replace update.
type StudyPlanInput struct {
	Subject     string  `json:"subject" validate:"required"`
	ExamDate    string  `json:"exam_date" validate:"required,datetime=2006-01-02"`
	Description *string `json:"description,omitempty"`
}

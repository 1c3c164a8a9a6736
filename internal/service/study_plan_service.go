package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studyplanner/internal/model"
	"studyplanner/internal/repository"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultListLimit = 100
)

type StudyPlanService interface {
	CreateStudyPlan(ctx context.Context, input model.StudyPlanInput) (*model.StudyPlan, error)
	ListStudyPlans(ctx context.Context, skip, limit int) ([]model.StudyPlan, error)
	GetStudyPlan(ctx context.Context, id int64) (*model.StudyPlan, error)
	UpdateStudyPlan(ctx context.Context, id int64, input model.StudyPlanInput) (*model.StudyPlan, error)
	DeleteStudyPlan(ctx context.Context, id int64) error
}

type studyPlanService struct {
	planRepo repository.StudyPlanRepository
	maxLimit int
	validate *validator.Validate
	now      func() time.Time
}

// NewStudyPlanService builds the study plan service. Listings never return more than
// maxLimit rows.
func NewStudyPlanService(planRepo repository.StudyPlanRepository, maxLimit int, opts ...Option) StudyPlanService {
	o := buildOptions(opts)
	if maxLimit <= 0 {
		maxLimit = DefaultListLimit
	}
	return &studyPlanService{
		planRepo: planRepo,
		maxLimit: maxLimit,
		validate: newValidator(),
		now:      o.now,
	}
}

func (s *studyPlanService) CreateStudyPlan(ctx context.Context, input model.StudyPlanInput) (*model.StudyPlan, error) {
	if err := validateStruct(s.validate, &input); err != nil {
		return nil, err
	}

	plan := &model.StudyPlan{
		Subject:     input.Subject,
		ExamDate:    input.ExamDate,
		Description: input.Description,
		CreatedAt:   s.now(),
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create study plan: %w", err)
	}

	return plan, nil
}

// ListStudyPlans pages through plans. limit above the configured maximum is clamped.
func (s *studyPlanService) ListStudyPlans(ctx context.Context, skip, limit int) ([]model.StudyPlan, error) {
	if skip < 0 {
		return nil, newValidationError("skip must not be negative")
	}
	if limit < 0 {
		return nil, newValidationError("limit must not be negative")
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	return s.planRepo.List(ctx, skip, limit)
}

func (s *studyPlanService) GetStudyPlan(ctx context.Context, id int64) (*model.StudyPlan, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, studyPlanError(err)
	}
	return plan, nil
}

func (s *studyPlanService) UpdateStudyPlan(ctx context.Context, id int64, input model.StudyPlanInput) (*model.StudyPlan, error) {
	if err := validateStruct(s.validate, &input); err != nil {
		return nil, err
	}

	updatedAt := s.now()
	plan := &model.StudyPlan{
		ID:          id,
		Subject:     input.Subject,
		ExamDate:    input.ExamDate,
		Description: input.Description,
		UpdatedAt:   &updatedAt,
	}

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, studyPlanError(err)
	}

	return plan, nil
}

func (s *studyPlanService) DeleteStudyPlan(ctx context.Context, id int64) error {
	if err := s.planRepo.Delete(ctx, id); err != nil {
		return studyPlanError(err)
	}
	return nil
}

func studyPlanError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrStudyPlanNotFound
	}
	return err
}

package service_test

import (
	"context"
	"testing"
	"time"

	"studyplanner/internal/model"
	"studyplanner/internal/repository"
	"studyplanner/internal/service"
	"studyplanner/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStudyPlanService(t *testing.T, maxLimit int) service.StudyPlanService {
	t.Helper()
	clock := testutil.NewClock(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC))
	return service.NewStudyPlanService(repository.NewStudyPlanRepository(testutil.NewSQLiteDB(t)), maxLimit, service.WithClock(clock.Now))
}

func TestStudyPlanService_CreateThenUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newStudyPlanService(t, 0)

	desc := "chapters 1-4"
	created, err := svc.CreateStudyPlan(ctx, model.StudyPlanInput{Subject: "Math", ExamDate: "2024-06-01", Description: &desc})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Nil(t, created.UpdatedAt)
	assert.Equal(t, time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), created.CreatedAt)

	updated, err := svc.UpdateStudyPlan(ctx, created.ID, model.StudyPlanInput{Subject: "Math II", ExamDate: "2024-06-02"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Math II", updated.Subject)
	assert.Nil(t, updated.Description)
	require.NotNil(t, updated.UpdatedAt)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	fetched, err := svc.GetStudyPlan(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Math II", fetched.Subject)
}

func TestStudyPlanService_ValidationFailures(t *testing.T) {
	ctx := context.Background()
	svc := newStudyPlanService(t, 0)

	cases := []struct {
		name  string
		input model.StudyPlanInput
		field string
	}{
		{"missing subject", model.StudyPlanInput{ExamDate: "2024-06-01"}, "subject is required"},
		{"missing exam date", model.StudyPlanInput{Subject: "Math"}, "exam_date is required"},
		{"malformed exam date", model.StudyPlanInput{Subject: "Math", ExamDate: "June 1st"}, "exam_date must be a date in YYYY-MM-DD format"},
		{"impossible exam date", model.StudyPlanInput{Subject: "Math", ExamDate: "2024-13-45"}, "exam_date must be a date in YYYY-MM-DD format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateStudyPlan(ctx, tc.input)
			var verr *service.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tc.field)
		})
	}

	plans, err := svc.ListStudyPlans(ctx, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestStudyPlanService_ListClampsAndRejectsNegatives(t *testing.T) {
	ctx := context.Background()
	svc := newStudyPlanService(t, 2)

	for _, subject := range []string{"A", "B", "C"} {
		_, err := svc.CreateStudyPlan(ctx, model.StudyPlanInput{Subject: subject, ExamDate: "2024-06-01"})
		require.NoError(t, err)
	}

	plans, err := svc.ListStudyPlans(ctx, 0, 50)
	require.NoError(t, err)
	assert.Len(t, plans, 2)

	plans, err = svc.ListStudyPlans(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "C", plans[0].Subject)

	plans, err = svc.ListStudyPlans(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, plans)

	var verr *service.ValidationError
	_, err = svc.ListStudyPlans(ctx, -1, 10)
	require.ErrorAs(t, err, &verr)
	_, err = svc.ListStudyPlans(ctx, 0, -5)
	require.ErrorAs(t, err, &verr)
}

func TestStudyPlanService_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newStudyPlanService(t, 0)

	_, err := svc.GetStudyPlan(ctx, 12)
	require.ErrorIs(t, err, service.ErrStudyPlanNotFound)

	_, err = svc.UpdateStudyPlan(ctx, 12, model.StudyPlanInput{Subject: "Math", ExamDate: "2024-06-01"})
	require.ErrorIs(t, err, service.ErrStudyPlanNotFound)

	require.ErrorIs(t, svc.DeleteStudyPlan(ctx, 12), service.ErrStudyPlanNotFound)
}

func TestStudyPlanService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newStudyPlanService(t, 0)

	plan, err := svc.CreateStudyPlan(ctx, model.StudyPlanInput{Subject: "History", ExamDate: "2024-05-20"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStudyPlan(ctx, plan.ID))
	_, err = svc.GetStudyPlan(ctx, plan.ID)
	require.ErrorIs(t, err, service.ErrStudyPlanNotFound)
}

package service_test

import (
	"context"
	"testing"

	"studyplanner/internal/model"
	"studyplanner/internal/repository"
	"studyplanner/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_CreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	svc := service.NewSessionService(repository.NewMemorySessionRepository())

	input := model.SessionInput{Subject: "Math", Date: "2024-01-01", Duration: 60}

	first, err := svc.CreateSession(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "Math", first.Subject)
	assert.Equal(t, 60, first.Duration)

	second, err := svc.CreateSession(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	sessions, err := svc.ListSessions(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

func TestSessionService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := service.NewSessionService(repository.NewMemorySessionRepository())

	var verr *service.ValidationError
	_, err := svc.CreateSession(ctx, model.SessionInput{Subject: "Math", Date: "2024-01-01", Duration: -5})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "duration must be greater than 0")

	_, err = svc.CreateSession(ctx, model.SessionInput{Duration: 30})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "subject is required")
	assert.Contains(t, verr.Fields, "date is required")

	sessions, err := svc.ListSessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

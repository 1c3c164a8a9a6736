package service

import (
	"context"

	"studyplanner/internal/model"
	"studyplanner/internal/repository"

	"github.com/go-playground/validator/v10"
)

type SessionService interface {
	CreateSession(ctx context.Context, input model.SessionInput) (*model.Session, error)
	ListSessions(ctx context.Context) ([]model.Session, error)
}

type sessionService struct {
	sessionRepo repository.SessionRepository
	validate    *validator.Validate
}

func NewSessionService(sessionRepo repository.SessionRepository) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		validate:    newValidator(),
	}
}

func (s *sessionService) CreateSession(ctx context.Context, input model.SessionInput) (*model.Session, error) {
	if err := validateStruct(s.validate, &input); err != nil {
		return nil, err
	}

	session := &model.Session{
		Subject:  input.Subject,
		Date:     input.Date,
		Duration: input.Duration,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *sessionService) ListSessions(ctx context.Context) ([]model.Session, error) {
	return s.sessionRepo.List(ctx)
}

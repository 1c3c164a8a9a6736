package service

import (
	"context"
	"errors"
	"time"

	"studyplanner/internal/actor"
	"studyplanner/internal/model"
	"studyplanner/internal/repository"

	"github.com/go-playground/validator/v10"
)

type MessageService interface {
	SendMessage(ctx context.Context, input model.MessageInput) (*model.Message, error)
	ListMessages(ctx context.Context, filter model.MessageFilter) ([]model.Message, error)
	DeleteMessage(ctx context.Context, id int64) error
}

type messageService struct {
	messageRepo repository.MessageRepository
	validate    *validator.Validate
	now         func() time.Time
}

func NewMessageService(messageRepo repository.MessageRepository, opts ...Option) MessageService {
	o := buildOptions(opts)
	return &messageService{
		messageRepo: messageRepo,
		validate:    newValidator(),
		now:         o.now,
	}
}

// SendMessage stores a message from the actor carried by ctx.
func (s *messageService) SendMessage(ctx context.Context, input model.MessageInput) (*model.Message, error) {
	if err := validateStruct(s.validate, &input); err != nil {
		return nil, err
	}

	senderID, err := actor.ID(ctx)
	if err != nil {
		return nil, err
	}

	msgType := input.Type
	if msgType == "" {
		msgType = model.MessageTypePublic
	}

	msg := &model.Message{
		SenderID:    senderID,
		RecipientID: input.RecipientID,
		GroupID:     input.GroupID,
		Content:     input.Content,
		Type:        msgType,
		Timestamp:   s.now(),
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}

	return msg, nil
}

func (s *messageService) ListMessages(ctx context.Context, filter model.MessageFilter) ([]model.Message, error) {
	if err := validateStruct(s.validate, &filter); err != nil {
		return nil, err
	}
	return s.messageRepo.List(ctx, filter)
}

func (s *messageService) DeleteMessage(ctx context.Context, id int64) error {
	if err := s.messageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMessageNotFound
		}
		return err
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"studyplanner/internal/model"
	"studyplanner/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AvatarPresigner hands out direct-upload URLs for avatar images.
type AvatarPresigner interface {
	PresignUpload(ctx context.Context, objectKey string) (uploadURL, finalURL string, err error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	CreateUser(ctx context.Context, input model.CreateUserInput) (*model.User, error)
	UpdateUser(ctx context.Context, id int64, input model.UpdateUserInput) (*model.User, error)
	GetUserSettings(ctx context.Context, id int64) (model.Settings, error)
	UpdateUserSettings(ctx context.Context, id int64, settings model.Settings) (model.Settings, error)
	CreateAvatarUploadURL(ctx context.Context, id int64) (*model.AvatarUpload, error)
}

type userService struct {
	userRepo  repository.UserRepository
	presigner AvatarPresigner
	validate  *validator.Validate
}

// NewUserService builds the user service. presigner may be nil, which disables avatar uploads.
func NewUserService(userRepo repository.UserRepository, presigner AvatarPresigner) UserService {
	return &userService{
		userRepo:  userRepo,
		presigner: presigner,
		validate:  newValidator(),
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, userError(err)
	}
	return user, nil
}

// CreateUser always lets the store assign the id.
func (s *userService) CreateUser(ctx context.Context, input model.CreateUserInput) (*model.User, error) {
	if err := validateStruct(s.validate, &input); err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     input.Name,
		Email:    input.Email,
		Avatar:   input.Avatar,
		Settings: input.Settings,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, userError(err)
	}

	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, input model.UpdateUserInput) (*model.User, error) {
	if err := validateStruct(s.validate, &input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.Update(ctx, id, input)
	if err != nil {
		return nil, userError(err)
	}
	return user, nil
}

func (s *userService) GetUserSettings(ctx context.Context, id int64) (model.Settings, error) {
	settings, err := s.userRepo.GetSettings(ctx, id)
	if err != nil {
		return nil, userError(err)
	}
	if settings == nil {
		settings = model.Settings{}
	}
	return settings, nil
}

func (s *userService) UpdateUserSettings(ctx context.Context, id int64, settings model.Settings) (model.Settings, error) {
	if settings == nil {
		settings = model.Settings{}
	}

	stored, err := s.userRepo.UpdateSettings(ctx, id, settings)
	if err != nil {
		return nil, userError(err)
	}
	return stored, nil
}

func (s *userService) CreateAvatarUploadURL(ctx context.Context, id int64) (*model.AvatarUpload, error) {
	if s.presigner == nil {
		return nil, ErrAvatarUploadsDisabled
	}

	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return nil, userError(err)
	}

	objectKey := fmt.Sprintf("user-avatars/%d/%s.jpg", id, uuid.New().String())
	uploadURL, finalURL, err := s.presigner.PresignUpload(ctx, objectKey)
	if err != nil {
		return nil, fmt.Errorf("presign avatar upload: %w", err)
	}

	return &model.AvatarUpload{UploadURL: uploadURL, FinalImageURL: finalURL}, nil
}

func userError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrEmailTaken
	default:
		return err
	}
}

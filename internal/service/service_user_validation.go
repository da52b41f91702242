package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-posts/internal/validators"
	"github.com/MKhiriev/go-users-posts/models"
)

// UserValidationService is a UserService decorator that rejects malformed
// input with ErrInvalidDataProvided before it reaches the inner service.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserPostValidator(),
	}
}

func (v *UserValidationService) GetUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.GetUsers(ctx)
}

func (v *UserValidationService) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	if err := v.validate(ctx, models.User{ID: id}, validators.FieldID); err != nil {
		return models.User{}, err
	}

	return v.inner.GetUserByID(ctx, id)
}

func (v *UserValidationService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validate(ctx, user, validators.FieldName); err != nil {
		return models.User{}, err
	}

	return v.inner.CreateUser(ctx, user)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validate(ctx, user, validators.FieldID, validators.FieldName); err != nil {
		return models.User{}, err
	}

	return v.inner.UpdateUser(ctx, user)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	if err := v.validate(ctx, models.User{ID: id}, validators.FieldID); err != nil {
		return models.User{}, err
	}

	return v.inner.DeleteUser(ctx, id)
}

func (v *UserValidationService) GetUserPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	if err := v.validate(ctx, models.User{ID: userID}, validators.FieldID); err != nil {
		return nil, err
	}

	return v.inner.GetUserPosts(ctx, userID)
}

func (v *UserValidationService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if err := v.validate(ctx, post, validators.FieldText, validators.FieldUserID); err != nil {
		return models.Post{}, err
	}

	return v.inner.CreatePost(ctx, post)
}

func (v *UserValidationService) Wrap(wrapper UserService) UserService {
	v.inner = wrapper
	return v
}

func (v *UserValidationService) validate(ctx context.Context, obj any, fields ...string) error {
	if err := v.validator.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

package service

import (
	"context"

	"github.com/MKhiriev/go-users-posts/internal/logger"
	"github.com/MKhiriev/go-users-posts/internal/store"
	"github.com/MKhiriev/go-users-posts/models"
)

type userService struct {
	userRepository store.UserRepository
	postRepository store.PostRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, postRepository store.PostRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		postRepository: postRepository,
		logger:         logger,
	}
}

func (u *userService) GetUsers(ctx context.Context) ([]models.User, error) {
	return u.userRepository.FindAll(ctx)
}

func (u *userService) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return u.userRepository.FindByID(ctx, id)
}

func (u *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	// id is always assigned by storage
	user.ID = 0
	return u.userRepository.Create(ctx, user)
}

func (u *userService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := u.userRepository.Update(ctx, user); err != nil {
		return models.User{}, err
	}

	return u.userRepository.FindByID(ctx, user.ID)
}

func (u *userService) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	user, err := u.userRepository.FindByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if err = u.userRepository.Delete(ctx, id); err != nil {
		return models.User{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*userService.DeleteUser").
		Int64("user_id", id).
		Msg("user deleted")

	return user, nil
}

func (u *userService) GetUserPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	return u.postRepository.FindByUserID(ctx, userID)
}

func (u *userService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	post.ID = 0
	return u.postRepository.Create(ctx, post)
}

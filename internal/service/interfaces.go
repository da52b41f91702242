package service

import (
	"context"

	"github.com/MKhiriev/go-users-posts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=UserServiceWrapper

// UserService is the model layer behind the users router. Lookups of a
// missing user fail with store.ErrUserNotFound.
type UserService interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateUser renames the user and returns the record as stored afterwards.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	// DeleteUser removes the user and returns the record as it was before.
	DeleteUser(ctx context.Context, id int64) (models.User, error)

	GetUserPosts(ctx context.Context, userID int64) ([]models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
}

// AppInfoService exposes build and liveness information about the server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Ping(ctx context.Context) error
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}

// Pinger reports whether a backing resource is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

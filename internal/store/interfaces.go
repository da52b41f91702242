package store

import (
	"context"

	"github.com/MKhiriev/go-users-posts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists users.
type UserRepository interface {
	// FindAll returns every user ordered by id. The slice is empty, never
	// nil, when there are no users.
	FindAll(ctx context.Context) ([]models.User, error)
	// FindByID returns [ErrUserNotFound] when no user has the given id.
	FindByID(ctx context.Context, id int64) (models.User, error)
	// Create inserts user and returns it with the assigned id.
	Create(ctx context.Context, user models.User) (models.User, error)
	// Update renames the user identified by user.ID.
	Update(ctx context.Context, user models.User) error
	// Delete removes the user and, through the foreign key, their posts.
	Delete(ctx context.Context, id int64) error
}

// PostRepository persists posts.
type PostRepository interface {
	// FindByUserID returns the posts of a user ordered by id.
	FindByUserID(ctx context.Context, userID int64) ([]models.Post, error)
	// Create inserts post and returns it with the assigned id.
	Create(ctx context.Context, post models.Post) (models.Post, error)
}

// ErrorClassificator translates driver specific errors into the sentinel
// errors of this package.
type ErrorClassificator interface {
	// Classify returns a domain sentinel (possibly wrapping err) or err
	// wrapped with [ErrExecutingQuery] when the error has no domain meaning.
	Classify(err error) error
}

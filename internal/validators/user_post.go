package validators

import (
	"context"

	"github.com/MKhiriev/go-users-posts/models"
)

// Field name constants used to restrict Validate to a subset of fields.
const (
	// FieldID targets the server-assigned identifier of a user or post.
	FieldID = "id"

	// FieldName targets the display name of a user.
	FieldName = "name"

	// FieldText targets the body of a post.
	FieldText = "text"

	// FieldUserID targets the owner of a post.
	FieldUserID = "user_id"
)

// UserPostValidator implements Validator for users, posts and the request
// bodies that create them.
type UserPostValidator struct{}

// NewUserPostValidator returns a ready to use Validator.
func NewUserPostValidator() Validator {
	return &UserPostValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms of
// models.User, models.Post, models.UserRequest and models.PostRequest are
// accepted; anything else yields ErrUnsupportedType.
//
// When fields is empty the content fields are checked (name for users, text
// for posts). Identifiers are only checked when named explicitly, so the same
// validator works for records that have not been persisted yet.
func (v *UserPostValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(ctx, *value, fields...)
	case models.Post:
		return v.validatePost(ctx, value, fields...)
	case *models.Post:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validatePost(ctx, *value, fields...)
	case models.UserRequest:
		return v.validateUser(ctx, models.User{Name: value.Name}, FieldName)
	case *models.UserRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(ctx, models.User{Name: value.Name}, FieldName)
	case models.PostRequest:
		return v.validatePost(ctx, models.Post{Text: value.Text}, FieldText)
	case *models.PostRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validatePost(ctx, models.Post{Text: value.Text}, FieldText)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserPostValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if user.ID <= 0 {
				return ErrInvalidID
			}
		case FieldName:
			if user.Name == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserPostValidator) validatePost(_ context.Context, post models.Post, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if post.ID <= 0 {
				return ErrInvalidID
			}
		case FieldText:
			if post.Text == "" {
				return ErrEmptyText
			}
		case FieldUserID:
			if post.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

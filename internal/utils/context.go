// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-users-posts/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserCtxKey holds the models.User loaded by the user id guard.
	UserCtxKey = contextKey("user")

	// NameCtxKey holds the validated user name from a request body.
	NameCtxKey = contextKey("name")

	// TextCtxKey holds the validated post text from a request body.
	TextCtxKey = contextKey("text")
)

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the user stored by WithUser.
//
// Returns ok == false when the value is missing or has an unexpected type.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// WithName returns a copy of ctx carrying a validated user name.
func WithName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, NameCtxKey, name)
}

// GetNameFromContext retrieves the name stored by WithName.
func GetNameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(NameCtxKey).(string)
	return name, ok
}

// WithText returns a copy of ctx carrying a validated post text.
func WithText(ctx context.Context, text string) context.Context {
	return context.WithValue(ctx, TextCtxKey, text)
}

// GetTextFromContext retrieves the text stored by WithText.
func GetTextFromContext(ctx context.Context) (string, bool) {
	text, ok := ctx.Value(TextCtxKey).(string)
	return text, ok
}

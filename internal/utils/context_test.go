// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-users-posts/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestContextKeys_AreDistinct(t *testing.T) {
	if UserCtxKey == NameCtxKey || NameCtxKey == TextCtxKey || UserCtxKey == TextCtxKey {
		t.Fatal("context keys must be distinct")
	}
}

func TestGetUserFromContext_Success(t *testing.T) {
	ctx := WithUser(context.Background(), models.User{ID: 42, Name: "Ada"})

	user, ok := GetUserFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if user.ID != 42 || user.Name != "Ada" {
		t.Errorf("expected {42 Ada}, got %+v", user)
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	user, ok := GetUserFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if user != (models.User{}) {
		t.Errorf("expected zero user, got %+v", user)
	}
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, &models.User{ID: 1})

	if _, ok := GetUserFromContext(ctx); ok {
		t.Fatal("expected ok=false for pointer value, got true")
	}
}

func TestGetUserFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, models.User{ID: 99})

	if _, ok := GetUserFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}

func TestGetNameFromContext(t *testing.T) {
	ctx := WithName(context.Background(), "Grace")

	name, ok := GetNameFromContext(ctx)
	if !ok || name != "Grace" {
		t.Errorf("expected (Grace, true), got (%q, %v)", name, ok)
	}

	// a name is not a text
	if _, ok := GetTextFromContext(ctx); ok {
		t.Error("expected no text in context")
	}
}

func TestGetTextFromContext(t *testing.T) {
	ctx := WithText(context.Background(), "hello")

	text, ok := GetTextFromContext(ctx)
	if !ok || text != "hello" {
		t.Errorf("expected (hello, true), got (%q, %v)", text, ok)
	}

	if _, ok := GetNameFromContext(context.Background()); ok {
		t.Error("expected ok=false on empty context")
	}
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-users-posts/internal/logger"
	"github.com/MKhiriev/go-users-posts/internal/mock"
	"github.com/MKhiriev/go-users-posts/internal/store"
	"github.com/MKhiriev/go-users-posts/models"
)

func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (UserService, *mock.MockUserRepository, *mock.MockPostRepository) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	posts := mock.NewMockPostRepository(ctrl)

	return NewUserService(users, posts, logger.Nop()), users, posts
}

// ── Users ────────────────────────────────────────────────────────────────────

func TestUserService_GetUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	want := []models.User{{ID: 1, Name: "Ada"}}
	users.EXPECT().FindAll(ctx).Return(want, nil)

	got, err := svc.GetUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserService_GetUserByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().FindByID(ctx, int64(9)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetUserByID(ctx, 9)

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_CreateUser_IgnoresClientID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().Create(ctx, models.User{Name: "Ada"}).Return(models.User{ID: 1, Name: "Ada"}, nil)

	created, err := svc.CreateUser(ctx, models.User{ID: 77, Name: "Ada"})

	require.NoError(t, err)
	assert.Equal(t, models.User{ID: 1, Name: "Ada"}, created)
}

func TestUserService_UpdateUser_RefetchesAfterUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		users.EXPECT().Update(ctx, models.User{ID: 1, Name: "Grace"}).Return(nil),
		users.EXPECT().FindByID(ctx, int64(1)).Return(models.User{ID: 1, Name: "Grace"}, nil),
	)

	updated, err := svc.UpdateUser(ctx, models.User{ID: 1, Name: "Grace"})

	require.NoError(t, err)
	assert.Equal(t, models.User{ID: 1, Name: "Grace"}, updated)
}

func TestUserService_UpdateUser_NotFound_NoRefetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().Update(ctx, gomock.Any()).Return(store.ErrUserNotFound)
	users.EXPECT().FindByID(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateUser(ctx, models.User{ID: 5, Name: "Grace"})

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_DeleteUser_ReturnsPriorRepresentation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	prior := models.User{ID: 3, Name: "Linus"}
	gomock.InOrder(
		users.EXPECT().FindByID(ctx, int64(3)).Return(prior, nil),
		users.EXPECT().Delete(ctx, int64(3)).Return(nil),
	)

	deleted, err := svc.DeleteUser(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, prior, deleted)
}

func TestUserService_DeleteUser_MissingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().FindByID(ctx, int64(3)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.DeleteUser(ctx, 3)

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_DeleteUser_DeleteFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()
	dbErr := errors.New("db down")

	users.EXPECT().FindByID(ctx, int64(3)).Return(models.User{ID: 3, Name: "Linus"}, nil)
	users.EXPECT().Delete(ctx, int64(3)).Return(dbErr)

	deleted, err := svc.DeleteUser(ctx, 3)

	assert.ErrorIs(t, err, dbErr)
	assert.Zero(t, deleted)
}

// ── Posts ────────────────────────────────────────────────────────────────────

func TestUserService_GetUserPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, posts := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	want := []models.Post{{ID: 1, Text: "hello", UserID: 2}}
	posts.EXPECT().FindByUserID(ctx, int64(2)).Return(want, nil)

	got, err := svc.GetUserPosts(ctx, 2)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserService_CreatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, posts := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	posts.EXPECT().
		Create(ctx, models.Post{Text: "hello", UserID: 2}).
		Return(models.Post{ID: 10, Text: "hello", UserID: 2}, nil)

	created, err := svc.CreatePost(ctx, models.Post{ID: 4, Text: "hello", UserID: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, int64(2), created.UserID)
}

func TestUserService_CreatePost_UserMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, posts := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	posts.EXPECT().Create(ctx, gomock.Any()).Return(models.Post{}, store.ErrUserNotFound)

	_, err := svc.CreatePost(ctx, models.Post{Text: "hello", UserID: 404})

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

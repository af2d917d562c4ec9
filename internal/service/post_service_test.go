package service

import (
	"context"
	"testing"

	"pamps/internal/models"
	"pamps/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPostService(t *testing.T) (*PostService, *UserService, *gorm.DB) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	return NewPostService(postRepo, userRepo), NewUserService(userRepo), db
}

func createTestUser(t *testing.T, users *UserService, username string) *models.User {
	user, err := users.CreateUser(context.Background(), CreateUserInput{
		Email:    username + "@example.com",
		Username: username,
		Password: "secret123",
	})
	require.NoError(t, err)
	return user
}

func TestPostService_CreatePost(t *testing.T) {
	posts, users, _ := newPostService(t)
	ctx := context.Background()
	user := createTestUser(t, users, "alice")

	t.Run("Root post", func(t *testing.T) {
		post, err := posts.CreatePost(ctx, CreatePostInput{UserID: user.ID, Text: "hello world"})
		require.NoError(t, err)
		assert.NotZero(t, post.ID)
		assert.Nil(t, post.ParentID)
		assert.True(t, post.IsRoot())
	})

	t.Run("Reply", func(t *testing.T) {
		root, err := posts.CreatePost(ctx, CreatePostInput{UserID: user.ID, Text: "root"})
		require.NoError(t, err)

		reply, err := posts.CreatePost(ctx, CreatePostInput{UserID: user.ID, Text: "reply", ParentID: &root.ID})
		require.NoError(t, err)
		require.NotNil(t, reply.ParentID)
		assert.Equal(t, root.ID, *reply.ParentID)
		assert.False(t, reply.IsRoot())
	})

	t.Run("Empty text", func(t *testing.T) {
		_, err := posts.CreatePost(ctx, CreatePostInput{UserID: user.ID})
		require.Error(t, err)
		assert.Equal(t, models.CodeValidation, err.(*models.AppError).Code)
	})

	t.Run("Dangling parent", func(t *testing.T) {
		missing := uint(99999)
		_, err := posts.CreatePost(ctx, CreatePostInput{UserID: user.ID, Text: "orphan", ParentID: &missing})
		require.Error(t, err)
		assert.Equal(t, models.CodeForeignKey, err.(*models.AppError).Code)
	})
}

func TestPostService_GetPost(t *testing.T) {
	posts, users, _ := newPostService(t)
	ctx := context.Background()
	alice := createTestUser(t, users, "alice")
	bob := createTestUser(t, users, "bob")

	root, err := posts.CreatePost(ctx, CreatePostInput{UserID: alice.ID, Text: "root"})
	require.NoError(t, err)
	reply1, err := posts.CreatePost(ctx, CreatePostInput{UserID: bob.ID, Text: "first reply", ParentID: &root.ID})
	require.NoError(t, err)
	reply2, err := posts.CreatePost(ctx, CreatePostInput{UserID: alice.ID, Text: "second reply", ParentID: &root.ID})
	require.NoError(t, err)

	t.Run("Root with replies", func(t *testing.T) {
		got, err := posts.GetPost(ctx, root.ID)
		require.NoError(t, err)
		require.Len(t, got.Replies, 2)
		assert.Equal(t, reply1.ID, got.Replies[0].ID)
		assert.Equal(t, reply2.ID, got.Replies[1].ID)
		// Replies come back flat, never expanded another level
		assert.Empty(t, got.Replies[0].Replies)
	})

	t.Run("Reply has no nested replies", func(t *testing.T) {
		got, err := posts.GetPost(ctx, reply1.ID)
		require.NoError(t, err)
		// Empty but present, so the detail read can render it as []
		require.NotNil(t, got.Replies)
		assert.Empty(t, got.Replies)
	})

	t.Run("Unknown ID", func(t *testing.T) {
		_, err := posts.GetPost(ctx, 99999)
		require.Error(t, err)
		assert.Equal(t, models.CodeNotFound, err.(*models.AppError).Code)
	})
}

func TestPostService_ListPosts(t *testing.T) {
	posts, users, _ := newPostService(t)
	ctx := context.Background()
	alice := createTestUser(t, users, "alice")

	first, err := posts.CreatePost(ctx, CreatePostInput{UserID: alice.ID, Text: "first"})
	require.NoError(t, err)
	second, err := posts.CreatePost(ctx, CreatePostInput{UserID: alice.ID, Text: "second"})
	require.NoError(t, err)
	_, err = posts.CreatePost(ctx, CreatePostInput{UserID: alice.ID, Text: "a reply", ParentID: &first.ID})
	require.NoError(t, err)

	list, err := posts.ListPosts(ctx)
	require.NoError(t, err)
	// Replies never appear in the root feed
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestPostService_ListPostsByUsername(t *testing.T) {
	posts, users, _ := newPostService(t)
	ctx := context.Background()
	alice := createTestUser(t, users, "alice")
	bob := createTestUser(t, users, "bob")

	root, err := posts.CreatePost(ctx, CreatePostInput{UserID: alice.ID, Text: "alice root"})
	require.NoError(t, err)
	_, err = posts.CreatePost(ctx, CreatePostInput{UserID: bob.ID, Text: "bob root"})
	require.NoError(t, err)
	_, err = posts.CreatePost(ctx, CreatePostInput{UserID: alice.ID, Text: "alice reply", ParentID: &root.ID})
	require.NoError(t, err)

	t.Run("Roots only by default", func(t *testing.T) {
		list, err := posts.ListPostsByUsername(ctx, "alice", false)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "alice root", list[0].Text)
	})

	t.Run("Including replies", func(t *testing.T) {
		list, err := posts.ListPostsByUsername(ctx, "alice", true)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "alice root", list[0].Text)
		assert.Equal(t, "alice reply", list[1].Text)
	})

	t.Run("Unknown user", func(t *testing.T) {
		_, err := posts.ListPostsByUsername(ctx, "ghost", true)
		require.Error(t, err)
		assert.Equal(t, models.CodeNotFound, err.(*models.AppError).Code)
	})
}

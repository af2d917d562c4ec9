package service

import (
	"context"

	"pamps/internal/models"
	"pamps/internal/observability"
	"pamps/internal/repository"
)

// PostService handles post creation and the three read patterns: the root
// feed, a single post with its direct replies, and the per-user feed.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// CreatePostInput carries a new post. UserID is the verified identity of the
// caller, never a client-supplied value.
type CreatePostInput struct {
	UserID   uint
	Text     string
	ParentID *uint
}

const maxPostLen = 10000

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// CreatePost validates and persists a post. A dangling ParentID fails with
// FOREIGN_KEY_VIOLATION and persists nothing; the pre-check catches it
// up front and the store's constraint backs it up under concurrency.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(in.Text) > maxPostLen {
		return nil, models.NewValidationError("Text too long (max 10000 characters)")
	}

	if in.ParentID != nil {
		exists, err := s.postRepo.ExistsByID(ctx, *in.ParentID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, models.NewForeignKeyError("parent post does not exist")
		}
	}

	post := &models.Post{
		Text:     in.Text,
		UserID:   in.UserID,
		ParentID: in.ParentID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	kind := "root"
	if !post.IsRoot() {
		kind = "reply"
	}
	observability.PostsCreated.WithLabelValues(kind).Inc()

	return post, nil
}

// ListPosts returns all root posts, ascending by creation time.
func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.ListRoots(ctx)
}

// GetPost returns the post with its direct replies attached, exactly one
// level deep: the replies themselves come back flat.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	replies, err := s.ListReplies(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	post.Replies = replies

	return post, nil
}

// ListReplies assembles the ordered direct-reply list for a post. A post
// with no replies yields an empty list, not an error.
func (s *PostService) ListReplies(ctx context.Context, postID uint) ([]models.Post, error) {
	return s.postRepo.ListReplies(ctx, postID)
}

// ListPostsByUsername returns a user's posts. With includeReplies false only
// the user's root posts are returned; with true their replies are included
// as flat items (never expanded).
func (s *PostService) ListPostsByUsername(ctx context.Context, username string, includeReplies bool) ([]models.Post, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", username)
	}

	return s.postRepo.ListByUser(ctx, user.ID, includeReplies)
}

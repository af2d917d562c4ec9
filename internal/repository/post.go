package repository

import (
	"context"
	"errors"

	"pamps/internal/models"
	"pamps/internal/observability"

	"gorm.io/gorm"
)

// postOrder is the stable ordering for every post listing: creation time
// ascending, ID as the tiebreak for timestamps that collide at the store's
// resolution.
const postOrder = "created_at ASC, id ASC"

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ListRoots(ctx context.Context) ([]models.Post, error)
	ListByUser(ctx context.Context, userID uint, includeReplies bool) ([]models.Post, error)
	ListReplies(ctx context.Context, parentID uint) ([]models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	defer observability.TrackQuery("create", "posts")()
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		if isForeignKeyError(err) {
			return models.NewForeignKeyError("referenced user or parent post does not exist")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	defer observability.TrackQuery("get_by_id", "posts")()
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	defer observability.TrackQuery("exists_by_id", "posts")()
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *postRepository) ListRoots(ctx context.Context) ([]models.Post, error) {
	defer observability.TrackQuery("list_roots", "posts")()
	// Find leaves a nil slice on zero rows; lists must render as [].
	posts := make([]models.Post, 0)
	err := r.db.WithContext(ctx).
		Where("parent_id IS NULL").
		Order(postOrder).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID uint, includeReplies bool) ([]models.Post, error) {
	defer observability.TrackQuery("list_by_user", "posts")()
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if !includeReplies {
		query = query.Where("parent_id IS NULL")
	}

	posts := make([]models.Post, 0)
	if err := query.Order(postOrder).Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListReplies(ctx context.Context, parentID uint) ([]models.Post, error) {
	defer observability.TrackQuery("list_replies", "posts")()
	posts := make([]models.Post, 0)
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order(postOrder).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

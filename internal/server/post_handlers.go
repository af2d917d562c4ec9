package server

import (
	"pamps/internal/middleware"
	"pamps/internal/models"
	"pamps/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePostRequest is the payload for POST /post/. A client-supplied user_id
// is accepted for wire compatibility but ignored; the authenticated identity
// always wins.
type CreatePostRequest struct {
	Text     string `json:"text"`
	UserID   uint   `json:"user_id"`
	ParentID *uint  `json:"parent_id"`
}

// PostDetailResponse is the GET /post/:id/ shape. The model tag omits an
// empty replies list for flat feed items, but the detail read must always
// carry the key, so it is shadowed here without omitempty.
type PostDetailResponse struct {
	models.Post
	Replies []models.Post `json:"replies"`
}

// ListPosts handles GET /post/. Only root posts are returned, oldest first.
func (s *Server) ListPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.Context())
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "Failed to list posts", "error", err)
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /post/:id/. The post comes back with its direct
// replies attached.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post ID"))
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(PostDetailResponse{Post: *post, Replies: post.Replies})
}

// GetPostsByUsername handles GET /post/user/:username/. By default only the
// user's root posts are listed; ?include_replies=true adds their replies as
// flat items.
func (s *Server) GetPostsByUsername(c *fiber.Ctx) error {
	username := c.Params("username")
	includeReplies := c.QueryBool("include_replies", false)

	posts, err := s.postService.ListPostsByUsername(c.Context(), username, includeReplies)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(posts)
}

// CreatePost handles POST /post/ (authentication required)
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:   userID,
		Text:     req.Text,
		ParentID: req.ParentID,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "Post created",
		"post_id", post.ID,
		"user_id", userID,
		"is_reply", !post.IsRoot(),
	)

	return c.Status(fiber.StatusCreated).JSON(post)
}

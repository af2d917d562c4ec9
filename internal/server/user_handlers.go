package server

import (
	"pamps/internal/middleware"
	"pamps/internal/models"
	"pamps/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateUserRequest is the registration payload for POST /user/.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
}

// ListUsers handles GET /user/
func (s *Server) ListUsers(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)

	users, err := s.userService.ListUsers(c.Context(), limit, offset)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "Failed to list users", "error", err)
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(users)
}

// GetUserByUsername handles GET /user/:username/
func (s *Server) GetUserByUsername(c *fiber.Ctx) error {
	username := c.Params("username")

	user, err := s.userService.GetUserByUsername(c.Context(), username)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(user)
}

// CreateUser handles POST /user/
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.CreateUser(c.Context(), service.CreateUserInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Avatar:   req.Avatar,
		Bio:      req.Bio,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "User registered",
		"user_id", user.ID,
		"username", user.Username,
	)

	return c.Status(fiber.StatusCreated).JSON(user)
}

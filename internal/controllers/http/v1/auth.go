package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/Unti1/AlsocodeTestTask/internal/repositories"
	"github.com/Unti1/AlsocodeTestTask/internal/services/auth"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32" example:"alice"`
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required,min=8" example:"s3cret-pass"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"s3cret-pass"`
}

// TokenResponse carries the opaque session token issued on login.
type TokenResponse struct {
	Token string `json:"token" example:"8c2f6e1a-54fb-4f82-9c3e-2f1f0a6d9b11"`
}

// Register godoc
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body RegisterRequest true "New user credentials"
// @Success 201 {object} models.User
// @Failure 400 {object} ErrorResponse "Validation failed or username taken"
// @Router /api/auth/register [post]
func (r *routes) handleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	user, err := r.auth.Register(c.Context(), req.Username, req.Email, req.Password)
	if errors.Is(err, repositories.ErrUsernameTaken) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Username already taken",
		})
	}
	if err != nil {
		r.l.Error(err, map[string]any{"username": req.Username})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to register user",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary Log in and receive a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "User credentials"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} ErrorResponse "Invalid username or password"
// @Router /api/auth/login [post]
func (r *routes) handleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	token, err := r.auth.Login(c.Context(), req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error: "Invalid username or password",
		})
	}
	if err != nil {
		r.l.Error(err, map[string]any{"username": req.Username})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to log in",
		})
	}

	return c.JSON(TokenResponse{Token: token})
}

// Logout godoc
// @Summary Revoke the current session token
// @Tags Auth
// @Security BearerAuth
// @Success 204 "Token revoked"
// @Failure 401 {object} ErrorResponse "Invalid or expired token"
// @Router /api/auth/logout [post]
func (r *routes) handleLogout(c *fiber.Ctx) error {
	if err := r.auth.Logout(c.Context(), bearerToken(c)); err != nil {
		r.l.Error(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to log out",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

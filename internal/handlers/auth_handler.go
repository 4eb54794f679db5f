package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mertdogan/expense-tracker-api/internal/dto"
	"github.com/mertdogan/expense-tracker-api/internal/scope"
	"github.com/mertdogan/expense-tracker-api/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
	images      *services.ImageProxy
}

func NewAuthHandler(authService *services.AuthService, images *services.ImageProxy) *AuthHandler {
	return &AuthHandler{authService: authService, images: images}
}

// GoogleSignIn handles POST /auth/google - exchanges a Google ID token for a
// session token plus the user profile.
func (h *AuthHandler) GoogleSignIn(c *fiber.Ctx) error {
	var req dto.GoogleSignInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Token is required",
		})
	}

	resp, err := h.authService.SignIn(c.UserContext(), req.Token)
	if err != nil {
		if errors.Is(err, services.ErrAuthentication) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(resp)
}

// Me handles GET /auth/me - returns the authenticated user's profile.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	user, err := h.authService.CurrentUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.UserResponse{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Picture: user.Picture,
	})
}

// Logout handles POST /auth/logout. Sessions are stateless, so this is a
// no-op; the client discards its token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// ProxyImage handles GET /auth/proxy-image?url=... - relays avatar images so
// clients don't hit the upstream CDN's rate limits. Upstream errors pass
// through with their status code.
func (h *AuthHandler) ProxyImage(c *fiber.Ctx) error {
	rawURL := c.Query("url")
	if rawURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "url query parameter is required",
		})
	}

	contentType, body, err := h.images.Fetch(c.UserContext(), rawURL)
	if err != nil {
		if errors.Is(err, services.ErrImageURLNotAllowed) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Image URL is not allowed",
			})
		}
		var fetchErr *services.ImageFetchError
		if errors.As(err, &fetchErr) {
			return c.Status(fetchErr.StatusCode).JSON(dto.ErrorResponse{
				Error: true, Message: "Image fetch failed",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Image fetch failed",
		})
	}

	c.Set("Content-Type", contentType)
	return c.Send(body)
}

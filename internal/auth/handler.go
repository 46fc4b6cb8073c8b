package auth

import (
	"strings"

	"sakura-backend/internal/config"
	"sakura-backend/internal/database"
	"sakura-backend/internal/models"
	"sakura-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func LoginHandler(cfg *config.Config, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email and password are required")
		}

		if !st.Login(c.Context(), body.Email, body.Password) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		user := st.CurrentUser()

		token, err := GenerateToken(cfg.JWTSecret, user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not issue token")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user":  user,
		})
	}
}

func RegisterHandler(cfg *config.Config, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Username == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Username, email and password are required")
		}

		if !st.Register(c.Context(), body.Username, body.Email, body.Password) {
			return fiber.NewError(fiber.StatusBadRequest, "Could not register with these details")
		}
		user := st.CurrentUser()

		token, err := GenerateToken(cfg.JWTSecret, user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not issue token")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"token": token,
			"user":  user,
		})
	}
}

func LogoutHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st.Logout()
		return c.JSON(fiber.Map{"message": "You have been logged out."})
	}
}

func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDVal := c.Locals(CtxUserIDKey)
		userID, ok := userIDVal.(uint)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "User information missing")
		}

		var user models.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			// Token is valid but the row is gone; answer from the claims.
			return c.JSON(fiber.Map{
				"id":    userIDVal,
				"email": c.Locals(CtxEmailKey),
				"role":  c.Locals(CtxUserRoleKey),
			})
		}
		return c.JSON(user)
	}
}

package admin

import (
	"sakura-backend/internal/auth"
	"sakura-backend/internal/database"
	"sakura-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type UpdateRoleRequest struct {
	Role models.UserRole `json:"role"`
}

// GET /api/admin/users
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Order("created_at").Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load users")
		}
		return c.JSON(users)
	}
}

// PUT /api/admin/users/:id/role
func UpdateUserRoleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
		}

		var body UpdateRoleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		switch body.Role {
		case models.RoleCustomer, models.RoleStaff, models.RoleKitchen, models.RoleAdmin:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Unknown role")
		}

		var user models.User
		if err := database.DB.First(&user, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}

		user.Role = body.Role
		if err := database.DB.Save(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update the user")
		}
		return c.JSON(user)
	}
}

// DELETE /api/admin/users/:id — admins cannot delete themselves.
func DeleteUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
		}

		if selfID, ok := c.Locals(auth.CtxUserIDKey).(uint); ok && selfID == uint(id) {
			return fiber.NewError(fiber.StatusBadRequest, "You cannot delete your own account")
		}

		if err := database.DB.Delete(&models.User{}, id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete the user")
		}
		return c.JSON(fiber.Map{"deleted": id})
	}
}

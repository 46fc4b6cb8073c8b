package notifications

import (
	"sakura-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GET /api/notifications — newest first.
func ListHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.Notifications())
	}
}

// PUT /api/notifications/:id/read
func MarkReadHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid notification id")
		}
		st.MarkAsRead(int64(id))
		return c.JSON(st.Notifications())
	}
}

// PUT /api/notifications/read-all — marks everything read, deletes nothing.
func MarkAllReadHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st.ClearAllNotifications()
		return c.JSON(st.Notifications())
	}
}

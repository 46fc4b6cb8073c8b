package admin

import (
	"strconv"

	"sakura-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GET /api/admin/analytics/summary — header cards for the dashboard.
func SummaryHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.Stats())
	}
}

// GET /api/admin/analytics/daily — per-day order count and revenue, scanned
// from the tables' order histories on every call.
func DailyRevenueHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.RevenueByDay())
	}
}

// GET /api/admin/analytics/top-dishes?limit=5
func TopDishesHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := 5
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "limit must be a positive number")
			}
			limit = n
		}
		return c.JSON(st.TopDishes(limit))
	}
}

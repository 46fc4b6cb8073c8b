package kitchen

import (
	"sakura-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type UpdateItemStatusRequest struct {
	Status store.ItemStatus `json:"status"`
}

// GET /api/kitchen/queue — sent tables with items still in preparation.
func QueueHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.KitchenQueue())
	}
}

// GET /api/kitchen/live — every active order, for the live orders board.
func LiveOrdersHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.LiveOrders())
	}
}

// PUT /api/tables/:id/order/items/:dishId/status — marking an item ready
// notifies the floor staff.
func UpdateItemStatusHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tableID := c.Params("id")
		dishID, err := c.ParamsInt("dishId")
		if err != nil || dishID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid dish id")
		}

		var body UpdateItemStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		switch body.Status {
		case store.ItemInPreparation, store.ItemReady, store.ItemServed:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Unknown item status")
		}

		st.UpdateDishStatus(tableID, uint(dishID), body.Status)
		table, ok := st.TableByID(tableID)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Table not found")
		}
		return c.JSON(table)
	}
}

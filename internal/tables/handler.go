package tables

import (
	"errors"

	"sakura-backend/internal/menu"
	"sakura-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type AddOrderItemRequest struct {
	DishID uint `json:"dish_id"`
}

type UpdateStatusRequest struct {
	Status store.TableStatus `json:"status"`
}

// GET /api/tables
func ListTablesHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.Tables())
	}
}

// GET /api/tables/:id
func GetTableHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		table, ok := st.TableByID(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Table not found")
		}
		return c.JSON(table)
	}
}

// POST /api/tables/:id/order/items — lazily opens the table's order.
func AddOrderItemHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tableID := c.Params("id")
		if _, ok := st.TableByID(tableID); !ok {
			return fiber.NewError(fiber.StatusNotFound, "Table not found")
		}

		var body AddOrderItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		dish, err := menu.FetchDish(body.DishID)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Dish not found")
		}
		if !dish.Available {
			return fiber.NewError(fiber.StatusBadRequest, "This dish is not available right now")
		}

		st.AddItemToTableOrder(tableID, *dish)
		table, _ := st.TableByID(tableID)
		return c.Status(fiber.StatusCreated).JSON(table)
	}
}

// POST /api/tables/:id/order/send — rejected with a warning when the order is
// empty; the table is left untouched.
func SendOrderHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tableID := c.Params("id")
		if err := st.SendTableOrderToKitchen(tableID); err != nil {
			if errors.Is(err, store.ErrTableNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Table not found")
			}
			if errors.Is(err, store.ErrEmptyOrder) {
				return fiber.NewError(fiber.StatusBadRequest, "Cannot send an empty order")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not send the order")
		}
		table, _ := st.TableByID(tableID)
		return c.JSON(table)
	}
}

// PUT /api/tables/:id/status
func UpdateStatusHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tableID := c.Params("id")
		if _, ok := st.TableByID(tableID); !ok {
			return fiber.NewError(fiber.StatusNotFound, "Table not found")
		}

		var body UpdateStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		switch body.Status {
		case store.TableFree, store.TableOccupied, store.TableOrderSent, store.TableBillRequested:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Unknown table status")
		}

		st.UpdateTableStatus(tableID, body.Status)
		table, _ := st.TableByID(tableID)
		return c.JSON(table)
	}
}

// POST /api/tables/:id/pay — snapshots the order into history and frees the
// table.
func MarkPaidHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tableID := c.Params("id")
		table, ok := st.TableByID(tableID)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Table not found")
		}
		if table.ActiveOrder == nil {
			return fiber.NewError(fiber.StatusBadRequest, "This table has no active order")
		}

		st.MarkTableAsPaid(tableID)
		table, _ = st.TableByID(tableID)
		return c.JSON(table)
	}
}

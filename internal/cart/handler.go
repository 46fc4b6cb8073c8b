package cart

import (
	"sakura-backend/internal/menu"
	"sakura-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type AddItemRequest struct {
	DishID uint `json:"dish_id"`
}

// GET /api/cart
func GetCartHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"items": st.AsportoCart(),
			"total": st.AsportoCartTotal(),
		})
	}
}

// POST /api/cart/items — adds exactly one unit of the dish.
func AddItemHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AddItemRequest
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

		st.AddToAsportoCart(*dish)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"items": st.AsportoCart(),
			"total": st.AsportoCartTotal(),
		})
	}
}

// DELETE /api/cart/items/:dishId — removes one unit; the last unit removes
// the line. Unknown ids are tolerated.
func RemoveItemHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dishID, err := c.ParamsInt("dishId")
		if err != nil || dishID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid dish id")
		}
		st.RemoveFromAsportoCart(uint(dishID))
		return c.JSON(fiber.Map{
			"items": st.AsportoCart(),
			"total": st.AsportoCartTotal(),
		})
	}
}

// DELETE /api/cart
func ClearCartHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st.ClearAsportoCart()
		return c.JSON(fiber.Map{"items": []store.CartItem{}, "total": 0})
	}
}

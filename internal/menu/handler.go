package menu

import (
	"sakura-backend/internal/database"
	"sakura-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type DishRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"image_url"`
	Available   *bool    `json:"available"`
	Ingredients []string `json:"ingredients"`
	Channels    []string `json:"channels"`
	DietaryTags []string `json:"dietary_tags"`
	Allergens   []string `json:"allergens"`
}

// GET /api/dishes?type=asporto|ayce&category=Sushi&all=true
// Unavailable dishes are hidden unless all=true is passed (back-office view).
func ListDishesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var dishes []models.Dish
		query := database.DB.Order("category, name")
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if err := query.Find(&dishes).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load the menu")
		}

		channel := c.Query("type")
		includeAll := c.Query("all") == "true"
		out := make([]models.Dish, 0, len(dishes))
		for _, d := range dishes {
			if !includeAll && !d.Available {
				continue
			}
			if channel != "" && !d.HasChannel(channel) {
				continue
			}
			out = append(out, d)
		}
		return c.JSON(out)
	}
}

// POST /api/admin/dishes
func CreateDishHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body DishRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Name == "" || body.Category == "" || body.Price <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Name, category and a positive price are required")
		}
		if len(body.Channels) == 0 {
			body.Channels = []string{models.ChannelAYCE, models.ChannelAsporto}
		}

		dish := models.Dish{
			Name:        body.Name,
			Category:    body.Category,
			Description: body.Description,
			Price:       body.Price,
			ImageURL:    body.ImageURL,
			Available:   true,
			Ingredients: body.Ingredients,
			Channels:    body.Channels,
			DietaryTags: body.DietaryTags,
			Allergens:   body.Allergens,
		}
		if body.Available != nil {
			dish.Available = *body.Available
		}
		if err := database.DB.Create(&dish).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create the dish")
		}
		return c.Status(fiber.StatusCreated).JSON(dish)
	}
}

// PUT /api/admin/dishes/:id
func UpdateDishHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid dish id")
		}

		var dish models.Dish
		if err := database.DB.First(&dish, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Dish not found")
		}

		var body DishRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != "" {
			dish.Name = body.Name
		}
		if body.Category != "" {
			dish.Category = body.Category
		}
		if body.Description != "" {
			dish.Description = body.Description
		}
		if body.Price > 0 {
			dish.Price = body.Price
		}
		if body.ImageURL != "" {
			dish.ImageURL = body.ImageURL
		}
		if body.Available != nil {
			dish.Available = *body.Available
		}
		if body.Ingredients != nil {
			dish.Ingredients = body.Ingredients
		}
		if body.Channels != nil {
			dish.Channels = body.Channels
		}
		if body.DietaryTags != nil {
			dish.DietaryTags = body.DietaryTags
		}
		if body.Allergens != nil {
			dish.Allergens = body.Allergens
		}

		if err := database.DB.Save(&dish).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update the dish")
		}
		return c.JSON(dish)
	}
}

// DELETE /api/admin/dishes/:id
func DeleteDishHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid dish id")
		}
		if err := database.DB.Delete(&models.Dish{}, id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete the dish")
		}
		return c.JSON(fiber.Map{"deleted": id})
	}
}

// FetchDish loads one dish for order/cart operations.
func FetchDish(id uint) (*models.Dish, error) {
	var dish models.Dish
	if err := database.DB.First(&dish, id).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

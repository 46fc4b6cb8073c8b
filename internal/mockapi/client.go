// Package mockapi is a stand-in backend with a fixed catalog and seeded
// credentials. It satisfies the store's AuthClient and backs tests and
// database-less development runs.
package mockapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sakura-backend/internal/models"
)

type Client struct {
	nextID uint
}

func New() *Client {
	return &Client{nextID: 1000}
}

var seededUsers = []struct {
	email    string
	password string
	username string
	role     models.UserRole
}{
	{"admin@sakura.it", "admin", "Admin", models.RoleAdmin},
	{"staff@sakura.it", "staff", "Staff Member", models.RoleStaff},
	{"kitchen@sakura.it", "kitchen", "Kitchen Staff", models.RoleKitchen},
	{"user@sakura.it", "user", "Test User", models.RoleCustomer},
}

// Login matches against the seeded credential set; anything else is rejected
// with a nil user.
func (c *Client) Login(_ context.Context, email, password string) (*models.User, error) {
	for i, u := range seededUsers {
		if u.email == email && u.password == password {
			return &models.User{
				ID:        uint(i + 1),
				Username:  u.username,
				Email:     u.email,
				Role:      u.role,
				CreatedAt: time.Now(),
			}, nil
		}
	}
	return nil, nil
}

// Register rejects addresses on the restaurant's own domain as already taken.
func (c *Client) Register(_ context.Context, username, email, _ string) (*models.User, error) {
	if strings.Contains(email, "sakura.it") {
		return nil, nil
	}
	c.nextID++
	return &models.User{
		ID:        c.nextID,
		Username:  username,
		Email:     email,
		Role:      models.RoleCustomer,
		CreatedAt: time.Now(),
	}, nil
}

// GetDishes returns the static catalog.
func (c *Client) GetDishes(_ context.Context) ([]models.Dish, error) {
	return Catalog(), nil
}

// Catalog is the fixed dish list, also used to seed the database.
func Catalog() []models.Dish {
	dishes := []models.Dish{
		{Name: "Sushi Misto", Category: "Sushi", Description: "Chef's selection of nigiri and maki", Price: 10.00, Available: true, Ingredients: []string{"rice", "salmon", "tuna", "nori"}, Channels: []string{models.ChannelAYCE, models.ChannelAsporto}, DietaryTags: []string{}, Allergens: []string{"fish", "soy"}},
		{Name: "Salmon Nigiri", Category: "Sushi", Description: "Two pieces of fresh salmon over rice", Price: 4.50, Available: true, Ingredients: []string{"rice", "salmon"}, Channels: []string{models.ChannelAYCE, models.ChannelAsporto}, DietaryTags: []string{}, Allergens: []string{"fish"}},
		{Name: "Ramen Tonkotsu", Category: "Ramen", Description: "Pork broth, chashu, egg and noodles", Price: 12.50, Available: true, Ingredients: []string{"noodles", "pork", "egg", "scallion"}, Channels: []string{models.ChannelAsporto}, DietaryTags: []string{}, Allergens: []string{"gluten", "egg", "soy"}},
		{Name: "Yasai Ramen", Category: "Ramen", Description: "Vegetable broth with seasonal greens", Price: 11.00, Available: true, Ingredients: []string{"noodles", "tofu", "bok choy", "mushroom"}, Channels: []string{models.ChannelAsporto}, DietaryTags: []string{"Vegan"}, Allergens: []string{"gluten", "soy"}},
		{Name: "Edamame", Category: "Starters", Description: "Steamed soybeans with sea salt", Price: 4.00, Available: true, Ingredients: []string{"soybeans", "salt"}, Channels: []string{models.ChannelAYCE, models.ChannelAsporto}, DietaryTags: []string{"Vegan", "Halal", "Kosher"}, Allergens: []string{"soy"}},
		{Name: "Gyoza di Maiale", Category: "Starters", Description: "Pan-fried pork dumplings", Price: 5.50, Available: true, Ingredients: []string{"pork", "cabbage", "flour"}, Channels: []string{models.ChannelAYCE, models.ChannelAsporto}, DietaryTags: []string{}, Allergens: []string{"gluten", "soy"}},
		{Name: "Uramaki California", Category: "Sushi", Description: "Crab, avocado and cucumber roll", Price: 7.00, Available: true, Ingredients: []string{"rice", "crab", "avocado", "cucumber"}, Channels: []string{models.ChannelAYCE, models.ChannelAsporto}, DietaryTags: []string{}, Allergens: []string{"shellfish", "sesame"}},
		{Name: "Mochi al Matcha", Category: "Desserts", Description: "Green tea rice cakes", Price: 5.00, Available: true, Ingredients: []string{"rice flour", "matcha", "sugar"}, Channels: []string{models.ChannelAYCE, models.ChannelAsporto}, DietaryTags: []string{"Vegan"}, Allergens: []string{}},
	}
	for i := range dishes {
		dishes[i].ID = uint(i + 1)
		dishes[i].ImageURL = fmt.Sprintf("/images/dishes/%d.jpg", i+1)
	}
	return dishes
}

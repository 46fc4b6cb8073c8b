package database

import (
	"log"

	"sakura-backend/internal/mockapi"
	"sakura-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// Seed inserts the demo accounts and the dish catalog if they are missing.
// FirstOrCreate keeps reruns idempotent.
func Seed() {
	users := []struct {
		username string
		email    string
		password string
		role     models.UserRole
	}{
		{"Admin", "admin@sakura.it", "admin", models.RoleAdmin},
		{"Staff Member", "staff@sakura.it", "staff", models.RoleStaff},
		{"Kitchen Staff", "kitchen@sakura.it", "kitchen", models.RoleKitchen},
		{"Test User", "user@sakura.it", "user", models.RoleCustomer},
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Seeding user %s failed: %v", u.email, err)
			continue
		}
		user := models.User{
			Username:     u.username,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
		}
		if err := DB.Where(models.User{Email: u.email}).FirstOrCreate(&user).Error; err != nil {
			log.Printf("Seeding user %s failed: %v", u.email, err)
		}
	}

	for _, dish := range mockapi.Catalog() {
		d := dish
		d.ID = 0 // let the database assign ids
		if err := DB.Where(models.Dish{Name: dish.Name}).FirstOrCreate(&d).Error; err != nil {
			log.Printf("Seeding dish %s failed: %v", dish.Name, err)
		}
	}

	log.Println("Seed data in place.")
}

package main

import (
	"log"
	"strings"

	"sakura-backend/internal/admin"
	"sakura-backend/internal/auth"
	"sakura-backend/internal/cart"
	"sakura-backend/internal/config"
	"sakura-backend/internal/kitchen"
	"sakura-backend/internal/menu"
	"sakura-backend/internal/models"
	"sakura-backend/internal/notifications"
	"sakura-backend/internal/reservations"
	"sakura-backend/internal/status"
	"sakura-backend/internal/store"
	"sakura-backend/internal/tables"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func buildApp(cfg *config.Config, st *store.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Probes for the deploy check
	api.Get("/status", status.StatusHandler())
	api.Get("/auth/check", status.AuthCheckHandler())
	api.Get("/test", status.TestHandler())

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(cfg, st))
	api.Post("/auth/register", auth.RegisterHandler(cfg, st))

	// Public menu and booking
	api.Get("/dishes", menu.ListDishesHandler())
	api.Post("/reservations", reservations.CreateHandler(st))

	// Takeaway cart (the storefront terminal session)
	api.Get("/cart", cart.GetCartHandler(st))
	api.Post("/cart/items", cart.AddItemHandler(st))
	api.Delete("/cart/items/:dishId", cart.RemoveItemHandler(st))
	api.Delete("/cart", cart.ClearCartHandler(st))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())
	protected.Post("/auth/logout", auth.LogoutHandler(st))

	// Role guards go on the individual routes: the floor and kitchen routes
	// share the /api/tables prefix with different role sets, and a group-level
	// guard mounted there would also run for every route registered later
	// under the same prefix.
	floorOnly := auth.RequireRole(models.RoleStaff, models.RoleAdmin)
	kitchenOrFloor := auth.RequireRole(models.RoleKitchen, models.RoleStaff, models.RoleAdmin)

	// Floor staff: tables and orders
	protected.Get("/tables", floorOnly, tables.ListTablesHandler(st))
	protected.Get("/tables/:id", floorOnly, tables.GetTableHandler(st))
	protected.Post("/tables/:id/order/items", floorOnly, tables.AddOrderItemHandler(st))
	protected.Post("/tables/:id/order/send", floorOnly, tables.SendOrderHandler(st))
	protected.Put("/tables/:id/status", floorOnly, tables.UpdateStatusHandler(st))
	protected.Post("/tables/:id/pay", floorOnly, tables.MarkPaidHandler(st))

	// Kitchen: queue and item status
	protected.Get("/kitchen/queue", kitchenOrFloor, kitchen.QueueHandler(st))
	protected.Get("/kitchen/live", kitchenOrFloor, kitchen.LiveOrdersHandler(st))
	protected.Put("/tables/:id/order/items/:dishId/status", kitchenOrFloor, kitchen.UpdateItemStatusHandler(st))

	// Reservation management and the notification feed
	protected.Get("/reservations", floorOnly, reservations.ListHandler(st))
	protected.Put("/reservations/:id/status", floorOnly, reservations.UpdateStatusHandler(st))
	protected.Get("/notifications", floorOnly, notifications.ListHandler(st))
	protected.Put("/notifications/read-all", floorOnly, notifications.MarkAllReadHandler(st))
	protected.Put("/notifications/:id/read", floorOnly, notifications.MarkReadHandler(st))

	// Admin: nothing else lives under /api/admin, so the group guard is safe.
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))
	adminRoutes.Get("/analytics/summary", admin.SummaryHandler(st))
	adminRoutes.Get("/analytics/daily", admin.DailyRevenueHandler(st))
	adminRoutes.Get("/analytics/top-dishes", admin.TopDishesHandler(st))
	adminRoutes.Get("/analytics/export", admin.ExportHandler(st))
	adminRoutes.Get("/users", admin.ListUsersHandler())
	adminRoutes.Put("/users/:id/role", admin.UpdateUserRoleHandler())
	adminRoutes.Delete("/users/:id", admin.DeleteUserHandler())
	adminRoutes.Post("/dishes", menu.CreateDishHandler())
	adminRoutes.Put("/dishes/:id", menu.UpdateDishHandler())
	adminRoutes.Delete("/dishes/:id", menu.DeleteDishHandler())

	return app
}

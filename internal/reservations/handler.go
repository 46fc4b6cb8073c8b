package reservations

import (
	"log"
	"time"

	"sakura-backend/internal/database"
	"sakura-backend/internal/models"
	"sakura-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type UpdateStatusRequest struct {
	Status models.ReservationStatus `json:"status"`
}

// LoadArchive restores the reservation book from the database into the store,
// newest first. Called once at startup; a missing table is not fatal.
func LoadArchive(st *store.Store) {
	var list []models.Reservation
	if err := database.DB.Order("created_at desc").Find(&list).Error; err != nil {
		log.Printf("Could not load the reservation archive: %v", err)
		return
	}
	st.LoadReservations(list)
}

// archive mirrors a store reservation into Postgres. Failures are logged and
// never surface to the caller; the store remains the source of truth.
func archive(res models.Reservation) {
	if err := database.DB.Save(&res).Error; err != nil {
		log.Printf("Could not archive reservation %s: %v", res.ID, err)
	}
}

// POST /api/reservations — public booking form.
func CreateHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body store.ReservationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Name == "" || body.Email == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name and email are required")
		}
		if body.Guests < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "Party size must be at least 1")
		}
		if _, err := time.Parse("2006-01-02", body.Date); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Date must be YYYY-MM-DD")
		}
		if _, err := time.Parse("15:04", body.Time); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Time must be HH:MM")
		}

		res := st.AddReservation(body)
		archive(res)
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// GET /api/reservations — staff view, newest first.
func ListHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.Reservations())
	}
}

// PUT /api/reservations/:id/status — confirming or cancelling notifies the
// customer; repeating a transition is a no-op.
func UpdateStatusHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		switch body.Status {
		case models.ReservationPending, models.ReservationConfirmed, models.ReservationCancelled:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Unknown reservation status")
		}

		res, ok := st.UpdateReservationStatus(c.Params("id"), body.Status)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Reservation not found")
		}
		archive(res)
		return c.JSON(res)
	}
}

package models

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID        string            `gorm:"primaryKey;size:36" json:"id"`
	Name      string            `gorm:"size:100;not null" json:"name"`
	Email     string            `gorm:"size:100;not null" json:"email"`
	Phone     string            `gorm:"size:30" json:"phone"`
	Guests    int               `gorm:"not null" json:"guests"`
	Date      string            `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	Time      string            `gorm:"size:5;not null" json:"time"`        // HH:MM
	Notes     string            `gorm:"size:500" json:"notes"`
	Status    ReservationStatus `gorm:"size:20;not null" json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

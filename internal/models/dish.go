package models

import "time"

// Menu channels a dish can be ordered through.
const (
	ChannelAYCE    = "ayce"    // all-you-can-eat dine-in
	ChannelAsporto = "asporto" // takeaway
)

type Dish struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Category    string   `gorm:"size:50;index;not null" json:"category"`
	Description string   `gorm:"size:500" json:"description"`
	Price       float64  `gorm:"not null" json:"price"`
	ImageURL    string   `gorm:"size:500" json:"image_url"`
	Available   bool     `gorm:"default:true" json:"available"`
	Ingredients []string `gorm:"serializer:json" json:"ingredients"`
	Channels    []string `gorm:"serializer:json" json:"channels"`
	DietaryTags []string `gorm:"serializer:json" json:"dietary_tags"`
	Allergens   []string `gorm:"serializer:json" json:"allergens"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasChannel reports whether the dish is offered on the given channel.
func (d *Dish) HasChannel(channel string) bool {
	for _, c := range d.Channels {
		if c == channel {
			return true
		}
	}
	return false
}

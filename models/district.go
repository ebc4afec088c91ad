package models

import (
	"time"
)

type District struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	ImageURL    string    `json:"imageUrl"`
	Province    string    `gorm:"not null" json:"province"`

	// Deleting a district removes its destinations.
	Destinations []Destination `gorm:"foreignKey:DistrictID;constraint:OnDelete:CASCADE" json:"destinations,omitempty"`
}

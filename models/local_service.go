package models

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
)

type LocalService struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string          `gorm:"not null" json:"name" validate:"required"`
	Category    string          `gorm:"not null" json:"category" validate:"required,oneof=restaurant hotel transport tour-operator other"`
	Subcategory string          `json:"subcategory"`
	Description string          `gorm:"type:text;not null" json:"description" validate:"required"`
	Location    string          `gorm:"not null" json:"location" validate:"required"`
	District    string          `json:"district"`
	Address     string          `gorm:"type:text" json:"address"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email" validate:"omitempty,email"`
	Website     string          `json:"website"`
	PriceRange  string          `json:"priceRange" validate:"omitempty,oneof=$ $$ $$$ $$$$"`
	Rating      float64         `gorm:"default:0" json:"rating"`
	RatingCount int             `gorm:"default:0" json:"ratingCount"`
	OpenHours   string          `json:"openHours"`
	Image       string          `json:"image"`
	Features    json.RawMessage `gorm:"type:json" json:"features"`
	Specialties json.RawMessage `gorm:"type:json" json:"specialties"`
	Amenities   json.RawMessage `gorm:"type:json" json:"amenities"`
	Services    json.RawMessage `gorm:"type:json" json:"services"`
	IsVerified  bool            `gorm:"default:false" json:"isVerified"`
	UserID      uint            `gorm:"not null" json:"userId"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}

func (s *LocalService) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

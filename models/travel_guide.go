package models

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
)

type TravelGuide struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Title        string          `gorm:"not null" json:"title" validate:"required"`
	Category     string          `gorm:"not null" json:"category" validate:"required,oneof=planning transport budget cultural safety visa emergency language other"`
	Content      string          `gorm:"type:text;not null" json:"content" validate:"required"`
	Summary      string          `gorm:"type:text" json:"summary"`
	Tags         json.RawMessage `gorm:"type:json" json:"tags"`
	Image        string          `json:"image"`
	IsOfficial   bool            `gorm:"default:false" json:"isOfficial"` // admin-published vs user-contributed
	IsVerified   bool            `gorm:"default:false" json:"isVerified"`
	ViewCount    int             `gorm:"default:0" json:"viewCount"`
	HelpfulCount int             `gorm:"default:0" json:"helpfulCount"`
	UserID       uint            `gorm:"not null" json:"userId"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}

func (g *TravelGuide) Validate() error {
	validate := validator.New()
	return validate.Struct(g)
}

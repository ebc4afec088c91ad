package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Rating is unique per (user, destination); re-rating updates the row.
type Rating struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Value         int       `gorm:"not null" json:"value" validate:"required,min=1,max=5"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_ratings_user_destination" json:"userId"`
	DestinationID uint      `gorm:"not null;uniqueIndex:idx_ratings_user_destination" json:"destinationId"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}

func (r *Rating) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

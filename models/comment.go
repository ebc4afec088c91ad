package models

import (
	"time"
)

type Comment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	UserID        uint      `gorm:"not null" json:"userId"`
	DestinationID uint      `gorm:"not null" json:"destinationId"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}

package models

import (
	"time"
)

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name           string    `gorm:"not null" json:"name"`
	Email          string    `gorm:"unique;not null" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	ProfilePicture string    `gorm:"default:''" json:"profilePicture"`
	IsAdmin        bool      `gorm:"default:false" json:"isAdmin"`

	Destinations []Destination `gorm:"foreignKey:AuthorID" json:"destinations,omitempty"`
	Comments     []Comment     `gorm:"foreignKey:UserID" json:"comments,omitempty"`
	Ratings      []Rating      `gorm:"foreignKey:UserID" json:"ratings,omitempty"`
}

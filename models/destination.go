package models

import (
	"encoding/json"
	"time"
)

type Destination struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Title           string          `gorm:"not null" json:"title"`
	Description     string          `gorm:"type:text;not null" json:"description"`
	Images          json.RawMessage `gorm:"type:json" json:"images"` // ordered array of /uploads/... paths
	Latitude        float64         `json:"latitude"`
	Longitude       float64         `json:"longitude"`
	BestTimeToVisit string          `gorm:"not null" json:"bestTimeToVisit"`
	TravelTips      string          `gorm:"type:text;not null" json:"travelTips"`
	DistrictID      uint            `gorm:"not null" json:"districtId"`
	AuthorID        uint            `gorm:"not null" json:"authorId"`

	District District `gorm:"foreignKey:DistrictID" json:"district"`
	Author   User     `gorm:"foreignKey:AuthorID" json:"author"`

	Comments []Comment `gorm:"foreignKey:DestinationID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Ratings  []Rating  `gorm:"foreignKey:DestinationID;constraint:OnDelete:CASCADE" json:"ratings,omitempty"`
}

// ImageList decodes the stored JSON array. A null or empty column
// decodes to an empty list, never nil.
func (d *Destination) ImageList() []string {
	var images []string
	if len(d.Images) > 0 {
		_ = json.Unmarshal(d.Images, &images)
	}
	if images == nil {
		images = []string{}
	}
	return images
}

// SetImageList encodes the list back into the JSON column.
func (d *Destination) SetImageList(images []string) {
	if images == nil {
		images = []string{}
	}
	raw, _ := json.Marshal(images)
	d.Images = raw
}

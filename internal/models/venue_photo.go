package models

import "time"

type VenuePhoto struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Key string `gorm:"size:255;not null" json:"key"`
	URL string `gorm:"size:512;not null" json:"url"`

	CreatedAt time.Time `json:"created_at"`
}

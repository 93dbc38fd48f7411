package model

import "time"

// Item is a reviewable product. AverageRating is maintained out of band by the
// rating worker.
type Item struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	AverageRating float64   `gorm:"type:numeric(2,1);not null;default:0" json:"average_rating"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

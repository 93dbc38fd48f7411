package model

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is unique per (user, item). Deleting the user or the item removes it.
type Review struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID     string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_reviews_user_item,priority:1" json:"user_id"`
	ItemID     string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_reviews_user_item,priority:2;index" json:"item_id"`
	Rating     int       `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5" json:"rating"`
	ReviewText string    `gorm:"type:text;not null" json:"review_text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Item *Item `gorm:"foreignKey:ItemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// UserReview is a review row joined with the reviewed item's name.
type UserReview struct {
	ReviewID   string    `json:"review_id"`
	ItemID     string    `json:"item_id"`
	ItemName   string    `json:"item_name"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"review_text"`
	CreatedAt  time.Time `json:"created_at"`
}

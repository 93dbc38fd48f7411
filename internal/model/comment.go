package model

import "time"

// Comment is unique per (user, review) and goes away with either parent.
type Comment struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ReviewID    string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_comments_user_review,priority:2;index" json:"review_id"`
	UserID      string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_comments_user_review,priority:1" json:"user_id"`
	CommentText string    `gorm:"type:text;not null" json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Review *Review `gorm:"foreignKey:ReviewID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

package model

import (
	"time"
)

// Review is a user's rating of a cafe. The (user, cafe) pair is unique and
// enforced by the database; a violation surfaces as a conflict error.
type Review struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CafeID   uint    `gorm:"not null;index:idx_reviews_user_cafe,unique" json:"cafe_id"`
	Cafe     Cafe    `gorm:"foreignKey:CafeID" json:"cafe,omitempty"`
	UserID   uint    `gorm:"not null;index:idx_reviews_user_cafe,unique" json:"user_id"`
	User     User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	UserName string  `gorm:"not null" json:"user_name"`                // display name snapshot
	Rating   float64 `gorm:"type:decimal(2,1);not null" json:"rating"` // 1-5
	Comment  string  `gorm:"type:text;not null" json:"comment"`
}

func (Review) TableName() string {
	return "reviews"
}

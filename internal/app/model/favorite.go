package model

import (
	"time"
)

// Favorite marks a cafe saved by a user. Presence is the whole payload;
// the (user, cafe) pair is unique.
type Favorite struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID uint `gorm:"not null;index:idx_user_cafe_favorite,unique" json:"user_id"`
	CafeID uint `gorm:"not null;index:idx_user_cafe_favorite,unique" json:"cafe_id"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Cafe Cafe `gorm:"foreignKey:CafeID" json:"cafe,omitempty"`
}

func (Favorite) TableName() string {
	return "favorites"
}

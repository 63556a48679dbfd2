package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Post is a blog article. Unpublished posts with a scheduled_at timestamp are
// flipped to published by the scheduler once the timestamp passes.
type Post struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Slug        string     `gorm:"uniqueIndex" json:"slug"`
	Excerpt     string     `gorm:"type:text" json:"excerpt"`
	Content     string     `gorm:"type:text" json:"content"` // rich HTML from the editor
	CoverImage  string     `json:"cover_image"`
	AuthorName  string     `gorm:"not null" json:"author_name"`
	Published   bool       `gorm:"default:false;index" json:"published"`
	ScheduledAt *time.Time `gorm:"index" json:"scheduled_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}

// BeforeCreate assigns a unique slug derived from the title when none was provided
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.Slug == "" {
		baseSlug := generateSlug("", p.Title)
		slug := baseSlug

		counter := 1
		for {
			var count int64
			if err := tx.Model(&Post{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
				return err
			}

			if count == 0 {
				break
			}

			counter++
			slug = fmt.Sprintf("%s-%d", baseSlug, counter)
		}

		p.Slug = slug
	}
	return nil
}

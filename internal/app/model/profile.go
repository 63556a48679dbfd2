package model

import (
	"time"
)

type WorkStatus string

const (
	WorkStatusOpenToWork WorkStatus = "open_to_work"
	WorkStatusHiring     WorkStatus = "hiring"
	WorkStatusNone       WorkStatus = "none"
)

// Profile is the public-facing profile, 1:1 with a user account
type Profile struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	UserID      uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName    string     `gorm:"not null" json:"full_name"`
	Username    string     `gorm:"uniqueIndex;not null" json:"username"` // lowercase, no spaces
	Bio         string     `gorm:"type:text" json:"bio"`
	Website     string     `json:"website"`
	Role        string     `json:"role"` // free-text work role, e.g. "Backend Engineer"
	WorkStatus  WorkStatus `gorm:"type:varchar(20);default:'none'" json:"work_status"`
	TwitterURL  string     `json:"twitter_url"`
	LinkedinURL string     `json:"linkedin_url"`
	GithubURL   string     `json:"github_url"`
	AvatarURL   string     `json:"avatar_url"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

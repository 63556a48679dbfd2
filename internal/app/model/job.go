package model

import (
	"time"

	"gorm.io/gorm"
)

type JobType string

const (
	JobTypeFullTime  JobType = "Full-time"
	JobTypePartTime  JobType = "Part-time"
	JobTypeFreelance JobType = "Freelance"
	JobTypeContract  JobType = "Contract"
)

type JobLocationType string

const (
	JobLocationRemote JobLocationType = "Remote"
	JobLocationHybrid JobLocationType = "Hybrid"
	JobLocationOnSite JobLocationType = "On-site"
)

// Job is a listing on the jobs board
type Job struct {
	ID           uint            `gorm:"primarykey" json:"id"`
	UserID       uint            `gorm:"not null;index" json:"user_id"` // posting user
	User         User            `gorm:"foreignKey:UserID" json:"-"`
	Title        string          `gorm:"not null" json:"title"`
	CompanyName  string          `gorm:"not null" json:"company_name"`
	JobType      JobType         `gorm:"type:varchar(20);not null" json:"job_type"`
	LocationType JobLocationType `gorm:"type:varchar(20);not null" json:"location_type"`
	SalaryRange  string          `json:"salary_range"` // free text, e.g. "40k-60k BDT"
	ApplyLink    string          `json:"apply_link"`   // URL or mailto address
	Description  string          `gorm:"type:text" json:"description"`
	IsActive     bool            `gorm:"default:true;index" json:"is_active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Job) TableName() string {
	return "jobs"
}

// ValidJobType reports whether t is one of the allowed job types
func ValidJobType(t JobType) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeFreelance, JobTypeContract:
		return true
	}
	return false
}

// ValidJobLocationType reports whether t is one of the allowed location types
func ValidJobLocationType(t JobLocationType) bool {
	switch t {
	case JobLocationRemote, JobLocationHybrid, JobLocationOnSite:
		return true
	}
	return false
}

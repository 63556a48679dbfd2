package repository

import (
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(profile *model.Profile) error
	Update(profile *model.Profile) error
	FindByUserID(userID uint) (*model.Profile, error)
	FindByUsername(username string) (*model.Profile, error)
	FindTopByFullName(query string, limit int) ([]model.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *model.Profile) error {
	return r.db.Create(profile).Error
}

func (r *profileRepository) Update(profile *model.Profile) error {
	return r.db.Save(profile).Error
}

func (r *profileRepository) FindByUserID(userID uint) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByUsername(username string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.Where("username = ?", username).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindTopByFullName is the bounded command-palette lookup for people
func (r *profileRepository) FindTopByFullName(query string, limit int) ([]model.Profile, error) {
	var profiles []model.Profile
	like := "%" + query + "%"
	err := r.db.Model(&model.Profile{}).
		Where("LOWER(full_name) LIKE LOWER(?)", like).
		Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

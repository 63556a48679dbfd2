package repository

import (
	"errors"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"gorm.io/gorm"
)

type FavoriteRepository interface {
	FindByUserID(userID uint) ([]model.Favorite, error)
	IsFavorited(userID, cafeID uint) (bool, error)
	Toggle(userID, cafeID uint) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) FindByUserID(userID uint) ([]model.Favorite, error) {
	var favorites []model.Favorite
	err := r.db.Preload("Cafe").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) IsFavorited(userID, cafeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Favorite{}).
		Where("user_id = ? AND cafe_id = ?", userID, cafeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Toggle flips the favorite state for the pair and returns the new state.
// The unique pair index arbitrates concurrent toggles.
func (r *favoriteRepository) Toggle(userID, cafeID uint) (bool, error) {
	var favorite model.Favorite
	err := r.db.Where("user_id = ? AND cafe_id = ?", userID, cafeID).First(&favorite).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		favorite = model.Favorite{
			UserID: userID,
			CafeID: cafeID,
		}
		if err := r.db.Create(&favorite).Error; err != nil {
			return false, err
		}
		return true, nil
	} else if err != nil {
		return false, err
	}

	if err := r.db.Delete(&favorite).Error; err != nil {
		return false, err
	}
	return false, nil
}

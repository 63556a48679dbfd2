package service

import (
	"errors"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/repository"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/pkg/logger"
	"gorm.io/gorm"
)

type FavoriteService interface {
	GetUserFavorites(userID uint) ([]model.Favorite, error)
	IsFavorited(userID, cafeID uint) (bool, error)
	ToggleFavorite(userID, cafeID uint) (bool, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	cafeRepo     repository.CafeRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, cafeRepo repository.CafeRepository) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		cafeRepo:     cafeRepo,
	}
}

func (s *favoriteService) GetUserFavorites(userID uint) ([]model.Favorite, error) {
	return s.favoriteRepo.FindByUserID(userID)
}

func (s *favoriteService) IsFavorited(userID, cafeID uint) (bool, error) {
	return s.favoriteRepo.IsFavorited(userID, cafeID)
}

// ToggleFavorite flips the saved state and returns the new state. The client
// applies the flip optimistically and rolls back if this call fails, so the
// endpoint only needs to be an atomic toggle.
func (s *favoriteService) ToggleFavorite(userID, cafeID uint) (bool, error) {
	if _, err := s.cafeRepo.FindByID(cafeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrCafeNotFound
		}
		return false, err
	}

	favorited, err := s.favoriteRepo.Toggle(userID, cafeID)
	if err != nil {
		logger.Error("Failed to toggle favorite", err, map[string]interface{}{
			"user_id": userID,
			"cafe_id": cafeID,
		})
		return false, err
	}

	logger.Debug("Favorite toggled", map[string]interface{}{
		"user_id":   userID,
		"cafe_id":   cafeID,
		"favorited": favorited,
	})
	return favorited, nil
}

package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/service"
	apperrors "github.com/nafiuibnemazhar/workspot-bd-sub000/internal/errors"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/middleware"
)

type FavoriteController struct {
	favoriteService service.FavoriteService
	cafeService     service.CafeService
}

func NewFavoriteController(favoriteService service.FavoriteService, cafeService service.CafeService) *FavoriteController {
	return &FavoriteController{
		favoriteService: favoriteService,
		cafeService:     cafeService,
	}
}

// GetMyFavorites lists the authenticated user's saved cafes
func (ctrl *FavoriteController) GetMyFavorites(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	favorites, err := ctrl.favoriteService.GetUserFavorites(userID)
	if err != nil {
		apperrors.InternalError(c, "Failed to load favorites")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": favorites})
}

// ToggleFavorite flips the saved state of a cafe and returns the new state
func (ctrl *FavoriteController) ToggleFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	cafe, err := ctrl.cafeService.GetCafeBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrCafeNotFound) {
			apperrors.NotFound(c, apperrors.CafeNotFound, "Cafe not found")
			return
		}
		apperrors.InternalError(c, "Failed to load cafe")
		return
	}

	favorited, err := ctrl.favoriteService.ToggleFavorite(userID, cafe.ID)
	if err != nil {
		apperrors.InternalError(c, "Failed to update favorite")
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorited": favorited})
}

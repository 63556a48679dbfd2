package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/service"
	apperrors "github.com/nafiuibnemazhar/workspot-bd-sub000/internal/errors"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/middleware"
)

type ProfileController struct {
	profileService service.ProfileService
}

func NewProfileController(profileService service.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetProfileByUsername serves a public profile page
func (ctrl *ProfileController) GetProfileByUsername(c *gin.Context) {
	profile, err := ctrl.profileService.GetByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			apperrors.NotFound(c, apperrors.ProfileNotFound, "Profile not found")
			return
		}
		apperrors.InternalError(c, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetMyProfile serves the authenticated user's own profile
func (ctrl *ProfileController) GetMyProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	profile, err := ctrl.profileService.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			apperrors.NotFound(c, apperrors.ProfileNotFound, "Profile not found")
			return
		}
		apperrors.InternalError(c, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateMyProfile edits the authenticated user's profile
func (ctrl *ProfileController) UpdateMyProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var input service.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid profile details")
		return
	}

	profile, err := ctrl.profileService.UpdateProfile(userID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			apperrors.NotFound(c, apperrors.ProfileNotFound, "Profile not found")
		case errors.Is(err, service.ErrUsernameTaken):
			apperrors.Conflict(c, apperrors.ProfileUsernameExists, "This username is already taken")
		case errors.Is(err, service.ErrInvalidUsername):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Username must be 3-30 lowercase letters, digits or underscores")
		case errors.Is(err, service.ErrInvalidWorkStatus):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid work status")
		default:
			apperrors.InternalError(c, "Failed to update profile")
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

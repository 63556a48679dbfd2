package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/service"
	apperrors "github.com/nafiuibnemazhar/workspot-bd-sub000/internal/errors"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/middleware"
)

type ReviewController struct {
	reviewService *service.ReviewService
	cafeService   service.CafeService
}

func NewReviewController(reviewService *service.ReviewService, cafeService service.CafeService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
		cafeService:   cafeService,
	}
}

// CreateReview posts a review; one per user per cafe
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var input service.CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid review details")
		return
	}

	review, err := ctrl.reviewService.CreateReview(userID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewAlreadyExists):
			apperrors.Conflict(c, apperrors.ReviewAlreadyExists, "You have already reviewed this workspace")
		case errors.Is(err, service.ErrCafeNotFound):
			apperrors.NotFound(c, apperrors.CafeNotFound, "Cafe not found")
		case errors.Is(err, service.ErrInvalidRating):
			apperrors.BadRequest(c, apperrors.ReviewInvalidRating, "Rating must be between 1 and 5")
		case errors.Is(err, service.ErrEmptyComment):
			apperrors.BadRequest(c, apperrors.ValidationRequired, "Comment must not be empty")
		default:
			apperrors.InternalError(c, "Failed to post review")
		}
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GetCafeReviews lists a cafe's reviews, newest first
func (ctrl *ReviewController) GetCafeReviews(c *gin.Context) {
	cafe, err := ctrl.cafeService.GetCafeBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrCafeNotFound) {
			apperrors.NotFound(c, apperrors.CafeNotFound, "Cafe not found")
			return
		}
		apperrors.InternalError(c, "Failed to load cafe")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	reviews, total, err := ctrl.reviewService.GetCafeReviews(cafe.ID, page, pageSize)
	if err != nil {
		apperrors.InternalError(c, "Failed to load reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      reviews,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetMyReviews lists the authenticated user's reviews
func (ctrl *ReviewController) GetMyReviews(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	reviews, total, err := ctrl.reviewService.GetUserReviews(userID, page, pageSize)
	if err != nil {
		apperrors.InternalError(c, "Failed to load reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      reviews,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// UpdateReview edits the author's own review
func (ctrl *ReviewController) UpdateReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid review ID")
		return
	}

	var input service.UpdateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid review details")
		return
	}

	review, err := ctrl.reviewService.UpdateReview(uint(reviewID), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			apperrors.NotFound(c, apperrors.ReviewNotFound, "Review not found")
		case errors.Is(err, service.ErrReviewNotOwner):
			apperrors.Forbidden(c, "Only the author can edit this review")
		case errors.Is(err, service.ErrInvalidRating):
			apperrors.BadRequest(c, apperrors.ReviewInvalidRating, "Rating must be between 1 and 5")
		case errors.Is(err, service.ErrEmptyComment):
			apperrors.BadRequest(c, apperrors.ValidationRequired, "Comment must not be empty")
		default:
			apperrors.InternalError(c, "Failed to update review")
		}
		return
	}

	c.JSON(http.StatusOK, review)
}

// DeleteReview removes a review; author or admin only
func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid review ID")
		return
	}

	if err := ctrl.reviewService.DeleteReview(uint(reviewID), userID, middleware.IsAdmin(c)); err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			apperrors.NotFound(c, apperrors.ReviewNotFound, "Review not found")
		case errors.Is(err, service.ErrReviewNotOwner):
			apperrors.Forbidden(c, "Only the author can delete this review")
		default:
			apperrors.InternalError(c, "Failed to delete review")
		}
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

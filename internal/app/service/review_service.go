package service

import (
	"errors"
	"strings"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/repository"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/pkg/logger"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("user has already reviewed this cafe")
	ErrReviewNotOwner      = errors.New("only the author can modify this review")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrEmptyComment        = errors.New("comment must not be empty")
)

// isDuplicateKeyError detects a unique-constraint violation from either the
// structured Postgres error or the driver message text (SQLite in tests)
func isDuplicateKeyError(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

type ReviewService struct {
	reviewRepo *repository.ReviewRepository
	cafeRepo   repository.CafeRepository
}

func NewReviewService(reviewRepo *repository.ReviewRepository, cafeRepo repository.CafeRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		cafeRepo:   cafeRepo,
	}
}

type CreateReviewInput struct {
	CafeID   uint    `json:"cafe_id" binding:"required"`
	Rating   float64 `json:"rating" binding:"required"`
	Comment  string  `json:"comment" binding:"required"`
	UserName string  `json:"user_name"`
}

// CreateReview validates and inserts a review. The one-review-per-user-per-
// cafe rule is ultimately enforced by the store's unique constraint; the
// pre-check just gives the common case a friendlier path. Either way the
// caller sees ErrReviewAlreadyExists, distinguishable from generic failure.
func (s *ReviewService) CreateReview(userID uint, input CreateReviewInput) (*model.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(input.Comment) == "" {
		return nil, ErrEmptyComment
	}

	if _, err := s.cafeRepo.FindByID(input.CafeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCafeNotFound
		}
		return nil, err
	}

	existing, err := s.reviewRepo.FindByUserAndCafe(userID, input.CafeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrReviewAlreadyExists
	}

	review := &model.Review{
		CafeID:   input.CafeID,
		UserID:   userID,
		UserName: input.UserName,
		Rating:   input.Rating,
		Comment:  input.Comment,
	}

	if err := s.reviewRepo.CreateReview(review); err != nil {
		// Lost the race against a concurrent submit for the same pair
		if isDuplicateKeyError(err) {
			return nil, ErrReviewAlreadyExists
		}
		return nil, err
	}

	if err := s.refreshCafeRating(input.CafeID); err != nil {
		logger.Warn("Failed to refresh cafe rating after review", map[string]interface{}{
			"cafe_id": input.CafeID,
			"error":   err.Error(),
		})
	}

	return review, nil
}

func (s *ReviewService) GetReview(id uint) (*model.Review, error) {
	review, err := s.reviewRepo.GetReviewByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) GetCafeReviews(cafeID uint, page, pageSize int) ([]model.Review, int64, error) {
	if _, err := s.cafeRepo.FindByID(cafeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrCafeNotFound
		}
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	return s.reviewRepo.GetReviewsByCafeID(cafeID, offset, pageSize)
}

func (s *ReviewService) GetUserReviews(userID uint, page, pageSize int) ([]model.Review, int64, error) {
	offset := (page - 1) * pageSize
	return s.reviewRepo.GetReviewsByUserID(userID, offset, pageSize)
}

type UpdateReviewInput struct {
	Rating  *float64 `json:"rating"`
	Comment *string  `json:"comment"`
}

func (s *ReviewService) UpdateReview(reviewID, userID uint, input UpdateReviewInput) (*model.Review, error) {
	review, err := s.reviewRepo.GetReviewByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	if review.UserID != userID {
		return nil, ErrReviewNotOwner
	}

	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			return nil, ErrInvalidRating
		}
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		if strings.TrimSpace(*input.Comment) == "" {
			return nil, ErrEmptyComment
		}
		review.Comment = *input.Comment
	}

	if err := s.reviewRepo.UpdateReview(review); err != nil {
		return nil, err
	}

	if err := s.refreshCafeRating(review.CafeID); err != nil {
		logger.Warn("Failed to refresh cafe rating after review update", map[string]interface{}{
			"cafe_id": review.CafeID,
			"error":   err.Error(),
		})
	}

	return review, nil
}

func (s *ReviewService) DeleteReview(reviewID, userID uint, isAdmin bool) error {
	review, err := s.reviewRepo.GetReviewByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	if review.UserID != userID && !isAdmin {
		return ErrReviewNotOwner
	}

	if err := s.reviewRepo.DeleteReview(reviewID); err != nil {
		return err
	}

	if err := s.refreshCafeRating(review.CafeID); err != nil {
		logger.Warn("Failed to refresh cafe rating after review delete", map[string]interface{}{
			"cafe_id": review.CafeID,
			"error":   err.Error(),
		})
	}
	return nil
}

// refreshCafeRating recomputes the denormalized average rating on the cafe row
func (s *ReviewService) refreshCafeRating(cafeID uint) error {
	avg, err := s.reviewRepo.AverageRating(cafeID)
	if err != nil {
		return err
	}

	cafe, err := s.cafeRepo.FindByID(cafeID)
	if err != nil {
		return err
	}

	cafe.Rating = avg
	return s.cafeRepo.Update(cafe)
}

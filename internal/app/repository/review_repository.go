package repository

import (
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// CreateReview inserts a review. The unique (user_id, cafe_id) index makes a
// second review for the same pair fail with a duplicate-key error.
func (r *ReviewRepository) CreateReview(review *model.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepository) GetReviewByID(id uint) (*model.Review, error) {
	var review model.Review
	err := r.db.Preload("User").First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GetReviewsByCafeID returns one page of a cafe's reviews plus the total count
func (r *ReviewRepository) GetReviewsByCafeID(cafeID uint, offset, limit int) ([]model.Review, int64, error) {
	var reviews []model.Review
	var total int64

	query := r.db.Model(&model.Review{}).Where("cafe_id = ?", cafeID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *ReviewRepository) GetReviewsByUserID(userID uint, offset, limit int) ([]model.Review, int64, error) {
	var reviews []model.Review
	var total int64

	query := r.db.Model(&model.Review{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Cafe").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *ReviewRepository) FindByUserAndCafe(userID, cafeID uint) (*model.Review, error) {
	var review model.Review
	err := r.db.Where("user_id = ? AND cafe_id = ?", userID, cafeID).First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) UpdateReview(review *model.Review) error {
	return r.db.Save(review).Error
}

func (r *ReviewRepository) DeleteReview(id uint) error {
	return r.db.Delete(&model.Review{}, id).Error
}

// AverageRating computes the mean rating over a cafe's reviews, 0 when none
func (r *ReviewRepository) AverageRating(cafeID uint) (float64, error) {
	var count int64
	if err := r.db.Model(&model.Review{}).Where("cafe_id = ?", cafeID).Count(&count).Error; err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}

	var avg float64
	err := r.db.Model(&model.Review{}).
		Where("cafe_id = ?", cafeID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	return avg, nil
}

package repository

import (
	"time"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *model.Post) error
	Update(post *model.Post) error
	Delete(id uint) error
	FindByID(id uint) (*model.Post, error)
	FindBySlug(slug string) (*model.Post, error)
	FindPublished(offset, limit int) ([]model.Post, int64, error)
	FindAll(offset, limit int) ([]model.Post, int64, error)
	PublishDue(now time.Time) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *model.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) Update(post *model.Post) error {
	return r.db.Save(post).Error
}

func (r *postRepository) Delete(id uint) error {
	return r.db.Delete(&model.Post{}, id).Error
}

func (r *postRepository) FindByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindBySlug(slug string) (*model.Post, error) {
	var post model.Post
	if err := r.db.Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindPublished(offset, limit int) ([]model.Post, int64, error) {
	return r.findPosts(r.db.Model(&model.Post{}).Where("published = ?", true), offset, limit)
}

func (r *postRepository) FindAll(offset, limit int) ([]model.Post, int64, error) {
	return r.findPosts(r.db.Model(&model.Post{}), offset, limit)
}

func (r *postRepository) findPosts(query *gorm.DB, offset, limit int) ([]model.Post, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []model.Post
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// PublishDue flips unpublished posts whose scheduled time has passed and
// returns how many were published
func (r *postRepository) PublishDue(now time.Time) (int64, error) {
	result := r.db.Model(&model.Post{}).
		Where("published = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ?", false, now).
		Update("published", true)
	return result.RowsAffected, result.Error
}

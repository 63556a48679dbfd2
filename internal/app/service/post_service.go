package service

import (
	"errors"
	"strings"
	"time"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/repository"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrPostNotPublished = errors.New("post not published")
)

type PostService interface {
	CreatePost(post *model.Post) (*model.Post, error)
	UpdatePost(postID uint, updates *model.Post) (*model.Post, error)
	DeletePost(postID uint) error
	GetPostBySlug(slug string, includeUnpublished bool) (*model.Post, error)
	ListPublished(page, pageSize int) ([]model.Post, int64, error)
	ListAll(page, pageSize int) ([]model.Post, int64, error)
	PublishScheduled(now time.Time) (int64, error)
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func validatePost(post *model.Post) error {
	if strings.TrimSpace(post.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(post.AuthorName) == "" {
		return errors.New("author name is required")
	}
	return nil
}

// CreatePost stores a post. A future ScheduledAt keeps it unpublished until
// the scheduler sweep flips it.
func (s *postService) CreatePost(post *model.Post) (*model.Post, error) {
	if err := validatePost(post); err != nil {
		return nil, err
	}

	if post.ScheduledAt != nil && post.ScheduledAt.After(time.Now()) {
		post.Published = false
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) UpdatePost(postID uint, updates *model.Post) (*model.Post, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	post.Title = updates.Title
	post.Excerpt = updates.Excerpt
	post.Content = updates.Content
	post.CoverImage = updates.CoverImage
	post.AuthorName = updates.AuthorName
	post.Published = updates.Published
	post.ScheduledAt = updates.ScheduledAt

	if err := validatePost(post); err != nil {
		return nil, err
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) DeletePost(postID uint) error {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return s.postRepo.Delete(postID)
}

// GetPostBySlug hides unpublished posts from the public view
func (s *postService) GetPostBySlug(slug string, includeUnpublished bool) (*model.Post, error) {
	post, err := s.postRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if !post.Published && !includeUnpublished {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *postService) ListPublished(page, pageSize int) ([]model.Post, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	return s.postRepo.FindPublished((page-1)*pageSize, pageSize)
}

func (s *postService) ListAll(page, pageSize int) ([]model.Post, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	return s.postRepo.FindAll((page-1)*pageSize, pageSize)
}

// PublishScheduled is the scheduler entry point
func (s *postService) PublishScheduled(now time.Time) (int64, error) {
	return s.postRepo.PublishDue(now)
}

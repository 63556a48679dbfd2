package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/service"
	apperrors "github.com/nafiuibnemazhar/workspot-bd-sub000/internal/errors"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/middleware"
)

type PostController struct {
	postService service.PostService
}

func NewPostController(postService service.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

type postInput struct {
	Title       string     `json:"title" binding:"required"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	CoverImage  string     `json:"cover_image"`
	AuthorName  string     `json:"author_name" binding:"required"`
	Published   bool       `json:"published"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

func (in *postInput) toModel() *model.Post {
	return &model.Post{
		Title:       in.Title,
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		CoverImage:  in.CoverImage,
		AuthorName:  in.AuthorName,
		Published:   in.Published,
		ScheduledAt: in.ScheduledAt,
	}
}

// ListPosts serves the public blog index
func (ctrl *PostController) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	var posts []model.Post
	var total int64
	var err error

	// Admins see drafts and scheduled posts too
	if middleware.IsAdmin(c) && c.Query("all") == "true" {
		posts, total, err = ctrl.postService.ListAll(page, pageSize)
	} else {
		posts, total, err = ctrl.postService.ListPublished(page, pageSize)
	}
	if err != nil {
		apperrors.InternalError(c, "Failed to load posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      posts,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetPostBySlug serves one article
func (ctrl *PostController) GetPostBySlug(c *gin.Context) {
	post, err := ctrl.postService.GetPostBySlug(c.Param("slug"), middleware.IsAdmin(c))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			apperrors.NotFound(c, apperrors.PostNotFound, "Post not found")
			return
		}
		apperrors.InternalError(c, "Failed to load post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost adds an article; admin only
func (ctrl *PostController) CreatePost(c *gin.Context) {
	var input postInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid post details")
		return
	}

	post, err := ctrl.postService.CreatePost(input.toModel())
	if err != nil {
		apperrors.InternalError(c, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost edits an article; admin only
func (ctrl *PostController) UpdatePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid post ID")
		return
	}

	var input postInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid post details")
		return
	}

	post, err := ctrl.postService.UpdatePost(uint(postID), input.toModel())
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			apperrors.NotFound(c, apperrors.PostNotFound, "Post not found")
			return
		}
		apperrors.InternalError(c, "Failed to update post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost removes an article; admin only
func (ctrl *PostController) DeletePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid post ID")
		return
	}

	if err := ctrl.postService.DeletePost(uint(postID)); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			apperrors.NotFound(c, apperrors.PostNotFound, "Post not found")
			return
		}
		apperrors.InternalError(c, "Failed to delete post")
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

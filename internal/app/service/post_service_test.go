package service

import (
	"testing"
	"time"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/repository"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupPostServiceTest(t *testing.T) (PostService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return NewPostService(repository.NewPostRepository(testDB)), testDB
}

func TestPostService_CreatePost_SlugFromTitle(t *testing.T) {
	postService, _ := setupPostServiceTest(t)

	post, err := postService.CreatePost(&model.Post{
		Title:      "Best Cafes for Deep Work",
		AuthorName: "Nafiu",
		Published:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "best-cafes-for-deep-work", post.Slug)
}

func TestPostService_CreatePost_FutureScheduleStaysDraft(t *testing.T) {
	postService, _ := setupPostServiceTest(t)

	future := time.Now().Add(time.Hour)
	post, err := postService.CreatePost(&model.Post{
		Title:       "Scheduled Piece",
		AuthorName:  "Nafiu",
		Published:   true,
		ScheduledAt: &future,
	})
	require.NoError(t, err)
	assert.False(t, post.Published, "a future schedule overrides the published flag")
}

func TestPostService_GetPostBySlug_HidesDrafts(t *testing.T) {
	postService, _ := setupPostServiceTest(t)

	post, err := postService.CreatePost(&model.Post{
		Title:      "Draft Only",
		AuthorName: "Nafiu",
	})
	require.NoError(t, err)

	_, err = postService.GetPostBySlug(post.Slug, false)
	assert.ErrorIs(t, err, ErrPostNotFound)

	found, err := postService.GetPostBySlug(post.Slug, true)
	require.NoError(t, err)
	assert.Equal(t, post.ID, found.ID)
}

func TestPostService_PublishScheduled(t *testing.T) {
	postService, testDB := setupPostServiceTest(t)

	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	due, err := postService.CreatePost(&model.Post{
		Title: "Due Now", AuthorName: "Nafiu", ScheduledAt: &past,
	})
	require.NoError(t, err)
	notYet, err := postService.CreatePost(&model.Post{
		Title: "Not Yet", AuthorName: "Nafiu", ScheduledAt: &future,
	})
	require.NoError(t, err)

	count, err := postService.PublishScheduled(now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	var fromDB model.Post
	require.NoError(t, testDB.First(&fromDB, due.ID).Error)
	assert.True(t, fromDB.Published)

	fromDB = model.Post{}
	require.NoError(t, testDB.First(&fromDB, notYet.ID).Error)
	assert.False(t, fromDB.Published, "future posts stay drafts until their time passes")

	// Second sweep finds nothing left
	count, err = postService.PublishScheduled(now)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPostService_ListPublished(t *testing.T) {
	postService, _ := setupPostServiceTest(t)

	for _, p := range []model.Post{
		{Title: "Published One", AuthorName: "Nafiu", Published: true},
		{Title: "Published Two", AuthorName: "Nafiu", Published: true},
		{Title: "Draft", AuthorName: "Nafiu"},
	} {
		post := p
		_, err := postService.CreatePost(&post)
		require.NoError(t, err)
	}

	posts, total, err := postService.ListPublished(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, posts, 2)

	all, total, err := postService.ListAll(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)
}

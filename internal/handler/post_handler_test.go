package handler

import (
	"net/http"
	"testing"
	"time"

	"gamestore/backend/internal/events"
	"gamestore/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPosts(env *testEnv, authorID string) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	env.repo.SeedPost(models.Post{Title: "Promo Lebaran", Excerpt: "Diskon besar", Content: "...", Slug: "promo-lebaran",
		Published: true, AuthorID: authorID, CreatedAt: base})
	env.repo.SeedPost(models.Post{Title: "Draft rahasia", Excerpt: "Belum siap", Content: "...", Slug: "draft-rahasia",
		AuthorID: authorID, CreatedAt: base.Add(time.Hour)})
	env.repo.SeedPost(models.Post{Title: "Tips Gaming", Excerpt: "Cara memilih promo", Content: "...", Slug: "tips-gaming",
		Published: true, AuthorID: authorID, CreatedAt: base.Add(2 * time.Hour)})
}

func slugs(posts []models.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Slug
	}
	return out
}

func TestGetPosts(t *testing.T) {
	env := newTestEnv(t)
	authorID, _ := env.user(t, "admin@example.com", true)
	seedPosts(env, authorID)

	w := env.request(http.MethodGet, "/api/v1/posts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[PaginatedResponse[models.Post]](t, w)
	assert.Equal(t, []string{"tips-gaming", "promo-lebaran"}, slugs(page.Data))
	require.NotNil(t, page.Data[0].Author)
	assert.Equal(t, "admin@example.com", page.Data[0].Author.DisplayName())

	w = env.request(http.MethodGet, "/api/v1/posts?q=PROMO", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"tips-gaming", "promo-lebaran"}, slugs(decode[PaginatedResponse[models.Post]](t, w).Data))

	w = env.request(http.MethodGet, "/api/v1/posts?q=rahasia", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[PaginatedResponse[models.Post]](t, w).Data)
}

func TestGetPostBySlug(t *testing.T) {
	env := newTestEnv(t)
	authorID, _ := env.user(t, "admin@example.com", true)
	seedPosts(env, authorID)

	w := env.request(http.MethodGet, "/api/v1/posts/tips-gaming", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Tips Gaming", decode[models.Post](t, w).Title)

	w = env.request(http.MethodGet, "/api/v1/posts/draft-rahasia", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", errorOf(t, w))
}

func TestAdminPosts(t *testing.T) {
	env := newTestEnv(t)
	adminID, token := env.user(t, "admin@example.com", true)
	seedPosts(env, adminID)

	w := env.request(http.MethodGet, "/api/v1/admin/posts", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[PaginatedResponse[models.Post]](t, w).Data, 3)

	w = env.request(http.MethodPost, "/api/v1/admin/posts", token, gin.H{
		"title": "  Rilis  Baru: Hades II! ", "content": "Isi", "published": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Post](t, w)
	assert.Equal(t, "rilis-baru-hades-ii", created.Slug)
	assert.Equal(t, adminID, created.AuthorID)

	w = env.request(http.MethodPost, "/api/v1/admin/posts", token, gin.H{
		"title": "Another", "content": "Isi", "slug": "tips-gaming",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Slug is already in use", errorOf(t, w))

	w = env.request(http.MethodPut, "/api/v1/admin/posts/"+created.ID, token, gin.H{
		"title": "Rilis Baru", "content": "Isi baru", "slug": "rilis-baru", "published": false,
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[models.Post](t, w)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "rilis-baru", updated.Slug)
	assert.False(t, updated.Published)

	w = env.request(http.MethodPut, "/api/v1/admin/posts/missing", token, gin.H{"title": "A", "content": "B"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.request(http.MethodDelete, "/api/v1/admin/posts/"+created.ID, token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(http.MethodDelete, "/api/v1/admin/posts/"+created.ID+"?confirm=true", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Post deleted", decode[MessageResponse](t, w).Message)

	assert.Equal(t, []events.Type{events.PostPublished, events.PostDeleted}, env.events.Types())
}

func TestAdminPosts_RejectsBlankSlug(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.user(t, "admin@example.com", true)

	w := env.request(http.MethodPost, "/api/v1/admin/posts", token, gin.H{"title": "!!!", "content": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

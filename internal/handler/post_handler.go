package handler

import (
	"errors"
	"net/http"
	"strings"

	"gamestore/backend/internal/auth"
	"gamestore/backend/internal/events"
	"gamestore/backend/internal/links"
	"gamestore/backend/internal/models"
	"gamestore/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// PostInput is the admin form for a blog post. A blank slug is derived from the title.
type PostInput struct {
	Title     string `json:"title" binding:"required" example:"Tips Memilih Game"`
	Content   string `json:"content" binding:"required"`
	Excerpt   string `json:"excerpt"`
	Slug      string `json:"slug" example:"tips-memilih-game"`
	Published bool   `json:"published"`
}

// endregion

func matchesPost(p models.Post, query string) bool {
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Excerpt), query)
}

// region --- Public Handlers ---

// GetPosts godoc
// @Summary      List published posts
// @Description  Published posts newest first, optionally filtered by a search over title and excerpt.
// @Tags         posts
// @Produce      json
// @Param        q       query     string  false  "Search in title and excerpt"
// @Param        page    query     int     false  "Page number" default(1)
// @Param        limit   query     int     false  "Items per page" default(10)
// @Success      200 {object} PaginatedResponse[models.Post]
// @Router       /posts [get]
func (h *Handler) GetPosts(c *gin.Context) {
	page, limit := pageParams(c)
	posts, err := h.repo.ListPosts(c.Request.Context(), true)
	if err != nil {
		h.storeError(c, err, "blog.postNotFound")
		return
	}

	if query := strings.ToLower(strings.TrimSpace(c.Query("q"))); query != "" {
		filtered := posts[:0:0]
		for _, p := range posts {
			if matchesPost(p, query) {
				filtered = append(filtered, p)
			}
		}
		posts = filtered
	}

	c.JSON(http.StatusOK, Paginate(posts, page, limit))
}

// GetPostBySlug godoc
// @Summary      Get a published post
// @Tags         posts
// @Produce      json
// @Param        slug path string true "Post slug"
// @Success      200 {object} models.Post
// @Failure      404 {object} ErrorResponse "Post not found"
// @Router       /posts/{slug} [get]
func (h *Handler) GetPostBySlug(c *gin.Context) {
	post, err := h.repo.GetPostBySlug(c.Request.Context(), c.Param("slug"), true)
	if err != nil {
		h.storeError(c, err, "blog.postNotFound")
		return
	}
	c.JSON(http.StatusOK, post)
}

// endregion

func (h *Handler) bindPost(c *gin.Context) (models.Post, bool) {
	var input PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.fail(c, http.StatusBadRequest, "validation.invalidInput")
		return models.Post{}, false
	}
	post := models.Post{
		Title:     strings.TrimSpace(input.Title),
		Content:   input.Content,
		Excerpt:   strings.TrimSpace(input.Excerpt),
		Slug:      links.Slugify(strings.TrimSpace(input.Slug)),
		Published: input.Published,
	}
	if post.Slug == "" {
		post.Slug = links.Slugify(post.Title)
	}
	if post.Slug == "" {
		h.fail(c, http.StatusBadRequest, "validation.invalidInput")
		return models.Post{}, false
	}
	return post, true
}

func (h *Handler) savePost(c *gin.Context, post *models.Post, status int) {
	saved, err := h.repo.UpsertPost(auth.RequestContext(c), post)
	if errors.Is(err, store.ErrConflict) {
		h.fail(c, http.StatusConflict, "admin.slugTaken")
		return
	}
	if err != nil {
		h.storeError(c, err, "blog.postNotFound")
		return
	}
	if saved.Published {
		h.publish(c, events.PostPublished, events.PostPayload{ID: saved.ID, Slug: saved.Slug, Title: saved.Title})
	}
	c.JSON(status, saved)
}

// region --- Admin Handlers ---

// ListAdminPosts godoc
// @Summary      List all posts
// @Description  Every post including drafts, newest first.
// @Tags         admin-posts
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Page number" default(1)
// @Param        limit   query     int     false  "Items per page" default(10)
// @Success      200 {object} PaginatedResponse[models.Post]
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Router       /admin/posts [get]
func (h *Handler) ListAdminPosts(c *gin.Context) {
	page, limit := pageParams(c)
	posts, err := h.repo.ListPosts(auth.RequestContext(c), false)
	if err != nil {
		h.storeError(c, err, "blog.postNotFound")
		return
	}
	c.JSON(http.StatusOK, Paginate(posts, page, limit))
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Stores a post authored by the caller.
// @Tags         admin-posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body PostInput true "Post"
// @Success      201 {object} models.Post
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      409 {object} ErrorResponse "Slug already used"
// @Router       /admin/posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
	post, ok := h.bindPost(c)
	if !ok {
		return
	}
	post.AuthorID = auth.UserID(c)
	h.savePost(c, &post, http.StatusCreated)
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Replaces a post. The original author is kept.
// @Tags         admin-posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path string    true "Post ID"
// @Param        input body PostInput true "Post"
// @Success      200 {object} models.Post
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Post not found"
// @Failure      409 {object} ErrorResponse "Slug already used"
// @Router       /admin/posts/{id} [put]
func (h *Handler) UpdatePost(c *gin.Context) {
	post, ok := h.bindPost(c)
	if !ok {
		return
	}
	existing, err := h.repo.GetPost(auth.RequestContext(c), c.Param("id"))
	if err != nil {
		h.storeError(c, err, "blog.postNotFound")
		return
	}
	post.ID = existing.ID
	post.AuthorID = existing.AuthorID
	post.CreatedAt = existing.CreatedAt
	h.savePost(c, &post, http.StatusOK)
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Deletes a post. Requires confirm=true.
// @Tags         admin-posts
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string true "Post ID"
// @Param        confirm query bool   true "Confirmation"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse "Missing confirmation"
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Post not found"
// @Router       /admin/posts/{id} [delete]
func (h *Handler) DeletePost(c *gin.Context) {
	if !h.confirmed(c) {
		return
	}
	ctx := auth.RequestContext(c)
	post, err := h.repo.GetPost(ctx, c.Param("id"))
	if err != nil {
		h.storeError(c, err, "blog.postNotFound")
		return
	}
	if err := h.repo.DeletePost(ctx, post.ID); err != nil {
		h.storeError(c, err, "blog.postNotFound")
		return
	}
	h.publish(c, events.PostDeleted, events.PostPayload{ID: post.ID, Slug: post.Slug, Title: post.Title})
	c.JSON(http.StatusOK, MessageResponse{Message: h.tr.Msg(c, "admin.postDeleted")})
}

// endregion

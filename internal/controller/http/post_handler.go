package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"blog-backend/internal/repo/persistent"
	"blog-backend/internal/usecase"
	"blog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{postUseCase: postUseCase, logger: logger}
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func parseListQuery(c *gin.Context) usecase.ListQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	if page < 0 {
		page = 0
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	size = clampInt(size, 1, 100)

	return usecase.ListQuery{
		Page:    page,
		Size:    size,
		SortBy:  c.DefaultQuery("sort_by", "created_at"),
		SortDir: c.DefaultQuery("sort_dir", "desc"),
		Lang:    c.Query("lang"),
	}
}

type CreatePostRequest struct {
	Title         string   `json:"title" binding:"required,min=3,max=200"`
	Content       string   `json:"content" binding:"required,min=10"`
	Excerpt       string   `json:"excerpt" binding:"max=500"`
	Author        string   `json:"author" binding:"max=100"`
	FeaturedImage string   `json:"featured_image" binding:"max=500"`
	Tags          []string `json:"tags"`
	Published     bool     `json:"published"`
}

type UpdatePostRequest struct {
	Title         *string   `json:"title" binding:"omitempty,min=3,max=200"`
	Content       *string   `json:"content" binding:"omitempty,min=10"`
	Excerpt       *string   `json:"excerpt" binding:"omitempty,max=500"`
	Author        *string   `json:"author" binding:"omitempty,max=100"`
	FeaturedImage *string   `json:"featured_image" binding:"omitempty,max=500"`
	Published     *bool     `json:"published"`
	Tags          *[]string `json:"tags"`
}

type GeneratePostRequest struct {
	Prompt string `json:"prompt" binding:"required,min=10"`
	Author string `json:"author" binding:"max=100"`
}

// imageURLParam reads the image URL from the query string, falling back to a
// JSON body for clients that prefer one.
func imageURLParam(c *gin.Context) (string, bool) {
	if url := c.Query("image_url"); url != "" {
		return url, true
	}

	var req struct {
		ImageURL string `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err == nil && req.ImageURL != "" {
		return req.ImageURL, true
	}

	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "image_url is required"})
	return "", false
}

// CreatePost godoc
// @Summary      Create a new blog post
// @Description  Create a blog post with optional tags. Excerpt is derived from content when omitted.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePostRequest true "Post payload"
// @Success      201  {object}  entity.Post
// @Failure      422  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.CreatePost(usecase.CreatePostInput{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Author:        req.Author,
		FeaturedImage: req.FeaturedImage,
		Tags:          req.Tags,
		Published:     req.Published,
	})
	if err != nil {
		h.logger.Error("Failed to create post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPost godoc
// @Summary      Get post by ID
// @Description  Fetch a single post with its tags and increment its view count
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	post, err := h.postUseCase.GetPost(id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to get post %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get post"})
		return
	}

	if err := h.postUseCase.IncrementViewCount(id); err != nil {
		h.logger.Warn("Failed to increment view count for post %d: %v", id, err)
	} else {
		post.ViewCount++
	}

	c.JSON(http.StatusOK, post)
}

// ListPosts godoc
// @Summary      List published posts
// @Description  Paginated published posts with sorting and optional locale selection
// @Tags         posts
// @Produce      json
// @Param        page query int false "Page number (0-based)"
// @Param        size query int false "Page size (1-100)"
// @Param        sort_by query string false "Sort field" Enums(id, title, author, view_count, created_at, updated_at, published_at)
// @Param        sort_dir query string false "Sort direction" Enums(asc, desc)
// @Param        lang query string false "Content language" Enums(en, bn, hi)
// @Success      200  {object}  usecase.PageEnvelope
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	envelope, err := h.postUseCase.GetPublishedPosts(parseListQuery(c))
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list posts"})
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// SearchPosts godoc
// @Summary      Search published posts
// @Description  Case-insensitive substring search over title, content and excerpt
// @Tags         posts
// @Produce      json
// @Param        keyword query string true "Search keyword"
// @Param        page query int false "Page number (0-based)"
// @Param        size query int false "Page size (1-100)"
// @Success      200  {object}  usecase.SearchEnvelope
// @Failure      422  {object}  map[string]string
// @Router       /posts/search [get]
func (h *PostHandler) SearchPosts(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("keyword"))
	if keyword == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Keyword is required"})
		return
	}

	query := parseListQuery(c)
	envelope, err := h.postUseCase.SearchPosts(keyword, query.Page, query.Size)
	if err != nil {
		h.logger.Error("Failed to search posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search posts"})
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// GetPostsByTag godoc
// @Summary      List published posts carrying a tag
// @Tags         posts
// @Produce      json
// @Param        tag path string true "Tag (exact match)"
// @Param        page query int false "Page number (0-based)"
// @Param        size query int false "Page size (1-100)"
// @Success      200  {object}  usecase.SearchEnvelope
// @Router       /posts/tag/{tag} [get]
func (h *PostHandler) GetPostsByTag(c *gin.Context) {
	tag := c.Param("tag")

	query := parseListQuery(c)
	envelope, err := h.postUseCase.GetPostsByTag(tag, query.Page, query.Size)
	if err != nil {
		h.logger.Error("Failed to list posts by tag %q: %v", tag, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list posts"})
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// GetTopPosts godoc
// @Summary      Most viewed published posts
// @Tags         posts
// @Produce      json
// @Param        limit query int false "Max posts to return (1-50)"
// @Success      200  {array}  entity.Post
// @Router       /posts/top [get]
func (h *PostHandler) GetTopPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	limit = clampInt(limit, 1, 50)

	posts, err := h.postUseCase.GetTopPosts(limit)
	if err != nil {
		h.logger.Error("Failed to get top posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get top posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetStatistics godoc
// @Summary      Blog-wide statistics
// @Tags         posts
// @Produce      json
// @Success      200  {object}  entity.BlogStats
// @Router       /posts/stats [get]
func (h *PostHandler) GetStatistics(c *gin.Context) {
	stats, err := h.postUseCase.GetStatistics()
	if err != nil {
		h.logger.Error("Failed to get statistics: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// UpdatePost godoc
// @Summary      Update a blog post
// @Description  Partial update; omitted fields stay unchanged, a supplied tag list fully replaces the existing one
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Param        request body UpdatePostRequest true "Fields to change"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.UpdatePost(id, usecase.UpdatePostInput{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Author:        req.Author,
		FeaturedImage: req.FeaturedImage,
		Published:     req.Published,
		Tags:          req.Tags,
	})
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to update post %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete a blog post
// @Description  Removes the post and its tags, images and comments
// @Tags         posts
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      204  "No Content"
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.postUseCase.DeletePost(id); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to delete post %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.Status(http.StatusNoContent)
}

// TogglePublish godoc
// @Summary      Toggle publish state
// @Description  Flips the published flag; the first publish stamps published_at
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/publish [patch]
func (h *PostHandler) TogglePublish(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	post, err := h.postUseCase.TogglePublish(id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to toggle publish for post %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle publish"})
		return
	}

	message := "Post unpublished"
	if post.Published {
		message = "Post published"
	}

	c.JSON(http.StatusOK, gin.H{"message": message, "published": post.Published})
}

// GeneratePost godoc
// @Summary      Generate a blog post with AI
// @Description  Sends the prompt to the AI backend and stores the draft as an unpublished post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GeneratePostRequest true "Generation prompt"
// @Success      201  {object}  entity.Post
// @Failure      422  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /posts/generate [post]
func (h *PostHandler) GeneratePost(c *gin.Context) {
	var req GeneratePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.GeneratePost(c.Request.Context(), req.Prompt, req.Author)
	if err != nil {
		h.logger.Error("Failed to generate post: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// AddImage godoc
// @Summary      Attach an image URL to a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Param        image_url query string true "Image URL"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /posts/{id}/images [post]
func (h *PostHandler) AddImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	imageURL, ok := imageURLParam(c)
	if !ok {
		return
	}

	if err := h.postUseCase.AddImage(id, imageURL); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to add image to post %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image added", "image_url": imageURL})
}

// SetFeaturedImage godoc
// @Summary      Set the featured image of a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Param        image_url query string true "Image URL"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /posts/{id}/featured-image [patch]
func (h *PostHandler) SetFeaturedImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	imageURL, ok := imageURLParam(c)
	if !ok {
		return
	}

	if err := h.postUseCase.SetFeaturedImage(id, imageURL); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to set featured image for post %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set featured image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Featured image updated", "image_url": imageURL})
}

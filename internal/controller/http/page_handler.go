package http

import (
	"errors"
	"net/http"

	"blog-backend/internal/repo/persistent"
	"blog-backend/internal/usecase"
	"blog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	pageUseCase usecase.PageUseCase
	logger      *logger.Logger
}

func NewPageHandler(pageUseCase usecase.PageUseCase, logger *logger.Logger) *PageHandler {
	return &PageHandler{pageUseCase: pageUseCase, logger: logger}
}

type CreatePageRequest struct {
	Title     string `json:"title" binding:"required,min=1,max=200"`
	Slug      string `json:"slug" binding:"required,min=1,max=200"`
	Content   string `json:"content" binding:"required"`
	Published bool   `json:"published"`
}

type UpdatePageRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=1,max=200"`
	Slug      *string `json:"slug" binding:"omitempty,min=1,max=200"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
}

// CreatePage godoc
// @Summary      Create a static page
// @Tags         pages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePageRequest true "Page payload"
// @Success      201  {object}  entity.Page
// @Failure      422  {object}  map[string]string
// @Router       /pages [post]
func (h *PageHandler) CreatePage(c *gin.Context) {
	var req CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	page, err := h.pageUseCase.CreatePage(usecase.CreatePageInput{
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		h.logger.Error("Failed to create page: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create page"})
		return
	}

	c.JSON(http.StatusCreated, page)
}

// GetPageBySlug godoc
// @Summary      Get a page by slug
// @Tags         pages
// @Produce      json
// @Param        slug path string true "Page slug"
// @Success      200  {object}  entity.Page
// @Failure      404  {object}  map[string]string
// @Router       /pages/{slug} [get]
func (h *PageHandler) GetPageBySlug(c *gin.Context) {
	slug := c.Param("slug")

	page, err := h.pageUseCase.GetPageBySlug(slug)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		h.logger.Error("Failed to get page %q: %v", slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get page"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// ListPages godoc
// @Summary      List pages
// @Tags         pages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Page
// @Router       /pages [get]
func (h *PageHandler) ListPages(c *gin.Context) {
	pages, err := h.pageUseCase.ListPages()
	if err != nil {
		h.logger.Error("Failed to list pages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pages"})
		return
	}

	c.JSON(http.StatusOK, pages)
}

// UpdatePage godoc
// @Summary      Update a page
// @Tags         pages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Page ID"
// @Param        request body UpdatePageRequest true "Fields to change"
// @Success      200  {object}  entity.Page
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /pages/{id} [put]
func (h *PageHandler) UpdatePage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	page, err := h.pageUseCase.UpdatePage(id, usecase.UpdatePageInput{
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		h.logger.Error("Failed to update page %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update page"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// DeletePage godoc
// @Summary      Delete a page
// @Tags         pages
// @Security     BearerAuth
// @Param        id path int true "Page ID"
// @Success      204  "No Content"
// @Failure      404  {object}  map[string]string
// @Router       /pages/{id} [delete]
func (h *PageHandler) DeletePage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.pageUseCase.DeletePage(id); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		h.logger.Error("Failed to delete page %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete page"})
		return
	}

	c.Status(http.StatusNoContent)
}

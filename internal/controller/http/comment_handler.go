package http

import (
	"errors"
	"net/http"

	"blog-backend/internal/repo/persistent"
	"blog-backend/internal/usecase"
	"blog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{commentUseCase: commentUseCase, logger: logger}
}

type CreateCommentRequest struct {
	Content     string `json:"content" binding:"required,min=1,max=2000"`
	AuthorName  string `json:"author_name" binding:"required,max=100"`
	AuthorEmail string `json:"author_email" binding:"omitempty,email"`
	ParentID    *int64 `json:"parent_id"`
}

// CreateComment godoc
// @Summary      Add a comment to a post
// @Description  Comments start unapproved and only appear publicly after moderation
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        request body CreateCommentRequest true "Comment payload"
// @Success      201  {object}  entity.Comment
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /posts/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUseCase.CreateComment(usecase.CreateCommentInput{
		PostID:      postID,
		ParentID:    req.ParentID,
		Content:     req.Content,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
	})
	if err != nil {
		switch {
		case errors.Is(err, persistent.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post or parent comment not found"})
		case errors.Is(err, usecase.ErrParentMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			h.logger.Error("Failed to create comment on post %d: %v", postID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		}
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListComments godoc
// @Summary      List approved comments of a post
// @Tags         comments
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200  {array}  entity.Comment
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID, ok := parseIDParam(c)
	if !ok {
		return
	}

	comments, err := h.commentUseCase.ListComments(postID, true)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to list comments for post %d: %v", postID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// ApproveComment godoc
// @Summary      Approve a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Comment ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id}/approve [patch]
func (h *CommentHandler) ApproveComment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.commentUseCase.ApproveComment(id); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		h.logger.Error("Failed to approve comment %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment approved"})
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        id path int true "Comment ID"
// @Success      204  "No Content"
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.commentUseCase.DeleteComment(id); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		h.logger.Error("Failed to delete comment %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	c.Status(http.StatusNoContent)
}

package http

import (
	"errors"
	"net/http"

	"blog-backend/internal/repo/persistent"
	"blog-backend/internal/usecase"
	"blog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	newsletterUseCase usecase.NewsletterUseCase
	logger            *logger.Logger
}

func NewNewsletterHandler(newsletterUseCase usecase.NewsletterUseCase, logger *logger.Logger) *NewsletterHandler {
	return &NewsletterHandler{newsletterUseCase: newsletterUseCase, logger: logger}
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"max=100"`
}

type UnsubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Subscribe godoc
// @Summary      Subscribe to the newsletter
// @Description  Reactivates a previously unsubscribed email instead of duplicating it
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        request body SubscribeRequest true "Subscriber"
// @Success      201  {object}  entity.NewsletterSubscription
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /newsletter/subscribe [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.newsletterUseCase.Subscribe(req.Email, req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrAlreadySubscribed) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already subscribed"})
			return
		}
		h.logger.Error("Failed to subscribe %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// Unsubscribe godoc
// @Summary      Unsubscribe from the newsletter
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        request body UnsubscribeRequest true "Subscriber email"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /newsletter/unsubscribe [post]
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := h.newsletterUseCase.Unsubscribe(req.Email); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
			return
		}
		h.logger.Error("Failed to unsubscribe %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unsubscribe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unsubscribed"})
}

// ListSubscribers godoc
// @Summary      List active newsletter subscribers
// @Tags         newsletter
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.NewsletterSubscription
// @Router       /newsletter/subscribers [get]
func (h *NewsletterHandler) ListSubscribers(c *gin.Context) {
	subs, err := h.newsletterUseCase.ListSubscribers()
	if err != nil {
		h.logger.Error("Failed to list subscribers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list subscribers"})
		return
	}

	c.JSON(http.StatusOK, subs)
}

package http

import (
	"errors"
	"net/http"
	"time"

	"blog-backend/internal/repo/persistent"
	"blog-backend/internal/usecase"
	"blog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PollHandler struct {
	pollUseCase usecase.PollUseCase
	logger      *logger.Logger
}

func NewPollHandler(pollUseCase usecase.PollUseCase, logger *logger.Logger) *PollHandler {
	return &PollHandler{pollUseCase: pollUseCase, logger: logger}
}

type CreatePollRequest struct {
	Question  string     `json:"question" binding:"required,min=3,max=500"`
	Options   []string   `json:"options" binding:"required,min=2,dive,required,max=200"`
	ExpiresAt *time.Time `json:"expires_at"`
}

type VoteRequest struct {
	OptionID int64 `json:"option_id" binding:"required"`
}

// CreatePoll godoc
// @Summary      Create a poll
// @Tags         polls
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePollRequest true "Poll payload"
// @Success      201  {object}  entity.Poll
// @Failure      422  {object}  map[string]string
// @Router       /polls [post]
func (h *PollHandler) CreatePoll(c *gin.Context) {
	var req CreatePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	poll, err := h.pollUseCase.CreatePoll(usecase.CreatePollInput{
		Question:  req.Question,
		Options:   req.Options,
		ExpiresAt: req.ExpiresAt,
	})
	if err != nil {
		h.logger.Error("Failed to create poll: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create poll"})
		return
	}

	c.JSON(http.StatusCreated, poll)
}

// ListPolls godoc
// @Summary      List active polls
// @Tags         polls
// @Produce      json
// @Success      200  {array}  entity.Poll
// @Router       /polls [get]
func (h *PollHandler) ListPolls(c *gin.Context) {
	polls, err := h.pollUseCase.ListActivePolls()
	if err != nil {
		h.logger.Error("Failed to list polls: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list polls"})
		return
	}

	c.JSON(http.StatusOK, polls)
}

// GetPoll godoc
// @Summary      Get poll by ID
// @Tags         polls
// @Produce      json
// @Param        id path int true "Poll ID"
// @Success      200  {object}  entity.Poll
// @Failure      404  {object}  map[string]string
// @Router       /polls/{id} [get]
func (h *PollHandler) GetPoll(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	poll, err := h.pollUseCase.GetPoll(id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Poll not found"})
			return
		}
		h.logger.Error("Failed to get poll %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get poll"})
		return
	}

	c.JSON(http.StatusOK, poll)
}

// Vote godoc
// @Summary      Vote on a poll option
// @Tags         polls
// @Accept       json
// @Produce      json
// @Param        id path int true "Poll ID"
// @Param        request body VoteRequest true "Option to vote for"
// @Success      200  {object}  entity.Poll
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /polls/{id}/vote [post]
func (h *PollHandler) Vote(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	poll, err := h.pollUseCase.Vote(id, req.OptionID, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, persistent.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Poll or option not found"})
		case errors.Is(err, usecase.ErrPollInactive), errors.Is(err, usecase.ErrPollExpired):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			h.logger.Error("Failed to vote on poll %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to vote"})
		}
		return
	}

	c.JSON(http.StatusOK, poll)
}

// DeletePoll godoc
// @Summary      Delete a poll
// @Tags         polls
// @Security     BearerAuth
// @Param        id path int true "Poll ID"
// @Success      204  "No Content"
// @Failure      404  {object}  map[string]string
// @Router       /polls/{id} [delete]
func (h *PollHandler) DeletePoll(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.pollUseCase.DeletePoll(id); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Poll not found"})
			return
		}
		h.logger.Error("Failed to delete poll %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete poll"})
		return
	}

	c.Status(http.StatusNoContent)
}

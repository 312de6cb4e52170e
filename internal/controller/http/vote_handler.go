package http

import (
	"errors"
	"net/http"

	"timeshot/internal/usecase"
	"timeshot/pkg/logger"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voteUseCase usecase.VoteUseCase
	logger      *logger.Logger
}

func NewVoteHandler(voteUseCase usecase.VoteUseCase, logger *logger.Logger) *VoteHandler {
	return &VoteHandler{
		voteUseCase: voteUseCase,
		logger:      logger,
	}
}

// Vote godoc
// @Summary      Vote for a story
// @Description  Cast a vote for a story. Voting twice is a no-op; voting for your own story is rejected.
// @Tags         votes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Story ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /stories/{id}/vote [post]
func (h *VoteHandler) Vote(c *gin.Context) {
	storyID := c.Param("id")
	userID := c.GetString("user_id")

	_, created, err := h.voteUseCase.Vote(userID, storyID)
	if err != nil {
		if errors.Is(err, usecase.ErrOwnVote) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, usecase.ErrStoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
			return
		}
		h.logger.Error("Failed to vote for story %s: %v", storyID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to vote"})
		return
	}

	voteCount, _ := h.voteUseCase.GetVoteCount(storyID)

	message := "Vote counted"
	if !created {
		message = "Vote already counted"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "voted": created, "votes_count": voteCount})
}

// GetVoteCount godoc
// @Summary      Get vote count
// @Tags         votes
// @Produce      json
// @Param        id path string true "Story ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /stories/{id}/votes [get]
func (h *VoteHandler) GetVoteCount(c *gin.Context) {
	storyID := c.Param("id")

	count, err := h.voteUseCase.GetVoteCount(storyID)
	if err != nil {
		h.logger.Error("Failed to count votes for story %s: %v", storyID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count votes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"story_id": storyID, "votes_count": count})
}

package http

import (
	"errors"
	"net/http"
	"time"

	"timeshot/internal/entity"
	"timeshot/internal/usecase"
	"timeshot/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardUseCase usecase.LeaderboardUseCase
	logger             *logger.Logger
}

func NewLeaderboardHandler(leaderboardUseCase usecase.LeaderboardUseCase, logger *logger.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardUseCase: leaderboardUseCase,
		logger:             logger,
	}
}

func (h *LeaderboardHandler) formatEntryResponse(entry *entity.LeaderboardEntry) map[string]interface{} {
	response := map[string]interface{}{
		"id":   entry.ID,
		"week": entry.Week.Format("2006-01-02"),
		"main": entry.Main,
	}

	if entry.Story != nil {
		response["story"] = map[string]interface{}{
			"id":           entry.Story.ID,
			"description":  entry.Story.Description,
			"orientation":  entry.Story.Orientation,
			"before_image": formatImageResponse(entry.Story.BeforeImage),
			"after_image":  formatImageResponse(entry.Story.AfterImage),
		}
	} else {
		response["story_id"] = entry.StoryID
	}

	return response
}

// ListWinners godoc
// @Summary      List weekly winners
// @Description  Get leaderboard entries, main winners first, newest week first
// @Tags         leaderboard
// @Produce      json
// @Param        limit query int false "Number of entries to return (max 100)"
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /leaderboard [get]
func (h *LeaderboardHandler) ListWinners(c *gin.Context) {
	limit, offset := pagination(c)

	entries, err := h.leaderboardUseCase.ListWinners(limit, offset)
	if err != nil {
		h.logger.Error("Failed to list winners: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}

	winners := make([]map[string]interface{}, len(entries))
	for i, entry := range entries {
		winners[i] = h.formatEntryResponse(entry)
	}

	c.JSON(http.StatusOK, gin.H{"winners": winners, "count": len(winners), "offset": offset})
}

type CreateEntryRequest struct {
	StoryID string `json:"story_id" binding:"required"`
	Week    string `json:"week" binding:"omitempty,datetime=2006-01-02"`
	Main    bool   `json:"main"`
}

// CreateEntry godoc
// @Summary      Mark a story as winner
// @Description  Admin only. Adds a story to the leaderboard; week defaults to the story's own week.
// @Tags         leaderboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateEntryRequest true "Winner data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/leaderboard [post]
func (h *LeaderboardHandler) CreateEntry(c *gin.Context) {
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var week *time.Time
	if req.Week != "" {
		parsed, err := time.Parse("2006-01-02", req.Week)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "week must be YYYY-MM-DD"})
			return
		}
		week = &parsed
	}

	entry, err := h.leaderboardUseCase.CreateEntry(req.StoryID, week, req.Main)
	if err != nil {
		if errors.Is(err, usecase.ErrStoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
			return
		}
		h.logger.Error("Failed to create leaderboard entry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create leaderboard entry"})
		return
	}

	c.JSON(http.StatusCreated, h.formatEntryResponse(entry))
}

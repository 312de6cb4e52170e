package http

import (
	"net/http"

	"timeshot/internal/entity"
	"timeshot/internal/usecase"
	"timeshot/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderationUseCase usecase.ModerationUseCase
	voteUseCase       usecase.VoteUseCase
	logger            *logger.Logger
}

func NewModerationHandler(moderationUseCase usecase.ModerationUseCase, voteUseCase usecase.VoteUseCase, logger *logger.Logger) *ModerationHandler {
	return &ModerationHandler{
		moderationUseCase: moderationUseCase,
		voteUseCase:       voteUseCase,
		logger:            logger,
	}
}

func (h *ModerationHandler) respondStory(c *gin.Context, status int, story *entity.Story) {
	voteCount, _ := h.voteUseCase.GetVoteCount(story.ID)
	response := map[string]interface{}{
		"id":                  story.ID,
		"user_id":             story.UserID,
		"description":         story.Description,
		"description_status":  story.DescriptionStatus,
		"description_comment": story.DescriptionComment,
		"status":              story.Status,
		"draft":               story.Draft,
		"admin_viewed":        story.AdminViewed,
		"votes_count":         voteCount,
		"before_image":        formatImageResponse(story.BeforeImage),
		"after_image":         formatImageResponse(story.AfterImage),
		"created_at":          story.CreatedAt,
	}
	if story.User != nil {
		response["author"] = map[string]interface{}{
			"id":       story.User.ID,
			"username": story.User.Username,
			"email":    story.User.Email,
		}
	}
	c.JSON(status, response)
}

// ListPending godoc
// @Summary      List stories awaiting moderation
// @Description  Admin only. Submitted, non-draft stories in the moderation queue.
// @Tags         moderation
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of stories to return (max 100)"
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /admin/stories [get]
func (h *ModerationHandler) ListPending(c *gin.Context) {
	limit, offset := pagination(c)

	stories, err := h.moderationUseCase.ListPending(limit, offset)
	if err != nil {
		h.logger.Error("Failed to list pending stories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stories"})
		return
	}

	pending := make([]map[string]interface{}, len(stories))
	for i, story := range stories {
		pending[i] = map[string]interface{}{
			"id":                 story.ID,
			"user_id":            story.UserID,
			"description":        story.Description,
			"description_status": story.DescriptionStatus,
			"status":             story.Status,
			"admin_viewed":       story.AdminViewed,
			"before_image":       formatImageResponse(story.BeforeImage),
			"after_image":        formatImageResponse(story.AfterImage),
			"created_at":         story.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{"stories": pending, "count": len(pending), "offset": offset})
}

type ModerationRequest struct {
	Status             *string `json:"status" binding:"omitempty,oneof=pending published rejected"`
	DescriptionStatus  *string `json:"description_status" binding:"omitempty,oneof=pending published rejected editing"`
	DescriptionComment *string `json:"description_comment"`
	Draft              *bool   `json:"draft"`
	AdminViewed        *bool   `json:"admin_viewed"`
	BeforeComment      *string `json:"before_comment"`
	AfterComment       *string `json:"after_comment"`
}

// SaveStory godoc
// @Summary      Moderate a story
// @Description  Admin only. Applies the given fields and runs the status cascade: publishing pushes the description and both images to published; marking as draft hands the description back to the owner.
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Story ID"
// @Param        request body ModerationRequest true "Fields to change"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/stories/{id} [patch]
func (h *ModerationHandler) SaveStory(c *gin.Context) {
	storyID := c.Param("id")

	var req ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.ModerationInput{
		DescriptionComment: req.DescriptionComment,
		Draft:              req.Draft,
		AdminViewed:        req.AdminViewed,
		BeforeComment:      req.BeforeComment,
		AfterComment:       req.AfterComment,
	}
	if req.Status != nil {
		status := entity.ModerationStatus(*req.Status)
		input.Status = &status
	}
	if req.DescriptionStatus != nil {
		status := entity.ModerationStatus(*req.DescriptionStatus)
		input.DescriptionStatus = &status
	}

	story, err := h.moderationUseCase.SaveStory(storyID, input)
	if err != nil {
		h.logger.Error("Failed to moderate story %s: %v", storyID, err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
		return
	}

	h.respondStory(c, http.StatusOK, story)
}

// ApproveStory godoc
// @Summary      Publish a story
// @Description  Admin only. Shortcut for setting status to published.
// @Tags         moderation
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Story ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /admin/stories/{id}/approve [post]
func (h *ModerationHandler) ApproveStory(c *gin.Context) {
	storyID := c.Param("id")

	story, err := h.moderationUseCase.ApproveStory(storyID)
	if err != nil {
		h.logger.Error("Failed to approve story %s: %v", storyID, err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
		return
	}

	h.respondStory(c, http.StatusOK, story)
}

type RejectRequest struct {
	Comment string `json:"comment"`
}

// RejectStory godoc
// @Summary      Reject a story
// @Description  Admin only. Sets status to rejected with an optional comment for the author.
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Story ID"
// @Param        request body RejectRequest false "Rejection comment"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /admin/stories/{id}/reject [post]
func (h *ModerationHandler) RejectStory(c *gin.Context) {
	storyID := c.Param("id")

	var req RejectRequest
	_ = c.ShouldBindJSON(&req)

	story, err := h.moderationUseCase.RejectStory(storyID, req.Comment)
	if err != nil {
		h.logger.Error("Failed to reject story %s: %v", storyID, err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
		return
	}

	h.respondStory(c, http.StatusOK, story)
}

package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"timeshot/internal/entity"
	"timeshot/internal/usecase"
	"timeshot/pkg/logger"

	"github.com/gin-gonic/gin"
)

type StoryHandler struct {
	storyUseCase usecase.StoryUseCase
	voteUseCase  usecase.VoteUseCase
	logger       *logger.Logger
}

func NewStoryHandler(storyUseCase usecase.StoryUseCase, voteUseCase usecase.VoteUseCase, logger *logger.Logger) *StoryHandler {
	return &StoryHandler{
		storyUseCase: storyUseCase,
		voteUseCase:  voteUseCase,
		logger:       logger,
	}
}

func formatImageResponse(image *entity.Image) map[string]interface{} {
	if image == nil {
		return nil
	}
	return map[string]interface{}{
		"id":      image.ID,
		"url":     image.URL,
		"year":    image.Year,
		"status":  image.Status,
		"comment": image.Comment,
	}
}

func (h *StoryHandler) formatStoryResponse(story *entity.Story, voteCount int64) map[string]interface{} {
	response := map[string]interface{}{
		"id":                  story.ID,
		"user_id":             story.UserID,
		"description":         story.Description,
		"description_status":  story.DescriptionStatus,
		"description_comment": story.DescriptionComment,
		"status":              story.Status,
		"orientation":         story.Orientation,
		"week":                story.Week.Format("2006-01-02"),
		"draft":               story.Draft,
		"votes_count":         voteCount,
		"before_image":        formatImageResponse(story.BeforeImage),
		"after_image":         formatImageResponse(story.AfterImage),
		"created_at":          story.CreatedAt,
		"updated_at":          story.UpdatedAt,
	}

	if story.User != nil {
		response["author"] = map[string]interface{}{
			"id":       story.User.ID,
			"username": story.User.Username,
			"name":     story.User.FullName(),
			"city":     story.User.City,
		}
	}

	return response
}

type StoryRequest struct {
	Description string `form:"description" binding:"required"`
	Draft       bool   `form:"draft"`
	Orientation string `form:"orientation" binding:"omitempty,oneof=vertical horizontal"`
}

// slotUploadFromForm reads one image slot from the multipart form. A missing
// file with a present year still produces an upload so year-only edits work.
func slotUploadFromForm(c *gin.Context, field string) (*usecase.SlotUpload, io.Closer, error) {
	var upload *usecase.SlotUpload

	if yearStr := c.PostForm(field + "_year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, nil, errors.New(field + "_year must be a number")
		}
		upload = &usecase.SlotUpload{Year: &year}
	}

	fileHeader, err := c.FormFile(field)
	if err != nil {
		return upload, nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}

	if upload == nil {
		upload = &usecase.SlotUpload{}
	}
	upload.Data = file
	upload.Filename = fileHeader.Filename
	upload.ContentType = fileHeader.Header.Get("Content-Type")
	return upload, file, nil
}

func (h *StoryHandler) bindStoryInput(c *gin.Context) (usecase.StoryInput, func(), bool) {
	var req StoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return usecase.StoryInput{}, nil, false
	}

	before, beforeCloser, err := slotUploadFromForm(c, "before")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return usecase.StoryInput{}, nil, false
	}
	after, afterCloser, err := slotUploadFromForm(c, "after")
	if err != nil {
		if beforeCloser != nil {
			beforeCloser.Close()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return usecase.StoryInput{}, nil, false
	}

	cleanup := func() {
		if beforeCloser != nil {
			beforeCloser.Close()
		}
		if afterCloser != nil {
			afterCloser.Close()
		}
	}

	input := usecase.StoryInput{
		Description: req.Description,
		Draft:       req.Draft,
		Orientation: entity.Orientation(req.Orientation),
		Before:      before,
		After:       after,
	}
	return input, cleanup, true
}

// CreateStory godoc
// @Summary      Create a story
// @Description  Create a before/after story with optional image uploads. Saving as draft keeps the content editable; otherwise it is submitted for moderation.
// @Tags         stories
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        description formData string true "Story description"
// @Param        draft formData bool false "Save as draft"
// @Param        orientation formData string false "Image orientation" Enums(vertical, horizontal)
// @Param        before formData file false "Before image (jpg/jpeg/png)"
// @Param        before_year formData int false "Year the before photo was taken"
// @Param        after formData file false "After image (jpg/jpeg/png)"
// @Param        after_year formData int false "Year the after photo was taken"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /stories [post]
func (h *StoryHandler) CreateStory(c *gin.Context) {
	userID := c.GetString("user_id")

	input, cleanup, ok := h.bindStoryInput(c)
	if !ok {
		return
	}
	defer cleanup()

	story, err := h.storyUseCase.CreateStory(userID, input)
	if err != nil {
		h.logger.Error("Failed to create story: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create story"})
		return
	}

	c.JSON(http.StatusCreated, h.formatStoryResponse(story, 0))
}

// UpdateStory godoc
// @Summary      Update a story
// @Description  Update story content. Only the owner can update, and only fields still open for editing change; uploads into moderated slots are ignored.
// @Tags         stories
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Story ID"
// @Param        description formData string true "Story description"
// @Param        draft formData bool false "Keep as draft"
// @Param        before formData file false "Before image (jpg/jpeg/png)"
// @Param        before_year formData int false "Year the before photo was taken"
// @Param        after formData file false "After image (jpg/jpeg/png)"
// @Param        after_year formData int false "Year the after photo was taken"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /stories/{id} [put]
func (h *StoryHandler) UpdateStory(c *gin.Context) {
	storyID := c.Param("id")
	userID := c.GetString("user_id")

	input, cleanup, ok := h.bindStoryInput(c)
	if !ok {
		return
	}
	defer cleanup()

	story, err := h.storyUseCase.UpdateStory(storyID, userID, input)
	if err != nil {
		if errors.Is(err, usecase.ErrNotOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to update story %s: %v", storyID, err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
		return
	}

	voteCount, _ := h.voteUseCase.GetVoteCount(story.ID)
	c.JSON(http.StatusOK, h.formatStoryResponse(story, voteCount))
}

// GetStory godoc
// @Summary      Get story by ID
// @Tags         stories
// @Produce      json
// @Param        id path string true "Story ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /stories/{id} [get]
func (h *StoryHandler) GetStory(c *gin.Context) {
	storyID := c.Param("id")

	story, err := h.storyUseCase.GetStory(storyID, c.GetString("user_id"), c.GetString("role"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
		return
	}

	voteCount, _ := h.voteUseCase.GetVoteCount(story.ID)
	c.JSON(http.StatusOK, h.formatStoryResponse(story, voteCount))
}

// ListStories godoc
// @Summary      List published stories
// @Description  Get published, non-draft stories, newest first
// @Tags         stories
// @Produce      json
// @Param        limit query int false "Number of stories to return (max 100)"
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /stories [get]
func (h *StoryHandler) ListStories(c *gin.Context) {
	limit, offset := pagination(c)

	stories, err := h.storyUseCase.ListStories(limit, offset)
	if err != nil {
		h.logger.Error("Failed to list stories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stories"})
		return
	}

	storiesWithVotes := make([]map[string]interface{}, len(stories))
	for i, story := range stories {
		voteCount, _ := h.voteUseCase.GetVoteCount(story.ID)
		storiesWithVotes[i] = h.formatStoryResponse(story, voteCount)
	}

	c.JSON(http.StatusOK, gin.H{"stories": storiesWithVotes, "count": len(storiesWithVotes), "offset": offset})
}

// ListMyStories godoc
// @Summary      List own stories
// @Description  Get all stories of the authenticated user, drafts included
// @Tags         stories
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of stories to return (max 100)"
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /stories/mine [get]
func (h *StoryHandler) ListMyStories(c *gin.Context) {
	userID := c.GetString("user_id")
	limit, offset := pagination(c)

	stories, err := h.storyUseCase.ListUserStories(userID, limit, offset)
	if err != nil {
		h.logger.Error("Failed to list user stories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stories"})
		return
	}

	storiesWithVotes := make([]map[string]interface{}, len(stories))
	for i, story := range stories {
		voteCount, _ := h.voteUseCase.GetVoteCount(story.ID)
		storiesWithVotes[i] = h.formatStoryResponse(story, voteCount)
	}

	c.JSON(http.StatusOK, gin.H{"stories": storiesWithVotes, "count": len(storiesWithVotes), "offset": offset})
}

func pagination(c *gin.Context) (int, int) {
	limit := 20
	offset := 0

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}
	return limit, offset
}

package http

import (
	"net/http"

	"timeshot/internal/usecase"
	"timeshot/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	feedbackUseCase usecase.FeedbackUseCase
	logger          *logger.Logger
}

func NewFeedbackHandler(feedbackUseCase usecase.FeedbackUseCase, logger *logger.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUseCase: feedbackUseCase,
		logger:          logger,
	}
}

type FeedbackRequest struct {
	Theme   string `json:"theme" binding:"required,max=200"`
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,max=5000"`
}

// SendFeedback godoc
// @Summary      Send feedback
// @Description  Send a message to the site administrators. Delivery is best-effort; the request returns as soon as the message is accepted.
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        request body FeedbackRequest true "Feedback message"
// @Success      202  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /feedback [post]
func (h *FeedbackHandler) SendFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.feedbackUseCase.Send(usecase.FeedbackInput{
		Theme:   req.Theme,
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})

	c.JSON(http.StatusAccepted, gin.H{"message": "Feedback accepted"})
}

package usecase

import (
	"timeshot/pkg/logger"
)

// FeedbackQueue is the dispatch side of the feedback mail pipeline.
// *queue.Client satisfies it.
type FeedbackQueue interface {
	PublishFeedbackTask(task map[string]interface{}) error
}

// FeedbackInput is a visitor's message to the site administrators.
type FeedbackInput struct {
	Theme   string
	Name    string
	Email   string
	Message string
}

type FeedbackUseCase interface {
	Send(input FeedbackInput)
}

type feedbackUseCase struct {
	queueClient FeedbackQueue
	logger      *logger.Logger
}

func NewFeedbackUseCase(queueClient FeedbackQueue, logger *logger.Logger) FeedbackUseCase {
	return &feedbackUseCase{
		queueClient: queueClient,
		logger:      logger,
	}
}

// Send dispatches the feedback for delivery. At-most-once, best-effort: the
// publish happens off the request goroutine and failures are logged, never
// surfaced to the caller.
func (uc *feedbackUseCase) Send(input FeedbackInput) {
	if uc.queueClient == nil {
		uc.logger.Warn("Feedback queue unavailable, dropping message from %s", input.Email)
		return
	}

	task := map[string]interface{}{
		"type":    "feedback",
		"theme":   input.Theme,
		"name":    input.Name,
		"email":   input.Email,
		"message": input.Message,
	}

	go func() {
		if err := uc.queueClient.PublishFeedbackTask(task); err != nil {
			uc.logger.Error("Failed to publish feedback task: %v", err)
		}
	}()
}

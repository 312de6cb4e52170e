package main

import (
	"os"
	"os/signal"
	"syscall"

	"timeshot/pkg/config"
	"timeshot/pkg/logger"
	"timeshot/pkg/mailer"
	"timeshot/pkg/queue"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}
	defer queueClient.Close()

	m := mailer.New(cfg)

	err = queueClient.ConsumeFeedbackTasks(func(task map[string]interface{}) error {
		theme, _ := task["theme"].(string)
		name, _ := task["name"].(string)
		email, _ := task["email"].(string)
		message, _ := task["message"].(string)

		if err := m.SendFeedback(theme, name, email, message); err != nil {
			log.Error("Failed to send feedback mail from %s: %v", email, err)
			return err
		}

		log.Info("Feedback mail delivered (from=%s theme=%q)", email, theme)
		return nil
	})
	if err != nil {
		log.Error("Failed to start consumer: %v", err)
		panic(err)
	}

	log.Info("Feedback worker started, waiting for messages...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Feedback worker exited")
}

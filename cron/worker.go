package cron

import (
	"context"
	"encoding/json"
	"log"

	"glowstudio/config"
	"glowstudio/models"
	"glowstudio/services/notification"
	"glowstudio/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReminderWorker] worker stopped: %v", err)
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload models.ReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return err
		}
		return notifSvc.SendReminder(payload)
	}
}

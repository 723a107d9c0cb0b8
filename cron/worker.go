package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"apptly/config"
	"apptly/models"
	"apptly/services/notification"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// InitReminderWorker runs the async reminder worker in background. Tasks are
// enqueued at finalization with a ProcessAt ahead of the appointment slot.
func InitReminderWorker(mailer notification.Mailer) {
	srv := asynq.NewServer(
		redisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(mailer))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[ReminderWorker] failed to start worker: %v", err)
		}
	}()
}

func handleReminderTask(mailer notification.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderWorker] invalid payload: %v", err)
			return err
		}

		subject := "Appointment Reminder"
		body := fmt.Sprintf(
			"Hello %s,\n\nThis is a reminder of your upcoming appointment.\n"+
				"📅 Date: %s\n⏰ Time: %s\n\n"+
				"Best regards,\nAppointment Team",
			p.Name, p.Date, p.Time,
		)

		if err := mailer.Send(p.Email, subject, body); err != nil {
			log.Printf("[ReminderWorker] failed to send reminder for %s: %v", p.RecordID, err)
			return err
		}
		return nil
	}
}

func redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

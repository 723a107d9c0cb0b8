package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"apptly/models"

	"github.com/hibiken/asynq"
)

// ReminderQueue enqueues reminder tasks for the background worker.
type ReminderQueue struct {
	client *asynq.Client
}

func NewReminderQueue() *ReminderQueue {
	return &ReminderQueue{client: asynq.NewClient(redisOpt())}
}

// Schedule queues one reminder email to be processed at the given time.
func (q *ReminderQueue) Schedule(payload models.ReminderPayload, at time.Time) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, b)
	if _, err := q.client.Enqueue(task, asynq.ProcessAt(at)); err != nil {
		return fmt.Errorf("enqueue reminder: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (q *ReminderQueue) Close() error {
	return q.client.Close()
}

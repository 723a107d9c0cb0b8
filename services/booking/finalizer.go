package booking

import (
	"context"
	"fmt"
	"time"

	"apptly/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	customerSubject = "Appointment Confirmation"
	adminSubject    = "New Appointment"
)

// finalize turns a complete booking state into an immutable appointment
// record: both notifications go out, the record is embedded, indexed and
// persisted, and a reminder is queued. Collaborator failures are logged
// rather than returned, and the booking state is cleared unconditionally.
func (e *Engine) finalize(ctx context.Context, sessionID string, state *models.BookingState) (string, error) {
	log := e.logger()

	record := models.AppointmentRecord{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Name:      state.Name,
		Email:     state.Email,
		Phone:     state.Phone,
		Date:      state.Date,
		Time:      state.Time,
		Message:   state.Message,
		CreatedAt: e.localNow(),
	}

	if err := e.Notifier.Send(record.Email, customerSubject, record.CustomerEmailBody()); err != nil {
		log.Warn("customer confirmation email failed", zap.String("session", sessionID), zap.Error(err))
	}
	if err := e.Notifier.Send(e.AdminEmail, adminSubject, record.AdminEmailBody()); err != nil {
		log.Warn("admin alert email failed", zap.String("session", sessionID), zap.Error(err))
	}

	if vector, err := e.Embedder.Embed(ctx, record.FlatText()); err != nil {
		log.Warn("embedding failed", zap.String("session", sessionID), zap.Error(err))
	} else if err := e.Indexer.Upsert(ctx, record.Key(), vector, record.Metadata()); err != nil {
		log.Warn("vector upsert failed", zap.String("key", record.Key()), zap.Error(err))
	}

	if e.Records != nil {
		if _, err := e.Records.Create(ctx, record); err != nil {
			log.Warn("persisting appointment record failed", zap.String("key", record.Key()), zap.Error(err))
		}
	}

	e.scheduleReminder(record)

	if err := e.States.Clear(ctx, sessionID); err != nil {
		log.Warn("failed to clear booking state", zap.String("session", sessionID), zap.Error(err))
	}

	return fmt.Sprintf("✅ Appointment booked for %s and confirmation sent to %s.", record.Date, record.Email), nil
}

// scheduleReminder queues the reminder email ahead of the slot. Slots too
// close for the configured lead time get no reminder.
func (e *Engine) scheduleReminder(record models.AppointmentRecord) {
	if e.Reminders == nil {
		return
	}

	loc := e.Location
	if loc == nil {
		loc = time.Local
	}
	slot, err := time.ParseInLocation("2006-01-02 15:04", record.Date+" "+record.Time, loc)
	if err != nil {
		e.logger().Warn("unparsable slot for reminder", zap.String("key", record.Key()), zap.Error(err))
		return
	}

	fireAt := slot.Add(-e.ReminderLead)
	if !fireAt.After(e.localNow()) {
		return
	}

	payload := models.ReminderPayload{
		RecordID: record.ID,
		Email:    record.Email,
		Name:     record.Name,
		Date:     record.Date,
		Time:     record.Time,
	}
	if err := e.Reminders.Schedule(payload, fireAt); err != nil {
		e.logger().Warn("failed to schedule reminder", zap.String("key", record.Key()), zap.Error(err))
	}
}

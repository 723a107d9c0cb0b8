package models

import (
	"fmt"
	"time"
)

// AppointmentRequest is the schema-validated payload of the direct booking
// endpoint. It bypasses the conversational flow entirely.
type AppointmentRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// AppointmentRecord is the immutable snapshot of one completed booking,
// produced exactly once when a booking state finishes. It is what gets
// notified, indexed and persisted; never mutated afterwards.
type AppointmentRecord struct {
	ID        string    `bson:"id" json:"id"`
	SessionID string    `bson:"sessionId" json:"sessionId"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Date      string    `bson:"date" json:"date"`
	Time      string    `bson:"time" json:"time"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Key is the composite identifier used for the vector index entry. Assumed
// unique per session per slot; not deduplicated globally.
func (r *AppointmentRecord) Key() string {
	return fmt.Sprintf("%s-%s-%s", r.SessionID, r.Date, r.Time)
}

// FlatText flattens the record into the text representation handed to the
// embedder.
func (r *AppointmentRecord) FlatText() string {
	return fmt.Sprintf(
		"Name: %s, Email: %s, Phone: %s, Date: %s, Time: %s, Message: %s",
		r.Name, r.Email, r.Phone, r.Date, r.Time, r.Message,
	)
}

// Metadata is the flat form stored alongside the vector in the index.
func (r *AppointmentRecord) Metadata() map[string]string {
	return map[string]string{
		"sessionId": r.SessionID,
		"name":      r.Name,
		"email":     r.Email,
		"phone":     r.Phone,
		"date":      r.Date,
		"time":      r.Time,
		"message":   r.Message,
	}
}

// CustomerEmailBody is the confirmation sent to the customer.
func (r *AppointmentRecord) CustomerEmailBody() string {
	return fmt.Sprintf(
		"Hello %s,\n\nYour appointment is confirmed.\n"+
			"📅 Date: %s\n⏰ Time: %s\n📞 Phone: %s\n\n"+
			"Best regards,\nAppointment Team",
		r.Name, r.Date, r.Time, r.Phone,
	)
}

// AdminEmailBody is the full-detail alert sent to the admin address.
func (r *AppointmentRecord) AdminEmailBody() string {
	return fmt.Sprintf(
		"New appointment booked:\n"+
			"👤 Name: %s\n📧 Email: %s\n📞 Phone: %s\n"+
			"📅 Date: %s\n⏰ Time: %s\n📝 Message: %s",
		r.Name, r.Email, r.Phone, r.Date, r.Time, r.Message,
	)
}

// ReminderPayload is the asynq task payload for the pre-appointment
// reminder email.
type ReminderPayload struct {
	RecordID string `json:"recordId"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

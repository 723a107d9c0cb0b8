package appointmentsRepo

import (
	"context"
	"errors"
	"time"

	"apptly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a finalized appointment record and returns its ID.
func (r *mongoAppointmentRepo) Create(ctx context.Context, record models.AppointmentRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

// GetByID returns an appointment record by its ID.
func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.AppointmentRecord, error) {
	var record models.AppointmentRecord
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByKey fetches the record for one session's slot.
func (r *mongoAppointmentRepo) GetByKey(ctx context.Context, sessionID, date, timeOfDay string) (*models.AppointmentRecord, error) {
	filter := bson.M{"sessionId": sessionID, "date": date, "time": timeOfDay}
	var record models.AppointmentRecord
	if err := r.coll.FindOne(ctx, filter).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns all appointment records, newest first.
func (r *mongoAppointmentRepo) List(ctx context.Context) ([]models.AppointmentRecord, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.AppointmentRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteByID removes an appointment record by ID.
func (r *mongoAppointmentRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("appointment not found")
	}
	return nil
}

package appointmentsRepo

import (
	"context"

	"apptly/database"
	"apptly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentRepository interface {
	Create(ctx context.Context, record models.AppointmentRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.AppointmentRecord, error)
	GetByKey(ctx context.Context, sessionID, date, timeOfDay string) (*models.AppointmentRecord, error)
	List(ctx context.Context) ([]models.AppointmentRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo returns a new AppointmentRepository instance using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}

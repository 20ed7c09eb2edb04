package appointments

import (
	"context"
	"healthcare-service/internal/app/contracts"
	"healthcare-service/internal/app/models"
	"healthcare-service/internal/pkg/constvars"
	"healthcare-service/internal/pkg/exceptions"
	"healthcare-service/internal/pkg/queries"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (repo *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (appointmentID string, err error) {
	result, err := repo.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *AppointmentMongoRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return repo.findByFilter(ctx, queries.All())
}

func (repo *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	filter, ok := queries.ByObjectID(appointmentID)
	if !ok {
		return nil, nil
	}
	appointment := new(models.Appointment)
	err := repo.Collection.FindOne(ctx, filter).Decode(appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return appointment, nil
}

func (repo *AppointmentMongoRepository) ExistsByID(ctx context.Context, appointmentID string) (bool, error) {
	filter, ok := queries.ByObjectID(appointmentID)
	if !ok {
		return false, nil
	}
	count, err := repo.Collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count > 0, nil
}

func (repo *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	filter, ok := queries.ByObjectID(appointment.ID)
	if !ok {
		return exceptions.ErrResourceNotFound(constvars.EntityAppointment, appointment.ID)
	}
	_, err := repo.Collection.UpdateOne(ctx, filter, bson.M{"$set": appointment.ConvertToBsonM()})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *AppointmentMongoRepository) DeleteByID(ctx context.Context, appointmentID string) error {
	filter, ok := queries.ByObjectID(appointmentID)
	if !ok {
		return nil
	}
	_, err := repo.Collection.DeleteOne(ctx, filter)
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (repo *AppointmentMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return repo.findByFilter(ctx, queries.AppointmentsByPatientID(patientID))
}

func (repo *AppointmentMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return repo.findByFilter(ctx, queries.AppointmentsByDoctorID(doctorID))
}

func (repo *AppointmentMongoRepository) FindBetween(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	return repo.findByFilter(ctx, queries.AppointmentsBetween(start, end))
}

func (repo *AppointmentMongoRepository) FindByDoctorFrom(ctx context.Context, doctorID string, from time.Time) ([]models.Appointment, error) {
	return repo.findByFilter(ctx, queries.AppointmentsByDoctorFrom(doctorID, from))
}

func (repo *AppointmentMongoRepository) FindByPatientUntil(ctx context.Context, patientID string, until time.Time) ([]models.Appointment, error) {
	return repo.findByFilter(ctx, queries.AppointmentsByPatientUntil(patientID, until))
}

// findByFilter returns appointments in chronological order.
func (repo *AppointmentMongoRepository) findByFilter(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: queries.FieldDateTime, Value: 1}})
	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	appointments := make([]models.Appointment, 0)
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

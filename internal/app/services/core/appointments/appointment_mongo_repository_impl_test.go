package appointments

import (
	"context"
	"testing"
	"time"

	"healthcare-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func appointmentDocument(id primitive.ObjectID, at time.Time, patientID, doctorID string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "dateTime", Value: primitive.NewDateTimeFromTime(at)},
		{Key: "reason", Value: "Checkup"},
		{Key: "patientId", Value: patientID},
		{Key: "doctorId", Value: doctorID},
	}
}

func TestAppointmentMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	mt.Run("Create", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		appointmentID, err := repo.CreateAppointment(ctx, &models.Appointment{DateTime: at, Reason: "Checkup", PatientID: "p1", DoctorID: "d1"})

		require.NoError(t, err)
		assert.Len(t, appointmentID, 24)
	})

	mt.Run("Find By Id Decodes Date Time", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		objectID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "healthcare.appointments", mtest.FirstBatch,
			appointmentDocument(objectID, at, "p1", "d1"),
		))

		appointment, err := repo.FindByID(ctx, objectID.Hex())

		require.NoError(t, err)
		require.NotNil(t, appointment)
		assert.Equal(t, objectID.Hex(), appointment.ID)
		assert.True(t, at.Equal(appointment.DateTime))
		assert.Equal(t, "p1", appointment.PatientID)
	})

	mt.Run("Find Between", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "healthcare.appointments", mtest.FirstBatch,
			appointmentDocument(primitive.NewObjectID(), at, "p1", "d1"),
			appointmentDocument(primitive.NewObjectID(), at.Add(time.Hour), "p2", "d1"),
		))

		appointments, err := repo.FindBetween(ctx, at, at.Add(time.Hour))

		require.NoError(t, err)
		require.Len(t, appointments, 2)
		assert.Equal(t, "p2", appointments[1].PatientID)
	})

	mt.Run("Find By Doctor Id Empty", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "healthcare.appointments", mtest.FirstBatch))

		appointments, err := repo.FindByDoctorID(ctx, "d9")

		require.NoError(t, err)
		assert.Empty(t, appointments)
	})

	mt.Run("Exists By Id Absent", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "healthcare.appointments", mtest.FirstBatch))

		exists, err := repo.ExistsByID(ctx, primitive.NewObjectID().Hex())

		require.NoError(t, err)
		assert.False(t, exists)
	})

	mt.Run("Update And Delete", func(mt *mtest.T) {
		repo := &AppointmentMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)
		appointmentID := primitive.NewObjectID().Hex()

		require.NoError(t, repo.UpdateAppointment(ctx, &models.Appointment{ID: appointmentID, DateTime: at, Reason: "Follow-up"}))
		require.NoError(t, repo.DeleteByID(ctx, appointmentID))
	})
}

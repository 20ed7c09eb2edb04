package patients

import (
	"context"
	"errors"
	"testing"

	"healthcare-service/internal/app/models"
	"healthcare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func patientDocument(id primitive.ObjectID, name string, age int, gender string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "age", Value: age},
		{Key: "gender", Value: gender},
		{Key: "email", Value: "jane@x.com"},
		{Key: "phoneNumber", Value: "1234567890"},
	}
}

func TestPatientMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("Create", func(mt *mtest.T) {
		repo := &PatientMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		patientID, err := repo.CreatePatient(ctx, &models.Patient{Name: "Jane Doe", Age: 30, Gender: "Female"})

		require.NoError(t, err)
		assert.Len(t, patientID, 24)
	})

	mt.Run("Find By Id", func(mt *mtest.T) {
		repo := &PatientMongoRepository{Collection: mt.Coll}
		objectID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "healthcare.patients", mtest.FirstBatch,
			patientDocument(objectID, "Jane Doe", 30, "Female"),
		))

		patient, err := repo.FindByID(ctx, objectID.Hex())

		require.NoError(t, err)
		require.NotNil(t, patient)
		assert.Equal(t, models.Patient{
			ID:          objectID.Hex(),
			Name:        "Jane Doe",
			Age:         30,
			Gender:      "Female",
			Email:       "jane@x.com",
			PhoneNumber: "1234567890",
		}, *patient)
	})

	mt.Run("Find By Email Absent", func(mt *mtest.T) {
		repo := &PatientMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "healthcare.patients", mtest.FirstBatch))

		patient, err := repo.FindByEmail(ctx, "nobody@x.com")

		assert.NoError(t, err)
		assert.Nil(t, patient)
	})

	mt.Run("Find By Age Greater Than", func(mt *mtest.T) {
		repo := &PatientMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "healthcare.patients", mtest.FirstBatch,
			patientDocument(primitive.NewObjectID(), "Jane Doe", 30, "Female"),
			patientDocument(primitive.NewObjectID(), "John Roe", 45, "Male"),
		))

		patients, err := repo.FindByAgeGreaterThan(ctx, 18)

		require.NoError(t, err)
		assert.Len(t, patients, 2)
	})

	mt.Run("Find By Gender Iterate Failure", func(mt *mtest.T) {
		repo := &PatientMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "healthcare.patients", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "age", Value: "thirty"}},
		))

		patients, err := repo.FindByGender(ctx, "female")

		assert.Nil(t, patients)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr), "decode failure should surface as a store error")
		assert.Equal(t, 500, customErr.StatusCode)
	})

	mt.Run("Exists By Id", func(mt *mtest.T) {
		repo := &PatientMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "healthcare.patients", mtest.FirstBatch,
			bson.D{{Key: "n", Value: int64(1)}},
		))

		exists, err := repo.ExistsByID(ctx, primitive.NewObjectID().Hex())

		require.NoError(t, err)
		assert.True(t, exists)
	})

	mt.Run("Update Store Failure", func(mt *mtest.T) {
		repo := &PatientMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 1, Message: "update failed"}))

		err := repo.UpdatePatient(ctx, &models.Patient{ID: primitive.NewObjectID().Hex(), Name: "Jane Doe"})

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 500, customErr.StatusCode)
	})

	mt.Run("Delete Malformed Id Is No-op", func(mt *mtest.T) {
		repo := &PatientMongoRepository{Collection: mt.Coll}

		assert.NoError(t, repo.DeleteByID(ctx, "zzz"))
	})
}

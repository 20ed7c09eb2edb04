package patients

import (
	"context"
	"healthcare-service/internal/app/contracts"
	"healthcare-service/internal/app/models"
	"healthcare-service/internal/pkg/constvars"
	"healthcare-service/internal/pkg/exceptions"
	"healthcare-service/internal/pkg/queries"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (repo *PatientMongoRepository) CreatePatient(ctx context.Context, patient *models.Patient) (patientID string, err error) {
	result, err := repo.Collection.InsertOne(ctx, patient)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *PatientMongoRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	return repo.findByFilter(ctx, queries.All())
}

func (repo *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	filter, ok := queries.ByObjectID(patientID)
	if !ok {
		return nil, nil
	}
	return repo.findOne(ctx, filter)
}

func (repo *PatientMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	return repo.findOne(ctx, queries.ByEmail(email))
}

func (repo *PatientMongoRepository) ExistsByID(ctx context.Context, patientID string) (bool, error) {
	filter, ok := queries.ByObjectID(patientID)
	if !ok {
		return false, nil
	}
	count, err := repo.Collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count > 0, nil
}

func (repo *PatientMongoRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	filter, ok := queries.ByObjectID(patient.ID)
	if !ok {
		return exceptions.ErrResourceNotFound(constvars.EntityPatient, patient.ID)
	}
	_, err := repo.Collection.UpdateOne(ctx, filter, bson.M{"$set": patient.ConvertToBsonM()})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *PatientMongoRepository) DeleteByID(ctx context.Context, patientID string) error {
	filter, ok := queries.ByObjectID(patientID)
	if !ok {
		return nil
	}
	_, err := repo.Collection.DeleteOne(ctx, filter)
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (repo *PatientMongoRepository) FindByAgeGreaterThan(ctx context.Context, age int) ([]models.Patient, error) {
	return repo.findByFilter(ctx, queries.PatientsByAgeGreaterThan(age))
}

func (repo *PatientMongoRepository) FindByGender(ctx context.Context, gender string) ([]models.Patient, error) {
	return repo.findByFilter(ctx, queries.PatientsByGender(gender))
}

func (repo *PatientMongoRepository) FindByNameContaining(ctx context.Context, keyword string) ([]models.Patient, error) {
	return repo.findByFilter(ctx, queries.ByNameContaining(keyword))
}

func (repo *PatientMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Patient, error) {
	patient := new(models.Patient)
	err := repo.Collection.FindOne(ctx, filter).Decode(patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return patient, nil
}

func (repo *PatientMongoRepository) findByFilter(ctx context.Context, filter bson.M) ([]models.Patient, error) {
	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	patients := make([]models.Patient, 0)
	err = cursor.All(ctx, &patients)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, nil
}

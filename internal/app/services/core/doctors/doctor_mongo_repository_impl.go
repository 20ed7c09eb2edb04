package doctors

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

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (repo *DoctorMongoRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (doctorID string, err error) {
	result, err := repo.Collection.InsertOne(ctx, doctor)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *DoctorMongoRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return repo.findByFilter(ctx, queries.All())
}

func (repo *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	filter, ok := queries.ByObjectID(doctorID)
	if !ok {
		return nil, nil
	}
	return repo.findOne(ctx, filter)
}

func (repo *DoctorMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	return repo.findOne(ctx, queries.ByEmail(email))
}

func (repo *DoctorMongoRepository) ExistsByID(ctx context.Context, doctorID string) (bool, error) {
	filter, ok := queries.ByObjectID(doctorID)
	if !ok {
		return false, nil
	}
	count, err := repo.Collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count > 0, nil
}

func (repo *DoctorMongoRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	filter, ok := queries.ByObjectID(doctor.ID)
	if !ok {
		return exceptions.ErrResourceNotFound(constvars.EntityDoctor, doctor.ID)
	}
	_, err := repo.Collection.UpdateOne(ctx, filter, bson.M{"$set": doctor.ConvertToBsonM()})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *DoctorMongoRepository) DeleteByID(ctx context.Context, doctorID string) error {
	filter, ok := queries.ByObjectID(doctorID)
	if !ok {
		return nil
	}
	_, err := repo.Collection.DeleteOne(ctx, filter)
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (repo *DoctorMongoRepository) FindBySpecialization(ctx context.Context, specialization string) ([]models.Doctor, error) {
	return repo.findByFilter(ctx, queries.DoctorsBySpecialization(specialization))
}

func (repo *DoctorMongoRepository) FindByExperienceGreaterThan(ctx context.Context, years int) ([]models.Doctor, error) {
	return repo.findByFilter(ctx, queries.DoctorsByExperienceGreaterThan(years))
}

func (repo *DoctorMongoRepository) FindByNameContaining(ctx context.Context, keyword string) ([]models.Doctor, error) {
	return repo.findByFilter(ctx, queries.ByNameContaining(keyword))
}

func (repo *DoctorMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Doctor, error) {
	doctor := new(models.Doctor)
	err := repo.Collection.FindOne(ctx, filter).Decode(doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doctor, nil
}

func (repo *DoctorMongoRepository) findByFilter(ctx context.Context, filter bson.M) ([]models.Doctor, error) {
	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	doctors := make([]models.Doctor, 0)
	err = cursor.All(ctx, &doctors)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, nil
}

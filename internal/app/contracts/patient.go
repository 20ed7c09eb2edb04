package contracts

import (
	"context"
	"healthcare-service/internal/app/models"
	"healthcare-service/internal/pkg/dto/requests"
	"healthcare-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.Patient) (*responses.Patient, error)
	FindAll(ctx context.Context) ([]responses.Patient, error)
	// FindByID returns nil without error when the patient does not exist.
	FindByID(ctx context.Context, patientID string) (*responses.Patient, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.Patient) (*responses.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
	FindByAgeGreaterThan(ctx context.Context, age int) ([]responses.Patient, error)
	FindByGender(ctx context.Context, gender string) ([]responses.Patient, error)
	FindByNameContaining(ctx context.Context, keyword string) ([]responses.Patient, error)
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (patientID string, err error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByEmail(ctx context.Context, email string) (*models.Patient, error)
	ExistsByID(ctx context.Context, patientID string) (bool, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	DeleteByID(ctx context.Context, patientID string) error
	FindByAgeGreaterThan(ctx context.Context, age int) ([]models.Patient, error)
	FindByGender(ctx context.Context, gender string) ([]models.Patient, error)
	FindByNameContaining(ctx context.Context, keyword string) ([]models.Patient, error)
}

package contracts

import (
	"context"
	"healthcare-service/internal/app/models"
	"healthcare-service/internal/pkg/dto/requests"
	"healthcare-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, request *requests.Doctor) (*responses.Doctor, error)
	FindAll(ctx context.Context) ([]responses.Doctor, error)
	// FindByID returns nil without error when the doctor does not exist.
	FindByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
	UpdateDoctor(ctx context.Context, doctorID string, request *requests.Doctor) (*responses.Doctor, error)
	DeleteDoctor(ctx context.Context, doctorID string) error
	FindBySpecialization(ctx context.Context, specialization string) ([]responses.Doctor, error)
	FindByExperienceGreaterThan(ctx context.Context, years int) ([]responses.Doctor, error)
	FindByNameContaining(ctx context.Context, keyword string) ([]responses.Doctor, error)
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (doctorID string, err error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	ExistsByID(ctx context.Context, doctorID string) (bool, error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
	DeleteByID(ctx context.Context, doctorID string) error
	FindBySpecialization(ctx context.Context, specialization string) ([]models.Doctor, error)
	FindByExperienceGreaterThan(ctx context.Context, years int) ([]models.Doctor, error)
	FindByNameContaining(ctx context.Context, keyword string) ([]models.Doctor, error)
}

package contracts

import (
	"context"
	"healthcare-service/internal/app/models"
	"healthcare-service/internal/pkg/dto/requests"
	"healthcare-service/internal/pkg/dto/responses"
	"time"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.Appointment) (*responses.Appointment, error)
	FindAll(ctx context.Context) ([]responses.Appointment, error)
	// FindByID returns nil without error when the appointment does not exist.
	FindByID(ctx context.Context, appointmentID string) (*responses.Appointment, error)
	UpdateAppointment(ctx context.Context, appointmentID string, request *requests.Appointment) (*responses.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error
	FindByPatientID(ctx context.Context, patientID string) ([]responses.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]responses.Appointment, error)
	FindBetween(ctx context.Context, start, end time.Time) ([]responses.Appointment, error)
	FindByDoctorFrom(ctx context.Context, doctorID string, from time.Time) ([]responses.Appointment, error)
	FindByPatientUntil(ctx context.Context, patientID string, until time.Time) ([]responses.Appointment, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (appointmentID string, err error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	ExistsByID(ctx context.Context, appointmentID string) (bool, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
	DeleteByID(ctx context.Context, appointmentID string) error
	FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error)
	FindBetween(ctx context.Context, start, end time.Time) ([]models.Appointment, error)
	FindByDoctorFrom(ctx context.Context, doctorID string, from time.Time) ([]models.Appointment, error)
	FindByPatientUntil(ctx context.Context, patientID string, until time.Time) ([]models.Appointment, error)
}

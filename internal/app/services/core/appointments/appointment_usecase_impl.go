package appointments

import (
	"context"
	"fmt"
	"healthcare-service/internal/app/contracts"
	"healthcare-service/internal/app/models"
	"healthcare-service/internal/app/services/shared/events"
	"healthcare-service/internal/app/services/shared/redis"
	"healthcare-service/internal/pkg/constvars"
	"healthcare-service/internal/pkg/dto/requests"
	"healthcare-service/internal/pkg/dto/responses"
	"healthcare-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	Cache                 *redis.EntityCache
	Notifier              *events.Notifier
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	cache *redis.EntityCache,
	notifier *events.Notifier,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		Cache:                 cache,
		Notifier:              notifier,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.Appointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	appointment, err := models.NewAppointmentFromRequest(request)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error parsing date time",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appointment.ID = appointmentID

	response := appointment.ConvertIntoResponse()
	uc.Notifier.Notify(ctx, constvars.EventAppointmentCreated, constvars.ResourceAppointments, appointmentID, response)

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return &response, nil
}

func (uc *appointmentUsecase) FindAll(ctx context.Context) ([]responses.Appointment, error) {
	return uc.search(ctx, "FindAll", "", func() ([]models.Appointment, error) {
		return uc.AppointmentRepository.FindAll(ctx)
	})
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	cacheKey := fmt.Sprintf(constvars.RedisKeyAppointmentFormat, appointmentID)
	var cached models.Appointment
	if uc.Cache.Load(ctx, cacheKey, &cached) {
		response := cached.ConvertIntoResponse()
		return &response, nil
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindByID error fetching appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}
	if appointment == nil {
		return nil, nil
	}
	uc.Cache.Fill(ctx, cacheKey, appointment)

	response := appointment.ConvertIntoResponse()
	uc.Log.Info("appointmentUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return &response, nil
}

func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID string, request *requests.Appointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	exists, err := uc.AppointmentRepository.ExistsByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateAppointment error checking appointment existence",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !exists {
		return nil, exceptions.ErrResourceNotFound(constvars.EntityAppointment, appointmentID)
	}

	appointment := &models.Appointment{ID: appointmentID}
	err = appointment.ApplyRequest(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	err = uc.AppointmentRepository.UpdateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateAppointment error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Cache.Store(ctx, fmt.Sprintf(constvars.RedisKeyAppointmentFormat, appointmentID), appointment)

	response := appointment.ConvertIntoResponse()
	uc.Notifier.Notify(ctx, constvars.EventAppointmentUpdated, constvars.ResourceAppointments, appointmentID, response)

	uc.Log.Info("appointmentUsecase.UpdateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return &response, nil
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.DeleteAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	exists, err := uc.AppointmentRepository.ExistsByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.DeleteAppointment error checking appointment existence",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !exists {
		return exceptions.ErrResourceNotFound(constvars.EntityAppointment, appointmentID)
	}

	err = uc.AppointmentRepository.DeleteByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.DeleteAppointment error deleting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return err
	}
	uc.Cache.Invalidate(ctx, fmt.Sprintf(constvars.RedisKeyAppointmentFormat, appointmentID))
	uc.Notifier.Notify(ctx, constvars.EventAppointmentDeleted, constvars.ResourceAppointments, appointmentID, nil)

	uc.Log.Info("appointmentUsecase.DeleteAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) FindByPatientID(ctx context.Context, patientID string) ([]responses.Appointment, error) {
	return uc.search(ctx, "FindByPatientID", patientID, func() ([]models.Appointment, error) {
		return uc.AppointmentRepository.FindByPatientID(ctx, patientID)
	})
}

func (uc *appointmentUsecase) FindByDoctorID(ctx context.Context, doctorID string) ([]responses.Appointment, error) {
	return uc.search(ctx, "FindByDoctorID", doctorID, func() ([]models.Appointment, error) {
		return uc.AppointmentRepository.FindByDoctorID(ctx, doctorID)
	})
}

// FindBetween is inclusive on both ends. An end before start yields nothing.
func (uc *appointmentUsecase) FindBetween(ctx context.Context, start, end time.Time) ([]responses.Appointment, error) {
	if end.Before(start) {
		return []responses.Appointment{}, nil
	}
	filter := start.Format(time.RFC3339) + "/" + end.Format(time.RFC3339)
	return uc.search(ctx, "FindBetween", filter, func() ([]models.Appointment, error) {
		return uc.AppointmentRepository.FindBetween(ctx, start.UTC(), end.UTC())
	})
}

func (uc *appointmentUsecase) FindByDoctorFrom(ctx context.Context, doctorID string, from time.Time) ([]responses.Appointment, error) {
	return uc.search(ctx, "FindByDoctorFrom", doctorID, func() ([]models.Appointment, error) {
		return uc.AppointmentRepository.FindByDoctorFrom(ctx, doctorID, from.UTC())
	})
}

func (uc *appointmentUsecase) FindByPatientUntil(ctx context.Context, patientID string, until time.Time) ([]responses.Appointment, error) {
	return uc.search(ctx, "FindByPatientUntil", patientID, func() ([]models.Appointment, error) {
		return uc.AppointmentRepository.FindByPatientUntil(ctx, patientID, until.UTC())
	})
}

func (uc *appointmentUsecase) search(ctx context.Context, method, filter string, find func() ([]models.Appointment, error)) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase."+method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFilterKey, filter),
	)

	appointments, err := find()
	if err != nil {
		uc.Log.Error("appointmentUsecase."+method+" error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := models.ConvertAppointmentsIntoResponse(appointments)
	uc.Log.Info("appointmentUsecase."+method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(response)),
	)
	return response, nil
}

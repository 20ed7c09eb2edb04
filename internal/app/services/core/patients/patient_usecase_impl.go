package patients

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

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Cache             *redis.EntityCache
	Notifier          *events.Notifier
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	cache *redis.EntityCache,
	notifier *events.Notifier,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		Cache:             cache,
		Notifier:          notifier,
		Log:               logger,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.Patient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patient := models.NewPatientFromRequest(request)
	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.CreatePatient error inserting patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	patient.ID = patientID

	response := patient.ConvertIntoResponse()
	uc.Notifier.Notify(ctx, constvars.EventPatientCreated, constvars.ResourcePatients, patientID, response)

	uc.Log.Info("patientUsecase.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return &response, nil
}

func (uc *patientUsecase) FindAll(ctx context.Context) ([]responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("patientUsecase.FindAll error fetching patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := models.ConvertPatientsIntoResponse(patients)
	uc.Log.Info("patientUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(response)),
	)
	return response, nil
}

func (uc *patientUsecase) FindByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	cacheKey := fmt.Sprintf(constvars.RedisKeyPatientFormat, patientID)
	var cached models.Patient
	if uc.Cache.Load(ctx, cacheKey, &cached) {
		uc.Log.Info("patientUsecase.FindByID succeeded from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		response := cached.ConvertIntoResponse()
		return &response, nil
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.FindByID error fetching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}
	if patient == nil {
		uc.Log.Info("patientUsecase.FindByID patient not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		return nil, nil
	}
	uc.Cache.Fill(ctx, cacheKey, patient)

	response := patient.ConvertIntoResponse()
	uc.Log.Info("patientUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return &response, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.Patient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	exists, err := uc.PatientRepository.ExistsByID(ctx, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.UpdatePatient error checking patient existence",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}
	if !exists {
		uc.Log.Info("patientUsecase.UpdatePatient patient not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		return nil, exceptions.ErrResourceNotFound(constvars.EntityPatient, patientID)
	}

	patient := &models.Patient{ID: patientID}
	patient.ApplyRequest(request)
	err = uc.PatientRepository.UpdatePatient(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.UpdatePatient error updating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Cache.Store(ctx, fmt.Sprintf(constvars.RedisKeyPatientFormat, patientID), patient)

	response := patient.ConvertIntoResponse()
	uc.Notifier.Notify(ctx, constvars.EventPatientUpdated, constvars.ResourcePatients, patientID, response)

	uc.Log.Info("patientUsecase.UpdatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return &response, nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	exists, err := uc.PatientRepository.ExistsByID(ctx, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.DeletePatient error checking patient existence",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return err
	}
	if !exists {
		uc.Log.Info("patientUsecase.DeletePatient patient not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		return exceptions.ErrResourceNotFound(constvars.EntityPatient, patientID)
	}

	err = uc.PatientRepository.DeleteByID(ctx, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.DeletePatient error deleting patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return err
	}
	uc.Cache.Invalidate(ctx, fmt.Sprintf(constvars.RedisKeyPatientFormat, patientID))
	uc.Notifier.Notify(ctx, constvars.EventPatientDeleted, constvars.ResourcePatients, patientID, nil)

	uc.Log.Info("patientUsecase.DeletePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return nil
}

func (uc *patientUsecase) FindByAgeGreaterThan(ctx context.Context, age int) ([]responses.Patient, error) {
	return uc.search(ctx, "FindByAgeGreaterThan", fmt.Sprint(age), func() ([]models.Patient, error) {
		return uc.PatientRepository.FindByAgeGreaterThan(ctx, age)
	})
}

func (uc *patientUsecase) FindByGender(ctx context.Context, gender string) ([]responses.Patient, error) {
	return uc.search(ctx, "FindByGender", gender, func() ([]models.Patient, error) {
		return uc.PatientRepository.FindByGender(ctx, gender)
	})
}

func (uc *patientUsecase) FindByNameContaining(ctx context.Context, keyword string) ([]responses.Patient, error) {
	return uc.search(ctx, "FindByNameContaining", keyword, func() ([]models.Patient, error) {
		return uc.PatientRepository.FindByNameContaining(ctx, keyword)
	})
}

func (uc *patientUsecase) search(ctx context.Context, method, filter string, find func() ([]models.Patient, error)) ([]responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase."+method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFilterKey, filter),
	)

	patients, err := find()
	if err != nil {
		uc.Log.Error("patientUsecase."+method+" error fetching patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := models.ConvertPatientsIntoResponse(patients)
	uc.Log.Info("patientUsecase."+method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(response)),
	)
	return response, nil
}

package doctors

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

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Cache            *redis.EntityCache
	Notifier         *events.Notifier
	Log              *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	cache *redis.EntityCache,
	notifier *events.Notifier,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		Cache:            cache,
		Notifier:         notifier,
		Log:              logger,
	}
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.Doctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctor := models.NewDoctorFromRequest(request)
	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor error inserting doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	doctor.ID = doctorID

	response := doctor.ConvertIntoResponse()
	uc.Notifier.Notify(ctx, constvars.EventDoctorCreated, constvars.ResourceDoctors, doctorID, response)

	uc.Log.Info("doctorUsecase.CreateDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return &response, nil
}

func (uc *doctorUsecase) FindAll(ctx context.Context) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("doctorUsecase.FindAll error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := models.ConvertDoctorsIntoResponse(doctors)
	uc.Log.Info("doctorUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(response)),
	)
	return response, nil
}

func (uc *doctorUsecase) FindByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	cacheKey := fmt.Sprintf(constvars.RedisKeyDoctorFormat, doctorID)
	var cached models.Doctor
	if uc.Cache.Load(ctx, cacheKey, &cached) {
		uc.Log.Info("doctorUsecase.FindByID succeeded from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
		)
		response := cached.ConvertIntoResponse()
		return &response, nil
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("doctorUsecase.FindByID error fetching doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		uc.Log.Info("doctorUsecase.FindByID doctor not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
		)
		return nil, nil
	}
	uc.Cache.Fill(ctx, cacheKey, doctor)

	response := doctor.ConvertIntoResponse()
	uc.Log.Info("doctorUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return &response, nil
}

func (uc *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID string, request *requests.Doctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.UpdateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	exists, err := uc.DoctorRepository.ExistsByID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("doctorUsecase.UpdateDoctor error checking doctor existence",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}
	if !exists {
		uc.Log.Info("doctorUsecase.UpdateDoctor doctor not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
		)
		return nil, exceptions.ErrResourceNotFound(constvars.EntityDoctor, doctorID)
	}

	doctor := &models.Doctor{ID: doctorID}
	doctor.ApplyRequest(request)
	err = uc.DoctorRepository.UpdateDoctor(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.UpdateDoctor error updating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Cache.Store(ctx, fmt.Sprintf(constvars.RedisKeyDoctorFormat, doctorID), doctor)

	response := doctor.ConvertIntoResponse()
	uc.Notifier.Notify(ctx, constvars.EventDoctorUpdated, constvars.ResourceDoctors, doctorID, response)

	uc.Log.Info("doctorUsecase.UpdateDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return &response, nil
}

func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.DeleteDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	exists, err := uc.DoctorRepository.ExistsByID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("doctorUsecase.DeleteDoctor error checking doctor existence",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return err
	}
	if !exists {
		uc.Log.Info("doctorUsecase.DeleteDoctor doctor not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
		)
		return exceptions.ErrResourceNotFound(constvars.EntityDoctor, doctorID)
	}

	err = uc.DoctorRepository.DeleteByID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("doctorUsecase.DeleteDoctor error deleting doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return err
	}
	uc.Cache.Invalidate(ctx, fmt.Sprintf(constvars.RedisKeyDoctorFormat, doctorID))
	uc.Notifier.Notify(ctx, constvars.EventDoctorDeleted, constvars.ResourceDoctors, doctorID, nil)

	uc.Log.Info("doctorUsecase.DeleteDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return nil
}

func (uc *doctorUsecase) FindBySpecialization(ctx context.Context, specialization string) ([]responses.Doctor, error) {
	return uc.search(ctx, "FindBySpecialization", specialization, func() ([]models.Doctor, error) {
		return uc.DoctorRepository.FindBySpecialization(ctx, specialization)
	})
}

func (uc *doctorUsecase) FindByExperienceGreaterThan(ctx context.Context, years int) ([]responses.Doctor, error) {
	return uc.search(ctx, "FindByExperienceGreaterThan", fmt.Sprint(years), func() ([]models.Doctor, error) {
		return uc.DoctorRepository.FindByExperienceGreaterThan(ctx, years)
	})
}

func (uc *doctorUsecase) FindByNameContaining(ctx context.Context, keyword string) ([]responses.Doctor, error) {
	return uc.search(ctx, "FindByNameContaining", keyword, func() ([]models.Doctor, error) {
		return uc.DoctorRepository.FindByNameContaining(ctx, keyword)
	})
}

func (uc *doctorUsecase) search(ctx context.Context, method, filter string, find func() ([]models.Doctor, error)) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase."+method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFilterKey, filter),
	)

	doctors, err := find()
	if err != nil {
		uc.Log.Error("doctorUsecase."+method+" error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := models.ConvertDoctorsIntoResponse(doctors)
	uc.Log.Info("doctorUsecase."+method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(response)),
	)
	return response, nil
}

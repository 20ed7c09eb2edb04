package controllers

import (
	"context"
	"healthcare-service/internal/app/contracts"
	"healthcare-service/internal/pkg/constvars"
	"healthcare-service/internal/pkg/dto/requests"
	"healthcare-service/internal/pkg/dto/responses"
	"healthcare-service/internal/pkg/exceptions"
	"healthcare-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	RequestTimeout     time.Duration
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, requestTimeout time.Duration) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		RequestTimeout:     requestTimeout,
	}
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	request, err := ctrl.parseAppointmentRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, result)
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.FindAll(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, result)
}

func (ctrl *AppointmentController) FindByID(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.FindByID(ctx, appointmentID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	if result == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrResourceNotFound(constvars.EntityAppointment, appointmentID))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, result)
}

func (ctrl *AppointmentController) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamID)

	request, err := ctrl.parseAppointmentRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.UpdateAppointment(ctx, appointmentID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentSuccessMessage, result)
}

func (ctrl *AppointmentController) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	err := ctrl.AppointmentUsecase.DeleteAppointment(ctx, appointmentID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAppointmentSuccessMessage, nil)
}

// FindByPatientID narrows to appointments up to the optional "until" query param.
func (ctrl *AppointmentController) FindByPatientID(w http.ResponseWriter, r *http.Request) {
	patientID, err := utils.ParseRequiredString(chi.URLParam(r, constvars.URLParamPatientID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamPatientID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	var result []responses.Appointment
	if rawUntil := r.URL.Query().Get(constvars.URLQueryParamUntil); rawUntil != "" {
		until, err := utils.ParseDateTimeParam(rawUntil)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, constvars.URLQueryParamUntil))
			return
		}
		result, err = ctrl.AppointmentUsecase.FindByPatientUntil(ctx, patientID, until)
		if err != nil {
			buildUsecaseErrorResponse(ctrl.Log, w, err)
			return
		}
	} else {
		result, err = ctrl.AppointmentUsecase.FindByPatientID(ctx, patientID)
		if err != nil {
			buildUsecaseErrorResponse(ctrl.Log, w, err)
			return
		}
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SearchAppointmentsSuccessMessage, result)
}

// FindByDoctorID narrows to appointments from the optional "from" query param onwards.
func (ctrl *AppointmentController) FindByDoctorID(w http.ResponseWriter, r *http.Request) {
	doctorID, err := utils.ParseRequiredString(chi.URLParam(r, constvars.URLParamDoctorID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamDoctorID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	var result []responses.Appointment
	if rawFrom := r.URL.Query().Get(constvars.URLQueryParamFrom); rawFrom != "" {
		from, err := utils.ParseDateTimeParam(rawFrom)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, constvars.URLQueryParamFrom))
			return
		}
		result, err = ctrl.AppointmentUsecase.FindByDoctorFrom(ctx, doctorID, from)
		if err != nil {
			buildUsecaseErrorResponse(ctrl.Log, w, err)
			return
		}
	} else {
		result, err = ctrl.AppointmentUsecase.FindByDoctorID(ctx, doctorID)
		if err != nil {
			buildUsecaseErrorResponse(ctrl.Log, w, err)
			return
		}
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SearchAppointmentsSuccessMessage, result)
}

func (ctrl *AppointmentController) FindBetween(w http.ResponseWriter, r *http.Request) {
	start, err := utils.ParseDateTimeParam(r.URL.Query().Get(constvars.URLQueryParamStart))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, constvars.URLQueryParamStart))
		return
	}
	end, err := utils.ParseDateTimeParam(r.URL.Query().Get(constvars.URLQueryParamEnd))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, constvars.URLQueryParamEnd))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.FindBetween(ctx, start, end)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SearchAppointmentsSuccessMessage, result)
}

func (ctrl *AppointmentController) parseAppointmentRequest(r *http.Request) (*requests.Appointment, error) {
	request := new(requests.Appointment)
	err := decodeRequestBody(r, request)
	if err != nil {
		return nil, err
	}

	utils.SanitizeAppointmentRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return request, nil
}

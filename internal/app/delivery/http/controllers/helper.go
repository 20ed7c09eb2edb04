package controllers

import (
	"context"
	"errors"
	"healthcare-service/internal/pkg/exceptions"
	"healthcare-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

func decodeRequestBody(r *http.Request, dst interface{}) error {
	err := utils.DecodeJSONBody(r, dst)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return exceptions.ErrRequestBodyTooLarge(err)
		}
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if utils.IsDeadlineExceeded(err) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(context.DeadlineExceeded))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

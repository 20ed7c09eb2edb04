package controllers

import (
	"context"
	"healthcare-service/internal/pkg/constvars"
	"healthcare-service/internal/pkg/dto/responses"
	"healthcare-service/internal/pkg/exceptions"
	"healthcare-service/internal/pkg/utils"
	"net/http"
	"sort"
	"time"

	"go.uber.org/zap"
)

const (
	healthStatusUp   = "UP"
	healthStatusDown = "DOWN"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type HealthController struct {
	Log     *zap.Logger
	Version string
	Checks  map[string]HealthCheck
	Timeout time.Duration
}

func NewHealthController(logger *zap.Logger, version string, checks map[string]HealthCheck, timeout time.Duration) *HealthController {
	return &HealthController{
		Log:     logger,
		Version: version,
		Checks:  checks,
		Timeout: timeout,
	}
}

func (ctrl *HealthController) CheckHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	names := make([]string, 0, len(ctrl.Checks))
	for name := range ctrl.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	result := responses.Health{
		Status:     healthStatusUp,
		Version:    ctrl.Version,
		Components: make(map[string]string, len(names)),
	}
	var firstErr error
	for _, name := range names {
		err := ctrl.Checks[name](ctx)
		if err != nil {
			result.Status = healthStatusDown
			result.Components[name] = healthStatusDown
			if firstErr == nil {
				firstErr = exceptions.ErrHealthCheck(err, name)
			}
			continue
		}
		result.Components[name] = healthStatusUp
	}

	if firstErr != nil {
		ctrl.Log.Warn("HealthController.CheckHealth dependency unavailable",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Any("components", result.Components),
		)
		utils.BuildErrorResponse(ctrl.Log, w, firstErr)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthySuccessMessage, result)
}

package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/location-tracker/internal/domain"
	"github.com/marcos-nsantos/location-tracker/internal/pkg/apperror"
	"github.com/marcos-nsantos/location-tracker/internal/pkg/httputil"
)

func toAppError(err error) *apperror.AppError {
	switch {
	case errors.Is(err, domain.ErrInvalidProvider):
		return apperror.BadRequest("unknown map provider")
	case errors.Is(err, domain.ErrInvalidLocation), errors.Is(err, domain.ErrInvalidCoordinate):
		return apperror.New("INVALID_LOCATION", "invalid coordinates", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return apperror.Unauthorized("invalid credentials")
	case errors.Is(err, domain.ErrAuthDisabled):
		return apperror.NotFound("authentication")
	case errors.Is(err, domain.ErrLoopStopped), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apperror.New("UNAVAILABLE", "tracker is not running", http.StatusServiceUnavailable)
	default:
		return apperror.Internal(err)
	}
}

func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	httputil.HandleError(c, toAppError(err))
}

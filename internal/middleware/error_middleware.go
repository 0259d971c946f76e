package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gestionski/skistation/internal/app/models/dto"
	"github.com/gestionski/skistation/internal/pkg/apperrors"
	"github.com/gestionski/skistation/internal/pkg/logger"
)

// --- Central Error Handling ---

// HandleAPIError maps an application error onto an HTTP status and error envelope
func HandleAPIError(c *gin.Context, err error) {
	_ = c.Error(err)

	status, detail := classify(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}

	c.AbortWithStatusJSON(status, dto.APIResponse{
		Success:   false,
		Error:     detail,
		Timestamp: time.Now(),
	})
}

// HandleBindingError reports a malformed or invalid request body or parameter
func HandleBindingError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.APIResponse{
		Success:   false,
		Error:     dto.HandleValidationError(err),
		Timestamp: time.Now(),
	})
}

func classify(err error) (int, *dto.ErrorDetail) {
	var custom *apperrors.CustomError
	hasCustom := errors.As(err, &custom)

	switch {
	case apperrors.IsNotFound(err):
		detail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, messageOr(err, "Resource not found")).
			WithSeverity(dto.ErrorSeverityWarning)
		if hasCustom && custom.Code != "" {
			detail.WithDetails(map[string]string{"reason": custom.Code})
		}
		return http.StatusNotFound, detail

	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, messageOr(err, "Validation failed")).
			WithSeverity(dto.ErrorSeverityWarning)
		if hasCustom && custom.Code != "" {
			detail.WithDetails(map[string]string{"reason": custom.Code})
		}
		return http.StatusBadRequest, detail

	case errors.Is(err, apperrors.ErrConflict):
		detail := dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, messageOr(err, "Resource already exists")).
			WithSeverity(dto.ErrorSeverityWarning)
		if hasCustom && custom.Code != "" {
			detail.WithDetails(map[string]string{"reason": custom.Code})
		}
		return http.StatusConflict, detail

	case errors.Is(err, apperrors.ErrStorageUnavailable):
		return http.StatusServiceUnavailable,
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Storage temporarily unavailable").
				WithSeverity(dto.ErrorSeverityCritical)

	default:
		return http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// messageOr exposes the message of known application errors only
func messageOr(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}

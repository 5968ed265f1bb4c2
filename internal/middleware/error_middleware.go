package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/acadservice/internal/app/models/dto"
	"github.com/yigit/acadservice/internal/pkg/apperrors"
)

// HandleAPIError writes the response for an error returned by a service.
// The status is chosen from the error kind; driver messages are only logged.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			withErrorDetails(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, clientMessage(err, "Resource not found")), err),
		))
	case errors.Is(err, apperrors.ErrNoAcademicRecords):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			withErrorDetails(dto.NewErrorDetail(dto.ErrorCodeNoAcademicRecords, clientMessage(err, "Resource not found")), err).
				WithSeverity(dto.ErrorSeverityInfo),
		))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			withErrorDetails(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, clientMessage(err, "Resource not found")), err),
		))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, clientMessage(err, "Validation failed")),
		))
	case errors.Is(err, apperrors.ErrConnection):
		requestLogger(c).Error().Err(err).Msg("Database unavailable")
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeServiceUnavailable, "Database unavailable").
				WithSeverity(dto.ErrorSeverityCritical),
		))
	case errors.Is(err, apperrors.ErrQuery):
		requestLogger(c).Error().Err(err).Msg("Database query failed")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database query failed"),
		))
	default:
		requestLogger(c).Error().Err(err).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}

func clientMessage(err error, fallback string) string {
	if msg, ok := apperrors.Message(err); ok {
		return msg
	}
	return fallback
}

// withErrorDetails copies the context carried by an application error into the response
func withErrorDetails(detail *dto.ErrorDetail, err error) *dto.ErrorDetail {
	if details := apperrors.DetailsOf(err); details != nil {
		return detail.WithDetails(details)
	}
	return detail
}

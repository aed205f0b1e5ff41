package utils

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/vitrine-app/vitrine/internal/pkg/apperrors"
)

// DomainErrorResponse maps a domain error to its HTTP status. Unknown errors
// become a 500 without leaking internals.
func DomainErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return NotFoundResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrConflictingDefaultPaymentMethod):
		return ConflictResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrConcurrentUpdate):
		return ConflictResponse(c, err.Error())
	case apperrors.IsInvalidStateTransition(err):
		return ConflictResponse(c, err.Error())
	case apperrors.IsPreconditionFailed(err):
		return UnprocessableEntityResponse(c, err.Error())
	case apperrors.IsPaymentFailed(err):
		return BadGatewayResponse(c, err.Error())
	default:
		return InternalServerErrorResponse(c, "")
	}
}

package repository

import (
	"errors"

	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/lib/pq"
)

// TranslateError maps constraint and isolation errors raised by PostgreSQL onto failures.
// Anything else is returned unchanged.
func TranslateError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeSerializationFailure:
		return failure.Conflict("concurrent update, please retry")
	case constant.PqErrorCodeExclusionViolation, constant.PqErrorCodeUniqueViolation:
		return failure.Conflict(pqErr.Message)
	case constant.PqErrorCodeFkViolation, constant.PqErrorCodeCheckViolation:
		return failure.BadRequestFromString(pqErr.Message)
	default:
		return err
	}
}

package usecase

import (
	"errors"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
)

// translate maps repository errors to client-facing errors. Anything that
// is not a known domain error becomes a 500 carrying the cause.
func translate(err error, notFound, duplicate string) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, domain.ErrNotFound) && notFound != "":
		return apperror.NotFound(notFound)
	case errors.Is(err, domain.ErrDuplicate) && duplicate != "":
		return apperror.Conflict(duplicate)
	}
	return apperror.Internal(err)
}

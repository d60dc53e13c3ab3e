package usecases

import (
	"errors"

	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
)

// toAppError maps catalog sentinel errors onto application errors.
// Errors it does not recognize are returned unchanged.
func toAppError(err error) error {
	switch {
	case err == nil:
		return nil
	case apperrors.IsAppError(err):
		return err
	case errors.Is(err, statuscatalog.ErrStatusNotFound):
		return apperrors.NewNotFoundError(err.Error())
	case errors.Is(err, statuscatalog.ErrOrderTaken),
		errors.Is(err, statuscatalog.ErrNameTaken),
		errors.Is(err, statuscatalog.ErrVersionConflict):
		return apperrors.NewConflictError(err.Error())
	case errors.Is(err, statuscatalog.ErrInvalidName),
		errors.Is(err, statuscatalog.ErrInvalidColor),
		errors.Is(err, statuscatalog.ErrInvalidIcon),
		errors.Is(err, statuscatalog.ErrInvalidOrder),
		errors.Is(err, statuscatalog.ErrStatusInactive),
		errors.Is(err, statuscatalog.ErrLastOpenStatus),
		errors.Is(err, statuscatalog.ErrNoOpenStatus),
		errors.Is(err, statuscatalog.ErrReorderMismatch),
		errors.Is(err, statuscatalog.ErrInvalidTenantID):
		return apperrors.NewValidationError(err.Error())
	}
	return err
}

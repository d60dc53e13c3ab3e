package usecases

import (
	"errors"

	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/shared/constants"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
)

// toAppError maps ticket and catalog sentinel errors onto application errors.
// Errors it does not recognize are returned unchanged.
func toAppError(err error) error {
	switch {
	case err == nil:
		return nil
	case apperrors.IsAppError(err):
		return err
	case errors.Is(err, ticket.ErrTicketNotFound):
		return apperrors.NewNotFoundError("ticket not found")
	case errors.Is(err, ticket.ErrAttachmentNotFound):
		return apperrors.NewNotFoundError("attachment not found")
	case errors.Is(err, statuscatalog.ErrStatusNotFound):
		return apperrors.NewValidationError("status does not exist")
	case errors.Is(err, ticket.ErrVersionConflict):
		return apperrors.NewConflictError("ticket was modified by someone else, reload and try again")
	case errors.Is(err, ticket.ErrProtocolExhausted):
		return apperrors.NewInternalError(constants.ErrMsgInternalServerError, err.Error())
	case errors.Is(err, ticket.ErrInvalidTenantID),
		errors.Is(err, ticket.ErrInvalidKind),
		errors.Is(err, ticket.ErrTitleRequired),
		errors.Is(err, ticket.ErrTitleTooLong),
		errors.Is(err, ticket.ErrDescriptionTooLong),
		errors.Is(err, ticket.ErrInvalidPriority),
		errors.Is(err, ticket.ErrInvalidStatus),
		errors.Is(err, ticket.ErrAssigneeNameTooLong),
		errors.Is(err, ticket.ErrAttachmentURLRequired),
		errors.Is(err, ticket.ErrAttachmentURLTooLong),
		errors.Is(err, ticket.ErrCaptionTooLong),
		errors.Is(err, vo.ErrInvalidLatitude),
		errors.Is(err, vo.ErrInvalidLongitude),
		errors.Is(err, vo.ErrPartialCoords),
		errors.Is(err, vo.ErrAddressTooLong),
		errors.Is(err, statuscatalog.ErrStatusInactive),
		errors.Is(err, statuscatalog.ErrNoOpenStatus),
		errors.Is(err, statuscatalog.ErrInvalidTenantID):
		return apperrors.NewValidationError(err.Error())
	}
	return err
}

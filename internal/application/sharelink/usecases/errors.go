package usecases

import (
	"errors"

	"github.com/niggl1/appsindico/internal/domain/sharelink"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
)

func toAppError(err error) error {
	switch {
	case err == nil:
		return nil
	case apperrors.IsAppError(err):
		return err
	case errors.Is(err, sharelink.ErrShareLinkNotFound):
		return apperrors.NewNotFoundError("share link not found")
	case errors.Is(err, ticket.ErrTicketNotFound):
		return apperrors.NewNotFoundError("ticket not found")
	case errors.Is(err, sharelink.ErrNotEditable):
		return apperrors.NewForbiddenError("share link does not allow edits")
	case errors.Is(err, sharelink.ErrInvalidTenantID),
		errors.Is(err, sharelink.ErrInvalidItemType),
		errors.Is(err, sharelink.ErrInvalidItemID),
		errors.Is(err, sharelink.ErrInvalidExpiryHours):
		return apperrors.NewValidationError(err.Error())
	}
	return err
}

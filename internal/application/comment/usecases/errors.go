package usecases

import (
	"errors"

	"github.com/niggl1/appsindico/internal/domain/comment"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
)

func toAppError(err error) error {
	switch {
	case err == nil:
		return nil
	case apperrors.IsAppError(err):
		return err
	case errors.Is(err, comment.ErrCommentNotFound):
		return apperrors.NewNotFoundError("comment not found")
	case errors.Is(err, ticket.ErrTicketNotFound):
		return apperrors.NewNotFoundError("ticket not found")
	case errors.Is(err, comment.ErrInternalRequiresStaff):
		return apperrors.NewForbiddenError(err.Error())
	case errors.Is(err, comment.ErrInvalidTenantID),
		errors.Is(err, comment.ErrInvalidItemType),
		errors.Is(err, comment.ErrInvalidItemID),
		errors.Is(err, comment.ErrTextRequired),
		errors.Is(err, comment.ErrTextTooLong),
		errors.Is(err, comment.ErrAuthorNameTooLong),
		errors.Is(err, comment.ErrAuthorContactTooLong),
		errors.Is(err, comment.ErrTooManyAttachments),
		errors.Is(err, comment.ErrInvalidAttachment),
		errors.Is(err, comment.ErrInvalidReader):
		return apperrors.NewValidationError(err.Error())
	}
	return err
}

package ticket

import "errors"

var (
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrAttachmentNotFound  = errors.New("attachment not found")
	ErrInvalidTenantID     = errors.New("tenant id is required")
	ErrInvalidKind         = errors.New("invalid ticket kind")
	ErrTitleRequired       = errors.New("title is required")
	ErrTitleTooLong        = errors.New("title exceeds maximum length of 200 characters")
	ErrDescriptionTooLong  = errors.New("description exceeds maximum length of 5000 characters")
	ErrInvalidPriority     = errors.New("invalid priority")
	ErrInvalidStatus       = errors.New("status id is required")
	ErrAssigneeNameTooLong = errors.New("assignee name exceeds maximum length of 100 characters")
	ErrIdentifiersAssigned = errors.New("ticket identifiers are already assigned")
	ErrInvalidIdentifiers  = errors.New("protocol and tokens cannot be empty")
	ErrVersionConflict     = errors.New("ticket was modified concurrently")
	ErrProtocolExhausted   = errors.New("could not allocate a unique protocol")

	ErrInvalidEventKind    = errors.New("invalid timeline event kind")
	ErrEventTicketRequired = errors.New("timeline event requires a ticket")
	ErrEventDescTooLong    = errors.New("timeline description exceeds maximum length of 1000 characters")

	ErrAttachmentURLRequired = errors.New("attachment url is required")
	ErrAttachmentURLTooLong  = errors.New("attachment url exceeds maximum length of 2048 characters")
	ErrCaptionTooLong        = errors.New("caption exceeds maximum length of 300 characters")
	ErrInvalidPosition       = errors.New("attachment position must be positive")
)

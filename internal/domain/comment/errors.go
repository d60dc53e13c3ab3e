package comment

import "errors"

var (
	ErrCommentNotFound       = errors.New("comment not found")
	ErrInvalidTenantID       = errors.New("tenant id is required")
	ErrInvalidItemType       = errors.New("invalid item type")
	ErrInvalidItemID         = errors.New("item id is required")
	ErrTextRequired          = errors.New("comment text is required")
	ErrTextTooLong           = errors.New("comment text exceeds maximum length of 4000 characters")
	ErrAuthorNameTooLong     = errors.New("author name exceeds maximum length of 100 characters")
	ErrAuthorContactTooLong  = errors.New("author contact exceeds maximum length of 150 characters")
	ErrTooManyAttachments    = errors.New("a comment accepts at most 10 attachments")
	ErrInvalidAttachment     = errors.New("attachment url must be 1-2048 characters")
	ErrInternalRequiresStaff = errors.New("internal comments can only be written by staff")
	ErrInvalidReader         = errors.New("reader id is required")
)

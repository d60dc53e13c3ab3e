package sharelink

import "errors"

var (
	ErrShareLinkNotFound  = errors.New("share link not found")
	ErrInvalidTenantID    = errors.New("tenant id is required")
	ErrInvalidItemType    = errors.New("invalid item type")
	ErrInvalidItemID      = errors.New("item id is required")
	ErrTokenTooShort      = errors.New("share token must be at least 32 characters")
	ErrInvalidExpiryHours = errors.New("expiry hours must be between 0 and 876000")
	ErrNotEditable        = errors.New("share link does not allow edits")
)

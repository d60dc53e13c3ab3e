package statuscatalog

import "errors"

var (
	ErrStatusNotFound     = errors.New("status not found")
	ErrInvalidName        = errors.New("status name must be 1-50 characters")
	ErrInvalidColor       = errors.New("status color must be a hex color like #1E88E5")
	ErrInvalidIcon        = errors.New("status icon must be at most 50 characters")
	ErrInvalidOrder       = errors.New("display order must be positive")
	ErrOrderTaken         = errors.New("display order already used by another status")
	ErrNameTaken          = errors.New("status name already exists")
	ErrStatusInactive     = errors.New("status is inactive")
	ErrLastOpenStatus     = errors.New("at least one active non-terminal status must remain")
	ErrNoOpenStatus       = errors.New("no active non-terminal status available")
	ErrReorderMismatch    = errors.New("reorder list must contain every active status exactly once")
	ErrVersionConflict    = errors.New("status was modified concurrently")
	ErrInvalidTenantID    = errors.New("tenant id is required")
	ErrInvalidDefaultsSet = errors.New("default status set must contain a non-terminal status")
)

// Package statuscatalog models the per-tenant ordered list of ticket states.
package statuscatalog

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/niggl1/appsindico/internal/shared/biztime"
)

const (
	maxNameLength = 50
	maxIconLength = 50
)

var colorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// StatusDefinition is one named state in a tenant's catalog.
// Statuses are never hard-deleted; Deactivate hides them from new tickets.
type StatusDefinition struct {
	id           uint
	tenantID     uint
	name         string
	displayOrder int
	color        string
	icon         string
	isTerminal   bool
	active       bool
	version      int
	createdAt    time.Time
	updatedAt    time.Time

	// touched is set once the in-memory copy diverges from the stored row.
	touched bool
}

// NewStatusDefinition creates an active status.
func NewStatusDefinition(tenantID uint, name string, displayOrder int, color, icon string, isTerminal bool) (*StatusDefinition, error) {
	if tenantID == 0 {
		return nil, ErrInvalidTenantID
	}
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if displayOrder < 1 {
		return nil, ErrInvalidOrder
	}
	if err := validatePresentation(color, icon); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &StatusDefinition{
		tenantID:     tenantID,
		name:         name,
		displayOrder: displayOrder,
		color:        color,
		icon:         icon,
		isTerminal:   isTerminal,
		active:       true,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructStatusDefinition rebuilds a status from persistence.
func ReconstructStatusDefinition(
	id, tenantID uint,
	name string,
	displayOrder int,
	color, icon string,
	isTerminal, active bool,
	version int,
	createdAt, updatedAt time.Time,
) *StatusDefinition {
	return &StatusDefinition{
		id:           id,
		tenantID:     tenantID,
		name:         name,
		displayOrder: displayOrder,
		color:        color,
		icon:         icon,
		isTerminal:   isTerminal,
		active:       active,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (s *StatusDefinition) ID() uint             { return s.id }
func (s *StatusDefinition) TenantID() uint       { return s.tenantID }
func (s *StatusDefinition) Name() string         { return s.name }
func (s *StatusDefinition) DisplayOrder() int    { return s.displayOrder }
func (s *StatusDefinition) Color() string        { return s.color }
func (s *StatusDefinition) Icon() string         { return s.icon }
func (s *StatusDefinition) IsTerminal() bool     { return s.isTerminal }
func (s *StatusDefinition) IsActive() bool       { return s.active }
func (s *StatusDefinition) Version() int         { return s.version }
func (s *StatusDefinition) CreatedAt() time.Time { return s.createdAt }
func (s *StatusDefinition) UpdatedAt() time.Time { return s.updatedAt }

// SetID is called by the repository after insert.
func (s *StatusDefinition) SetID(id uint) {
	s.id = id
}

func (s *StatusDefinition) Rename(name string) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}
	if name == s.name {
		return nil
	}
	s.name = name
	s.touch()
	return nil
}

func (s *StatusDefinition) SetPresentation(color, icon string) error {
	if err := validatePresentation(color, icon); err != nil {
		return err
	}
	if color == s.color && icon == s.icon {
		return nil
	}
	s.color = color
	s.icon = icon
	s.touch()
	return nil
}

func (s *StatusDefinition) SetTerminal(terminal bool) {
	if terminal == s.isTerminal {
		return
	}
	s.isTerminal = terminal
	s.touch()
}

func (s *StatusDefinition) MoveTo(order int) error {
	if order < 1 {
		return ErrInvalidOrder
	}
	if order == s.displayOrder {
		return nil
	}
	s.displayOrder = order
	s.touch()
	return nil
}

// Deactivate is idempotent.
func (s *StatusDefinition) Deactivate() {
	if !s.active {
		return
	}
	s.active = false
	s.touch()
}

// IsOpen reports whether new tickets may be placed in this status.
func (s *StatusDefinition) IsOpen() bool {
	return s.active && !s.isTerminal
}

// touch bumps the version at most once per loaded copy, so several edits
// persisted together still pass the repository's version check.
func (s *StatusDefinition) touch() {
	if !s.touched {
		s.version++
		s.touched = true
	}
	s.updatedAt = biztime.NowUTC()
}

func validateName(name string) error {
	n := utf8.RuneCountInString(name)
	if n == 0 || n > maxNameLength {
		return ErrInvalidName
	}
	return nil
}

func validatePresentation(color, icon string) error {
	if color != "" && !colorPattern.MatchString(color) {
		return ErrInvalidColor
	}
	if utf8.RuneCountInString(icon) > maxIconLength {
		return ErrInvalidIcon
	}
	return nil
}

// Package sharelink models unguessable tokens that grant unauthenticated
// access to a single ticket.
package sharelink

import (
	"time"

	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/shared/biztime"
)

// MinTokenLength is the shortest accepted token (32 base64url chars = 192 bits).
const MinTokenLength = 32

// MaxExpiryHours bounds expiry to about 100 years so createdAt + expiry never
// overflows time.Duration.
const MaxExpiryHours = 100 * 365 * 24

// ShareLink points at one ticket through the (itemType, itemID) pair.
// Links are soft-deleted: a deactivated link keeps its row and access history
// but never resolves again.
type ShareLink struct {
	id             uint
	tenantID       uint
	itemType       vo.Kind
	itemID         uint
	token          string
	editable       bool
	expiryHours    int
	accessCount    int64
	createdByID    *uint
	createdByName  string
	active         bool
	lastAccessedAt *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

type NewShareLinkParams struct {
	TenantID      uint
	ItemType      vo.Kind
	ItemID        uint
	Token         string
	Editable      bool
	ExpiryHours   int
	CreatedByID   *uint
	CreatedByName string
}

func NewShareLink(p NewShareLinkParams) (*ShareLink, error) {
	if p.TenantID == 0 {
		return nil, ErrInvalidTenantID
	}
	if !p.ItemType.IsValid() {
		return nil, ErrInvalidItemType
	}
	if p.ItemID == 0 {
		return nil, ErrInvalidItemID
	}
	if len(p.Token) < MinTokenLength {
		return nil, ErrTokenTooShort
	}
	if p.ExpiryHours < 0 || p.ExpiryHours > MaxExpiryHours {
		return nil, ErrInvalidExpiryHours
	}

	now := biztime.NowUTC()
	return &ShareLink{
		tenantID:      p.TenantID,
		itemType:      p.ItemType,
		itemID:        p.ItemID,
		token:         p.Token,
		editable:      p.Editable,
		expiryHours:   p.ExpiryHours,
		createdByID:   p.CreatedByID,
		createdByName: p.CreatedByName,
		active:        true,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructShareLink(
	id, tenantID uint,
	itemType vo.Kind,
	itemID uint,
	token string,
	editable bool,
	expiryHours int,
	accessCount int64,
	createdByID *uint,
	createdByName string,
	active bool,
	lastAccessedAt *time.Time,
	createdAt, updatedAt time.Time,
) *ShareLink {
	return &ShareLink{
		id:             id,
		tenantID:       tenantID,
		itemType:       itemType,
		itemID:         itemID,
		token:          token,
		editable:       editable,
		expiryHours:    expiryHours,
		accessCount:    accessCount,
		createdByID:    createdByID,
		createdByName:  createdByName,
		active:         active,
		lastAccessedAt: lastAccessedAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (l *ShareLink) ID() uint                   { return l.id }
func (l *ShareLink) TenantID() uint             { return l.tenantID }
func (l *ShareLink) ItemType() vo.Kind          { return l.itemType }
func (l *ShareLink) ItemID() uint               { return l.itemID }
func (l *ShareLink) Token() string              { return l.token }
func (l *ShareLink) Editable() bool             { return l.editable }
func (l *ShareLink) ExpiryHours() int           { return l.expiryHours }
func (l *ShareLink) AccessCount() int64         { return l.accessCount }
func (l *ShareLink) CreatedByID() *uint         { return l.createdByID }
func (l *ShareLink) CreatedByName() string      { return l.createdByName }
func (l *ShareLink) IsActive() bool             { return l.active }
func (l *ShareLink) LastAccessedAt() *time.Time { return l.lastAccessedAt }
func (l *ShareLink) CreatedAt() time.Time       { return l.createdAt }
func (l *ShareLink) UpdatedAt() time.Time       { return l.updatedAt }

func (l *ShareLink) SetID(id uint) {
	l.id = id
}

// ExpiresAt returns createdAt + expiryHours, or nil for links that never expire.
// Stored hours above MaxExpiryHours are read as MaxExpiryHours.
func (l *ShareLink) ExpiresAt() *time.Time {
	if l.expiryHours <= 0 {
		return nil
	}
	at := l.createdAt.Add(time.Duration(min(l.expiryHours, MaxExpiryHours)) * time.Hour)
	return &at
}

// IsExpired reports whether now is past the expiry instant.
func (l *ShareLink) IsExpired(now time.Time) bool {
	at := l.ExpiresAt()
	return at != nil && now.After(*at)
}

// CanResolve reports whether the link may be used at now.
func (l *ShareLink) CanResolve(now time.Time) bool {
	return l.active && !l.IsExpired(now)
}

// Deactivate is idempotent and reports whether the state changed.
func (l *ShareLink) Deactivate() bool {
	if !l.active {
		return false
	}
	l.active = false
	l.updatedAt = biztime.NowUTC()
	return true
}

// RecordAccess mirrors a successful counter increment done by the repository.
func (l *ShareLink) RecordAccess(at time.Time) {
	l.accessCount++
	l.lastAccessedAt = &at
}

package usecases

import (
	"context"
	"time"

	"github.com/niggl1/appsindico/internal/application/sharelink/dto"
	ticketdto "github.com/niggl1/appsindico/internal/application/ticket/dto"
)

// Resolution outcomes reported to Metrics.
const (
	ResolveHit      = "hit"
	ResolveMiss     = "miss"
	ResolveInactive = "inactive"
	ResolveExpired  = "expired"
	ResolveGone     = "gone"
	ResolveError    = "error"
)

type Metrics interface {
	ShareLinkResolved(result string)
}

// Clock is swapped in tests that exercise expiry.
type Clock func() time.Time

// ExpiryPolicy bounds the lifetime of new links, in hours. Zero means never.
type ExpiryPolicy struct {
	DefaultHours int
	MaxHours     int
}

type CreateShareLinkExecutor interface {
	Execute(ctx context.Context, cmd CreateShareLinkCommand) (*dto.CreateShareLinkResult, error)
}

type ResolveShareLinkExecutor interface {
	Execute(ctx context.Context, query ResolveShareLinkQuery) *dto.SnapshotDTO
}

type DeactivateShareLinkExecutor interface {
	Execute(ctx context.Context, cmd DeactivateShareLinkCommand) error
}

type ListShareLinksExecutor interface {
	Execute(ctx context.Context, query ListShareLinksQuery) ([]*dto.ShareLinkDTO, error)
}

type SweepExpiredExecutor interface {
	Execute(ctx context.Context) (int64, error)
}

type PublicUpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd PublicUpdateTicketCommand) (*ticketdto.TicketDTO, error)
}

type PublicAddAttachmentExecutor interface {
	Execute(ctx context.Context, cmd PublicAddAttachmentCommand) (*ticketdto.AttachmentDTO, error)
}

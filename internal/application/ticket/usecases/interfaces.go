package usecases

import (
	"context"
	"time"

	"github.com/niggl1/appsindico/internal/application/ticket/dto"
	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
)

// CatalogLoader returns a tenant's status catalog, seeding it when empty.
type CatalogLoader interface {
	Load(ctx context.Context, tenantID uint) (statuscatalog.Catalog, error)
}

// Metrics receives business counters.
type Metrics interface {
	TicketCreated(kind vo.Kind)
	TimelineEventAppended(kind vo.Kind, event vo.EventKind)
}

// RelativeTimeFormatter renders "3 hours ago" style strings.
type RelativeTimeFormatter interface {
	Format(t time.Time) string
}

// Exporter renders ticket rows into a downloadable workbook.
type Exporter interface {
	Export(rows []dto.ExportRow) ([]byte, error)
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type GetTimelineExecutor interface {
	Execute(ctx context.Context, query GetTimelineQuery) ([]*dto.TimelineEventDTO, error)
}

type AddAttachmentExecutor interface {
	Execute(ctx context.Context, cmd AddAttachmentCommand) (*dto.AttachmentDTO, error)
}

type RemoveAttachmentExecutor interface {
	Execute(ctx context.Context, cmd RemoveAttachmentCommand) error
}

type ListAttachmentsExecutor interface {
	Execute(ctx context.Context, query ListAttachmentsQuery) ([]*dto.AttachmentDTO, error)
}

type GetTicketStatsExecutor interface {
	Execute(ctx context.Context, query GetTicketStatsQuery) (*dto.TicketStatsDTO, error)
}

type ExportTicketsExecutor interface {
	Execute(ctx context.Context, query ExportTicketsQuery) (*ExportTicketsResult, error)
}

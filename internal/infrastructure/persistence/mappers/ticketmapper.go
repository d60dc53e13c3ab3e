package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/niggl1/appsindico/internal/domain/ticket"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) (*models.TicketModel, error)

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	EventToModel(e *ticket.TimelineEvent) (*models.TimelineEventModel, error)
	EventToDomain(model *models.TimelineEventModel) (*ticket.TimelineEvent, error)

	AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) *ticket.Attachment
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) (*models.TicketModel, error) {
	details, err := marshalJSON(t.Details())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ticket details (id=%d): %w", t.ID(), err)
	}
	loc := t.Location()

	return &models.TicketModel{
		ID:            t.ID(),
		TenantID:      t.TenantID(),
		Kind:          t.Kind().String(),
		Protocol:      t.Protocol(),
		Title:         t.Title(),
		Description:   t.Description(),
		StatusID:      t.StatusID(),
		Priority:      t.Priority().String(),
		AssigneeID:    t.AssigneeID(),
		AssigneeName:  t.AssigneeName(),
		Latitude:      loc.Latitude,
		Longitude:     loc.Longitude,
		Address:       loc.Address,
		ScheduledAt:   t.ScheduledAt(),
		PerformedAt:   t.PerformedAt(),
		ClosedAt:      t.ClosedAt(),
		ShareToken:    t.ShareToken(),
		ChatToken:     t.ChatToken(),
		Details:       details,
		CreatedByID:   t.CreatedByID(),
		CreatedByName: t.CreatedByName(),
		Version:       t.Version(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}, nil
}

// ToDomain converts a ticket persistence model to a domain entity.
// Attachments and timeline events are loaded separately by their repositories.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	kind, err := vo.NewKind(model.Kind)
	if err != nil {
		return nil, fmt.Errorf("invalid kind on ticket %d: %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		priority = vo.PriorityMedium
	}

	var details map[string]any
	if len(model.Details) > 0 {
		if err := json.Unmarshal(model.Details, &details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket details (id=%d): %w", model.ID, err)
		}
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.TenantID,
		kind,
		model.Protocol,
		model.Title,
		model.Description,
		model.StatusID,
		priority,
		model.AssigneeID,
		model.AssigneeName,
		vo.Location{Latitude: model.Latitude, Longitude: model.Longitude, Address: model.Address},
		utcPtr(model.ScheduledAt),
		utcPtr(model.PerformedAt),
		utcPtr(model.ClosedAt),
		model.ShareToken,
		model.ChatToken,
		details,
		model.CreatedByID,
		model.CreatedByName,
		model.Version,
		model.CreatedAt.UTC(),
		model.UpdatedAt.UTC(),
	), nil
}

func (m *TicketMapperImpl) EventToModel(e *ticket.TimelineEvent) (*models.TimelineEventModel, error) {
	metadata, err := marshalJSON(e.Metadata())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event metadata: %w", err)
	}
	return &models.TimelineEventModel{
		ID:           e.ID(),
		TenantID:     e.TenantID(),
		TicketID:     e.TicketID(),
		Kind:         string(e.Kind()),
		Description:  e.Description(),
		ActorID:      e.ActorID(),
		ActorName:    e.ActorName(),
		PrevStatusID: e.PrevStatusID(),
		NewStatusID:  e.NewStatusID(),
		Metadata:     metadata,
		IsInternal:   e.IsInternal(),
		CreatedAt:    e.CreatedAt(),
	}, nil
}

func (m *TicketMapperImpl) EventToDomain(model *models.TimelineEventModel) (*ticket.TimelineEvent, error) {
	var metadata map[string]any
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event metadata (id=%d): %w", model.ID, err)
		}
	}
	return ticket.ReconstructTimelineEvent(
		model.ID,
		model.TenantID,
		model.TicketID,
		vo.EventKind(model.Kind),
		model.Description,
		model.ActorID,
		model.ActorName,
		model.PrevStatusID,
		model.NewStatusID,
		metadata,
		model.IsInternal,
		model.CreatedAt.UTC(),
	), nil
}

func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:        a.ID(),
		TenantID:  a.TenantID(),
		TicketID:  a.TicketID(),
		URL:       a.URL(),
		Caption:   a.Caption(),
		Position:  a.Position(),
		CreatedAt: a.CreatedAt(),
	}
}

func (m *TicketMapperImpl) AttachmentToDomain(model *models.AttachmentModel) *ticket.Attachment {
	return ticket.ReconstructAttachment(
		model.ID,
		model.TenantID,
		model.TicketID,
		model.URL,
		model.Caption,
		model.Position,
		model.CreatedAt.UTC(),
	)
}

func marshalJSON(v any) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

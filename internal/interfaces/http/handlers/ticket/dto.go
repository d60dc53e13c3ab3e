package ticket

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/niggl1/appsindico/internal/application/ticket/dto"
	"github.com/niggl1/appsindico/internal/application/ticket/usecases"
	"github.com/niggl1/appsindico/internal/shared/authorization"
	"github.com/niggl1/appsindico/internal/shared/biztime"
	"github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/utils"
)

func toCreateCommand(staff authorization.Staff, kind string, req *dto.CreateTicketRequest) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		TenantID:     staff.TenantID,
		Kind:         kind,
		Title:        req.Title,
		Description:  req.Description,
		StatusID:     req.StatusID,
		Priority:     req.Priority,
		AssigneeID:   req.AssigneeID,
		AssigneeName: req.AssigneeName,
		Location: usecases.LocationInput{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			Address:   req.Address,
		},
		ScheduledAt: req.ScheduledAt,
		PerformedAt: req.PerformedAt,
		Details:     req.Details,
		Actor:       usecases.StaffActor(staff.UserID, staff.Name),
	}
}

func toUpdateCommand(staff authorization.Staff, kind string, ticketID uint, req *dto.UpdateTicketRequest) usecases.UpdateTicketCommand {
	cmd := usecases.UpdateTicketCommand{
		TenantID:        staff.TenantID,
		Kind:            kind,
		TicketID:        ticketID,
		ExpectedVersion: req.ExpectedVersion,
		Title:           req.Title,
		Description:     req.Description,
		StatusID:        req.StatusID,
		Priority:        req.Priority,
		AssigneeID:      req.AssigneeID,
		AssigneeName:    req.AssigneeName,
		ScheduledAt:     req.ScheduledAt,
		PerformedAt:     req.PerformedAt,
		Details:         req.Details,
		Actor:           usecases.StaffActor(staff.UserID, staff.Name),
	}

	// Any location field replaces the whole location.
	if req.Latitude != nil || req.Longitude != nil || req.Address != nil {
		loc := usecases.LocationInput{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		}
		if req.Address != nil {
			loc.Address = *req.Address
		}
		cmd.Location = &loc
	}

	return cmd
}

// parseListTicketsQuery reads filters, sorting and pagination from the query string.
// Dates are business-timezone days; scheduled_to includes the whole day.
func parseListTicketsQuery(c *gin.Context, tenantID uint, kind string) (usecases.ListTicketsQuery, error) {
	p := utils.ParsePagination(c)
	query := usecases.ListTicketsQuery{
		TenantID:  tenantID,
		Kind:      kind,
		Priority:  c.Query("priority"),
		Search:    strings.TrimSpace(c.Query("search")),
		Page:      p.Page,
		PageSize:  p.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	statusID, err := utils.ParseUintQuery(c, "status_id")
	if err != nil {
		return query, err
	}
	if statusID > 0 {
		query.StatusID = &statusID
	}

	assigneeID, err := utils.ParseUintQuery(c, "assignee_id")
	if err != nil {
		return query, err
	}
	if assigneeID > 0 {
		query.AssigneeID = &assigneeID
	}

	if raw := c.Query("scheduled_from"); raw != "" {
		from, err := biztime.ParseDateInBizTimezone(raw)
		if err != nil {
			return query, errors.NewValidationError("invalid scheduled_from", "expected YYYY-MM-DD")
		}
		query.ScheduledFrom = &from
	}

	if raw := c.Query("scheduled_to"); raw != "" {
		day, err := biztime.ParseDateInBizTimezone(raw)
		if err != nil {
			return query, errors.NewValidationError("invalid scheduled_to", "expected YYYY-MM-DD")
		}
		to := biztime.EndOfDayUTC(day)
		query.ScheduledTo = &to
	}

	if query.ScheduledFrom != nil && query.ScheduledTo != nil && query.ScheduledTo.Before(*query.ScheduledFrom) {
		return query, errors.NewValidationError("scheduled_to must not be before scheduled_from")
	}

	return query, nil
}

package ticket

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niggl1/appsindico/internal/application/ticket/dto"
	"github.com/niggl1/appsindico/internal/application/ticket/usecases"
	"github.com/niggl1/appsindico/internal/shared/authorization"
	"github.com/niggl1/appsindico/internal/shared/constants"
	"github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/logger"
	"github.com/niggl1/appsindico/internal/shared/utils"
)

// Executors groups the use cases behind TicketHandler.
type Executors struct {
	Create           usecases.CreateTicketExecutor
	Get              usecases.GetTicketExecutor
	List             usecases.ListTicketsExecutor
	Update           usecases.UpdateTicketExecutor
	Delete           usecases.DeleteTicketExecutor
	Timeline         usecases.GetTimelineExecutor
	Stats            usecases.GetTicketStatsExecutor
	Export           usecases.ExportTicketsExecutor
	AddAttachment    usecases.AddAttachmentExecutor
	RemoveAttachment usecases.RemoveAttachmentExecutor
	ListAttachments  usecases.ListAttachmentsExecutor
}

// TicketHandler serves every ticket kind. The kind comes from the :kind path segment.
type TicketHandler struct {
	createTicketUC     usecases.CreateTicketExecutor
	getTicketUC        usecases.GetTicketExecutor
	listTicketsUC      usecases.ListTicketsExecutor
	updateTicketUC     usecases.UpdateTicketExecutor
	deleteTicketUC     usecases.DeleteTicketExecutor
	getTimelineUC      usecases.GetTimelineExecutor
	getStatsUC         usecases.GetTicketStatsExecutor
	exportTicketsUC    usecases.ExportTicketsExecutor
	addAttachmentUC    usecases.AddAttachmentExecutor
	removeAttachmentUC usecases.RemoveAttachmentExecutor
	listAttachmentsUC  usecases.ListAttachmentsExecutor
	logger             logger.Interface
}

func NewTicketHandler(exec Executors, logger logger.Interface) *TicketHandler {
	return &TicketHandler{
		createTicketUC:     exec.Create,
		getTicketUC:        exec.Get,
		listTicketsUC:      exec.List,
		updateTicketUC:     exec.Update,
		deleteTicketUC:     exec.Delete,
		getTimelineUC:      exec.Timeline,
		getStatsUC:         exec.Stats,
		exportTicketsUC:    exec.Export,
		addAttachmentUC:    exec.AddAttachment,
		removeAttachmentUC: exec.RemoveAttachment,
		listAttachmentsUC:  exec.ListAttachments,
		logger:             logger,
	}
}

// CreateTicket handles POST /tickets/:kind
// @Summary Create a ticket
// @Description Open an inspection, maintenance, incident, checklist or service order
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param kind path string true "Ticket kind" Enums(inspection, maintenance, incident, checklist, service_order)
// @Param ticket body dto.CreateTicketRequest true "Ticket data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /tickets/{kind} [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	staff, ok := requireStaff(c)
	if !ok {
		return
	}

	var req dto.CreateTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), toCreateCommand(staff, c.Param("kind"), &req))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:kind/:id
// @Summary Get ticket by ID
// @Tags tickets
// @Produce json
// @Security Bearer
// @Param kind path string true "Ticket kind"
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{kind}/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	staff, ok := requireStaff(c)
	if !ok {
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TenantID: staff.TenantID,
		Kind:     c.Param("kind"),
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets/:kind
// @Summary List tickets
// @Description Paginated, filterable list of one kind of ticket
// @Tags tickets
// @Produce json
// @Security Bearer
// @Param kind path string true "Ticket kind"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param status_id query int false "Status filter"
// @Param priority query string false "Priority filter"
// @Param assignee_id query int false "Assignee filter"
// @Param search query string false "Matches protocol, title or description"
// @Param scheduled_from query string false "First day (YYYY-MM-DD)"
// @Param scheduled_to query string false "Last day (YYYY-MM-DD)"
// @Param sort_by query string false "created_at, updated_at, scheduled_at, priority or title"
// @Param sort_order query string false "asc or desc"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /tickets/{kind} [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	staff, ok := requireStaff(c)
	if !ok {
		return
	}

	query, err := parseListTicketsQuery(c, staff.TenantID, c.Param("kind"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// UpdateTicket handles PATCH /tickets/:kind/:id
// @Summary Update ticket
// @Description Partial update. Send version to guard against concurrent edits.
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param kind path string true "Ticket kind"
// @Param id path int true "Ticket ID"
// @Param body body dto.UpdateTicketRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /tickets/{kind}/{id} [patch]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	staff, ok := requireStaff(c)
	if !ok {
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), toUpdateCommand(staff, c.Param("kind"), ticketID, &req))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// DeleteTicket handles DELETE /tickets/:kind/:id
// @Summary Delete ticket
// @Description Delete a ticket with its timeline, attachments, comments and share links
// @Tags tickets
// @Security Bearer
// @Param kind path string true "Ticket kind"
// @Param id path int true "Ticket ID"
// @Success 204
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{kind}/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	staff, ok := requireStaff(c)
	if !ok {
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TenantID: staff.TenantID,
		Kind:     c.Param("kind"),
		TicketID: ticketID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetTimeline handles GET /tickets/:kind/:id/timeline
// @Summary Ticket timeline
// @Description Audit events, newest first
// @Tags tickets
// @Produce json
// @Security Bearer
// @Param kind path string true "Ticket kind"
// @Param id path int true "Ticket ID"
// @Param include_internal query bool false "Include internal events" default(true)
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{kind}/{id}/timeline [get]
func (h *TicketHandler) GetTimeline(c *gin.Context) {
	staff, ok := requireStaff(c)
	if !ok {
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTimelineUC.Execute(c.Request.Context(), usecases.GetTimelineQuery{
		TenantID:        staff.TenantID,
		Kind:            c.Param("kind"),
		TicketID:        ticketID,
		IncludeInternal: c.DefaultQuery("include_internal", "true") != "false",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetStats handles GET /tickets/:kind/stats
// @Summary Ticket counters
// @Description Totals by status and priority for one kind
// @Tags tickets
// @Produce json
// @Security Bearer
// @Param kind path string true "Ticket kind"
// @Success 200 {object} utils.APIResponse
// @Router /tickets/{kind}/stats [get]
func (h *TicketHandler) GetStats(c *gin.Context) {
	staff, ok := requireStaff(c)
	if !ok {
		return
	}

	result, err := h.getStatsUC.Execute(c.Request.Context(), usecases.GetTicketStatsQuery{
		TenantID: staff.TenantID,
		Kind:     c.Param("kind"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ExportTickets handles GET /tickets/:kind/export
// @Summary Export tickets
// @Description Download the filtered list as an Excel workbook
// @Tags tickets
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security Bearer
// @Param kind path string true "Ticket kind"
// @Param status_id query int false "Status filter"
// @Param priority query string false "Priority filter"
// @Param search query string false "Search text"
// @Success 200 {file} file
// @Failure 400 {object} utils.APIResponse
// @Router /tickets/{kind}/export [get]
func (h *TicketHandler) ExportTickets(c *gin.Context) {
	staff, ok := requireStaff(c)
	if !ok {
		return
	}

	query, err := parseListTicketsQuery(c, staff.TenantID, c.Param("kind"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.exportTicketsUC.Execute(c.Request.Context(), usecases.ExportTicketsQuery{ListTicketsQuery: query})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, constants.ContentTypeXLSX, result.Content)
}

// AddAttachment handles POST /tickets/:kind/:id/attachments
// @Summary Add attachment
// @Description Attach an uploaded photo or document URL to the ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param kind path string true "Ticket kind"
// @Param id path int true "Ticket ID"
// @Param body body dto.AddAttachmentRequest true "Attachment"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{kind}/{id}/attachments [post]
func (h *TicketHandler) AddAttachment(c *gin.Context) {
	staff, ok := requireStaff(c)
	if !ok {
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.AddAttachmentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addAttachmentUC.Execute(c.Request.Context(), usecases.AddAttachmentCommand{
		TenantID: staff.TenantID,
		Kind:     c.Param("kind"),
		TicketID: ticketID,
		URL:      req.URL,
		Caption:  req.Caption,
		Actor:    usecases.StaffActor(staff.UserID, staff.Name),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachment added successfully")
}

// ListAttachments handles GET /tickets/:kind/:id/attachments
// @Summary List attachments
// @Tags tickets
// @Produce json
// @Security Bearer
// @Param kind path string true "Ticket kind"
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{kind}/{id}/attachments [get]
func (h *TicketHandler) ListAttachments(c *gin.Context) {
	staff, ok := requireStaff(c)
	if !ok {
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listAttachmentsUC.Execute(c.Request.Context(), usecases.ListAttachmentsQuery{
		TenantID: staff.TenantID,
		Kind:     c.Param("kind"),
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RemoveAttachment handles DELETE /tickets/:kind/:id/attachments/:attachment_id
// @Summary Remove attachment
// @Tags tickets
// @Security Bearer
// @Param kind path string true "Ticket kind"
// @Param id path int true "Ticket ID"
// @Param attachment_id path int true "Attachment ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{kind}/{id}/attachments/{attachment_id} [delete]
func (h *TicketHandler) RemoveAttachment(c *gin.Context) {
	staff, ok := requireStaff(c)
	if !ok {
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	attachmentID, err := utils.ParseUintParam(c, "attachment_id", "attachment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.removeAttachmentUC.Execute(c.Request.Context(), usecases.RemoveAttachmentCommand{
		TenantID:     staff.TenantID,
		Kind:         c.Param("kind"),
		TicketID:     ticketID,
		AttachmentID: attachmentID,
		Actor:        usecases.StaffActor(staff.UserID, staff.Name),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func requireStaff(c *gin.Context) (authorization.Staff, bool) {
	staff, ok := authorization.CurrentStaff(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
	}
	return staff, ok
}

package sharelink

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niggl1/appsindico/internal/application/sharelink/dto"
	"github.com/niggl1/appsindico/internal/application/sharelink/usecases"
	ticketdto "github.com/niggl1/appsindico/internal/application/ticket/dto"
	"github.com/niggl1/appsindico/internal/shared/logger"
	"github.com/niggl1/appsindico/internal/shared/utils"
)

// snapshotResponse keeps data in the body even when the link does not resolve.
type snapshotResponse struct {
	Success bool             `json:"success"`
	Data    *dto.SnapshotDTO `json:"data"`
}

// PublicShareHandler serves anonymous visitors holding a share token.
type PublicShareHandler struct {
	resolveUC       usecases.ResolveShareLinkExecutor
	updateTicketUC  usecases.PublicUpdateTicketExecutor
	addAttachmentUC usecases.PublicAddAttachmentExecutor
	logger          logger.Interface
}

func NewPublicShareHandler(
	resolveUC usecases.ResolveShareLinkExecutor,
	updateTicketUC usecases.PublicUpdateTicketExecutor,
	addAttachmentUC usecases.PublicAddAttachmentExecutor,
	logger logger.Interface,
) *PublicShareHandler {
	return &PublicShareHandler{
		resolveUC:       resolveUC,
		updateTicketUC:  updateTicketUC,
		addAttachmentUC: addAttachmentUC,
		logger:          logger,
	}
}

// ResolveShareLink handles GET /public/share/:token
// @Summary Open a shared ticket
// @Description Returns the ticket snapshot, or data null when the link is unknown, inactive or expired
// @Tags public
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} snapshotResponse
// @Failure 429 {object} utils.APIResponse
// @Router /public/share/{token} [get]
func (h *PublicShareHandler) ResolveShareLink(c *gin.Context) {
	snapshot := h.resolveUC.Execute(c.Request.Context(), usecases.ResolveShareLinkQuery{Token: c.Param("token")})
	c.JSON(http.StatusOK, snapshotResponse{Success: true, Data: snapshot})
}

// UpdateTicket handles PATCH /public/share/:token/ticket
// @Summary Update a shared ticket
// @Description Editable links may change status, description and performed date
// @Tags public
// @Accept json
// @Produce json
// @Param token path string true "Share token"
// @Param body body ticketdto.PublicUpdateTicketRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /public/share/{token}/ticket [patch]
func (h *PublicShareHandler) UpdateTicket(c *gin.Context) {
	var req ticketdto.PublicUpdateTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), usecases.PublicUpdateTicketCommand{
		Token:       c.Param("token"),
		AuthorName:  req.AuthorName,
		StatusID:    req.StatusID,
		Description: req.Description,
		PerformedAt: req.PerformedAt,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// AddAttachment handles POST /public/share/:token/attachments
// @Summary Attach a file to a shared ticket
// @Tags public
// @Accept json
// @Produce json
// @Param token path string true "Share token"
// @Param body body ticketdto.PublicAddAttachmentRequest true "Attachment"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /public/share/{token}/attachments [post]
func (h *PublicShareHandler) AddAttachment(c *gin.Context) {
	var req ticketdto.PublicAddAttachmentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addAttachmentUC.Execute(c.Request.Context(), usecases.PublicAddAttachmentCommand{
		Token:      c.Param("token"),
		AuthorName: req.AuthorName,
		URL:        req.URL,
		Caption:    req.Caption,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachment added successfully")
}

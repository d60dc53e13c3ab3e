package sharelink

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niggl1/appsindico/internal/application/sharelink/dto"
	"github.com/niggl1/appsindico/internal/application/sharelink/usecases"
	"github.com/niggl1/appsindico/internal/shared/authorization"
	"github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/logger"
	"github.com/niggl1/appsindico/internal/shared/utils"
)

// ShareLinkHandler lets staff manage the links they hand out.
type ShareLinkHandler struct {
	createUC     usecases.CreateShareLinkExecutor
	listUC       usecases.ListShareLinksExecutor
	deactivateUC usecases.DeactivateShareLinkExecutor
	logger       logger.Interface
}

func NewShareLinkHandler(
	createUC usecases.CreateShareLinkExecutor,
	listUC usecases.ListShareLinksExecutor,
	deactivateUC usecases.DeactivateShareLinkExecutor,
	logger logger.Interface,
) *ShareLinkHandler {
	return &ShareLinkHandler{
		createUC:     createUC,
		listUC:       listUC,
		deactivateUC: deactivateUC,
		logger:       logger,
	}
}

// CreateShareLink handles POST /share-links
// @Summary Create share link
// @Description Issue a public link to a ticket. expiry_hours 0 never expires.
// @Tags share-links
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body dto.CreateShareLinkRequest true "Link data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /share-links [post]
func (h *ShareLinkHandler) CreateShareLink(c *gin.Context) {
	staff, ok := authorization.CurrentStaff(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	var req dto.CreateShareLinkRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create share link", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateShareLinkCommand{
		TenantID:      staff.TenantID,
		ItemType:      req.ItemType,
		ItemID:        req.ItemID,
		Editable:      req.Editable,
		ExpiryHours:   req.ExpiryHours,
		CreatedByID:   &staff.UserID,
		CreatedByName: staff.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Share link created successfully")
}

// ListShareLinks handles GET /share-links
// @Summary List share links of a ticket
// @Tags share-links
// @Produce json
// @Security Bearer
// @Param item_type query string true "Ticket kind"
// @Param item_id query int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /share-links [get]
func (h *ShareLinkHandler) ListShareLinks(c *gin.Context) {
	staff, ok := authorization.CurrentStaff(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	itemType := c.Query("item_type")
	if itemType == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("item_type is required"))
		return
	}
	itemID, err := utils.ParseUintQuery(c, "item_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if itemID == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("item_id is required"))
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListShareLinksQuery{
		TenantID: staff.TenantID,
		ItemType: itemType,
		ItemID:   itemID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeactivateShareLink handles DELETE /share-links/:id
// @Summary Deactivate share link
// @Tags share-links
// @Security Bearer
// @Param id path int true "Share link ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /share-links/{id} [delete]
func (h *ShareLinkHandler) DeactivateShareLink(c *gin.Context) {
	staff, ok := authorization.CurrentStaff(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	linkID, err := utils.ParseUintParam(c, "id", "share link")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deactivateUC.Execute(c.Request.Context(), usecases.DeactivateShareLinkCommand{
		TenantID:    staff.TenantID,
		ShareLinkID: linkID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

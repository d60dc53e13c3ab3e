// Package status serves the per-tenant status catalog.
package status

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niggl1/appsindico/internal/application/statuscatalog/dto"
	"github.com/niggl1/appsindico/internal/application/statuscatalog/usecases"
	"github.com/niggl1/appsindico/internal/shared/authorization"
	"github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/logger"
	"github.com/niggl1/appsindico/internal/shared/utils"
)

type StatusHandler struct {
	listUC       listStatusesUseCase
	createUC     createStatusUseCase
	updateUC     updateStatusUseCase
	reorderUC    reorderStatusesUseCase
	deactivateUC deactivateStatusUseCase
	logger       logger.Interface
}

func NewStatusHandler(
	listUC listStatusesUseCase,
	createUC createStatusUseCase,
	updateUC updateStatusUseCase,
	reorderUC reorderStatusesUseCase,
	deactivateUC deactivateStatusUseCase,
	logger logger.Interface,
) *StatusHandler {
	return &StatusHandler{
		listUC:       listUC,
		createUC:     createUC,
		updateUC:     updateUC,
		reorderUC:    reorderUC,
		deactivateUC: deactivateUC,
		logger:       logger,
	}
}

// ListStatuses handles GET /statuses
// @Summary List statuses
// @Description List the tenant's status catalog in display order
// @Tags statuses
// @Produce json
// @Security Bearer
// @Param include_inactive query bool false "Include deactivated statuses"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /statuses [get]
func (h *StatusHandler) ListStatuses(c *gin.Context) {
	staff, ok := authorization.CurrentStaff(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListStatusesQuery{
		TenantID:        staff.TenantID,
		IncludeInactive: c.Query("include_inactive") == "true",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateStatus handles POST /statuses
// @Summary Create status
// @Description Add a status to the tenant's catalog
// @Tags statuses
// @Accept json
// @Produce json
// @Security Bearer
// @Param status body dto.CreateStatusRequest true "Status data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /statuses [post]
func (h *StatusHandler) CreateStatus(c *gin.Context) {
	staff, ok := authorization.CurrentStaff(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	var req dto.CreateStatusRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateStatusCommand{
		TenantID:     staff.TenantID,
		Name:         req.Name,
		Color:        req.Color,
		Icon:         req.Icon,
		IsTerminal:   req.IsTerminal,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Status created successfully")
}

// UpdateStatus handles PATCH /statuses/:id
// @Summary Update status
// @Tags statuses
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Status ID"
// @Param status body dto.UpdateStatusRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /statuses/{id} [patch]
func (h *StatusHandler) UpdateStatus(c *gin.Context) {
	staff, ok := authorization.CurrentStaff(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	statusID, err := utils.ParseUintParam(c, "id", "status")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateStatusRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateStatusCommand{
		TenantID:     staff.TenantID,
		StatusID:     statusID,
		Name:         req.Name,
		Color:        req.Color,
		Icon:         req.Icon,
		IsTerminal:   req.IsTerminal,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", result)
}

// ReorderStatuses handles PUT /statuses/order
// @Summary Reorder statuses
// @Description Replace the display order with the given id sequence
// @Tags statuses
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body dto.ReorderStatusesRequest true "Status ids in the new order"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /statuses/order [put]
func (h *StatusHandler) ReorderStatuses(c *gin.Context) {
	staff, ok := authorization.CurrentStaff(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	var req dto.ReorderStatusesRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reorderUC.Execute(c.Request.Context(), usecases.ReorderStatusesCommand{
		TenantID:  staff.TenantID,
		StatusIDs: req.IDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Statuses reordered successfully", result)
}

// DeactivateStatus handles DELETE /statuses/:id
// @Summary Deactivate status
// @Description Hide a status from new tickets. Existing tickets keep it.
// @Tags statuses
// @Security Bearer
// @Param id path int true "Status ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /statuses/{id} [delete]
func (h *StatusHandler) DeactivateStatus(c *gin.Context) {
	staff, ok := authorization.CurrentStaff(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	statusID, err := utils.ParseUintParam(c, "id", "status")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deactivateUC.Execute(c.Request.Context(), usecases.DeactivateStatusCommand{
		TenantID: staff.TenantID,
		StatusID: statusID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

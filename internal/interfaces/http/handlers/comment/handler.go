package comment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niggl1/appsindico/internal/application/comment/dto"
	"github.com/niggl1/appsindico/internal/application/comment/usecases"
	"github.com/niggl1/appsindico/internal/shared/authorization"
	"github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/logger"
	"github.com/niggl1/appsindico/internal/shared/utils"
)

type CommentHandler struct {
	listUC     usecases.ListCommentsExecutor
	createUC   usecases.CreateCommentExecutor
	replyUC    usecases.ReplyCommentExecutor
	markReadUC usecases.MarkCommentReadExecutor
	deleteUC   usecases.DeleteCommentExecutor
	logger     logger.Interface
}

func NewCommentHandler(
	listUC usecases.ListCommentsExecutor,
	createUC usecases.CreateCommentExecutor,
	replyUC usecases.ReplyCommentExecutor,
	markReadUC usecases.MarkCommentReadExecutor,
	deleteUC usecases.DeleteCommentExecutor,
	logger logger.Interface,
) *CommentHandler {
	return &CommentHandler{
		listUC:     listUC,
		createUC:   createUC,
		replyUC:    replyUC,
		markReadUC: markReadUC,
		deleteUC:   deleteUC,
		logger:     logger,
	}
}

// ListComments handles GET /comments
// @Summary List comments of a ticket
// @Description Staff see internal comments too
// @Tags comments
// @Produce json
// @Security Bearer
// @Param item_type query string true "Ticket kind"
// @Param item_id query int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
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

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{
		TenantID:        staff.TenantID,
		ItemType:        itemType,
		ItemID:          itemID,
		IncludeInternal: true,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateComment handles POST /comments
// @Summary Comment on a ticket
// @Tags comments
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body dto.CreateCommentRequest true "Comment"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	staff, ok := authorization.CurrentStaff(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	var req dto.CreateCommentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create comment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateCommentCommand{
		TenantID:    staff.TenantID,
		ItemType:    req.ItemType,
		ItemID:      req.ItemID,
		AuthorID:    &staff.UserID,
		AuthorName:  staff.Name,
		Text:        req.Text,
		Attachments: req.Attachments,
		IsInternal:  req.IsInternal,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment created successfully")
}

// ReplyComment handles POST /comments/:id/responses
// @Summary Reply to a comment
// @Tags comments
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Comment ID"
// @Param body body dto.ReplyCommentRequest true "Reply"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /comments/{id}/responses [post]
func (h *CommentHandler) ReplyComment(c *gin.Context) {
	staff, ok := authorization.CurrentStaff(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	commentID, err := utils.ParseUintParam(c, "id", "comment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ReplyCommentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.replyUC.Execute(c.Request.Context(), usecases.ReplyCommentCommand{
		TenantID:   staff.TenantID,
		CommentID:  commentID,
		AuthorID:   &staff.UserID,
		AuthorName: staff.Name,
		Text:       req.Text,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Reply added successfully")
}

// MarkCommentRead handles POST /comments/:id/read
// @Summary Mark a comment as read
// @Tags comments
// @Security Bearer
// @Param id path int true "Comment ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /comments/{id}/read [post]
func (h *CommentHandler) MarkCommentRead(c *gin.Context) {
	staff, ok := authorization.CurrentStaff(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	commentID, err := utils.ParseUintParam(c, "id", "comment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.markReadUC.Execute(c.Request.Context(), usecases.MarkCommentReadCommand{
		TenantID:  staff.TenantID,
		CommentID: commentID,
		ReaderID:  staff.UserID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// DeleteComment handles DELETE /comments/:id
// @Summary Delete a comment
// @Tags comments
// @Security Bearer
// @Param id path int true "Comment ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	staff, ok := authorization.CurrentStaff(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	commentID, err := utils.ParseUintParam(c, "id", "comment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteCommentCommand{
		TenantID:  staff.TenantID,
		CommentID: commentID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

package comment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niggl1/appsindico/internal/application/comment/dto"
	"github.com/niggl1/appsindico/internal/application/comment/usecases"
	"github.com/niggl1/appsindico/internal/shared/logger"
	"github.com/niggl1/appsindico/internal/shared/utils"
)

// PublicCommentHandler serves the comment thread to visitors. One instance
// is mounted per channel: share links and chat tokens.
type PublicCommentHandler struct {
	channel  usecases.Channel
	listUC   usecases.ListPublicCommentsExecutor
	createUC usecases.CreatePublicCommentExecutor
	logger   logger.Interface
}

func NewPublicCommentHandler(
	channel usecases.Channel,
	listUC usecases.ListPublicCommentsExecutor,
	createUC usecases.CreatePublicCommentExecutor,
	logger logger.Interface,
) *PublicCommentHandler {
	return &PublicCommentHandler{
		channel:  channel,
		listUC:   listUC,
		createUC: createUC,
		logger:   logger,
	}
}

// ListComments handles GET /public/share/:token/comments and GET /public/chat/:token/comments
// @Summary Public comments of a shared ticket
// @Tags public
// @Produce json
// @Param token path string true "Share or chat token"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /public/share/{token}/comments [get]
// @Router /public/chat/{token}/comments [get]
func (h *PublicCommentHandler) ListComments(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListPublicCommentsQuery{
		Channel: h.channel,
		Token:   c.Param("token"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateComment handles POST /public/share/:token/comments and POST /public/chat/:token/comments
// @Summary Comment on a shared ticket
// @Description Staff are notified by email when mail is configured
// @Tags public
// @Accept json
// @Produce json
// @Param token path string true "Share or chat token"
// @Param body body dto.PublicCreateCommentRequest true "Comment"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /public/share/{token}/comments [post]
// @Router /public/chat/{token}/comments [post]
func (h *PublicCommentHandler) CreateComment(c *gin.Context) {
	var req dto.PublicCreateCommentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreatePublicCommentCommand{
		Channel:       h.channel,
		Token:         c.Param("token"),
		AuthorName:    req.AuthorName,
		AuthorContact: req.AuthorContact,
		Text:          req.Text,
		Attachments:   req.Attachments,
	})
	if err != nil {
		h.logger.Warnw("public comment rejected", "channel", h.channel, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment created successfully")
}

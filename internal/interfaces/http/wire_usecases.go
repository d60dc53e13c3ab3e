package http

import (
	commentUsecases "github.com/niggl1/appsindico/internal/application/comment/usecases"
	shareLinkUsecases "github.com/niggl1/appsindico/internal/application/sharelink/usecases"
	statusUsecases "github.com/niggl1/appsindico/internal/application/statuscatalog/usecases"
	ticketUsecases "github.com/niggl1/appsindico/internal/application/ticket/usecases"
)

// allUseCases groups the use cases by module. Fields are filled section by
// section in NewContainer.
type allUseCases struct {
	// Status catalog
	listStatusesUC     *statusUsecases.ListStatusesUseCase
	createStatusUC     *statusUsecases.CreateStatusUseCase
	updateStatusUC     *statusUsecases.UpdateStatusUseCase
	reorderStatusesUC  *statusUsecases.ReorderStatusesUseCase
	deactivateStatusUC *statusUsecases.DeactivateStatusUseCase

	// Tickets, timeline and attachments
	createTicketUC     *ticketUsecases.CreateTicketUseCase
	getTicketUC        *ticketUsecases.GetTicketUseCase
	listTicketsUC      *ticketUsecases.ListTicketsUseCase
	updateTicketUC     *ticketUsecases.UpdateTicketUseCase
	deleteTicketUC     *ticketUsecases.DeleteTicketUseCase
	getTimelineUC      *ticketUsecases.GetTimelineUseCase
	getTicketStatsUC   *ticketUsecases.GetTicketStatsUseCase
	exportTicketsUC    *ticketUsecases.ExportTicketsUseCase
	addAttachmentUC    *ticketUsecases.AddAttachmentUseCase
	removeAttachmentUC *ticketUsecases.RemoveAttachmentUseCase
	listAttachmentsUC  *ticketUsecases.ListAttachmentsUseCase

	// Share links
	createShareLinkUC     *shareLinkUsecases.CreateShareLinkUseCase
	listShareLinksUC      *shareLinkUsecases.ListShareLinksUseCase
	deactivateShareLinkUC *shareLinkUsecases.DeactivateShareLinkUseCase
	resolveShareLinkUC    *shareLinkUsecases.ResolveShareLinkUseCase
	publicUpdateTicketUC  *shareLinkUsecases.PublicUpdateTicketUseCase
	publicAddAttachmentUC *shareLinkUsecases.PublicAddAttachmentUseCase

	// Comments
	listCommentsUC        *commentUsecases.ListCommentsUseCase
	createCommentUC       *commentUsecases.CreateCommentUseCase
	replyCommentUC        *commentUsecases.ReplyCommentUseCase
	markCommentReadUC     *commentUsecases.MarkCommentReadUseCase
	deleteCommentUC       *commentUsecases.DeleteCommentUseCase
	listPublicCommentsUC  *commentUsecases.ListPublicCommentsUseCase
	createPublicCommentUC *commentUsecases.CreatePublicCommentUseCase
}

package migration

import (
	"github.com/niggl1/appsindico/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every table owned by the service.
func AutoMigrateModels() []any {
	return []any{
		&models.StatusModel{},
		&models.TicketModel{},
		&models.TimelineEventModel{},
		&models.AttachmentModel{},
		&models.ShareLinkModel{},
		&models.CommentModel{},
		&models.CommentResponseModel{},
	}
}

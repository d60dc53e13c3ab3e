package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/niggl1/appsindico/internal/domain/ticket"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/infrastructure/persistence/models"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

const testTenant uint = 3

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// every pooled connection to ":memory:" would get its own database
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(
		&models.StatusModel{},
		&models.TicketModel{},
		&models.TimelineEventModel{},
		&models.AttachmentModel{},
		&models.ShareLinkModel{},
		&models.CommentModel{},
		&models.CommentResponseModel{},
	))
	return gdb
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

func createTicket(t *testing.T, repo *TicketRepository, kind vo.Kind, title, protocol string, statusID uint) *ticket.Ticket {
	t.Helper()

	tk, err := ticket.NewTicket(ticket.NewTicketParams{
		TenantID:      testTenant,
		Kind:          kind,
		Title:         title,
		StatusID:      statusID,
		Details:       map[string]any{"area": "garage"},
		CreatedByName: "Elisa",
	})
	require.NoError(t, err)
	require.NoError(t, tk.AssignIdentifiers(protocol, "share-"+protocol, "chat-"+protocol))
	require.NoError(t, repo.Create(context.Background(), tk))
	return tk
}

func ptr[T any](v T) *T {
	return &v
}

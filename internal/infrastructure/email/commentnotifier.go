package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/niggl1/appsindico/internal/application/comment/usecases"
	sharedConfig "github.com/niggl1/appsindico/internal/shared/config"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

//go:embed templates/*
var templateFS embed.FS

var (
	htmlTemplates = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html"))
	textTemplates = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/*.txt"))
)

type commentView struct {
	usecases.Notification
	Link string
}

// CommentNotifier mails the staff address whenever a resident comments
// through a share link.
type CommentNotifier struct {
	sender       Sender
	staffAddress string
	baseURL      string
	logger       logger.Interface
}

func NewCommentNotifier(sender Sender, staffAddress, baseURL string, logger logger.Interface) *CommentNotifier {
	return &CommentNotifier{
		sender:       sender,
		staffAddress: staffAddress,
		baseURL:      baseURL,
		logger:       logger,
	}
}

// NewNotifierFromConfig returns an SMTP-backed notifier, or one that only
// logs when mail is not configured.
func NewNotifierFromConfig(cfg sharedConfig.EmailConfig, baseURL string, logger logger.Interface) usecases.Notifier {
	if !cfg.Enabled() {
		logger.Infow("email not configured, public comment notifications will only be logged")
		return NewLogNotifier(logger)
	}
	sender := NewSMTPSender(SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
	})
	return NewCommentNotifier(sender, cfg.StaffAddress, baseURL, logger)
}

func (n *CommentNotifier) NotifyPublicComment(ctx context.Context, note usecases.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	view := commentView{Notification: note}
	if n.baseURL != "" {
		view.Link = fmt.Sprintf("%s/tickets/%d", n.baseURL, note.ItemID)
	}

	var htmlBody, plainBody bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&htmlBody, "publiccomment.html", view); err != nil {
		return fmt.Errorf("failed to render html body: %w", err)
	}
	if err := textTemplates.ExecuteTemplate(&plainBody, "publiccomment.txt", view); err != nil {
		return fmt.Errorf("failed to render plain body: %w", err)
	}

	subject := fmt.Sprintf("[%s] Novo comentário: %s", note.Protocol, note.TicketTitle)
	if err := n.sender.Send(n.staffAddress, subject, htmlBody.String(), plainBody.String()); err != nil {
		n.logger.Warnw("failed to send public comment notification",
			"tenant_id", note.TenantID,
			"item_id", note.ItemID,
			"error", err,
		)
		return err
	}

	n.logger.Infow("public comment notification sent",
		"tenant_id", note.TenantID,
		"item_id", note.ItemID,
		"protocol", note.Protocol,
	)
	return nil
}

// LogNotifier records the notification and never fails.
type LogNotifier struct {
	logger logger.Interface
}

func NewLogNotifier(logger logger.Interface) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyPublicComment(_ context.Context, note usecases.Notification) error {
	n.logger.Infow("public comment received",
		"tenant_id", note.TenantID,
		"item_type", note.ItemType,
		"item_id", note.ItemID,
		"protocol", note.Protocol,
		"author", note.AuthorName,
	)
	return nil
}

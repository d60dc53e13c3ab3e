package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	commentUsecases "github.com/niggl1/appsindico/internal/application/comment/usecases"
	shareLinkUsecases "github.com/niggl1/appsindico/internal/application/sharelink/usecases"
	statusUsecases "github.com/niggl1/appsindico/internal/application/statuscatalog/usecases"
	ticketUsecases "github.com/niggl1/appsindico/internal/application/ticket/usecases"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	"github.com/niggl1/appsindico/internal/infrastructure/auth"
	"github.com/niggl1/appsindico/internal/infrastructure/config"
	"github.com/niggl1/appsindico/internal/infrastructure/email"
	"github.com/niggl1/appsindico/internal/infrastructure/export"
	"github.com/niggl1/appsindico/internal/infrastructure/i18n"
	"github.com/niggl1/appsindico/internal/infrastructure/metrics"
	"github.com/niggl1/appsindico/internal/infrastructure/permission"
	"github.com/niggl1/appsindico/internal/infrastructure/persistence/seeds"
	"github.com/niggl1/appsindico/internal/infrastructure/ratelimit"
	"github.com/niggl1/appsindico/internal/infrastructure/repository"
	"github.com/niggl1/appsindico/internal/infrastructure/schema"
	"github.com/niggl1/appsindico/internal/interfaces/http/handlers"
	commentHandlers "github.com/niggl1/appsindico/internal/interfaces/http/handlers/comment"
	shareLinkHandlers "github.com/niggl1/appsindico/internal/interfaces/http/handlers/sharelink"
	statusHandlers "github.com/niggl1/appsindico/internal/interfaces/http/handlers/status"
	ticketHandlers "github.com/niggl1/appsindico/internal/interfaces/http/handlers/ticket"
	"github.com/niggl1/appsindico/internal/interfaces/http/middleware"
	"github.com/niggl1/appsindico/internal/shared/db"
	"github.com/niggl1/appsindico/internal/shared/logger"
	"github.com/niggl1/appsindico/internal/shared/services/markdown"
)

// Container holds all infrastructure components, repositories, use cases,
// handlers and middlewares. It wires everything together and provides a
// Shutdown() method for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter

	// Shared services (created in one section, used in another)
	metrics   *metrics.Metrics
	jwtSvc    *auth.JWTService
	enforcer  *permission.Enforcer
	txMgr     *db.TransactionManager
	markdown  markdown.MarkdownService
	catalog   *statusUsecases.CatalogProvider
	timeline  *ticketUsecases.TimelineWriter
	presenter *ticketUsecases.Presenter
	relative  *i18n.RelativeTimeFormatter
	tokens    ticket.TokenGenerator
}

// NewContainer creates a new Container with all dependencies wired together.
// Sections run in dependency order: the ticket section needs the catalog,
// share links and comments need the ticket use cases.
func NewContainer(gdb *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gdb,
		cfg:    cfg,
		log:    log,
		repos:  &repositories{},
		ucs:    &allUseCases{},
		hdlrs:  &allHandlers{},
	}

	// Section 1: Infrastructure - Redis, Repositories, Auth, Metrics
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Status catalog
	c.initStatusCatalog()

	// Section 3: Tickets - Timeline, Attachments, Export
	if err := c.initTickets(); err != nil {
		return nil, err
	}

	// Section 4: Share links and the public gateway
	c.initShareLinks()

	// Section 5: Comments
	c.initComments()

	// Section 6: Health and middlewares
	c.initRemainingHandlers()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	c.redis = redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})

	c.repos.statusRepo = repository.NewStatusRepository(c.db, c.log)
	c.repos.ticketRepo = repository.NewTicketRepository(c.db, c.log)
	c.repos.timelineRepo = repository.NewTimelineRepository(c.db, c.log)
	c.repos.attachmentRepo = repository.NewAttachmentRepository(c.db, c.log)
	c.repos.commentRepo = repository.NewCommentRepository(c.db, c.log)
	c.repos.shareLinkRepo = repository.NewShareLinkRepository(c.db, c.log)

	c.txMgr = db.NewTransactionManager(c.db)
	c.markdown = markdown.NewMarkdownService()
	c.metrics = metrics.New()
	c.tokens = ticket.NewRandomTokenGenerator()

	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.Issuer, c.cfg.Auth.JWT.AccessExpMinutes)

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.SeedDefaultPolicies(); err != nil {
		return fmt.Errorf("failed to seed default policies: %w", err)
	}
	c.enforcer = enforcer

	return nil
}

func (c *Container) initStatusCatalog() {
	repo := c.repos.statusRepo

	c.catalog = statusUsecases.NewCatalogProvider(repo, seeds.NewStatusDefaults(), c.txMgr, c.log)

	c.ucs.listStatusesUC = statusUsecases.NewListStatusesUseCase(c.catalog, c.log)
	c.ucs.createStatusUC = statusUsecases.NewCreateStatusUseCase(repo, c.catalog, c.txMgr, c.log)
	c.ucs.updateStatusUC = statusUsecases.NewUpdateStatusUseCase(repo, c.catalog, c.log)
	c.ucs.reorderStatusesUC = statusUsecases.NewReorderStatusesUseCase(repo, c.catalog, c.txMgr, c.log)
	c.ucs.deactivateStatusUC = statusUsecases.NewDeactivateStatusUseCase(repo, c.catalog, c.log)

	c.hdlrs.statusHandler = statusHandlers.NewStatusHandler(
		c.ucs.listStatusesUC,
		c.ucs.createStatusUC,
		c.ucs.updateStatusUC,
		c.ucs.reorderStatusesUC,
		c.ucs.deactivateStatusUC,
		c.log,
	)
}

func (c *Container) initTickets() error {
	details, err := schema.NewDetailsValidator()
	if err != nil {
		return fmt.Errorf("failed to load ticket details schemas: %w", err)
	}

	locale := c.cfg.Server.Locale
	c.relative = i18n.NewRelativeTimeFormatter(locale)
	c.timeline = ticketUsecases.NewTimelineWriter(c.repos.timelineRepo, i18n.NewEventDescriber(locale), c.metrics)
	c.presenter = ticketUsecases.NewPresenter(c.markdown, c.log)

	ticketRepo := c.repos.ticketRepo
	attachmentRepo := c.repos.attachmentRepo

	c.ucs.createTicketUC = ticketUsecases.NewCreateTicketUseCase(
		ticketRepo, c.catalog, details,
		ticket.NewRandomProtocolGenerator(), c.tokens,
		c.timeline, c.txMgr, c.metrics, c.log,
	)
	c.ucs.getTicketUC = ticketUsecases.NewGetTicketUseCase(ticketRepo, c.catalog, c.presenter, c.log)
	c.ucs.listTicketsUC = ticketUsecases.NewListTicketsUseCase(ticketRepo, c.catalog, c.presenter, c.log)
	c.ucs.updateTicketUC = ticketUsecases.NewUpdateTicketUseCase(
		ticketRepo, c.catalog, details, c.timeline, c.presenter, c.txMgr, c.log,
	)
	c.ucs.deleteTicketUC = ticketUsecases.NewDeleteTicketUseCase(
		ticketRepo, c.repos.timelineRepo, attachmentRepo,
		c.repos.commentRepo, c.repos.shareLinkRepo,
		c.txMgr, c.log,
	)
	c.ucs.getTimelineUC = ticketUsecases.NewGetTimelineUseCase(ticketRepo, c.repos.timelineRepo, c.relative, c.log)
	c.ucs.getTicketStatsUC = ticketUsecases.NewGetTicketStatsUseCase(ticketRepo, c.catalog, c.log)
	c.ucs.exportTicketsUC = ticketUsecases.NewExportTicketsUseCase(ticketRepo, c.catalog, export.NewXLSXExporter(), c.log)
	c.ucs.addAttachmentUC = ticketUsecases.NewAddAttachmentUseCase(ticketRepo, attachmentRepo, c.timeline, c.txMgr, c.log)
	c.ucs.removeAttachmentUC = ticketUsecases.NewRemoveAttachmentUseCase(ticketRepo, attachmentRepo, c.timeline, c.txMgr, c.log)
	c.ucs.listAttachmentsUC = ticketUsecases.NewListAttachmentsUseCase(ticketRepo, attachmentRepo, c.log)

	c.hdlrs.ticketHandler = ticketHandlers.NewTicketHandler(ticketHandlers.Executors{
		Create:           c.ucs.createTicketUC,
		Get:              c.ucs.getTicketUC,
		List:             c.ucs.listTicketsUC,
		Update:           c.ucs.updateTicketUC,
		Delete:           c.ucs.deleteTicketUC,
		Timeline:         c.ucs.getTimelineUC,
		Stats:            c.ucs.getTicketStatsUC,
		Export:           c.ucs.exportTicketsUC,
		AddAttachment:    c.ucs.addAttachmentUC,
		RemoveAttachment: c.ucs.removeAttachmentUC,
		ListAttachments:  c.ucs.listAttachmentsUC,
	}, c.log)

	return nil
}

func (c *Container) initShareLinks() {
	linkRepo := c.repos.shareLinkRepo

	policy := shareLinkUsecases.ExpiryPolicy{
		DefaultHours: c.cfg.ShareLink.DefaultExpiryHours,
		MaxHours:     c.cfg.ShareLink.MaxExpiryHours,
	}

	c.ucs.createShareLinkUC = shareLinkUsecases.NewCreateShareLinkUseCase(linkRepo, c.repos.ticketRepo, c.tokens, policy, c.log)
	c.ucs.listShareLinksUC = shareLinkUsecases.NewListShareLinksUseCase(linkRepo, c.log)
	c.ucs.deactivateShareLinkUC = shareLinkUsecases.NewDeactivateShareLinkUseCase(linkRepo, c.log)
	c.ucs.resolveShareLinkUC = shareLinkUsecases.NewResolveShareLinkUseCase(
		linkRepo, c.repos.ticketRepo, c.repos.attachmentRepo, c.repos.timelineRepo,
		c.catalog, c.presenter, c.relative, c.metrics, c.log,
	)
	c.ucs.publicUpdateTicketUC = shareLinkUsecases.NewPublicUpdateTicketUseCase(linkRepo, c.repos.ticketRepo, c.ucs.updateTicketUC, c.log)
	c.ucs.publicAddAttachmentUC = shareLinkUsecases.NewPublicAddAttachmentUseCase(linkRepo, c.repos.ticketRepo, c.ucs.addAttachmentUC, c.log)

	c.hdlrs.shareLinkHandler = shareLinkHandlers.NewShareLinkHandler(
		c.ucs.createShareLinkUC,
		c.ucs.listShareLinksUC,
		c.ucs.deactivateShareLinkUC,
		c.log,
	)
	c.hdlrs.publicShareHandler = shareLinkHandlers.NewPublicShareHandler(
		c.ucs.resolveShareLinkUC,
		c.ucs.publicUpdateTicketUC,
		c.ucs.publicAddAttachmentUC,
		c.log,
	)
}

func (c *Container) initComments() {
	commentRepo := c.repos.commentRepo
	notifier := email.NewNotifierFromConfig(c.cfg.Email, c.cfg.Server.BaseURL, c.log)

	c.ucs.listCommentsUC = commentUsecases.NewListCommentsUseCase(commentRepo, c.log)
	c.ucs.createCommentUC = commentUsecases.NewCreateCommentUseCase(
		commentRepo, c.repos.ticketRepo, c.timeline, c.markdown, notifier, c.txMgr, c.log,
	)
	c.ucs.replyCommentUC = commentUsecases.NewReplyCommentUseCase(commentRepo, c.markdown, c.log)
	c.ucs.markCommentReadUC = commentUsecases.NewMarkCommentReadUseCase(commentRepo, c.log)
	c.ucs.deleteCommentUC = commentUsecases.NewDeleteCommentUseCase(commentRepo, c.log)
	c.ucs.listPublicCommentsUC = commentUsecases.NewListPublicCommentsUseCase(
		commentRepo, c.repos.shareLinkRepo, c.repos.ticketRepo, c.log,
	)
	c.ucs.createPublicCommentUC = commentUsecases.NewCreatePublicCommentUseCase(
		commentRepo, c.repos.shareLinkRepo, c.repos.ticketRepo,
		c.timeline, c.markdown, notifier, c.txMgr, c.log,
	)

	c.hdlrs.commentHandler = commentHandlers.NewCommentHandler(
		c.ucs.listCommentsUC,
		c.ucs.createCommentUC,
		c.ucs.replyCommentUC,
		c.ucs.markCommentReadUC,
		c.ucs.deleteCommentUC,
		c.log,
	)
	c.hdlrs.shareCommentHandler = commentHandlers.NewPublicCommentHandler(
		commentUsecases.ChannelShareLink,
		c.ucs.listPublicCommentsUC,
		c.ucs.createPublicCommentUC,
		c.log,
	)
	c.hdlrs.chatCommentHandler = commentHandlers.NewPublicCommentHandler(
		commentUsecases.ChannelChat,
		c.ucs.listPublicCommentsUC,
		c.ucs.createPublicCommentUC,
		c.log,
	)
}

func (c *Container) initRemainingHandlers() {
	c.hdlrs.healthHandler = handlers.NewHealthHandler(
		handlers.PingerFunc(func(ctx context.Context) error {
			sqlDB, err := c.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}),
		map[string]handlers.Pinger{
			"redis": handlers.PingerFunc(func(ctx context.Context) error {
				return c.redis.Ping(ctx).Err()
			}),
		},
		c.log,
	)

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)
	c.rateLimiter = middleware.NewRateLimiter(
		ratelimit.NewRedisRateLimiter(c.redis),
		c.cfg.RateLimit.PublicRequestsPerMinute,
		time.Minute,
		c.log,
	)
}

// Shutdown releases the connections owned by the container. The database
// handle belongs to the caller and is left open.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
	c.log.Infow("container shut down")
}

package constants

const (
	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys set by the auth middleware
	ContextKeyUserID    = "user_id"
	ContextKeyTenantID  = "tenant_id"
	ContextKeyUserName  = "user_name"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// ActorSystem is the actor name recorded when no user is known.
	ActorSystem = "system"

	// ExternalActorPrefix marks timeline actors that came through a share link.
	ExternalActorPrefix = "external:"

	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgDatabaseUnavailable = "Database not available"
)

package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// TenantKey is the attribute name carrying the condominium id.
const TenantKey = "tenant_id"

type tenantCtxKey struct{}

// ContextWithTenant returns a context whose log records carry tenantID when
// written through the *Context slog methods.
func ContextWithTenant(ctx context.Context, tenantID uint) context.Context {
	return context.WithValue(ctx, tenantCtxKey{}, tenantID)
}

// TenantFromContext returns the tenant stored by ContextWithTenant.
func TenantFromContext(ctx context.Context) (uint, bool) {
	if ctx == nil {
		return 0, false
	}
	id, ok := ctx.Value(tenantCtxKey{}).(uint)
	return id, ok && id != 0
}

// sourceHandler adds the caller location to records at or above minSource
// and stamps the tenant found in the record's context.
type sourceHandler struct {
	handler   slog.Handler
	minSource slog.Level
}

// NewSourceHandler wraps handler, which should be built with AddSource false.
func NewSourceHandler(handler slog.Handler, minSource slog.Level) slog.Handler {
	return &sourceHandler{handler: handler, minSource: minSource}
}

func (h *sourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.minSource && r.PC != 0 {
		f, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		r.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: f.Function,
			File:     f.File,
			Line:     f.Line,
		}))
	}
	if id, ok := TenantFromContext(ctx); ok {
		r.AddAttrs(slog.Any(TenantKey, id))
	}
	return h.handler.Handle(ctx, r)
}

func (h *sourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceHandler{handler: h.handler.WithAttrs(attrs), minSource: h.minSource}
}

func (h *sourceHandler) WithGroup(name string) slog.Handler {
	return &sourceHandler{handler: h.handler.WithGroup(name), minSource: h.minSource}
}

func (h *sourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

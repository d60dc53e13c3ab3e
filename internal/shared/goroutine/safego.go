// Package goroutine runs background work that must outlive the request that
// started it.
package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/niggl1/appsindico/internal/shared/logger"
)

// Detached runs fn on a new goroutine with a context that is not tied to any
// caller and expires after timeout. Errors and panics are logged under name.
// The returned channel is closed once fn has finished.
func Detached(log logger.Interface, name string, timeout time.Duration, fn func(ctx context.Context) error) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("background task panicked",
					"task", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			log.Warnw("background task failed", "task", name, "error", err)
		}
	}()
	return done
}

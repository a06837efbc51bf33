// internal/mcp/watchdog.go
package mcp

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
)

// watchInterval is how often the watchdog polls the parent PID.
var watchInterval = 2 * time.Second

// WatchParent cancels the server when the launching process dies, so
// a disconnected agent host does not leave a zombie stdio server
// behind. It must never read stdin: the SDK transport owns it
// exclusively.
func WatchParent(ctx context.Context, logger *zap.SugaredLogger, cancel context.CancelFunc) {
	ppid := os.Getppid()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(watchInterval):
				if os.Getppid() != ppid {
					logger.Warnw("⚠️ parent process died, shutting down", "was_pid", ppid)
					cancel()
					return
				}
			}
		}
	}()
}

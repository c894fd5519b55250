//go:build debug

package debug

import (
	"context"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

var logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
	Level: slog.LevelDebug,
})).With("pkg", "arena")

// Log writes msg and the key/value pairs in args at debug level.
func Log(msg interface{}, args ...any) {
	logger.Log(context.Background(), slog.LevelDebug, getStringValue(msg), args...)
}

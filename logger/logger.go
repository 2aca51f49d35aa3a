package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestID returns the request ID stored in ctx, or "".
func RequestID(ctx context.Context) string {
	if v := ctx.Value(requestIDKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// Init installs a JSON slog logger writing to stdout as the default.
func Init(level string) {
	slog.SetDefault(New(os.Stdout, level))
}

// New builds a JSON logger with RFC3339 timestamps and source locations.
func New(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	})
	return slog.New(handler)
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func withRequestID(ctx context.Context, args []slog.Attr) []slog.Attr {
	if requestID := RequestID(ctx); requestID != "" {
		args = append(args, slog.String("request_id", requestID))
	}
	return args
}

func CtxInfo(ctx context.Context, msg string, args ...slog.Attr) {
	slog.LogAttrs(ctx, slog.LevelInfo, msg, withRequestID(ctx, args)...)
}

func CtxDebug(ctx context.Context, msg string, args ...slog.Attr) {
	slog.LogAttrs(ctx, slog.LevelDebug, msg, withRequestID(ctx, args)...)
}

func CtxWarn(ctx context.Context, msg string, args ...slog.Attr) {
	slog.LogAttrs(ctx, slog.LevelWarn, msg, withRequestID(ctx, args)...)
}

func CtxError(ctx context.Context, msg string, err error, args ...slog.Attr) {
	args = append(args, slog.Any("error", err))
	slog.LogAttrs(ctx, slog.LevelError, msg, withRequestID(ctx, args)...)
}

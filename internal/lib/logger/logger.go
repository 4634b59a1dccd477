// Package logger sets up the slog logger for the service, with optional
// mirroring of records to a Telegram admin chat.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// SetupLogger builds the root logger for the given environment. In prod the
// log is written as JSON to a file under logDir, falling back to stdout when
// the file cannot be opened.
func SetupLogger(env, logDir string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		out := os.Stdout
		path := filepath.Join(logDir, "bricklix.log")
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err == nil {
			out = file
		}
		return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// MessageSender delivers a plain text message to the admin chat.
type MessageSender interface {
	SendMessage(msg string)
}

// SetupTelegramHandler wraps the logger so that records at or above minLevel
// are also forwarded to Telegram.
func SetupTelegramHandler(log *slog.Logger, sender MessageSender, minLevel slog.Level) *slog.Logger {
	return slog.New(&telegramHandler{
		next:     log.Handler(),
		sender:   sender,
		minLevel: minLevel,
	})
}

type telegramHandler struct {
	next     slog.Handler
	sender   MessageSender
	minLevel slog.Level
	attrs    []slog.Attr
}

func (h *telegramHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *telegramHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.minLevel && h.sender != nil {
		text := fmt.Sprintf("[%s] %s", r.Level.String(), r.Message)
		for _, a := range h.attrs {
			text += fmt.Sprintf("\n%s: %s", a.Key, a.Value.String())
		}
		r.Attrs(func(a slog.Attr) bool {
			text += fmt.Sprintf("\n%s: %s", a.Key, a.Value.String())
			return true
		})
		go h.sender.SendMessage(text)
	}
	return h.next.Handle(ctx, r)
}

func (h *telegramHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &telegramHandler{
		next:     h.next.WithAttrs(attrs),
		sender:   h.sender,
		minLevel: h.minLevel,
		attrs:    append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

func (h *telegramHandler) WithGroup(name string) slog.Handler {
	return &telegramHandler{
		next:     h.next.WithGroup(name),
		sender:   h.sender,
		minLevel: h.minLevel,
		attrs:    h.attrs,
	}
}

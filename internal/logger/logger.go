package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

var (
	mu           sync.RWMutex
	base         = slog.New(slog.NewTextHandler(os.Stderr, nil))
	channelID    int64
	channelLevel = slog.LevelError
	botClient    ChannelClient
)

// ChannelClient posts a log line into a chat channel.
type ChannelClient interface {
	SendMessage(chatID int64, text string) error
}

type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// Init replaces the process logger. It is safe to call more than once.
func Init(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var handler slog.Handler
	if opts.Format == "json" {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	l := slog.New(handler)
	mu.Lock()
	base = l
	mu.Unlock()
	slog.SetDefault(l)
	return l
}

// SetChannel mirrors messages at or above level into a chat channel.
// A nil client disables mirroring.
func SetChannel(client ChannelClient, chatID int64, level slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	botClient = client
	channelID = chatID
	channelLevel = level
}

func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Info(message string, args ...any) {
	sendLog(slog.LevelInfo, "ℹ️ INFO", message, args...)
}

func Warn(message string, args ...any) {
	sendLog(slog.LevelWarn, "⚠️ WARN", message, args...)
}

func Error(message string, args ...any) {
	sendLog(slog.LevelError, "❌ ERROR", message, args...)
}

func Debug(message string, args ...any) {
	sendLog(slog.LevelDebug, "🔍 DEBUG", message, args...)
}

func Success(message string, args ...any) {
	sendLog(slog.LevelInfo, "✅ SUCCESS", message, append(args, "outcome", "success")...)
}

func sendLog(level slog.Level, prefix, message string, args ...any) {
	mu.RLock()
	l, client, chatID, minLevel := base, botClient, channelID, channelLevel
	mu.RUnlock()

	l.Log(context.Background(), level, message, args...)

	if client == nil || level < minLevel {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	logMessage := fmt.Sprintf("[%s] %s\n%s", timestamp, prefix, message)
	if len(args) > 0 {
		logMessage += "\n" + formatArgs(args)
	}

	go func() {
		if err := client.SendMessage(chatID, logMessage); err != nil {
			l.Warn("failed to send log to channel", "error", err)
		}
	}()
}

func formatArgs(args []any) string {
	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "", 0)
	r.Add(args...)
	var out string
	r.Attrs(func(a slog.Attr) bool {
		if out != "" {
			out += "\n"
		}
		out += fmt.Sprintf("%s: %v", a.Key, a.Value)
		return true
	})
	return out
}

// LogWithErr logs message at info when err is nil, otherwise at error, and
// returns err wrapped with message.
func LogWithErr(message string, err error) error {
	if err == nil {
		Info(message)
		return nil
	}

	Error(message, "error", err)
	return fmt.Errorf("%s: %w", message, err)
}

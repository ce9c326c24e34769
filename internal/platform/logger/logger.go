package logger

import (
	"io"
	"log/slog"
	"os"
)

// Log is the process-wide logger. Handlers and services log through it so a
// single LOG_FILE setting redirects everything.
var Log *slog.Logger

func init() {
	var w io.Writer = os.Stdout

	if path := os.Getenv("LOG_FILE"); path != "" {
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			panic("failed to open log file: " + err.Error())
		}
		w = io.MultiWriter(os.Stdout, file)
	}

	level := slog.LevelInfo
	if os.Getenv("LOG_DEBUG") != "" {
		level = slog.LevelDebug
	}

	Log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

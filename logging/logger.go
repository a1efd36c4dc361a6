package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Auto installs a tint handler on stderr as the default slog logger.
func Auto(debug bool) io.Closer {
	return Setup(os.Stderr, debug)
}

func Setup(w io.Writer, debug bool) io.Closer {
	logLevel := slog.LevelDebug
	if !debug {
		logLevel = slog.LevelWarn
	}

	logger := slog.New(tint.NewHandler(w, &tint.Options{
		AddSource:   debug,
		Level:       logLevel,
		ReplaceAttr: nil,
		TimeFormat:  time.Kitchen,
		NoColor:     !debug,
	}))

	slog.SetDefault(logger)
	slog.SetLogLoggerLevel(logLevel)

	closer, ok := w.(io.Closer)
	if !ok || w == os.Stderr {
		return io.NopCloser(nil)
	}

	return closer
}

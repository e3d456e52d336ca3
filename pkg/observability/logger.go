package observability

import (
	"io"
	"strings"

	"github.com/de-tools/wellness-atlas/pkg/services/config"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the process logger. Output always goes to out; when a log
// file is configured it is also written there as JSON with size based
// rotation. The returned closer releases the file and is never nil.
func NewLogger(cfg config.LogConfig, out io.Writer) (zerolog.Logger, io.Closer) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var closer io.Closer = nopCloser{}
	w := out
	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
		}
		closer = file
		w = zerolog.MultiLevelWriter(out, file)
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	if err != nil && cfg.Level != "" {
		logger.Warn().Str("level", cfg.Level).Msg("unknown log level, using info")
	}
	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

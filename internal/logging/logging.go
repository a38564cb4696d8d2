package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"task-manager/internal/config"
)

const timeFormat = "2006-01-02 15:04:05"

// Apply sets the global log level and output writers (console, plus a rotating file when configured).
func Apply(cfg config.LogConfig) {
	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))
	log.Logger = zerolog.New(writer(cfg, os.Stdout)).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func writer(cfg config.LogConfig, console io.Writer) io.Writer {
	consoleOutput := zerolog.ConsoleWriter{Out: console, TimeFormat: timeFormat}
	if cfg.File == "" {
		return consoleOutput
	}

	if err := ensureLogDir(cfg.File); err != nil {
		log.Error().Err(err).Str("path", cfg.File).Msg("Failed to prepare log directory; logging to console only")
		return consoleOutput
	}

	fileWriter := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	fileConsole := zerolog.ConsoleWriter{
		Out:        fileWriter,
		TimeFormat: timeFormat,
		NoColor:    true,
	}

	return zerolog.MultiLevelWriter(consoleOutput, fileConsole)
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
